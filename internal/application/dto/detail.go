package dto

import "github.com/jhoicas/isp-backoffice/internal/domain/entity"

// CustomerDetail ficha del cliente con sus listas relacionadas. Cada lista se carga
// por separado; Errors guarda las que fallaron por nombre de sección.
type CustomerDetail struct {
	Customer   *entity.Customer
	Invoices   []entity.Invoice
	Payments   []entity.Payment
	Complaints []entity.Complaint
	Tasks      []entity.Task
	Errors     map[string]string
}

// SubmissionState estado del envío de pago en la página pública.
type SubmissionState string

const (
	StateIdle       SubmissionState = "idle"
	StateSubmitting SubmissionState = "submitting"
	StateSuccess    SubmissionState = "success"
	StateError      SubmissionState = "error"
)

// Next transición tras el resultado del envío: submitting -> success | error.
// Desde error se vuelve a idle al re-renderizar el formulario.
func (s SubmissionState) Next(err error) SubmissionState {
	switch s {
	case StateIdle:
		return StateSubmitting
	case StateSubmitting:
		if err != nil {
			return StateError
		}
		return StateSuccess
	case StateError:
		return StateIdle
	default:
		return s
	}
}

// PublicInvoiceView página pública de una factura.
type PublicInvoiceView struct {
	Invoice      *entity.Invoice
	BankAccounts []entity.BankAccount
	BankError    string
	State        SubmissionState
	Form         PublicPaymentForm
	Error        string
	CompanyName  string
}

// ShowForm el formulario se muestra solo con saldo, sin pago pendiente y sin un envío exitoso recién hecho.
func (v PublicInvoiceView) ShowForm() bool {
	return v.Invoice != nil && v.Invoice.AcceptsPayment() && v.State != StateSuccess
}

// PendingNotice aviso de pago en verificación.
func (v PublicInvoiceView) PendingNotice() bool {
	return v.Invoice != nil && (v.Invoice.HasPendingPayment() || v.State == StateSuccess)
}
