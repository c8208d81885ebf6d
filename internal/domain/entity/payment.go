package entity

import "github.com/shopspring/decimal"

// Estados de pago.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
	PaymentCancelled = "cancelled"
	PaymentRefunded  = "refunded"
)

// PaymentStatuses orden de las opciones del select.
var PaymentStatuses = []string{PaymentPending, PaymentCompleted, PaymentFailed, PaymentCancelled, PaymentRefunded}

// Métodos de pago que ofrece la UI.
const (
	MethodBankTransfer = "Bank Transfer"
	MethodCash         = "Cash"
	MethodJazzCash     = "JazzCash"
	MethodEasyPaisa    = "EasyPaisa"
)

// PaymentMethods orden de las opciones del select.
var PaymentMethods = []string{MethodBankTransfer, MethodCash, MethodJazzCash, MethodEasyPaisa}

// Payment pago asociado a una factura.
type Payment struct {
	ID             string          `json:"id"`
	InvoiceID      string          `json:"invoice_id"`
	InvoiceNumber  string          `json:"invoice_number,omitempty"`
	CustomerName   string          `json:"customer_name,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	PaymentDate    string          `json:"payment_date"`
	PaymentMethod  string          `json:"payment_method"`
	TransactionID  string          `json:"transaction_id,omitempty"`
	BankAccountID  string          `json:"bank_account_id,omitempty"`
	BankName       string          `json:"bank_name,omitempty"`
	ReceivedBy     string          `json:"received_by,omitempty"`
	ReceivedByName string          `json:"received_by_name,omitempty"`
	Status         string          `json:"status"`
	FailureReason  string          `json:"failure_reason,omitempty"`
	PaymentProof   string          `json:"payment_proof,omitempty"`
	IsActive       bool            `json:"is_active"`
}

// AwaitingVerification el pago está pendiente de aprobación de un empleado.
func (p Payment) AwaitingVerification() bool {
	return p.Status == PaymentPending
}

// HasProof hay un comprobante subido.
func (p Payment) HasProof() bool {
	return p.PaymentProof != ""
}
