package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Estados de factura devueltos por el backend.
const (
	InvoicePaid          = "paid"
	InvoiceUnpaid        = "unpaid"
	InvoicePending       = "pending"
	InvoicePartiallyPaid = "partially_paid"
	InvoiceOverdue       = "overdue"
)

// InvoiceTypes tipos de factura del formulario, en el orden del select.
var InvoiceTypes = []string{
	"subscription", "installation", "equipment", "late_fee", "upgrade",
	"reconnection", "add_on", "refund", "deposit", "maintenance",
}

// LineItem línea de detalle de la factura.
type LineItem struct {
	ID                string          `json:"id"`
	Description       string          `json:"description"`
	Quantity          decimal.Decimal `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	DiscountAmount    decimal.Decimal `json:"discount_amount"`
	LineTotal         decimal.Decimal `json:"line_total"`
	ItemType          string          `json:"item_type,omitempty"`
	InventoryItemID   string          `json:"inventory_item_id,omitempty"`
	InventoryItemType string          `json:"inventory_item_type,omitempty"`
}

// PendingInvoice otra factura del mismo cliente con saldo pendiente.
type PendingInvoice struct {
	ID               string          `json:"id"`
	InvoiceNumber    string          `json:"invoice_number"`
	BillingStartDate string          `json:"billing_start_date"`
	BillingEndDate   string          `json:"billing_end_date"`
	DueDate          string          `json:"due_date"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	PaidAmount       decimal.Decimal `json:"paid_amount"`
	RemainingAmount  decimal.Decimal `json:"remaining_amount"`
	Status           string          `json:"status"`
	InvoiceType      string          `json:"invoice_type"`
}

// PendingInvoices resumen de otras facturas pendientes (solo en la vista pública).
type PendingInvoices struct {
	Count              int              `json:"count"`
	TotalPendingAmount decimal.Decimal  `json:"total_pending_amount"`
	Invoices           []PendingInvoice `json:"invoices"`
}

// Invoice factura con sus pagos y saldos ya calculados por el servidor.
type Invoice struct {
	ID                 string           `json:"id"`
	InvoiceNumber      string           `json:"invoice_number"`
	CustomerID         string           `json:"customer_id"`
	CustomerName       string           `json:"customer_name"`
	CustomerAddress    string           `json:"customer_address"`
	CustomerInternetID string           `json:"customer_internet_id"`
	CustomerPhone      string           `json:"customer_phone"`
	ServicePlanName    string           `json:"service_plan_name"`
	BillingStartDate   string           `json:"billing_start_date"`
	BillingEndDate     string           `json:"billing_end_date"`
	DueDate            string           `json:"due_date"`
	Subtotal           decimal.Decimal  `json:"subtotal"`
	DiscountPercentage decimal.Decimal  `json:"discount_percentage"`
	TotalAmount        decimal.Decimal  `json:"total_amount"`
	InvoiceType        string           `json:"invoice_type"`
	Notes              string           `json:"notes"`
	Status             string           `json:"status"`
	Payments           []Payment        `json:"payments"`
	TotalPaid          decimal.Decimal  `json:"total_paid"`
	RemainingAmount    decimal.Decimal  `json:"remaining_amount"`
	LineItems          []LineItem       `json:"line_items,omitempty"`
	PendingInvoices    *PendingInvoices `json:"pending_invoices,omitempty"`
}

// HasBalance el saldo pendiente es mayor que cero.
func (i Invoice) HasBalance() bool {
	return i.RemainingAmount.IsPositive()
}

// HasPendingPayment hay un pago del cliente esperando verificación.
func (i Invoice) HasPendingPayment() bool {
	for _, p := range i.Payments {
		if p.Status == PaymentPending {
			return true
		}
	}
	return false
}

// AcceptsPayment la página pública muestra el formulario de pago solo si hay saldo
// y ningún pago pendiente de verificación.
func (i Invoice) AcceptsPayment() bool {
	return i.HasBalance() && !i.HasPendingPayment()
}

// LastPayment último pago registrado (para el sello PAID), nil si no hay pagos.
func (i Invoice) LastPayment() *Payment {
	if len(i.Payments) == 0 {
		return nil
	}
	return &i.Payments[len(i.Payments)-1]
}

// IsSubscription factura mensual de suscripción.
func (i Invoice) IsSubscription() bool {
	return strings.EqualFold(i.InvoiceType, "subscription")
}

// ServiceDescription descripción legible del concepto facturado.
func (i Invoice) ServiceDescription() string {
	switch strings.ToLower(i.InvoiceType) {
	case "subscription":
		return i.ServicePlanName + " - Monthly Subscription"
	case "installation":
		return "Internet Installation Service"
	case "equipment":
		return "Network Equipment Purchase"
	case "add_on":
		return "Additional Service/Feature"
	case "refund":
		return "Payment Refund"
	case "deposit":
		return "Security Deposit"
	case "maintenance":
		return "Maintenance Service"
	case "late_fee":
		return "Late Payment Fee"
	case "upgrade":
		return "Service Upgrade"
	case "reconnection":
		return "Service Reconnection"
	case "":
		return "Invoice"
	default:
		return HumanizeEnum(strings.ToLower(i.InvoiceType))
	}
}

// StatusLabel etiqueta corta del estado para el badge.
func (i Invoice) StatusLabel() string {
	switch strings.ToLower(i.Status) {
	case InvoicePartiallyPaid:
		return "PARTIAL"
	default:
		return strings.ToUpper(i.Status)
	}
}
