package repository

import (
	"context"

	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
)

// InvoiceRepository puerto del recurso /invoices.
type InvoiceRepository interface {
	CRUDRepository[entity.Invoice]
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	ListByCustomer(ctx context.Context, customerID string) ([]entity.Invoice, error)
}

// PaymentVerification cuerpo de POST /payments/verify/:id.
type PaymentVerification struct {
	Action string  `json:"action"` // approve | reject
	Notes  *string `json:"notes"`
}

// PaymentRepository puerto del recurso /payments.
type PaymentRepository interface {
	CRUDRepository[entity.Payment]
	ListByCustomer(ctx context.Context, customerID string) ([]entity.Payment, error)
	Verify(ctx context.Context, id string, in PaymentVerification) error
	ProofImage(ctx context.Context, id string) (*Blob, error)
}

// PublicInvoiceRepository endpoints sin autenticación de la página pública.
type PublicInvoiceRepository interface {
	GetInvoice(ctx context.Context, id string) (*entity.Invoice, error)
	BankAccounts(ctx context.Context) ([]entity.BankAccount, error)
	SubmitPayment(ctx context.Context, form *MultipartForm) error
}
