package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
	"github.com/jhoicas/isp-backoffice/internal/domain/repository"
)

var (
	_ repository.InvoiceRepository       = (*InvoiceRepository)(nil)
	_ repository.PaymentRepository       = (*PaymentRepository)(nil)
	_ repository.PublicInvoiceRepository = (*PublicInvoiceRepository)(nil)
)

// InvoiceRepository /invoices.
type InvoiceRepository struct {
	Resource[entity.Invoice]
}

// NewInvoiceRepository construye el repositorio.
func NewInvoiceRepository(c *Client) *InvoiceRepository {
	return &InvoiceRepository{Resource: NewResource[entity.Invoice](c, "invoices")}
}

// GetByID GET /invoices/:id.
func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	var out entity.Invoice
	if err := r.c.Get(ctx, r.path(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByCustomer GET /invoices/customer/:id.
func (r *InvoiceRepository) ListByCustomer(ctx context.Context, customerID string) ([]entity.Invoice, error) {
	var out []entity.Invoice
	if err := r.c.Get(ctx, r.path("customer", customerID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PaymentRepository /payments.
type PaymentRepository struct {
	Resource[entity.Payment]
}

// NewPaymentRepository construye el repositorio.
func NewPaymentRepository(c *Client) *PaymentRepository {
	return &PaymentRepository{Resource: NewResource[entity.Payment](c, "payments")}
}

// ListByCustomer GET /payments/customer/:id.
func (r *PaymentRepository) ListByCustomer(ctx context.Context, customerID string) ([]entity.Payment, error) {
	var out []entity.Payment
	if err := r.c.Get(ctx, r.path("customer", customerID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Verify POST /payments/verify/:id.
func (r *PaymentRepository) Verify(ctx context.Context, id string, in repository.PaymentVerification) error {
	return r.c.Do(ctx, http.MethodPost, r.path("verify", id), in, nil)
}

// ProofImage GET /payments/proof-image/:id.
func (r *PaymentRepository) ProofImage(ctx context.Context, id string) (*repository.Blob, error) {
	return r.c.Download(ctx, r.path("proof-image", id))
}

// PublicInvoiceRepository /public/*. Las llamadas no llevan token.
type PublicInvoiceRepository struct {
	c *Client
}

// NewPublicInvoiceRepository construye el repositorio.
func NewPublicInvoiceRepository(c *Client) *PublicInvoiceRepository {
	return &PublicInvoiceRepository{c: c}
}

// GetInvoice GET /public/invoice/:id.
func (r *PublicInvoiceRepository) GetInvoice(ctx context.Context, id string) (*entity.Invoice, error) {
	var out entity.Invoice
	if err := r.c.Get(ctx, "/public/invoice/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BankAccounts GET /public/bank-accounts/list.
func (r *PublicInvoiceRepository) BankAccounts(ctx context.Context) ([]entity.BankAccount, error) {
	var out []entity.BankAccount
	if err := r.c.Get(ctx, "/public/bank-accounts/list", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SubmitPayment POST /public/payment/submit (multipart).
func (r *PublicInvoiceRepository) SubmitPayment(ctx context.Context, form *repository.MultipartForm) error {
	return r.c.Do(ctx, http.MethodPost, "/public/payment/submit", form, nil)
}
