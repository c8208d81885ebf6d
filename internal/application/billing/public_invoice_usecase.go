package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/isp-backoffice/internal/application/dto"
	"github.com/jhoicas/isp-backoffice/internal/application/fanout"
	"github.com/jhoicas/isp-backoffice/internal/domain"
	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
	"github.com/jhoicas/isp-backoffice/internal/domain/repository"
)

// ErrPaymentNotAccepted la factura no tiene saldo o ya tiene un pago en verificación.
var ErrPaymentNotAccepted = fmt.Errorf("%w: this invoice already has a payment pending verification or no balance due", domain.ErrConflict)

// PublicInvoiceUseCase página pública de una factura (sin sesión).
type PublicInvoiceUseCase struct {
	repo repository.PublicInvoiceRepository
}

// NewPublicInvoiceUseCase construye el caso de uso.
func NewPublicInvoiceUseCase(repo repository.PublicInvoiceRepository) *PublicInvoiceUseCase {
	return &PublicInvoiceUseCase{repo: repo}
}

// View factura + cuentas bancarias en paralelo. Si fallan las cuentas, la página
// se muestra igual con el aviso.
func (uc *PublicInvoiceUseCase) View(ctx context.Context, id string) (*dto.PublicInvoiceView, error) {
	view := &dto.PublicInvoiceView{State: dto.StateIdle}
	var invErr error
	g := fanout.New(ctx)
	g.Go("invoice", func(ctx context.Context) error {
		view.Invoice, invErr = uc.repo.GetInvoice(ctx, id)
		return nil
	})
	g.Go("bank_accounts", func(ctx context.Context) (err error) {
		view.BankAccounts, err = uc.repo.BankAccounts(ctx)
		return err
	})
	errs, err := g.Wait()
	if err != nil {
		return nil, err
	}
	if invErr != nil {
		return nil, invErr
	}
	view.BankError = errs["bank_accounts"]
	return view, nil
}

// Submit valida el formulario (comprobante y cuenta bancaria) antes de cualquier
// llamada; luego comprueba que la factura siga aceptando pagos y envía el multipart.
func (uc *PublicInvoiceUseCase) Submit(ctx context.Context, id string, form *dto.PublicPaymentForm) error {
	if err := dto.Validate(form); err != nil {
		return err
	}
	inv, err := uc.repo.GetInvoice(ctx, id)
	if err != nil {
		return err
	}
	if !inv.AcceptsPayment() {
		return ErrPaymentNotAccepted
	}
	return uc.repo.SubmitPayment(ctx, form.Multipart(id))
}

// Invoice factura pública sola (para el PDF).
func (uc *PublicInvoiceUseCase) Invoice(ctx context.Context, id string) (*entity.Invoice, error) {
	return uc.repo.GetInvoice(ctx, id)
}
