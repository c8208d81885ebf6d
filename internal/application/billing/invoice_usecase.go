package billing

import (
	"context"

	"github.com/jhoicas/isp-backoffice/internal/application/usecase"
	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
	"github.com/jhoicas/isp-backoffice/internal/domain/repository"
)

// InvoiceUseCase casos de uso de facturas (panel interno).
type InvoiceUseCase struct {
	*usecase.CRUDUseCase[entity.Invoice]
	repo repository.InvoiceRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{CRUDUseCase: usecase.NewCRUDUseCase[entity.Invoice](repo), repo: repo}
}

// Get GET /invoices/:id con pagos y saldos.
func (uc *InvoiceUseCase) Get(ctx context.Context, id string) (*entity.Invoice, error) {
	return uc.repo.GetByID(ctx, id)
}
