package usecase

import (
	"context"

	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
	"github.com/jhoicas/isp-backoffice/internal/domain/repository"
)

// ISPPaymentUseCase pagos al proveedor de ancho de banda y sus comprobantes.
type ISPPaymentUseCase struct {
	*CRUDUseCase[entity.ISPPayment]
	repo repository.ISPPaymentRepository
}

// NewISPPaymentUseCase construye el caso de uso.
func NewISPPaymentUseCase(repo repository.ISPPaymentRepository) *ISPPaymentUseCase {
	return &ISPPaymentUseCase{CRUDUseCase: NewCRUDUseCase[entity.ISPPayment](repo), repo: repo}
}

// Get busca el pago en la lista; el backend no expone GET /isp-payments/:id.
func (uc *ISPPaymentUseCase) Get(ctx context.Context, id string) (*entity.ISPPayment, error) {
	return uc.Find(ctx, id, func(p entity.ISPPayment) string { return p.ID })
}

// ProofImage descarga el comprobante del pago.
func (uc *ISPPaymentUseCase) ProofImage(ctx context.Context, id string) (*repository.Blob, error) {
	return uc.repo.ProofImage(ctx, id)
}
