package billing

import (
	"context"
	"strings"

	"github.com/jhoicas/isp-backoffice/internal/application/dto"
	"github.com/jhoicas/isp-backoffice/internal/application/usecase"
	"github.com/jhoicas/isp-backoffice/internal/domain"
	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
	"github.com/jhoicas/isp-backoffice/internal/domain/repository"
)

// Acciones de verificación de pagos.
const (
	VerifyApprove = "approve"
	VerifyReject  = "reject"
)

// MsgRejectReasonRequired se muestra al rechazar sin motivo.
const MsgRejectReasonRequired = "Please provide a reason for rejection"

// PaymentUseCase casos de uso de pagos.
type PaymentUseCase struct {
	*usecase.CRUDUseCase[entity.Payment]
	repo repository.PaymentRepository
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(repo repository.PaymentRepository) *PaymentUseCase {
	return &PaymentUseCase{CRUDUseCase: usecase.NewCRUDUseCase[entity.Payment](repo), repo: repo}
}

// Get busca el pago en la lista.
func (uc *PaymentUseCase) Get(ctx context.Context, id string) (*entity.Payment, error) {
	return uc.Find(ctx, id, func(p entity.Payment) string { return p.ID })
}

// Verify aprueba o rechaza un pago pendiente. El rechazo exige motivo.
func (uc *PaymentUseCase) Verify(ctx context.Context, id, action, notes string) error {
	in := repository.PaymentVerification{Action: action}
	switch action {
	case VerifyApprove:
	case VerifyReject:
		if dto.Blank(notes) {
			return domain.NewValidationError("notes", MsgRejectReasonRequired)
		}
	default:
		return domain.NewValidationError("action", "Invalid verification action")
	}
	if n := strings.TrimSpace(notes); n != "" {
		in.Notes = &n
	}
	return uc.repo.Verify(ctx, id, in)
}

// ProofImage descarga el comprobante del pago.
func (uc *PaymentUseCase) ProofImage(ctx context.Context, id string) (*repository.Blob, error) {
	return uc.repo.ProofImage(ctx, id)
}
