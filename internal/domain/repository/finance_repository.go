package repository

import (
	"context"

	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
)

// ISPPaymentRepository puerto del recurso /isp-payments.
type ISPPaymentRepository interface {
	CRUDRepository[entity.ISPPayment]
	ProofImage(ctx context.Context, id string) (*Blob, error)
}
