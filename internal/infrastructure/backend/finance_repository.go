package backend

import (
	"context"

	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
	"github.com/jhoicas/isp-backoffice/internal/domain/repository"
)

var _ repository.ISPPaymentRepository = (*ISPPaymentRepository)(nil)

// ISPPaymentRepository /isp-payments.
type ISPPaymentRepository struct {
	Resource[entity.ISPPayment]
}

// NewISPPaymentRepository construye el repositorio.
func NewISPPaymentRepository(c *Client) *ISPPaymentRepository {
	return &ISPPaymentRepository{Resource: NewResource[entity.ISPPayment](c, "isp-payments")}
}

// ProofImage GET /isp-payments/proof-image/:id.
func (r *ISPPaymentRepository) ProofImage(ctx context.Context, id string) (*repository.Blob, error) {
	return r.c.Download(ctx, r.path("proof-image", id))
}
