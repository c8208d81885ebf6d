package backend

import (
	"context"
	"net/http"

	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
	"github.com/jhoicas/isp-backoffice/internal/domain/repository"
)

var _ repository.ComplaintRepository = (*ComplaintRepository)(nil)

// ComplaintRepository /complaints.
type ComplaintRepository struct {
	Resource[entity.Complaint]
}

// NewComplaintRepository construye el repositorio.
func NewComplaintRepository(c *Client) *ComplaintRepository {
	return &ComplaintRepository{Resource: NewResource[entity.Complaint](c, "complaints")}
}

// ListByCustomer GET /complaints/customer/:id.
func (r *ComplaintRepository) ListByCustomer(ctx context.Context, customerID string) ([]entity.Complaint, error) {
	var out []entity.Complaint
	if err := r.c.Get(ctx, r.path("customer", customerID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus PUT /complaints/update/:id. Con archivo de prueba se envía multipart.
func (r *ComplaintRepository) UpdateStatus(ctx context.Context, id string, in repository.ComplaintStatusUpdate) error {
	var body any = in
	if in.ProofFile != nil {
		body = repository.NewMultipartForm().
			Set("status", string(in.Status)).
			Set("resolution_proof", in.ResolutionProof).
			Attach(in.ProofFile)
	}
	return r.c.Do(ctx, http.MethodPut, r.path("update", id), body, nil)
}
