package backend

import (
	"context"
	"net/http"

	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
	"github.com/jhoicas/isp-backoffice/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepository)(nil)

// CustomerRepository /customers.
type CustomerRepository struct {
	Resource[entity.Customer]
}

// NewCustomerRepository construye el repositorio.
func NewCustomerRepository(c *Client) *CustomerRepository {
	return &CustomerRepository{Resource: NewResource[entity.Customer](c, "customers")}
}

// GetByID GET /customers/:id.
func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	var out entity.Customer
	if err := r.c.Get(ctx, r.path(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ToggleStatus PATCH /customers/toggle-status/:id.
func (r *CustomerRepository) ToggleStatus(ctx context.Context, id string) error {
	return r.c.Do(ctx, http.MethodPatch, r.path("toggle-status", id), struct{}{}, nil)
}

// Document GET /customers/{cnic-front-image|cnic-back-image|agreement-document}/:id.
func (r *CustomerRepository) Document(ctx context.Context, id string, doc repository.CustomerDocument) (*repository.Blob, error) {
	return r.c.Download(ctx, r.path(string(doc), id))
}
