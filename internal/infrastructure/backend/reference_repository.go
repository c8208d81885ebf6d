package backend

import (
	"context"

	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
	"github.com/jhoicas/isp-backoffice/internal/domain/repository"
)

var _ repository.ReferenceRepository = (*ReferenceRepository)(nil)

// ReferenceRepository listas para selects.
type ReferenceRepository struct {
	c *Client
}

// NewReferenceRepository construye el repositorio.
func NewReferenceRepository(c *Client) *ReferenceRepository {
	return &ReferenceRepository{c: c}
}

func list[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var out []T
	if err := c.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReferenceRepository) Areas(ctx context.Context) ([]entity.Area, error) {
	return list[entity.Area](ctx, r.c, "/areas/list")
}

func (r *ReferenceRepository) ServicePlans(ctx context.Context) ([]entity.ServicePlan, error) {
	return list[entity.ServicePlan](ctx, r.c, "/service-plans/list")
}

func (r *ReferenceRepository) Employees(ctx context.Context) ([]entity.Employee, error) {
	return list[entity.Employee](ctx, r.c, "/employees/list")
}

// BankAccounts GET /bank-accounts/list[?active_only=true].
func (r *ReferenceRepository) BankAccounts(ctx context.Context, activeOnly bool) ([]entity.BankAccount, error) {
	path := "/bank-accounts/list"
	if activeOnly {
		path += "?active_only=true"
	}
	return list[entity.BankAccount](ctx, r.c, path)
}

func (r *ReferenceRepository) ISPs(ctx context.Context) ([]entity.ISP, error) {
	return list[entity.ISP](ctx, r.c, "/isps/list")
}

func (r *ReferenceRepository) Customers(ctx context.Context) ([]entity.Customer, error) {
	return list[entity.Customer](ctx, r.c, "/customers/list")
}

func (r *ReferenceRepository) Invoices(ctx context.Context) ([]entity.Invoice, error) {
	return list[entity.Invoice](ctx, r.c, "/invoices/list")
}
