package repository

import (
	"context"

	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
)

// ReferenceRepository listas auxiliares para los selects de los formularios.
type ReferenceRepository interface {
	Areas(ctx context.Context) ([]entity.Area, error)
	ServicePlans(ctx context.Context) ([]entity.ServicePlan, error)
	Employees(ctx context.Context) ([]entity.Employee, error)
	BankAccounts(ctx context.Context, activeOnly bool) ([]entity.BankAccount, error)
	ISPs(ctx context.Context) ([]entity.ISP, error)
	Customers(ctx context.Context) ([]entity.Customer, error)
	Invoices(ctx context.Context) ([]entity.Invoice, error)
}
