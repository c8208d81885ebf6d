package usecase

import (
	"context"

	"github.com/jhoicas/isp-backoffice/internal/application/dto"
	"github.com/jhoicas/isp-backoffice/internal/application/fanout"
	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
	"github.com/jhoicas/isp-backoffice/internal/domain/repository"
)

// CustomerUseCase casos de uso de clientes y su ficha.
type CustomerUseCase struct {
	*CRUDUseCase[entity.Customer]
	customers  repository.CustomerRepository
	invoices   repository.InvoiceRepository
	payments   repository.PaymentRepository
	complaints repository.ComplaintRepository
	tasks      repository.TaskRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(
	customers repository.CustomerRepository,
	invoices repository.InvoiceRepository,
	payments repository.PaymentRepository,
	complaints repository.ComplaintRepository,
	tasks repository.TaskRepository,
) *CustomerUseCase {
	return &CustomerUseCase{
		CRUDUseCase: NewCRUDUseCase[entity.Customer](customers),
		customers:   customers,
		invoices:    invoices,
		payments:    payments,
		complaints:  complaints,
		tasks:       tasks,
	}
}

// Get GET /customers/:id.
func (uc *CustomerUseCase) Get(ctx context.Context, id string) (*entity.Customer, error) {
	return uc.customers.GetByID(ctx, id)
}

// ToggleStatus activa/desactiva el cliente.
func (uc *CustomerUseCase) ToggleStatus(ctx context.Context, id string) error {
	return uc.customers.ToggleStatus(ctx, id)
}

// Document descarga una imagen de CNIC o el acuerdo firmado.
func (uc *CustomerUseCase) Document(ctx context.Context, id string, doc repository.CustomerDocument) (*repository.Blob, error) {
	return uc.customers.Document(ctx, id, doc)
}

// Detail ficha completa: el cliente es obligatorio; facturas, pagos, quejas y tareas
// se piden en paralelo y cada una puede fallar por separado.
func (uc *CustomerUseCase) Detail(ctx context.Context, id string) (*dto.CustomerDetail, error) {
	customer, err := uc.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := &dto.CustomerDetail{Customer: customer}

	g := fanout.New(ctx)
	g.Go("invoices", func(ctx context.Context) (err error) {
		out.Invoices, err = uc.invoices.ListByCustomer(ctx, id)
		return err
	})
	g.Go("payments", func(ctx context.Context) (err error) {
		out.Payments, err = uc.payments.ListByCustomer(ctx, id)
		return err
	})
	g.Go("complaints", func(ctx context.Context) (err error) {
		out.Complaints, err = uc.complaints.ListByCustomer(ctx, id)
		return err
	})
	g.Go("tasks", func(ctx context.Context) (err error) {
		out.Tasks, err = uc.tasks.ListByCustomer(ctx, id)
		return err
	})
	errs, err := g.Wait()
	if err != nil {
		return nil, err
	}
	out.Errors = errs
	return out, nil
}
