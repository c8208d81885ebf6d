package usecase

import (
	"context"

	"github.com/jhoicas/isp-backoffice/internal/application/dto"
	"github.com/jhoicas/isp-backoffice/internal/application/fanout"
	"github.com/jhoicas/isp-backoffice/internal/domain/repository"
)

// ReferenceUseCase carga las listas auxiliares de los formularios.
type ReferenceUseCase struct {
	repo repository.ReferenceRepository
}

// NewReferenceUseCase construye el caso de uso.
func NewReferenceUseCase(repo repository.ReferenceRepository) *ReferenceUseCase {
	return &ReferenceUseCase{repo: repo}
}

// Load pide en paralelo las listas indicadas. Una lista que falla queda vacía con su
// error en Errors; solo ErrUnauthorized corta la carga.
func (uc *ReferenceUseCase) Load(ctx context.Context, kinds ...dto.RefKind) (*dto.ReferenceLists, error) {
	out := &dto.ReferenceLists{}
	g := fanout.New(ctx)
	for _, k := range kinds {
		switch k {
		case dto.RefAreas:
			g.Go(string(k), func(ctx context.Context) (err error) {
				out.Areas, err = uc.repo.Areas(ctx)
				return err
			})
		case dto.RefServicePlans:
			g.Go(string(k), func(ctx context.Context) (err error) {
				out.ServicePlans, err = uc.repo.ServicePlans(ctx)
				return err
			})
		case dto.RefEmployees:
			g.Go(string(k), func(ctx context.Context) (err error) {
				out.Employees, err = uc.repo.Employees(ctx)
				return err
			})
		case dto.RefBankAccounts:
			g.Go(string(k), func(ctx context.Context) (err error) {
				out.BankAccounts, err = uc.repo.BankAccounts(ctx, true)
				return err
			})
		case dto.RefISPs:
			g.Go(string(k), func(ctx context.Context) (err error) {
				out.ISPs, err = uc.repo.ISPs(ctx)
				return err
			})
		case dto.RefCustomers:
			g.Go(string(k), func(ctx context.Context) (err error) {
				out.Customers, err = uc.repo.Customers(ctx)
				return err
			})
		case dto.RefInvoices:
			g.Go(string(k), func(ctx context.Context) (err error) {
				out.Invoices, err = uc.repo.Invoices(ctx)
				return err
			})
		}
	}
	errs, err := g.Wait()
	if err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		out.Errors = make(map[dto.RefKind]string, len(errs))
		for k, msg := range errs {
			out.Errors[dto.RefKind(k)] = msg
		}
	}
	return out, nil
}
