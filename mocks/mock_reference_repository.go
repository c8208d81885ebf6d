package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
)

// MockReferenceRepository is a mock implementation of repository.ReferenceRepository.
type MockReferenceRepository struct {
	mock.Mock
}

func (m *MockReferenceRepository) Areas(ctx context.Context) ([]entity.Area, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Area), args.Error(1)
}

func (m *MockReferenceRepository) ServicePlans(ctx context.Context) ([]entity.ServicePlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ServicePlan), args.Error(1)
}

func (m *MockReferenceRepository) Employees(ctx context.Context) ([]entity.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Employee), args.Error(1)
}

func (m *MockReferenceRepository) BankAccounts(ctx context.Context, activeOnly bool) ([]entity.BankAccount, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.BankAccount), args.Error(1)
}

func (m *MockReferenceRepository) ISPs(ctx context.Context) ([]entity.ISP, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ISP), args.Error(1)
}

func (m *MockReferenceRepository) Customers(ctx context.Context) ([]entity.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Customer), args.Error(1)
}

func (m *MockReferenceRepository) Invoices(ctx context.Context) ([]entity.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Invoice), args.Error(1)
}
