package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
	"github.com/jhoicas/isp-backoffice/internal/domain/repository"
)

// MockInvoiceRepository is a mock implementation of repository.InvoiceRepository.
type MockInvoiceRepository struct {
	MockCRUDRepository[entity.Invoice]
}

func (m *MockInvoiceRepository) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListByCustomer(ctx context.Context, customerID string) ([]entity.Invoice, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Invoice), args.Error(1)
}

// MockPaymentRepository is a mock implementation of repository.PaymentRepository.
type MockPaymentRepository struct {
	MockCRUDRepository[entity.Payment]
}

func (m *MockPaymentRepository) ListByCustomer(ctx context.Context, customerID string) ([]entity.Payment, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Verify(ctx context.Context, id string, in repository.PaymentVerification) error {
	args := m.Called(ctx, id, in)
	return args.Error(0)
}

func (m *MockPaymentRepository) ProofImage(ctx context.Context, id string) (*repository.Blob, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Blob), args.Error(1)
}

// MockPublicInvoiceRepository is a mock implementation of repository.PublicInvoiceRepository.
type MockPublicInvoiceRepository struct {
	mock.Mock
}

func (m *MockPublicInvoiceRepository) GetInvoice(ctx context.Context, id string) (*entity.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Invoice), args.Error(1)
}

func (m *MockPublicInvoiceRepository) BankAccounts(ctx context.Context) ([]entity.BankAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.BankAccount), args.Error(1)
}

func (m *MockPublicInvoiceRepository) SubmitPayment(ctx context.Context, form *repository.MultipartForm) error {
	args := m.Called(ctx, form)
	return args.Error(0)
}
