package mocks

import (
	"context"

	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
	"github.com/jhoicas/isp-backoffice/internal/domain/repository"
)

// MockCustomerRepository is a mock implementation of repository.CustomerRepository.
type MockCustomerRepository struct {
	MockCRUDRepository[entity.Customer]
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ToggleStatus(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) Document(ctx context.Context, id string, doc repository.CustomerDocument) (*repository.Blob, error) {
	args := m.Called(ctx, id, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Blob), args.Error(1)
}
