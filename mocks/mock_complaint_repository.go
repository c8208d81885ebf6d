package mocks

import (
	"context"

	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
	"github.com/jhoicas/isp-backoffice/internal/domain/repository"
)

// MockComplaintRepository is a mock implementation of repository.ComplaintRepository.
type MockComplaintRepository struct {
	MockCRUDRepository[entity.Complaint]
}

func (m *MockComplaintRepository) ListByCustomer(ctx context.Context, customerID string) ([]entity.Complaint, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) UpdateStatus(ctx context.Context, id string, in repository.ComplaintStatusUpdate) error {
	args := m.Called(ctx, id, in)
	return args.Error(0)
}
