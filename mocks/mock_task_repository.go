package mocks

import (
	"context"

	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
	"github.com/jhoicas/isp-backoffice/internal/domain/repository"
)

// MockTaskRepository is a mock implementation of repository.TaskRepository.
type MockTaskRepository struct {
	MockCRUDRepository[entity.Task]
}

func (m *MockTaskRepository) ListByCustomer(ctx context.Context, customerID string) ([]entity.Task, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Task), args.Error(1)
}

func (m *MockTaskRepository) UpdateStatus(ctx context.Context, id string, in repository.TaskStatusUpdate) error {
	args := m.Called(ctx, id, in)
	return args.Error(0)
}

// MockRecoveryTaskRepository is a mock implementation of repository.RecoveryTaskRepository.
type MockRecoveryTaskRepository struct {
	MockCRUDRepository[entity.RecoveryTask]
}

func (m *MockRecoveryTaskRepository) UpdateStatus(ctx context.Context, id string, in repository.TaskStatusUpdate) error {
	args := m.Called(ctx, id, in)
	return args.Error(0)
}
