package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockCRUDRepository is a mock implementation of repository.CRUDRepository[T].
type MockCRUDRepository[T any] struct {
	mock.Mock
}

func (m *MockCRUDRepository[T]) List(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockCRUDRepository[T]) Create(ctx context.Context, payload any) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func (m *MockCRUDRepository[T]) Update(ctx context.Context, id string, payload any) error {
	args := m.Called(ctx, id, payload)
	return args.Error(0)
}

func (m *MockCRUDRepository[T]) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
