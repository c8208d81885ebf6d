package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/isp-backoffice/internal/domain/repository"
)

// MockAuthRepository is a mock implementation of repository.AuthRepository.
type MockAuthRepository struct {
	mock.Mock
}

func (m *MockAuthRepository) Login(ctx context.Context, username, password string) (*repository.LoginResult, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.LoginResult), args.Error(1)
}

func (m *MockAuthRepository) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
