package auth_test

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockPasswordStorage is a mock implementation of auth.PasswordStorage.
type MockPasswordStorage struct {
	mock.Mock
}

func (m *MockPasswordStorage) CreateCredential(ctx context.Context, username string, hash []byte) error {
	args := m.Called(ctx, username, hash)
	return args.Error(0)
}

func (m *MockPasswordStorage) GetPasswordHash(ctx context.Context, username string) ([]byte, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
