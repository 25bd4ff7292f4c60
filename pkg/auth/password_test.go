package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/coffeeshops/pkg/auth"
)

func TestPasswordService_Register(t *testing.T) {
	t.Parallel()

	t.Run("stores bcrypt hash", func(t *testing.T) {
		t.Parallel()

		storage := &MockPasswordStorage{}
		var stored []byte
		storage.On("CreateCredential", mock.Anything, "alice", mock.AnythingOfType("[]uint8")).
			Run(func(args mock.Arguments) { stored = args.Get(2).([]byte) }).
			Return(nil).Once()

		svc := auth.NewPasswordService(storage, auth.WithBcryptCost(bcrypt.MinCost))
		require.NoError(t, svc.Register(context.Background(), "alice", "secret"))

		assert.NotEqual(t, "secret", string(stored))
		assert.NoError(t, bcrypt.CompareHashAndPassword(stored, []byte("secret")))
		cost, err := bcrypt.Cost(stored)
		require.NoError(t, err)
		assert.Equal(t, bcrypt.MinCost, cost)
		storage.AssertExpectations(t)
	})

	t.Run("username taken", func(t *testing.T) {
		t.Parallel()

		storage := &MockPasswordStorage{}
		storage.On("CreateCredential", mock.Anything, "alice", mock.Anything).
			Return(errors.Join(errors.New("E11000"), auth.ErrUsernameTaken)).Once()

		svc := auth.NewPasswordService(storage, auth.WithBcryptCost(bcrypt.MinCost))
		err := svc.Register(context.Background(), "alice", "secret")
		assert.ErrorIs(t, err, auth.ErrUsernameTaken)
	})

	t.Run("storage failure is wrapped", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("connection reset")
		storage := &MockPasswordStorage{}
		storage.On("CreateCredential", mock.Anything, "alice", mock.Anything).Return(boom).Once()

		svc := auth.NewPasswordService(storage, auth.WithBcryptCost(bcrypt.MinCost))
		err := svc.Register(context.Background(), "alice", "secret")
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, auth.ErrUsernameTaken)
	})

	t.Run("empty input never reaches storage", func(t *testing.T) {
		t.Parallel()

		storage := &MockPasswordStorage{}
		svc := auth.NewPasswordService(storage)

		assert.ErrorIs(t, svc.Register(context.Background(), "  ", "secret"), auth.ErrUsernameRequired)
		assert.ErrorIs(t, svc.Register(context.Background(), "alice", ""), auth.ErrPasswordRequired)
		storage.AssertNotCalled(t, "CreateCredential", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPasswordService_Authenticate(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
		setup    func(*MockPasswordStorage)
		wantErr  error
	}{
		{
			name:     "valid",
			username: "alice",
			password: "secret",
			setup: func(s *MockPasswordStorage) {
				s.On("GetPasswordHash", mock.Anything, "alice").Return(hash, nil).Once()
			},
		},
		{
			name:     "wrong password",
			username: "alice",
			password: "nope",
			setup: func(s *MockPasswordStorage) {
				s.On("GetPasswordHash", mock.Anything, "alice").Return(hash, nil).Once()
			},
			wantErr: auth.ErrInvalidCredentials,
		},
		{
			name:     "unknown user",
			username: "ghost",
			password: "secret",
			setup: func(s *MockPasswordStorage) {
				s.On("GetPasswordHash", mock.Anything, "ghost").Return(nil, auth.ErrUserNotFound).Once()
			},
			wantErr: auth.ErrInvalidCredentials,
		},
		{
			name:     "empty password",
			username: "alice",
			password: "",
			setup:    func(*MockPasswordStorage) {},
			wantErr:  auth.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			storage := &MockPasswordStorage{}
			tt.setup(storage)

			svc := auth.NewPasswordService(storage)
			err := svc.Authenticate(context.Background(), tt.username, tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			storage.AssertExpectations(t)
		})
	}

	t.Run("storage failure is not masked", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("timeout")
		storage := &MockPasswordStorage{}
		storage.On("GetPasswordHash", mock.Anything, "alice").Return(nil, boom).Once()

		err := auth.NewPasswordService(storage).Authenticate(context.Background(), "alice", "secret")
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}
