package user

import (
	"context"
	"errors"
	"testing"

	"shopora-be/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, userName, email, password string, role Role) (User, error) {
	args := m.Called(ctx, userName, email, password, role)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id uint) (User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(User), args.Error(1)
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()
	tokens := auth.NewManager("test-secret")

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, tokens)

		repo.On("Create", ctx, "john", "john@example.com", mock.AnythingOfType("string"), RoleUser).
			Return(User{ID: 1, UserName: "john", Email: "john@example.com", Role: RoleUser}, nil)

		u, err := svc.Register(ctx, "john", "John@Example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, uint(1), u.ID)
		repo.AssertExpectations(t)

		// The stored password must be a hash, never the plaintext.
		stored := repo.Calls[0].Arguments.String(3)
		assert.NotEqual(t, "secret", stored)
		assert.True(t, auth.CheckPasswordHash("secret", stored))
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, tokens)

		repo.On("Create", ctx, "john", "john@example.com", mock.AnythingOfType("string"), RoleUser).
			Return(User{}, ErrEmailExists)

		_, err := svc.Register(ctx, "john", "john@example.com", "secret")
		assert.ErrorIs(t, err, ErrEmailExists)
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	tokens := auth.NewManager("test-secret")

	hashed, err := auth.HashPassword("secret")
	require.NoError(t, err)

	stored := User{ID: 1, UserName: "john", Email: "john@example.com", Password: hashed, Role: RoleUser}

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, tokens)

		repo.On("FindByEmail", ctx, "john@example.com").Return(stored, nil)

		token, u, err := svc.Login(ctx, "john@example.com", "secret")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, uint(1), u.ID)

		claims, err := tokens.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, uint(1), claims.UserID)
		assert.Equal(t, "user", claims.Role)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, tokens)

		repo.On("FindByEmail", ctx, "nobody@example.com").Return(User{}, ErrUserNotFound)

		_, _, err := svc.Login(ctx, "nobody@example.com", "secret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, tokens)

		repo.On("FindByEmail", ctx, "john@example.com").Return(stored, nil)

		_, _, err := svc.Login(ctx, "john@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo, auth.NewManager("test-secret"))

	repo.On("FindByID", ctx, uint(3)).Return(User{}, errors.New("db down"))

	_, err := svc.GetByID(ctx, 3)
	assert.Error(t, err)
}
