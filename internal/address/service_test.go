package address

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetByUserID(ctx context.Context, userID uint) ([]Address, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Address), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, userID uint, input CreateAddressInput) (*Address, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Address), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, userID uint, addressID uuid.UUID, input UpdateAddressInput) (*Address, error) {
	args := m.Called(ctx, userID, addressID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Address), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, userID uint, addressID uuid.UUID) error {
	args := m.Called(ctx, userID, addressID)
	return args.Error(0)
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("GetByUserID", ctx, uint(1)).Return([]Address{{City: "Springfield"}}, nil)

	res, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, res, 1)
}

func TestService_Create_Error(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("Create", ctx, uint(1), mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.Create(ctx, 1, CreateAddressInput{Address: "x"})
	assert.Error(t, err)
}

func TestService_Delete_Scoped(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo)
	id := uuid.New()

	repo.On("Delete", ctx, uint(2), id).Return(ErrAddressNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, 2, id), ErrAddressNotFound)
}
