package feature

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, imageURL string) (*Image, error) {
	args := m.Called(ctx, imageURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Image), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) ([]Image, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Image), args.Error(1)
}

func TestService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", ctx, "https://img.example/banner.png").
			Return(&Image{ID: uuid.New(), Image: "https://img.example/banner.png"}, nil)

		img, err := svc.Add(ctx, "https://img.example/banner.png")
		assert.NoError(t, err)
		assert.NotNil(t, img)
	})

	t.Run("EmptyURL", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.Add(ctx, "   ")
		assert.ErrorIs(t, err, ErrEmptyImage)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
