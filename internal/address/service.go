package address

import (
	"context"

	"shopora-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines ownership-scoped address book operations.
type Service interface {
	List(ctx context.Context, userID uint) ([]Address, error)
	Create(ctx context.Context, userID uint, input CreateAddressInput) (*Address, error)
	Update(ctx context.Context, userID uint, addressID uuid.UUID, input UpdateAddressInput) (*Address, error)
	Delete(ctx context.Context, userID uint, addressID uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, userID uint) ([]Address, error) {
	return s.repo.GetByUserID(ctx, userID)
}

func (s *service) Create(ctx context.Context, userID uint, input CreateAddressInput) (*Address, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "Address"),
		zap.String("method", "Create"),
		zap.Uint("user_id", userID),
	)

	a, err := s.repo.Create(ctx, userID, input)
	if err != nil {
		log.Error("failed to create address", zap.Error(err))
		return nil, err
	}

	return a, nil
}

func (s *service) Update(ctx context.Context, userID uint, addressID uuid.UUID, input UpdateAddressInput) (*Address, error) {
	return s.repo.Update(ctx, userID, addressID, input)
}

func (s *service) Delete(ctx context.Context, userID uint, addressID uuid.UUID) error {
	return s.repo.Delete(ctx, userID, addressID)
}
