package review

import (
	"context"

	"shopora-be/internal/logger"
	"shopora-be/internal/product"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines the business logic for product reviews.
type Service interface {
	Add(ctx context.Context, input AddReviewInput) (*Review, error)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]Review, error)
}

type service struct {
	repo        Repository
	productRepo product.Repository
}

func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

func (s *service) Add(ctx context.Context, input AddReviewInput) (*Review, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "Review"),
		zap.String("method", "Add"),
		zap.String("product_id", input.ProductID.String()),
		zap.Uint("user_id", input.UserID),
	)

	if input.ReviewValue < 1 || input.ReviewValue > 5 {
		return nil, ErrInvalidReviewValue
	}

	// 1. Only verified buyers may review.
	purchased, err := s.repo.HasConfirmedPurchase(ctx, input.UserID, input.ProductID)
	if err != nil {
		return nil, err
	}
	if !purchased {
		log.Warn("review rejected: no confirmed purchase")
		return nil, ErrPurchaseRequired
	}

	// 2. One review per (product, user).
	exists, err := s.repo.ExistsForUser(ctx, input.ProductID, input.UserID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyReviewed
	}

	rv, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	// 3. Refresh the product's stored aggregate from scratch.
	if err := s.productRepo.RecomputeAverageReview(ctx, input.ProductID); err != nil {
		log.Error("failed to recompute average review", zap.Error(err))
		return nil, err
	}

	log.Info("review added", zap.String("review_id", rv.ID.String()))

	return rv, nil
}

func (s *service) ListByProduct(ctx context.Context, productID uuid.UUID) ([]Review, error) {
	return s.repo.ListByProduct(ctx, productID)
}
