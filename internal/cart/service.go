package cart

import (
	"context"

	"shopora-be/internal/product"

	"github.com/google/uuid"
)

// Service defines the business logic for carts.
type Service interface {
	Add(ctx context.Context, userID uint, productID uuid.UUID, quantity int) (*CartItem, error)
	Get(ctx context.Context, userID uint) ([]Line, error)
	UpdateQuantity(ctx context.Context, userID uint, productID uuid.UUID, quantity int) error
	Remove(ctx context.Context, userID uint, productID uuid.UUID) error
	Clear(ctx context.Context, userID uint) error
}

type service struct {
	repo        Repository
	productRepo product.Repository
}

func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

// Add puts a product into the user's cart. A repeated add for the same
// product increments the existing line instead of appending a duplicate.
func (s *service) Add(ctx context.Context, userID uint, productID uuid.UUID, quantity int) (*CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	// 1. The referenced product must exist.
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		if err == product.ErrProductNotFound {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	// 2. Existing line? Increment instead of duplicating.
	item, err := s.repo.GetItem(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	if item == nil {
		return s.repo.CreateItem(ctx, userID, productID, quantity)
	}

	finalQty := item.Quantity + quantity
	if err := s.repo.UpdateQuantity(ctx, userID, productID, finalQty); err != nil {
		return nil, err
	}
	item.Quantity = finalQty

	return item, nil
}

// Get returns the cart joined with live product data, not a snapshot.
func (s *service) Get(ctx context.Context, userID uint) ([]Line, error) {
	return s.repo.GetLines(ctx, userID)
}

func (s *service) UpdateQuantity(ctx context.Context, userID uint, productID uuid.UUID, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	return s.repo.UpdateQuantity(ctx, userID, productID, quantity)
}

func (s *service) Remove(ctx context.Context, userID uint, productID uuid.UUID) error {
	return s.repo.Remove(ctx, userID, productID)
}

func (s *service) Clear(ctx context.Context, userID uint) error {
	return s.repo.Clear(ctx, userID)
}
