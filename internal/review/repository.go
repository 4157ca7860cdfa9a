package review

import (
	"context"
	"database/sql"

	"shopora-be/internal/logger"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]Review, error)
	ExistsForUser(ctx context.Context, productID uuid.UUID, userID uint) (bool, error)
	HasConfirmedPurchase(ctx context.Context, userID uint, productID uuid.UUID) (bool, error)
	Create(ctx context.Context, input AddReviewInput) (*Review, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]Review, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, product_id, user_id, user_name, review_message, review_value, created_at
		FROM reviews
		WHERE product_id = $1
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]Review, 0)
	for rows.Next() {
		var rv Review
		if err := rows.Scan(
			&rv.ID,
			&rv.ProductID,
			&rv.UserID,
			&rv.UserName,
			&rv.ReviewMessage,
			&rv.ReviewValue,
			&rv.CreatedAt,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

func (r *repository) ExistsForUser(ctx context.Context, productID uuid.UUID, userID uint) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM reviews WHERE product_id = $1 AND user_id = $2)",
		productID, userID,
	).Scan(&exists)
	return exists, err
}

// HasConfirmedPurchase reports whether the user has a confirmed or
// delivered order whose snapshot contains the product.
func (r *repository) HasConfirmedPurchase(ctx context.Context, userID uint, productID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1
			FROM orders o
			JOIN order_items oi ON oi.order_id = o.id
			WHERE o.user_id = $1
			  AND oi.product_id = $2
			  AND o.order_status IN ('confirmed', 'delivered')
		)
	`, userID, productID).Scan(&exists)
	return exists, err
}

func (r *repository) Create(ctx context.Context, input AddReviewInput) (*Review, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("product_id", input.ProductID.String()),
		zap.Uint("user_id", input.UserID),
	)

	var rv Review
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO reviews (id, product_id, user_id, user_name, review_message, review_value)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, product_id, user_id, user_name, review_message, review_value, created_at
	`,
		uuid.New(),
		input.ProductID,
		input.UserID,
		input.UserName,
		input.ReviewMessage,
		input.ReviewValue,
	).Scan(
		&rv.ID,
		&rv.ProductID,
		&rv.UserID,
		&rv.UserName,
		&rv.ReviewMessage,
		&rv.ReviewValue,
		&rv.CreatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrAlreadyReviewed
		}
		log.Error("failed to insert review", zap.Error(err))
		return nil, err
	}

	return &rv, nil
}
