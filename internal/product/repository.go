package product

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"shopora-be/internal/logger"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

const productColumns = "id, image, title, description, category, brand, price, sale_price, total_stock, average_review, created_at, updated_at"

type Repository interface {
	List(ctx context.Context, filter Filter, sort SortOption) ([]Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Product, error)
	Create(ctx context.Context, input CreateProductInput) (*Product, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, keyword string) ([]Product, error)
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error
	RecomputeAverageReview(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func scanProduct(row interface{ Scan(dest ...any) error }) (*Product, error) {
	var p Product
	err := row.Scan(
		&p.ID,
		&p.Image,
		&p.Title,
		&p.Description,
		&p.Category,
		&p.Brand,
		&p.Price,
		&p.SalePrice,
		&p.TotalStock,
		&p.AverageReview,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) List(ctx context.Context, filter Filter, sort SortOption) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "List"),
	)

	start := time.Now()

	// ---------- where ----------
	where := []string{}
	args := []any{}

	if len(filter.Categories) > 0 {
		args = append(args, pq.Array(filter.Categories))
		where = append(where, fmt.Sprintf("category = ANY($%d)", len(args)))
	}
	if len(filter.Brands) > 0 {
		args = append(args, pq.Array(filter.Brands))
		where = append(where, fmt.Sprintf("brand = ANY($%d)", len(args)))
	}

	// ---------- sort ----------
	// Secondary key keeps ordering stable under price/title ties.
	orderBy := "price ASC, id ASC"
	switch sort {
	case SortPriceHighToLow:
		orderBy = "price DESC, id ASC"
	case SortTitleAToZ:
		orderBy = "title ASC, id ASC"
	case SortTitleZToA:
		orderBy = "title DESC, id ASC"
	}

	query := "SELECT " + productColumns + " FROM products"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY " + orderBy

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return nil, err
	}
	defer rows.Close()

	products := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.Debug("query success",
		zap.Int("rows", len(products)),
		zap.Duration("duration", time.Since(start)),
	)

	return products, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+productColumns+" FROM products WHERE id = $1", id)

	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repository) Create(ctx context.Context, input CreateProductInput) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("title", input.Title),
	)

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO products (
			id, image, title, description, category, brand,
			price, sale_price, total_stock
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+productColumns,
		uuid.New(),
		input.Image,
		input.Title,
		input.Description,
		input.Category,
		input.Brand,
		input.Price,
		input.SalePrice,
		input.TotalStock,
	)

	p, err := scanProduct(row)
	if err != nil {
		log.Error("failed to insert product", zap.Error(err))
		return nil, err
	}

	log.Info("product created", zap.String("product_id", p.ID.String()))
	return p, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*Product, error) {
	set := []string{}
	args := []any{}

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if input.Image != nil {
		add("image", *input.Image)
	}
	if input.Title != nil {
		add("title", *input.Title)
	}
	if input.Description != nil {
		add("description", *input.Description)
	}
	if input.Category != nil {
		add("category", *input.Category)
	}
	if input.Brand != nil {
		add("brand", *input.Brand)
	}
	if input.Price != nil {
		add("price", *input.Price)
	}
	if input.SalePrice != nil {
		add("sale_price", *input.SalePrice)
	}
	if input.TotalStock != nil {
		add("total_stock", *input.TotalStock)
	}

	if len(set) == 0 {
		return nil, ErrNoFieldsToSet
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE products SET %s, updated_at = NOW() WHERE id = $%d RETURNING %s",
		strings.Join(set, ", "), len(args), productColumns,
	)

	row := r.db.QueryRowContext(ctx, query, args...)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

func (r *repository) Search(ctx context.Context, keyword string) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Search"),
		zap.String("keyword", keyword),
	)

	pattern := "%" + keyword + "%"
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE title ILIKE $1
		   OR description ILIKE $1
		   OR category ILIKE $1
		   OR brand ILIKE $1
		   OR price::text ILIKE $1
		ORDER BY id`,
		pattern,
	)
	if err != nil {
		log.Error("search query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	products := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *repository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET total_stock = total_stock - $1, updated_at = NOW()
		WHERE id = $2
	`, quantity, id)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// RecomputeAverageReview recalculates the mean over every review of the
// product rather than adjusting incrementally, so the stored aggregate
// cannot drift.
func (r *repository) RecomputeAverageReview(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET average_review = COALESCE(
			(SELECT AVG(review_value) FROM reviews WHERE product_id = $1), 0
		)
		WHERE id = $1
	`, id)
	return err
}
