package feature

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

var ErrEmptyImage = errors.New("image url is required")

type Repository interface {
	Create(ctx context.Context, imageURL string) (*Image, error)
	List(ctx context.Context) ([]Image, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, imageURL string) (*Image, error) {
	var img Image
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO feature_images (id, image)
		VALUES ($1, $2)
		RETURNING id, image, created_at
	`, uuid.New(), imageURL).Scan(&img.ID, &img.Image, &img.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *repository) List(ctx context.Context) ([]Image, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, image, created_at FROM feature_images ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := make([]Image, 0)
	for rows.Next() {
		var img Image
		if err := rows.Scan(&img.ID, &img.Image, &img.CreatedAt); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}
