package address

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"shopora-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrAddressNotFound = errors.New("address not found")

const addressColumns = "id, user_id, address, city, pincode, phone, notes, created_at, updated_at"

type Repository interface {
	GetByUserID(ctx context.Context, userID uint) ([]Address, error)
	Create(ctx context.Context, userID uint, input CreateAddressInput) (*Address, error)
	Update(ctx context.Context, userID uint, addressID uuid.UUID, input UpdateAddressInput) (*Address, error)
	Delete(ctx context.Context, userID uint, addressID uuid.UUID) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func scanAddress(row interface{ Scan(dest ...any) error }) (*Address, error) {
	var a Address
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.Address,
		&a.City,
		&a.Pincode,
		&a.Phone,
		&a.Notes,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) GetByUserID(ctx context.Context, userID uint) ([]Address, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+addressColumns+" FROM addresses WHERE user_id = $1 ORDER BY created_at",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	addresses := make([]Address, 0)
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, *a)
	}
	return addresses, rows.Err()
}

func (r *repository) Create(ctx context.Context, userID uint, input CreateAddressInput) (*Address, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.Uint("user_id", userID),
	)

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO addresses (id, user_id, address, city, pincode, phone, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+addressColumns,
		uuid.New(), userID, input.Address, input.City, input.Pincode, input.Phone, input.Notes,
	)

	a, err := scanAddress(row)
	if err != nil {
		log.Error("failed to insert address", zap.Error(err))
		return nil, err
	}

	return a, nil
}

// Update is scoped to the owning user; a row belonging to someone else is
// indistinguishable from a missing one.
func (r *repository) Update(ctx context.Context, userID uint, addressID uuid.UUID, input UpdateAddressInput) (*Address, error) {
	set := []string{}
	args := []any{}

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if input.Address != nil {
		add("address", *input.Address)
	}
	if input.City != nil {
		add("city", *input.City)
	}
	if input.Pincode != nil {
		add("pincode", *input.Pincode)
	}
	if input.Phone != nil {
		add("phone", *input.Phone)
	}
	if input.Notes != nil {
		add("notes", *input.Notes)
	}

	if len(set) == 0 {
		return nil, ErrAddressNotFound
	}

	args = append(args, addressID, userID)
	query := fmt.Sprintf(
		"UPDATE addresses SET %s, updated_at = NOW() WHERE id = $%d AND user_id = $%d RETURNING %s",
		strings.Join(set, ", "), len(args)-1, len(args), addressColumns,
	)

	a, err := scanAddress(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAddressNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *repository) Delete(ctx context.Context, userID uint, addressID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM addresses WHERE id = $1 AND user_id = $2",
		addressID, userID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrAddressNotFound
	}

	return nil
}
