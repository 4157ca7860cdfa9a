package address

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addressRows(id uuid.UUID, userID uint) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "address", "city", "pincode", "phone", "notes", "created_at", "updated_at",
	}).AddRow(id, userID, "12 Main St", "Springfield", "12345", "0812", "ring twice", time.Now(), time.Now())
}

func TestRepository_GetByUserID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	userID := uint(1)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM addresses WHERE user_id = \$1`).
			WithArgs(userID).
			WillReturnRows(addressRows(uuid.New(), userID))

		res, err := repo.GetByUserID(context.Background(), userID)
		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, "Springfield", res[0].City)
	})

	t.Run("QueryError", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM addresses`).
			WithArgs(userID).
			WillReturnError(errors.New("db error"))

		res, err := repo.GetByUserID(context.Background(), userID)
		assert.Error(t, err)
		assert.Nil(t, res)
	})
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	input := CreateAddressInput{
		Address: "12 Main St",
		City:    "Springfield",
		Pincode: "12345",
		Phone:   "0812",
		Notes:   "ring twice",
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO addresses`).
			WillReturnRows(addressRows(uuid.New(), 1))

		a, err := repo.Create(context.Background(), 1, input)
		assert.NoError(t, err)
		assert.Equal(t, uint(1), a.UserID)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO addresses`).
			WillReturnError(errors.New("insert failed"))

		a, err := repo.Create(context.Background(), 1, input)
		assert.Error(t, err)
		assert.Nil(t, a)
	})
}

func TestRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		city := "Shelbyville"
		mock.ExpectQuery(`UPDATE addresses SET city = \$1, updated_at = NOW\(\) WHERE id = \$2 AND user_id = \$3`).
			WithArgs(city, id, uint(1)).
			WillReturnRows(addressRows(id, 1))

		a, err := repo.Update(context.Background(), 1, id, UpdateAddressInput{City: &city})
		assert.NoError(t, err)
		assert.Equal(t, id, a.ID)
	})

	t.Run("WrongOwnerLooksLikeNotFound", func(t *testing.T) {
		city := "Shelbyville"
		mock.ExpectQuery(`UPDATE addresses SET`).
			WillReturnError(sql.ErrNoRows)

		a, err := repo.Update(context.Background(), 2, id, UpdateAddressInput{City: &city})
		assert.ErrorIs(t, err, ErrAddressNotFound)
		assert.Nil(t, a)
	})

	t.Run("NoFields", func(t *testing.T) {
		_, err := repo.Update(context.Background(), 1, id, UpdateAddressInput{})
		assert.ErrorIs(t, err, ErrAddressNotFound)
	})
}

func TestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM addresses WHERE id = \$1 AND user_id = \$2`).
			WithArgs(id, uint(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), 1, id))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM addresses`).
			WithArgs(id, uint(2)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), 2, id), ErrAddressNotFound)
	})
}
