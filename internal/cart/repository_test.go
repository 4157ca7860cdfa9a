package cart

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

func TestRepository_GetItem(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	productID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"user_id", "product_id", "quantity", "created_at", "updated_at"}).
			AddRow(1, productID, 2, time.Now(), time.Now())

		mock.ExpectQuery(`(?s)SELECT .* FROM cart_items\s+WHERE user_id = \$1 AND product_id = \$2`).
			WithArgs(uint(1), productID).
			WillReturnRows(rows)

		item, err := repo.GetItem(ctx, 1, productID)
		assert.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, 2, item.Quantity)
	})

	t.Run("NoRowIsNotAnError", func(t *testing.T) {
		mock.ExpectQuery(`(?s)SELECT .* FROM cart_items`).
			WithArgs(uint(1), productID).
			WillReturnError(sql.ErrNoRows)

		item, err := repo.GetItem(ctx, 1, productID)
		assert.NoError(t, err)
		assert.Nil(t, item)
	})
}

func TestRepository_CreateItem(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	productID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"user_id", "product_id", "quantity", "created_at", "updated_at"}).
			AddRow(1, productID, 3, time.Now(), time.Now())

		mock.ExpectQuery(`INSERT INTO cart_items`).
			WithArgs(uint(1), productID, 3).
			WillReturnRows(rows)

		item, err := repo.CreateItem(ctx, 1, productID, 3)
		assert.NoError(t, err)
		assert.Equal(t, 3, item.Quantity)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO cart_items`).
			WillReturnError(errors.New("insert failed"))

		item, err := repo.CreateItem(ctx, 1, productID, 3)
		assert.Error(t, err)
		assert.Nil(t, item)
	})
}

func TestRepository_UpdateQuantity(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	productID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE cart_items\s+SET quantity = \$1`).
			WithArgs(5, uint(1), productID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateQuantity(ctx, 1, productID, 5))
	})

	t.Run("MissingLine", func(t *testing.T) {
		mock.ExpectExec(`UPDATE cart_items\s+SET quantity = \$1`).
			WithArgs(5, uint(1), productID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdateQuantity(ctx, 1, productID, 5), ErrCartItemNotFound)
	})
}

func TestRepository_Remove(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	productID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM cart_items\s+WHERE user_id = \$1 AND product_id = \$2`).
			WithArgs(uint(1), productID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Remove(ctx, 1, productID))
	})

	t.Run("MissingLine", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM cart_items`).
			WithArgs(uint(1), productID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Remove(ctx, 1, productID), ErrCartItemNotFound)
	})
}

func TestRepository_Clear(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("ClearsEvenWhenEmpty", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM cart_items WHERE user_id = \$1`).
			WithArgs(uint(1)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.Clear(context.Background(), 1))
	})
}

func TestRepository_GetLines(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		productID := uuid.New()
		rows := sqlmock.NewRows([]string{"product_id", "image", "title", "price", "sale_price", "quantity"}).
			AddRow(productID, "http://img", "Phone", 100.0, 90.0, 2)

		mock.ExpectQuery(`FROM cart_items c\s+JOIN products p ON c.product_id = p.id`).
			WithArgs(uint(1)).
			WillReturnRows(rows)

		lines, err := repo.GetLines(ctx, 1)
		assert.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, "Phone", lines[0].Title)
		assert.Equal(t, 90.0, lines[0].SalePrice)
	})

	t.Run("QueryError", func(t *testing.T) {
		mock.ExpectQuery(`FROM cart_items c`).
			WillReturnError(errors.New("db error"))

		lines, err := repo.GetLines(ctx, 1)
		assert.Error(t, err)
		assert.Nil(t, lines)
	})
}
