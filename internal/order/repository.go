package order

import (
	"context"
	"database/sql"

	"shopora-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*Order, error)
	ListByUser(ctx context.Context, userID uint) ([]Order, error)
	ListAll(ctx context.Context) ([]Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status OrderStatus) error
	MarkPaid(ctx context.Context, id uuid.UUID, status OrderStatus, paymentID, payerID string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderColumns = `id, user_id, order_status, payment_method, payment_status,
	payment_id, payer_id, total_amount,
	address_id, address, city, pincode, phone, notes,
	order_date, order_update_at`

// Create inserts the order and its item snapshot in one transaction.
func (r *repository) Create(ctx context.Context, o *Order) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("order_id", o.ID.String()),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (
			id, user_id, order_status, payment_method, payment_status,
			payment_id, payer_id, total_amount,
			address_id, address, city, pincode, phone, notes,
			order_date, order_update_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
	`,
		o.ID,
		o.UserID,
		o.OrderStatus,
		o.PaymentMethod,
		o.PaymentStatus,
		o.PaymentID,
		o.PayerID,
		o.TotalAmount,
		o.AddressInfo.AddressID,
		o.AddressInfo.Address,
		o.AddressInfo.City,
		o.AddressInfo.Pincode,
		o.AddressInfo.Phone,
		o.AddressInfo.Notes,
		o.OrderDate,
		o.OrderUpdateAt,
	)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return err
	}

	for _, item := range o.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, title, image, price, quantity)
			VALUES ($1,$2,$3,$4,$5,$6)
		`,
			o.ID,
			item.ProductID,
			item.Title,
			item.Image,
			item.Price,
			item.Quantity,
		)
		if err != nil {
			log.Error("failed to insert order item", zap.Error(err))
			return err
		}
	}

	return tx.Commit()
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	var o Order
	err := r.db.QueryRowContext(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE id = $1", id,
	).Scan(
		&o.ID,
		&o.UserID,
		&o.OrderStatus,
		&o.PaymentMethod,
		&o.PaymentStatus,
		&o.PaymentID,
		&o.PayerID,
		&o.TotalAmount,
		&o.AddressInfo.AddressID,
		&o.AddressInfo.Address,
		&o.AddressInfo.City,
		&o.AddressInfo.Pincode,
		&o.AddressInfo.Phone,
		&o.AddressInfo.Notes,
		&o.OrderDate,
		&o.OrderUpdateAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	items, err := r.itemsFor(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items

	return &o, nil
}

func (r *repository) itemsFor(ctx context.Context, orderID uuid.UUID) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT product_id, title, image, price, quantity
		FROM order_items
		WHERE order_id = $1
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Item, 0)
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ProductID, &it.Title, &it.Image, &it.Price, &it.Quantity); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *repository) list(ctx context.Context, query string, args ...interface{}) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID,
			&o.UserID,
			&o.OrderStatus,
			&o.PaymentMethod,
			&o.PaymentStatus,
			&o.PaymentID,
			&o.PayerID,
			&o.TotalAmount,
			&o.AddressInfo.AddressID,
			&o.AddressInfo.Address,
			&o.AddressInfo.City,
			&o.AddressInfo.Pincode,
			&o.AddressInfo.Phone,
			&o.AddressInfo.Notes,
			&o.OrderDate,
			&o.OrderUpdateAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// List views carry the snapshot lines too; the admin table and the
	// shopper's history both render them.
	for i := range orders {
		items, err := r.itemsFor(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

func (r *repository) ListByUser(ctx context.Context, userID uint) ([]Order, error) {
	return r.list(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE user_id = $1 ORDER BY order_date DESC",
		userID,
	)
}

func (r *repository) ListAll(ctx context.Context) ([]Order, error) {
	return r.list(ctx,
		"SELECT "+orderColumns+" FROM orders ORDER BY order_date DESC")
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status OrderStatus) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET order_status = $1, order_update_at = NOW()
		WHERE id = $2
	`, status, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *repository) MarkPaid(ctx context.Context, id uuid.UUID, status OrderStatus, paymentID, payerID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET order_status = $1, payment_status = $2,
		    payment_id = $3, payer_id = $4, order_update_at = NOW()
		WHERE id = $5
	`, status, PaymentPaid, paymentID, payerID, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
