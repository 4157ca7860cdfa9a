package cart

import (
	"time"

	"github.com/google/uuid"
)

type CartItem struct {
	UserID    uint      `json:"userId"`
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Line is a cart item joined with live catalog data. Unlike an order
// snapshot, it always reflects the product's current price and title.
type Line struct {
	ProductID uuid.UUID `json:"productId"`
	Image     string    `json:"image"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	SalePrice float64   `json:"salePrice"`
	Quantity  int       `json:"quantity"`
}
