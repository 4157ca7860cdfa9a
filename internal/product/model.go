package product

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID            uuid.UUID `json:"id"`
	Image         string    `json:"image"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Brand         string    `json:"brand"`
	Price         float64   `json:"price"`
	SalePrice     float64   `json:"salePrice"`
	TotalStock    int       `json:"totalStock"`
	AverageReview float64   `json:"averageReview"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// EffectivePrice is the amount a buyer actually pays: the sale price when
// one is set, the list price otherwise.
func (p Product) EffectivePrice() float64 {
	if p.SalePrice > 0 {
		return p.SalePrice
	}
	return p.Price
}

type CreateProductInput struct {
	Image       string  `json:"image"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Brand       string  `json:"brand"`
	Price       float64 `json:"price"`
	SalePrice   float64 `json:"salePrice"`
	TotalStock  int     `json:"totalStock"`
}

// UpdateProductInput carries partial edits; nil fields are left untouched.
type UpdateProductInput struct {
	Image       *string  `json:"image"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Brand       *string  `json:"brand"`
	Price       *float64 `json:"price"`
	SalePrice   *float64 `json:"salePrice"`
	TotalStock  *int     `json:"totalStock"`
}

// Filter restricts a listing to the given category/brand sets; an empty
// slice means no restriction on that attribute.
type Filter struct {
	Categories []string
	Brands     []string
}

type SortOption string

const (
	SortPriceLowToHigh SortOption = "price-lowtohigh"
	SortPriceHighToLow SortOption = "price-hightolow"
	SortTitleAToZ      SortOption = "title-atoz"
	SortTitleZToA      SortOption = "title-ztoa"
)
