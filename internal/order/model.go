package order

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

// Admin-editable; the update endpoint accepts any string, these are the
// values the storefront itself writes or renders.
const (
	StatusPending    OrderStatus = "pending"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusInShipping OrderStatus = "inShipping"
	StatusDelivered  OrderStatus = "delivered"
	StatusRejected   OrderStatus = "rejected"
)

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

// Item is a line frozen at order-creation time. Later catalog edits do
// not touch it.
type Item struct {
	ProductID uuid.UUID `json:"productId"`
	Title     string    `json:"title"`
	Image     string    `json:"image"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
}

// AddressInfo is the shipping snapshot stored on the order.
type AddressInfo struct {
	AddressID uuid.UUID `json:"addressId"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Pincode   string    `json:"pincode"`
	Phone     string    `json:"phone"`
	Notes     string    `json:"notes"`
}

type Order struct {
	ID            uuid.UUID     `json:"id"`
	UserID        uint          `json:"userId"`
	Items         []Item        `json:"cartItems"`
	AddressInfo   AddressInfo   `json:"addressInfo"`
	OrderStatus   OrderStatus   `json:"orderStatus"`
	PaymentMethod string        `json:"paymentMethod"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	PaymentID     string        `json:"paymentId,omitempty"`
	PayerID       string        `json:"payerId,omitempty"`
	TotalAmount   float64       `json:"totalAmount"`
	OrderDate     time.Time     `json:"orderDate"`
	OrderUpdateAt time.Time     `json:"orderUpdateDate"`
}

type CreateOrderInput struct {
	UserID        uint
	Items         []Item
	AddressInfo   AddressInfo
	PaymentMethod string
}

// CreateOrderResult is returned to the client so it can redirect the
// buyer to the gateway's approval page.
type CreateOrderResult struct {
	OrderID     uuid.UUID `json:"orderId"`
	ApprovalURL string    `json:"approvalURL"`
}
