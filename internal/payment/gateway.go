package payment

import "context"

// Item is a single purchasable line forwarded to the gateway.
type Item struct {
	Name     string
	SKU      string
	Price    float64
	Quantity int
}

// CreatePaymentResponse carries what the caller needs to redirect the
// buyer and to correlate the capture step later.
type CreatePaymentResponse struct {
	PaymentID   string
	ApprovalURL string
}

// CaptureResult is the gateway's verdict after executing an approved
// payment.
type CaptureResult struct {
	PaymentID string
	State     string
}

// Gateway abstracts the third-party payment provider so services and
// tests never talk HTTP directly.
type Gateway interface {
	CreatePayment(ctx context.Context, items []Item, total float64) (*CreatePaymentResponse, error)
	ExecutePayment(ctx context.Context, paymentID, payerID string) (*CaptureResult, error)
}
