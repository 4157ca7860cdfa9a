package order

import (
	"context"
	"fmt"
	"time"

	"shopora-be/internal/cart"
	"shopora-be/internal/logger"
	"shopora-be/internal/payment"
	"shopora-be/internal/product"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service orchestrates order persistence against the payment gateway.
type Service interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*CreateOrderResult, error)
	CapturePayment(ctx context.Context, orderID uuid.UUID, paymentID, payerID string) (*Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Order, error)
	ListByUser(ctx context.Context, userID uint) ([]Order, error)
	ListAll(ctx context.Context) ([]Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status OrderStatus) error
}

type service struct {
	repo        Repository
	productRepo product.Repository
	cartRepo    cart.Repository
	gateway     payment.Gateway
}

func NewService(repo Repository, productRepo product.Repository, cartRepo cart.Repository, gateway payment.Gateway) Service {
	return &service{
		repo:        repo,
		productRepo: productRepo,
		cartRepo:    cartRepo,
		gateway:     gateway,
	}
}

// CreateOrder snapshots the supplied lines, persists the order unpaid,
// then asks the gateway for an approval link. A gateway failure leaves
// the unpaid row in place; there is no automatic cleanup.
func (s *service) CreateOrder(ctx context.Context, input CreateOrderInput) (*CreateOrderResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "Order"),
		zap.String("method", "CreateOrder"),
		zap.Uint("user_id", input.UserID),
	)

	if len(input.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	var total float64
	payItems := make([]payment.Item, 0, len(input.Items))
	for _, it := range input.Items {
		total += it.Price * float64(it.Quantity)
		payItems = append(payItems, payment.Item{
			Name:     it.Title,
			SKU:      it.ProductID.String(),
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}

	now := time.Now()
	o := &Order{
		ID:            uuid.New(),
		UserID:        input.UserID,
		Items:         input.Items,
		AddressInfo:   input.AddressInfo,
		OrderStatus:   StatusPending,
		PaymentMethod: input.PaymentMethod,
		PaymentStatus: PaymentUnpaid,
		TotalAmount:   total,
		OrderDate:     now,
		OrderUpdateAt: now,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		log.Error("failed to persist order", zap.Error(err))
		return nil, err
	}

	res, err := s.gateway.CreatePayment(ctx, payItems, total)
	if err != nil {
		log.Error("gateway rejected payment creation",
			zap.String("order_id", o.ID.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}

	log.Info("order created",
		zap.String("order_id", o.ID.String()),
		zap.Float64("total_amount", total),
	)

	return &CreateOrderResult{
		OrderID:     o.ID,
		ApprovalURL: res.ApprovalURL,
	}, nil
}

// CapturePayment finalizes an approved payment. After the gateway
// confirms, the stock decrement, cart clear, and status flip run as
// three independent writes; a failure partway through is surfaced but
// not compensated.
func (s *service) CapturePayment(ctx context.Context, orderID uuid.UUID, paymentID, payerID string) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "Order"),
		zap.String("method", "CapturePayment"),
		zap.String("order_id", orderID.String()),
	)

	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if _, err := s.gateway.ExecutePayment(ctx, paymentID, payerID); err != nil {
		log.Error("gateway rejected capture", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}

	for _, item := range o.Items {
		if err := s.productRepo.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			log.Error("failed to decrement stock",
				zap.String("product_id", item.ProductID.String()),
				zap.Error(err),
			)
			return nil, err
		}
	}

	if err := s.cartRepo.Clear(ctx, o.UserID); err != nil {
		log.Error("failed to clear cart", zap.Error(err))
		return nil, err
	}

	if err := s.repo.MarkPaid(ctx, o.ID, StatusConfirmed, paymentID, payerID); err != nil {
		log.Error("failed to mark order paid", zap.Error(err))
		return nil, err
	}

	o.OrderStatus = StatusConfirmed
	o.PaymentStatus = PaymentPaid
	o.PaymentID = paymentID
	o.PayerID = payerID

	log.Info("payment captured", zap.String("payment_id", paymentID))

	return o, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByUser(ctx context.Context, userID uint) ([]Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) ListAll(ctx context.Context) ([]Order, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, status OrderStatus) error {
	return s.repo.UpdateStatus(ctx, id, status)
}
