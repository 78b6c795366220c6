package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/you/shopsvc/domain"
)

// CheckoutServiceImpl implements domain.CheckoutService. The workflow order
// is fixed: snapshot and persist the order, await the charge, transition the
// payment status, and only then clear the cart.
type CheckoutServiceImpl struct {
	cartSvc    domain.CartService
	orderRepo  domain.OrderRepository
	paymentSvc domain.PaymentService
	currency   string
	logger     *slog.Logger
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	cartSvc domain.CartService,
	orderRepo domain.OrderRepository,
	paymentSvc domain.PaymentService,
	currency string,
	logger *slog.Logger,
) domain.CheckoutService {
	return &CheckoutServiceImpl{
		cartSvc:    cartSvc,
		orderRepo:  orderRepo,
		paymentSvc: paymentSvc,
		currency:   currency,
		logger:     logger,
	}
}

// PlaceOrder implements domain.CheckoutService
func (s *CheckoutServiceImpl) PlaceOrder(ctx context.Context, user *domain.User, paymentToken string) (*domain.Order, error) {
	resolved, err := s.cartSvc.ResolveCart(ctx, user)
	if err != nil {
		return nil, err
	}
	if resolved.IsEmpty() {
		return nil, domain.ErrCartEmpty
	}

	// The order is persisted before any money moves; it is the audit record
	// for the charge whatever happens next.
	order := domain.NewOrder(user, resolved)
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	total := resolved.Total()
	result, err := s.paymentSvc.Charge(ctx, domain.ChargeRequest{
		AmountMinorUnits: int64(math.Round(total * 100)),
		Currency:         s.currency,
		Description:      "Order " + order.ID.Hex(),
		SourceToken:      paymentToken,
		OrderID:          order.ID.Hex(),
	})
	if err != nil {
		if markErr := s.orderRepo.UpdatePaymentStatus(ctx, order.ID.Hex(), domain.PaymentFailed, ""); markErr != nil {
			s.logger.Error("failed to mark order unpaid", "order_id", order.ID.Hex(), "error", markErr)
		}
		s.logger.Warn("payment failed", "order_id", order.ID.Hex(), "total", total, "error", err)
		return nil, err
	}

	if err := s.orderRepo.UpdatePaymentStatus(ctx, order.ID.Hex(), domain.PaymentPaid, result.Ref); err != nil {
		// The charge went through; the order stays pending with the charge
		// ref reconcilable via its metadata. The cart is not cleared.
		s.logger.Error("charge captured but order not marked paid", "order_id", order.ID.Hex(), "charge_ref", result.Ref, "error", err)
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	order.PaymentStatus = domain.PaymentPaid
	order.PaymentRef = result.Ref

	if err := s.cartSvc.ClearCart(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	s.logger.Info("order placed", "order_id", order.ID.Hex(), "user_id", user.ID.Hex(), "total", total)
	return order, nil
}
