package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"github.com/you/shopsvc/domain"
)

// StripeServiceImpl implements domain.PaymentService
type StripeServiceImpl struct {
	client *client.API
}

// NewStripeService creates a new Stripe payment service
func NewStripeService(apiKey string) domain.PaymentService {
	var api *client.API
	if apiKey != "" {
		api = &client.API{}
		api.Init(apiKey, nil)
	}

	return &StripeServiceImpl{client: api}
}

// Charge implements domain.PaymentService. The order id travels as charge
// metadata so a charge can always be reconciled against its order.
func (s *StripeServiceImpl) Charge(ctx context.Context, req domain.ChargeRequest) (*domain.ChargeResult, error) {
	// If credentials are not configured, log instead of charging
	if s.client == nil {
		fmt.Printf("[MOCK CHARGE] Order: %s, Amount: %d %s\n", req.OrderID, req.AmountMinorUnits, req.Currency)
		return &domain.ChargeResult{Ref: "mock_" + req.OrderID}, nil
	}

	params := &stripe.ChargeParams{
		Params: stripe.Params{
			Context: ctx,
		},
		Amount:      stripe.Int64(req.AmountMinorUnits),
		Currency:    stripe.String(req.Currency),
		Description: stripe.String(req.Description),
	}
	if err := params.SetSource(req.SourceToken); err != nil {
		return nil, fmt.Errorf("invalid payment source: %w", err)
	}
	params.AddMetadata("order_id", req.OrderID)

	ch, err := s.client.Charges.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeCard {
			return nil, domain.ErrPaymentDeclined
		}
		return nil, fmt.Errorf("charge failed: %w", err)
	}

	return &domain.ChargeResult{Ref: ch.ID}, nil
}
