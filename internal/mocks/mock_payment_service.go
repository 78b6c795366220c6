package mocks

import (
	"context"

	"github.com/you/shopsvc/domain"
)

// MockPaymentService implements domain.PaymentService for testing
type MockPaymentService struct {
	ChargeFunc func(ctx context.Context, req domain.ChargeRequest) (*domain.ChargeResult, error)

	// Requests records every charge attempt in order
	Requests []domain.ChargeRequest
}

// NewMockPaymentService creates a new MockPaymentService with default behaviors
func NewMockPaymentService() *MockPaymentService {
	return &MockPaymentService{}
}

func (m *MockPaymentService) Charge(ctx context.Context, req domain.ChargeRequest) (*domain.ChargeResult, error) {
	m.Requests = append(m.Requests, req)
	if m.ChargeFunc != nil {
		return m.ChargeFunc(ctx, req)
	}
	return &domain.ChargeResult{Ref: "ch_test"}, nil
}
