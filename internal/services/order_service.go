package services

import (
	"context"

	"github.com/you/shopsvc/domain"
)

// OrderServiceImpl implements domain.OrderService
type OrderServiceImpl struct {
	orderRepo domain.OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo domain.OrderRepository) domain.OrderService {
	return &OrderServiceImpl{orderRepo: orderRepo}
}

// ListOrders implements domain.OrderService
func (s *OrderServiceImpl) ListOrders(ctx context.Context, user *domain.User) ([]domain.Order, error) {
	return s.orderRepo.FindByUserID(ctx, user.ID.Hex())
}
