package mocks

import (
	"context"

	"github.com/you/shopsvc/domain"
)

// MockProductRepository implements domain.ProductRepository for testing
type MockProductRepository struct {
	CreateFunc    func(ctx context.Context, product *domain.Product) error
	FindByIDFunc  func(ctx context.Context, id string) (*domain.Product, error)
	FindByIDsFunc func(ctx context.Context, ids []string) ([]domain.Product, error)
	ListFunc      func(ctx context.Context, page, perPage int) ([]domain.Product, error)
	CountFunc     func(ctx context.Context) (int64, error)
	UpdateFunc    func(ctx context.Context, product *domain.Product) error
	DeleteFunc    func(ctx context.Context, id string) error
}

// NewMockProductRepository creates a new MockProductRepository with default behaviors
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{}
}

func (m *MockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, product)
	}
	return nil
}

func (m *MockProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrProductNotFound
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockProductRepository) List(ctx context.Context, page, perPage int) ([]domain.Product, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, perPage)
	}
	return nil, nil
}

func (m *MockProductRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *MockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, product)
	}
	return nil
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
