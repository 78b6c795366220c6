package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/you/shopsvc/domain"
)

// CartServiceImpl implements domain.CartService. Merge semantics live on
// domain.Cart; this service resolves products and persists the whole cart.
type CartServiceImpl struct {
	userRepo    domain.UserRepository
	productRepo domain.ProductRepository
}

// NewCartService creates a new cart service
func NewCartService(userRepo domain.UserRepository, productRepo domain.ProductRepository) domain.CartService {
	return &CartServiceImpl{
		userRepo:    userRepo,
		productRepo: productRepo,
	}
}

// AddToCart implements domain.CartService
func (s *CartServiceImpl) AddToCart(ctx context.Context, user *domain.User, productID string) (*domain.User, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	user.Cart.Add(product.ID)
	if err := s.userRepo.UpdateCart(ctx, user.ID.Hex(), user.Cart); err != nil {
		return nil, fmt.Errorf("failed to persist cart: %w", err)
	}
	return user, nil
}

// RemoveFromCart implements domain.CartService. Removing a product that is
// not in the cart (or an unparseable id) leaves the cart unchanged.
func (s *CartServiceImpl) RemoveFromCart(ctx context.Context, user *domain.User, productID string) (*domain.User, error) {
	oid, err := bson.ObjectIDFromHex(productID)
	if err != nil {
		return user, nil
	}

	user.Cart.Remove(oid)
	if err := s.userRepo.UpdateCart(ctx, user.ID.Hex(), user.Cart); err != nil {
		return nil, fmt.Errorf("failed to persist cart: %w", err)
	}
	return user, nil
}

// ClearCart implements domain.CartService
func (s *CartServiceImpl) ClearCart(ctx context.Context, user *domain.User) error {
	user.Cart.Clear()
	if err := s.userRepo.UpdateCart(ctx, user.ID.Hex(), user.Cart); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}

// ResolveCart implements domain.CartService. Lines whose product no longer
// exists in the catalog are pruned from the view; the stored cart document
// is left untouched until the next mutation.
func (s *CartServiceImpl) ResolveCart(ctx context.Context, user *domain.User) (domain.ResolvedCart, error) {
	if user.Cart.IsEmpty() {
		return domain.ResolvedCart{}, nil
	}

	ids := make([]string, 0, len(user.Cart.Items))
	for _, it := range user.Cart.Items {
		ids = append(ids, it.ProductID.Hex())
	}

	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return domain.ResolvedCart{}, fmt.Errorf("failed to resolve cart products: %w", err)
	}

	byID := make(map[bson.ObjectID]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	var resolved domain.ResolvedCart
	for _, it := range user.Cart.Items {
		product, ok := byID[it.ProductID]
		if !ok {
			continue
		}
		resolved.Items = append(resolved.Items, domain.ResolvedItem{
			Product:  product,
			Quantity: it.Quantity,
		})
	}
	return resolved, nil
}
