package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/you/shopsvc/domain"
	"github.com/you/shopsvc/internal/infrastructure/database"
)

// OrderRepositoryImpl implements domain.OrderRepository on the orders
// collection. Order documents are written once at checkout; the only
// permitted mutation afterwards is the pending → paid|failed transition.
type OrderRepositoryImpl struct {
	coll *mongo.Collection
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *mongo.Database) domain.OrderRepository {
	return &OrderRepositoryImpl{coll: db.Collection(database.OrdersCollection)}
}

// Create implements domain.OrderRepository
func (r *OrderRepositoryImpl) Create(ctx context.Context, order *domain.Order) error {
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	res, err := r.coll.InsertOne(ctx, order)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		order.ID = id
	}
	return nil
}

// FindByID implements domain.OrderRepository
func (r *OrderRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOrderNotFound
	}

	var order domain.Order
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindByUserID implements domain.OrderRepository, newest first.
func (r *OrderRepositoryImpl) FindByUserID(ctx context.Context, userID string) ([]domain.Order, error) {
	oid, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user.userId": oid}, opts)
	if err != nil {
		return nil, err
	}

	var orders []domain.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdatePaymentStatus implements domain.OrderRepository. The filter pins the
// current status to pending so a terminal order can never transition again,
// even under concurrent updates.
func (r *OrderRepositoryImpl) UpdatePaymentStatus(ctx context.Context, orderID string, status domain.PaymentStatus, ref string) error {
	oid, err := bson.ObjectIDFromHex(orderID)
	if err != nil {
		return domain.ErrOrderNotFound
	}
	if !domain.CanTransition(domain.PaymentPending, status) {
		return domain.ErrInvalidTransition
	}

	set := bson.M{"paymentStatus": status}
	if ref != "" {
		set["paymentRef"] = ref
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{
		"_id":           oid,
		"paymentStatus": domain.PaymentPending,
	}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrInvalidTransition
	}
	return nil
}
