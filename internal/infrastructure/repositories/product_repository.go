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

// ProductRepositoryImpl implements domain.ProductRepository on the products
// collection. Orders never reference these documents directly; checkout
// copies them into the order snapshot.
type ProductRepositoryImpl struct {
	coll *mongo.Collection
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *mongo.Database) domain.ProductRepository {
	return &ProductRepositoryImpl{coll: db.Collection(database.ProductsCollection)}
}

// Create implements domain.ProductRepository
func (r *ProductRepositoryImpl) Create(ctx context.Context, product *domain.Product) error {
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, product)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		product.ID = id
	}
	return nil
}

// FindByID implements domain.ProductRepository
func (r *ProductRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	var product domain.Product
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindByIDs implements domain.ProductRepository. IDs that do not resolve to
// a document are simply absent from the result.
func (r *ProductRepositoryImpl) FindByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	oids := make([]bson.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := bson.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return nil, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, err
	}

	var products []domain.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// List implements domain.ProductRepository with skip/limit pagination.
func (r *ProductRepositoryImpl) List(ctx context.Context, page, perPage int) ([]domain.Product, error) {
	if page < 1 {
		page = 1
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64((page - 1) * perPage)).
		SetLimit(int64(perPage))

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	var products []domain.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Count implements domain.ProductRepository
func (r *ProductRepositoryImpl) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

// Update implements domain.ProductRepository
func (r *ProductRepositoryImpl) Update(ctx context.Context, product *domain.Product) error {
	product.UpdatedAt = time.Now()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": product.ID}, bson.M{
		"$set": bson.M{
			"title":       product.Title,
			"price":       product.Price,
			"description": product.Description,
			"imageUrl":    product.ImageURL,
			"updatedAt":   product.UpdatedAt,
		},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// Delete implements domain.ProductRepository
func (r *ProductRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProductNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
