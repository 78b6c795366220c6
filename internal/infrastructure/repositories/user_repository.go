package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/you/shopsvc/domain"
	"github.com/you/shopsvc/internal/infrastructure/database"
)

// UserRepositoryImpl implements domain.UserRepository on the users collection
type UserRepositoryImpl struct {
	coll *mongo.Collection
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *mongo.Database) domain.UserRepository {
	return &UserRepositoryImpl{coll: db.Collection(database.UsersCollection)}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Cart.Items == nil {
		user.Cart.Clear()
	}

	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		user.ID = id
	}
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	var user domain.User
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateCart implements domain.UserRepository. The whole embedded cart is
// replaced in one write; see DESIGN.md for the concurrency trade-off.
func (r *UserRepositoryImpl) UpdateCart(ctx context.Context, userID string, cart domain.Cart) error {
	oid, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"cart": cart, "updatedAt": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// SetResetToken implements domain.UserRepository
func (r *UserRepositoryImpl) SetResetToken(ctx context.Context, userID, token string, expiresAt time.Time) error {
	oid, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{
			"resetToken":           token,
			"resetTokenExpiration": expiresAt,
			"updatedAt":            time.Now(),
		},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// FindByResetToken implements domain.UserRepository. Only a token whose
// expiration is still in the future matches.
func (r *UserRepositoryImpl) FindByResetToken(ctx context.Context, token string, now time.Time) (*domain.User, error) {
	var user domain.User
	err := r.coll.FindOne(ctx, bson.M{
		"resetToken":           token,
		"resetTokenExpiration": bson.M{"$gt": now},
	}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrResetTokenInvalid
		}
		return nil, err
	}
	return &user, nil
}

// FindByIDAndResetToken implements domain.UserRepository
func (r *UserRepositoryImpl) FindByIDAndResetToken(ctx context.Context, userID, token string, now time.Time) (*domain.User, error) {
	oid, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrResetTokenInvalid
	}

	var user domain.User
	err = r.coll.FindOne(ctx, bson.M{
		"_id":                  oid,
		"resetToken":           token,
		"resetTokenExpiration": bson.M{"$gt": now},
	}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrResetTokenInvalid
		}
		return nil, err
	}
	return &user, nil
}

// ResetPassword implements domain.UserRepository. The new hash is stored and
// both reset-token fields are unset in the same update, so a consumed token
// can never match again.
func (r *UserRepositoryImpl) ResetPassword(ctx context.Context, userID, passwordHash string) error {
	oid, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"password": passwordHash, "updatedAt": time.Now()},
		"$unset": bson.M{
			"resetToken":           "",
			"resetTokenExpiration": "",
		},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
