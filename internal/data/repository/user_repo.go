package repository

import (
	"context"
	"fmt"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*entity.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error

	// IncrementRewardPoints atomically adds delta to the cached balance.
	IncrementRewardPoints(ctx context.Context, id primitive.ObjectID, delta int) error
}

type userRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewUserRepository(db *database.DB, log *zap.Logger) UserRepository {
	return &userRepository{
		coll: db.Collection("users"),
		log:  log.With(zap.String("repository", "user")),
	}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		r.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}

	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	var user entity.User
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.Hex()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.Hex(), err)
	}

	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		r.log.Error("Failed to find users", zap.Error(err))
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []*entity.User
	if err := cursor.All(ctx, &users); err != nil {
		r.log.Error("Failed to decode users", zap.Error(err))
		return nil, fmt.Errorf("decode users: %w", err)
	}

	return users, nil
}

func (r *userRepository) Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*entity.User, error) {
	after := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user entity.User
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": update}, after).Decode(&user)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update user",
			zap.Error(err),
			zap.String("user_id", id.Hex()),
		)
		return nil, fmt.Errorf("update user %s: %w", id.Hex(), err)
	}

	return &user, nil
}

func (r *userRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.log.Error("Failed to delete user",
			zap.Error(err),
			zap.String("user_id", id.Hex()),
		)
		return fmt.Errorf("delete user %s: %w", id.Hex(), err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("user %s not found", id.Hex())
	}

	r.log.Info("User deleted", zap.String("user_id", id.Hex()))
	return nil
}

func (r *userRepository) IncrementRewardPoints(ctx context.Context, id primitive.ObjectID, delta int) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"reward_points": delta}},
	)
	if err != nil {
		r.log.Error("Failed to increment reward points",
			zap.Error(err),
			zap.String("user_id", id.Hex()),
			zap.Int("delta", delta),
		)
		return fmt.Errorf("increment reward points for user %s: %w", id.Hex(), err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("user %s not found", id.Hex())
	}

	return nil
}
