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

type RewardRepository interface {
	Create(ctx context.Context, reward *entity.Reward) error
	FindAll(ctx context.Context) ([]*entity.Reward, error)
}

type rewardRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewRewardRepository(db *database.DB, log *zap.Logger) RewardRepository {
	return &rewardRepository{
		coll: db.Collection("rewards"),
		log:  log.With(zap.String("repository", "reward")),
	}
}

func (r *rewardRepository) Create(ctx context.Context, reward *entity.Reward) error {
	res, err := r.coll.InsertOne(ctx, reward)
	if err != nil {
		r.log.Error("Failed to create reward entry",
			zap.Error(err),
			zap.String("user_id", reward.UserID.Hex()),
		)
		return fmt.Errorf("create reward entry: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		reward.ID = oid
	}

	return nil
}

func (r *rewardRepository) FindAll(ctx context.Context) ([]*entity.Reward, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.log.Error("Failed to find rewards", zap.Error(err))
		return nil, fmt.Errorf("find rewards: %w", err)
	}
	defer cursor.Close(ctx)

	var rewards []*entity.Reward
	if err := cursor.All(ctx, &rewards); err != nil {
		r.log.Error("Failed to decode rewards", zap.Error(err))
		return nil, fmt.Errorf("decode rewards: %w", err)
	}

	return rewards, nil
}
