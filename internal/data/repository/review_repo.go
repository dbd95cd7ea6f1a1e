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

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindAll(ctx context.Context) ([]*entity.Review, error)
}

type reviewRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewReviewRepository(db *database.DB, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		coll: db.Collection("reviews"),
		log:  log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	res, err := r.coll.InsertOne(ctx, review)
	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", review.UserID.Hex()),
			zap.String("package_id", review.PackageID.Hex()),
		)
		return fmt.Errorf("create review: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		review.ID = oid
	}

	return nil
}

func (r *reviewRepository) FindAll(ctx context.Context) ([]*entity.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.log.Error("Failed to find reviews", zap.Error(err))
		return nil, fmt.Errorf("find reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []*entity.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		r.log.Error("Failed to decode reviews", zap.Error(err))
		return nil, fmt.Errorf("decode reviews: %w", err)
	}

	return reviews, nil
}
