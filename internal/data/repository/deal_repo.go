package repository

import (
	"context"
	"fmt"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type DealRepository interface {
	Create(ctx context.Context, deal *entity.Deal) error
	FindAll(ctx context.Context) ([]*entity.Deal, error)

	// FindActiveByCode is the point-in-time eligibility query: active
	// status and validity window containing now. Usage limits are not
	// checked here.
	FindActiveByCode(ctx context.Context, code string, now time.Time) (*entity.Deal, error)
}

type dealRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewDealRepository(db *database.DB, log *zap.Logger) DealRepository {
	return &dealRepository{
		coll: db.Collection("deals"),
		log:  log.With(zap.String("repository", "deal")),
	}
}

func (r *dealRepository) Create(ctx context.Context, deal *entity.Deal) error {
	res, err := r.coll.InsertOne(ctx, deal)
	if err != nil {
		r.log.Error("Failed to create deal",
			zap.Error(err),
			zap.String("code", deal.Code),
		)
		return fmt.Errorf("create deal %s: %w", deal.Code, err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		deal.ID = oid
	}

	return nil
}

func (r *dealRepository) FindAll(ctx context.Context) ([]*entity.Deal, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		r.log.Error("Failed to find deals", zap.Error(err))
		return nil, fmt.Errorf("find deals: %w", err)
	}
	defer cursor.Close(ctx)

	var deals []*entity.Deal
	if err := cursor.All(ctx, &deals); err != nil {
		r.log.Error("Failed to decode deals", zap.Error(err))
		return nil, fmt.Errorf("decode deals: %w", err)
	}

	return deals, nil
}

func (r *dealRepository) FindActiveByCode(ctx context.Context, code string, now time.Time) (*entity.Deal, error) {
	filter := bson.M{
		"code":       code,
		"status":     entity.DealStatusActive,
		"valid_from": bson.M{"$lte": now},
		"valid_to":   bson.M{"$gte": now},
	}

	var deal entity.Deal
	err := r.coll.FindOne(ctx, filter).Decode(&deal)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find deal by code",
			zap.Error(err),
			zap.String("code", code),
		)
		return nil, fmt.Errorf("find deal by code %s: %w", code, err)
	}

	return &deal, nil
}
