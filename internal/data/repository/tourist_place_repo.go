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

type TouristPlaceRepository interface {
	Create(ctx context.Context, place *entity.TouristPlace) error
	FindAll(ctx context.Context) ([]*entity.TouristPlace, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.TouristPlace, error)
	Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*entity.TouristPlace, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type touristPlaceRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewTouristPlaceRepository(db *database.DB, log *zap.Logger) TouristPlaceRepository {
	return &touristPlaceRepository{
		coll: db.Collection("tourist_places"),
		log:  log.With(zap.String("repository", "tourist_place")),
	}
}

func (r *touristPlaceRepository) Create(ctx context.Context, place *entity.TouristPlace) error {
	res, err := r.coll.InsertOne(ctx, place)
	if err != nil {
		r.log.Error("Failed to create tourist place",
			zap.Error(err),
			zap.String("name", place.Name),
		)
		return fmt.Errorf("create tourist place %s: %w", place.Name, err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		place.ID = oid
	}

	return nil
}

func (r *touristPlaceRepository) FindAll(ctx context.Context) ([]*entity.TouristPlace, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		r.log.Error("Failed to find tourist places", zap.Error(err))
		return nil, fmt.Errorf("find tourist places: %w", err)
	}
	defer cursor.Close(ctx)

	var places []*entity.TouristPlace
	if err := cursor.All(ctx, &places); err != nil {
		r.log.Error("Failed to decode tourist places", zap.Error(err))
		return nil, fmt.Errorf("decode tourist places: %w", err)
	}

	return places, nil
}

func (r *touristPlaceRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.TouristPlace, error) {
	var place entity.TouristPlace
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&place)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find tourist place by ID",
			zap.Error(err),
			zap.String("place_id", id.Hex()),
		)
		return nil, fmt.Errorf("find tourist place by ID %s: %w", id.Hex(), err)
	}

	return &place, nil
}

func (r *touristPlaceRepository) Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*entity.TouristPlace, error) {
	after := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var place entity.TouristPlace
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": update}, after).Decode(&place)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update tourist place",
			zap.Error(err),
			zap.String("place_id", id.Hex()),
		)
		return nil, fmt.Errorf("update tourist place %s: %w", id.Hex(), err)
	}

	return &place, nil
}

func (r *touristPlaceRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.log.Error("Failed to delete tourist place",
			zap.Error(err),
			zap.String("place_id", id.Hex()),
		)
		return fmt.Errorf("delete tourist place %s: %w", id.Hex(), err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("tourist place %s not found", id.Hex())
	}

	return nil
}
