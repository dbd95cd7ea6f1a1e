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

type HotelRepository interface {
	Create(ctx context.Context, hotel *entity.Hotel) error
	FindAll(ctx context.Context) ([]*entity.Hotel, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Hotel, error)
	Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*entity.Hotel, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type hotelRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewHotelRepository(db *database.DB, log *zap.Logger) HotelRepository {
	return &hotelRepository{
		coll: db.Collection("hotels"),
		log:  log.With(zap.String("repository", "hotel")),
	}
}

func (r *hotelRepository) Create(ctx context.Context, hotel *entity.Hotel) error {
	res, err := r.coll.InsertOne(ctx, hotel)
	if err != nil {
		r.log.Error("Failed to create hotel",
			zap.Error(err),
			zap.String("name", hotel.Name),
		)
		return fmt.Errorf("create hotel %s: %w", hotel.Name, err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		hotel.ID = oid
	}

	return nil
}

func (r *hotelRepository) FindAll(ctx context.Context) ([]*entity.Hotel, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		r.log.Error("Failed to find hotels", zap.Error(err))
		return nil, fmt.Errorf("find hotels: %w", err)
	}
	defer cursor.Close(ctx)

	var hotels []*entity.Hotel
	if err := cursor.All(ctx, &hotels); err != nil {
		r.log.Error("Failed to decode hotels", zap.Error(err))
		return nil, fmt.Errorf("decode hotels: %w", err)
	}

	return hotels, nil
}

func (r *hotelRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Hotel, error) {
	var hotel entity.Hotel
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&hotel)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find hotel by ID",
			zap.Error(err),
			zap.String("hotel_id", id.Hex()),
		)
		return nil, fmt.Errorf("find hotel by ID %s: %w", id.Hex(), err)
	}

	return &hotel, nil
}

func (r *hotelRepository) Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*entity.Hotel, error) {
	after := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var hotel entity.Hotel
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": update}, after).Decode(&hotel)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update hotel",
			zap.Error(err),
			zap.String("hotel_id", id.Hex()),
		)
		return nil, fmt.Errorf("update hotel %s: %w", id.Hex(), err)
	}

	return &hotel, nil
}

func (r *hotelRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.log.Error("Failed to delete hotel",
			zap.Error(err),
			zap.String("hotel_id", id.Hex()),
		)
		return fmt.Errorf("delete hotel %s: %w", id.Hex(), err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("hotel %s not found", id.Hex())
	}

	return nil
}
