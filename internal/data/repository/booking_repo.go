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

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindAll(ctx context.Context) ([]*entity.Booking, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Booking, error)
	Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*entity.Booking, error)
}

type bookingRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewBookingRepository(db *database.DB, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		coll: db.Collection("bookings"),
		log:  log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	res, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", booking.UserID.Hex()),
			zap.String("package_id", booking.PackageID.Hex()),
		)
		return fmt.Errorf("create booking: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		booking.ID = oid
	}

	return nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.log.Error("Failed to find bookings", zap.Error(err))
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []*entity.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		r.log.Error("Failed to decode bookings", zap.Error(err))
		return nil, fmt.Errorf("decode bookings: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.Hex()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.Hex(), err)
	}

	return &booking, nil
}

func (r *bookingRepository) Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*entity.Booking, error) {
	after := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking entity.Booking
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": update}, after).Decode(&booking)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", id.Hex()),
		)
		return nil, fmt.Errorf("update booking %s: %w", id.Hex(), err)
	}

	return &booking, nil
}
