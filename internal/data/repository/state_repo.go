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

type StateRepository interface {
	Create(ctx context.Context, state *entity.State) error
	FindAll(ctx context.Context) ([]*entity.State, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.State, error)
	Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*entity.State, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type stateRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewStateRepository(db *database.DB, log *zap.Logger) StateRepository {
	return &stateRepository{
		coll: db.Collection("states"),
		log:  log.With(zap.String("repository", "state")),
	}
}

func (r *stateRepository) Create(ctx context.Context, state *entity.State) error {
	res, err := r.coll.InsertOne(ctx, state)
	if err != nil {
		r.log.Error("Failed to create state",
			zap.Error(err),
			zap.String("name", state.Name),
		)
		return fmt.Errorf("create state %s: %w", state.Name, err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		state.ID = oid
	}

	return nil
}

func (r *stateRepository) FindAll(ctx context.Context) ([]*entity.State, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.log.Error("Failed to find states", zap.Error(err))
		return nil, fmt.Errorf("find states: %w", err)
	}
	defer cursor.Close(ctx)

	var states []*entity.State
	if err := cursor.All(ctx, &states); err != nil {
		r.log.Error("Failed to decode states", zap.Error(err))
		return nil, fmt.Errorf("decode states: %w", err)
	}

	return states, nil
}

func (r *stateRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.State, error) {
	var state entity.State
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&state)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find state by ID",
			zap.Error(err),
			zap.String("state_id", id.Hex()),
		)
		return nil, fmt.Errorf("find state by ID %s: %w", id.Hex(), err)
	}

	return &state, nil
}

func (r *stateRepository) Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*entity.State, error) {
	after := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var state entity.State
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": update}, after).Decode(&state)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update state",
			zap.Error(err),
			zap.String("state_id", id.Hex()),
		)
		return nil, fmt.Errorf("update state %s: %w", id.Hex(), err)
	}

	return &state, nil
}

func (r *stateRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.log.Error("Failed to delete state",
			zap.Error(err),
			zap.String("state_id", id.Hex()),
		)
		return fmt.Errorf("delete state %s: %w", id.Hex(), err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("state %s not found", id.Hex())
	}

	return nil
}
