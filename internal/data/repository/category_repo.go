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

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	FindAll(ctx context.Context) ([]*entity.Category, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Category, error)
	Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*entity.Category, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*entity.Category, error)
}

type categoryRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewCategoryRepository(db *database.DB, log *zap.Logger) CategoryRepository {
	return &categoryRepository{
		coll: db.Collection("categories"),
		log:  log.With(zap.String("repository", "category")),
	}
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	res, err := r.coll.InsertOne(ctx, category)
	if err != nil {
		r.log.Error("Failed to create category",
			zap.Error(err),
			zap.String("title", category.Title),
		)
		return fmt.Errorf("create category %s: %w", category.Title, err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		category.ID = oid
	}

	return nil
}

func (r *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.log.Error("Failed to find categories", zap.Error(err))
		return nil, fmt.Errorf("find categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []*entity.Category
	if err := cursor.All(ctx, &categories); err != nil {
		r.log.Error("Failed to decode categories", zap.Error(err))
		return nil, fmt.Errorf("decode categories: %w", err)
	}

	return categories, nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Category, error) {
	var category entity.Category
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&category)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find category by ID",
			zap.Error(err),
			zap.String("category_id", id.Hex()),
		)
		return nil, fmt.Errorf("find category by ID %s: %w", id.Hex(), err)
	}

	return &category, nil
}

func (r *categoryRepository) Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*entity.Category, error) {
	after := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var category entity.Category
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": update}, after).Decode(&category)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update category",
			zap.Error(err),
			zap.String("category_id", id.Hex()),
		)
		return nil, fmt.Errorf("update category %s: %w", id.Hex(), err)
	}

	return &category, nil
}

func (r *categoryRepository) Delete(ctx context.Context, id primitive.ObjectID) (*entity.Category, error) {
	var category entity.Category
	err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&category)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to delete category",
			zap.Error(err),
			zap.String("category_id", id.Hex()),
		)
		return nil, fmt.Errorf("delete category %s: %w", id.Hex(), err)
	}

	r.log.Info("Category deleted", zap.String("category_id", id.Hex()))
	return &category, nil
}
