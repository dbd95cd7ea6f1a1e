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

type PackageDetailRepository interface {
	// InsertMany writes all records in order. The unique
	// (package_id, day, position) index turns a concurrent duplicate
	// creation into a write error instead of silent double data.
	InsertMany(ctx context.Context, details []*entity.PackageDetail) error
	FindPage(ctx context.Context, packageID *primitive.ObjectID, limit, skip int) ([]*entity.PackageDetail, int64, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.PackageDetail, error)
	FindByPackageID(ctx context.Context, packageID primitive.ObjectID) ([]*entity.PackageDetail, error)
	CountByPackageID(ctx context.Context, packageID primitive.ObjectID) (int64, error)
	Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*entity.PackageDetail, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*entity.PackageDetail, error)
}

type packageDetailRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewPackageDetailRepository(db *database.DB, log *zap.Logger) PackageDetailRepository {
	return &packageDetailRepository{
		coll: db.Collection("package_details"),
		log:  log.With(zap.String("repository", "package_detail")),
	}
}

// IsDuplicateErr reports whether err is a unique-index violation.
func IsDuplicateErr(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

func (r *packageDetailRepository) InsertMany(ctx context.Context, details []*entity.PackageDetail) error {
	docs := make([]interface{}, len(details))
	for i, d := range details {
		docs[i] = d
	}

	res, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	if err != nil {
		r.log.Error("Failed to insert package details",
			zap.Error(err),
			zap.Int("count", len(details)),
		)
		return fmt.Errorf("insert package details: %w", err)
	}

	for i, id := range res.InsertedIDs {
		if oid, ok := id.(primitive.ObjectID); ok && i < len(details) {
			details[i].ID = oid
		}
	}

	return nil
}

func (r *packageDetailRepository) FindPage(ctx context.Context, packageID *primitive.ObjectID, limit, skip int) ([]*entity.PackageDetail, int64, error) {
	filter := bson.M{}
	if packageID != nil {
		filter["package_id"] = *packageID
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		r.log.Error("Failed to count package details", zap.Error(err))
		return nil, 0, fmt.Errorf("count package details: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		r.log.Error("Failed to find package details", zap.Error(err))
		return nil, 0, fmt.Errorf("find package details: %w", err)
	}
	defer cursor.Close(ctx)

	var details []*entity.PackageDetail
	if err := cursor.All(ctx, &details); err != nil {
		r.log.Error("Failed to decode package details", zap.Error(err))
		return nil, 0, fmt.Errorf("decode package details: %w", err)
	}

	return details, total, nil
}

func (r *packageDetailRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.PackageDetail, error) {
	var detail entity.PackageDetail
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&detail)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find package detail by ID",
			zap.Error(err),
			zap.String("detail_id", id.Hex()),
		)
		return nil, fmt.Errorf("find package detail by ID %s: %w", id.Hex(), err)
	}

	return &detail, nil
}

// FindByPackageID returns all records for a package ordered by day then
// insert position, which keeps per-day insertion order stable for grouping.
func (r *packageDetailRepository) FindByPackageID(ctx context.Context, packageID primitive.ObjectID) ([]*entity.PackageDetail, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "day", Value: 1},
		{Key: "position", Value: 1},
	})

	cursor, err := r.coll.Find(ctx, bson.M{"package_id": packageID}, opts)
	if err != nil {
		r.log.Error("Failed to find package details by package ID",
			zap.Error(err),
			zap.String("package_id", packageID.Hex()),
		)
		return nil, fmt.Errorf("find package details by package ID %s: %w", packageID.Hex(), err)
	}
	defer cursor.Close(ctx)

	var details []*entity.PackageDetail
	if err := cursor.All(ctx, &details); err != nil {
		r.log.Error("Failed to decode package details", zap.Error(err))
		return nil, fmt.Errorf("decode package details: %w", err)
	}

	return details, nil
}

func (r *packageDetailRepository) CountByPackageID(ctx context.Context, packageID primitive.ObjectID) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"package_id": packageID})
	if err != nil {
		r.log.Error("Failed to count package details by package ID",
			zap.Error(err),
			zap.String("package_id", packageID.Hex()),
		)
		return 0, fmt.Errorf("count package details by package ID %s: %w", packageID.Hex(), err)
	}

	return count, nil
}

func (r *packageDetailRepository) Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*entity.PackageDetail, error) {
	after := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var detail entity.PackageDetail
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": update}, after).Decode(&detail)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update package detail",
			zap.Error(err),
			zap.String("detail_id", id.Hex()),
		)
		return nil, fmt.Errorf("update package detail %s: %w", id.Hex(), err)
	}

	return &detail, nil
}

func (r *packageDetailRepository) Delete(ctx context.Context, id primitive.ObjectID) (*entity.PackageDetail, error) {
	var detail entity.PackageDetail
	err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&detail)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to delete package detail",
			zap.Error(err),
			zap.String("detail_id", id.Hex()),
		)
		return nil, fmt.Errorf("delete package detail %s: %w", id.Hex(), err)
	}

	return &detail, nil
}
