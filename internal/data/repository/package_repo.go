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

type PackageRepository interface {
	Create(ctx context.Context, pkg *entity.Package) error
	FindAll(ctx context.Context) ([]*entity.Package, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Package, error)
	FindByType(ctx context.Context, pkgType string) ([]*entity.Package, error)
	FindByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]*entity.Package, error)
	FindHome(ctx context.Context) ([]*entity.Package, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.Package, error)
	Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*entity.Package, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*entity.Package, error)
}

type packageRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewPackageRepository(db *database.DB, log *zap.Logger) PackageRepository {
	return &packageRepository{
		coll: db.Collection("packages"),
		log:  log.With(zap.String("repository", "package")),
	}
}

func (r *packageRepository) Create(ctx context.Context, pkg *entity.Package) error {
	res, err := r.coll.InsertOne(ctx, pkg)
	if err != nil {
		r.log.Error("Failed to create package",
			zap.Error(err),
			zap.String("title", pkg.Title),
		)
		return fmt.Errorf("create package %s: %w", pkg.Title, err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		pkg.ID = oid
	}

	return nil
}

func (r *packageRepository) FindAll(ctx context.Context) ([]*entity.Package, error) {
	return r.findMany(ctx, bson.M{}, "find packages")
}

func (r *packageRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Package, error) {
	var pkg entity.Package
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&pkg)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find package by ID",
			zap.Error(err),
			zap.String("package_id", id.Hex()),
		)
		return nil, fmt.Errorf("find package by ID %s: %w", id.Hex(), err)
	}

	return &pkg, nil
}

// FindByType matches the stored type case-insensitively, so "domestic" and
// "Domestic" return the same result set.
func (r *packageRepository) FindByType(ctx context.Context, pkgType string) ([]*entity.Package, error) {
	filter := bson.M{
		"type": bson.M{"$regex": fmt.Sprintf("^%s$", pkgType), "$options": "i"},
	}
	return r.findMany(ctx, filter, "find packages by type")
}

func (r *packageRepository) FindByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]*entity.Package, error) {
	return r.findMany(ctx, bson.M{"category": categoryID}, "find packages by category")
}

func (r *packageRepository) FindHome(ctx context.Context) ([]*entity.Package, error) {
	return r.findMany(ctx, bson.M{"show_on_home": true}, "find home packages")
}

func (r *packageRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.Package, error) {
	return r.findMany(ctx, bson.M{"_id": bson.M{"$in": ids}}, "find packages by IDs")
}

func (r *packageRepository) Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*entity.Package, error) {
	after := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var pkg entity.Package
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": update}, after).Decode(&pkg)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update package",
			zap.Error(err),
			zap.String("package_id", id.Hex()),
		)
		return nil, fmt.Errorf("update package %s: %w", id.Hex(), err)
	}

	return &pkg, nil
}

// Delete removes the package and returns the deleted document so the caller
// can clean up its uploaded files.
func (r *packageRepository) Delete(ctx context.Context, id primitive.ObjectID) (*entity.Package, error) {
	var pkg entity.Package
	err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&pkg)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to delete package",
			zap.Error(err),
			zap.String("package_id", id.Hex()),
		)
		return nil, fmt.Errorf("delete package %s: %w", id.Hex(), err)
	}

	r.log.Info("Package deleted", zap.String("package_id", id.Hex()))
	return &pkg, nil
}

func (r *packageRepository) findMany(ctx context.Context, filter bson.M, op string) ([]*entity.Package, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		r.log.Error("Failed to "+op, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer cursor.Close(ctx)

	var packages []*entity.Package
	if err := cursor.All(ctx, &packages); err != nil {
		r.log.Error("Failed to decode packages", zap.Error(err))
		return nil, fmt.Errorf("decode packages: %w", err)
	}

	return packages, nil
}
