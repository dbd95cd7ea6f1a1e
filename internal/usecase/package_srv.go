package usecase

import (
	"context"
	"fmt"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"
	"travel-booking/internal/dto/response"
	"travel-booking/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type PackageService interface {
	GetPackages(ctx context.Context) ([]*response.PackageResponse, error)
	GetPackagesByType(ctx context.Context, pkgType string) ([]*entity.Package, error)
	GetPackagesByCategory(ctx context.Context, categoryID string) ([]*entity.Package, error)
	GetHomePackages(ctx context.Context) ([]*entity.Package, error)
	ComparePackages(ctx context.Context, ids []string) ([]*entity.Package, error)
	GetPackageByID(ctx context.Context, id string) (*response.PackageResponse, error)
	CreatePackage(ctx context.Context, req *request.CreatePackageRequest, imageName string) (*entity.Package, error)
	UpdatePackage(ctx context.Context, id string, req *request.UpdatePackageRequest, imageName string) (*entity.Package, error)
	DeletePackage(ctx context.Context, id string) error
}

type packageService struct {
	packages   repository.PackageRepository
	categories repository.CategoryRepository
	config     *utils.Config
	log        *zap.Logger
}

func NewPackageService(packages repository.PackageRepository, categories repository.CategoryRepository, config *utils.Config, log *zap.Logger) PackageService {
	return &packageService{
		packages:   packages,
		categories: categories,
		config:     config,
		log:        log.With(zap.String("service", "package")),
	}
}

// resolveCategory looks up the referenced category; a dangling or zero
// reference resolves to nil and the response falls back to "Uncategorized".
func (s *packageService) resolveCategory(ctx context.Context, pkg *entity.Package) *entity.Category {
	if pkg.Category.IsZero() {
		return nil
	}

	category, err := s.categories.FindByID(ctx, pkg.Category)
	if err != nil {
		s.log.Warn("Failed to resolve package category",
			zap.String("package_id", pkg.ID.Hex()),
			zap.String("category_id", pkg.Category.Hex()),
			zap.Error(err))
		return nil
	}
	return category
}

func (s *packageService) GetPackages(ctx context.Context) ([]*response.PackageResponse, error) {
	packages, err := s.packages.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*response.PackageResponse, 0, len(packages))
	for _, pkg := range packages {
		result = append(result, response.NewPackageResponse(pkg, s.resolveCategory(ctx, pkg)))
	}

	return result, nil
}

func (s *packageService) GetPackagesByType(ctx context.Context, pkgType string) ([]*entity.Package, error) {
	if !entity.ValidPackageType(pkgType) {
		return nil, fmt.Errorf("invalid package type %q: must be Domestic or Overseas", pkgType)
	}

	return s.packages.FindByType(ctx, pkgType)
}

func (s *packageService) GetPackagesByCategory(ctx context.Context, categoryID string) ([]*entity.Package, error) {
	oid, err := primitive.ObjectIDFromHex(categoryID)
	if err != nil {
		return nil, fmt.Errorf("invalid category ID format: %s", categoryID)
	}

	packages, err := s.packages.FindByCategory(ctx, oid)
	if err != nil {
		return nil, err
	}
	if len(packages) == 0 {
		return nil, fmt.Errorf("packages not found for category %s", categoryID)
	}

	return packages, nil
}

func (s *packageService) GetHomePackages(ctx context.Context) ([]*entity.Package, error) {
	packages, err := s.packages.FindHome(ctx)
	if err != nil {
		return nil, err
	}
	if len(packages) == 0 {
		return nil, fmt.Errorf("home packages not found")
	}

	return packages, nil
}

func (s *packageService) ComparePackages(ctx context.Context, ids []string) ([]*entity.Package, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("package IDs are required for comparison")
	}

	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, fmt.Errorf("invalid package ID format: %s", id)
		}
		oids = append(oids, oid)
	}

	packages, err := s.packages.FindByIDs(ctx, oids)
	if err != nil {
		return nil, err
	}
	if len(packages) == 0 {
		return nil, fmt.Errorf("packages not found for the given IDs")
	}

	return packages, nil
}

func (s *packageService) GetPackageByID(ctx context.Context, id string) (*response.PackageResponse, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid package ID format: %s", id)
	}

	pkg, err := s.packages.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, fmt.Errorf("package %s not found", id)
	}

	return response.NewPackageResponse(pkg, s.resolveCategory(ctx, pkg)), nil
}

func (s *packageService) CreatePackage(ctx context.Context, req *request.CreatePackageRequest, imageName string) (*entity.Package, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if req.Type != "" && !entity.ValidPackageType(req.Type) {
		return nil, fmt.Errorf("invalid package type %q: must be Domestic or Overseas", req.Type)
	}

	now := time.Now()
	pkg := &entity.Package{
		Base:       entity.Base{CreatedAt: now, UpdatedAt: now},
		Title:      req.Title,
		Price:      req.Price,
		Rating:     req.Rating,
		Review:     req.Review,
		Type:       entity.PackageType(req.Type),
		Country:    req.Country,
		ShowOnHome: req.ShowOnHome,
		Days:       req.Days,
	}

	if imageName != "" {
		pkg.MainImage = imageName
		pkg.Images = []string{imageName}
	}

	if req.Category != "" {
		oid, err := primitive.ObjectIDFromHex(req.Category)
		if err != nil {
			return nil, fmt.Errorf("invalid category ID format: %s", req.Category)
		}
		pkg.Category = oid
	}

	if err := s.packages.Create(ctx, pkg); err != nil {
		return nil, err
	}

	s.log.Info("Package created", zap.String("package_id", pkg.ID.Hex()), zap.String("title", pkg.Title))
	return pkg, nil
}

func (s *packageService) UpdatePackage(ctx context.Context, id string, req *request.UpdatePackageRequest, imageName string) (*entity.Package, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid package ID format: %s", id)
	}

	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	update := bson.M{}
	if req.Title != nil {
		update["title"] = *req.Title
	}
	if req.Price != nil {
		update["price"] = *req.Price
	}
	if req.Rating != nil {
		update["rating"] = *req.Rating
	}
	if req.Review != nil {
		update["review"] = *req.Review
	}
	if req.Type != nil {
		if !entity.ValidPackageType(*req.Type) {
			return nil, fmt.Errorf("invalid package type %q: must be Domestic or Overseas", *req.Type)
		}
		update["type"] = *req.Type
	}
	if req.Category != nil {
		coid, err := primitive.ObjectIDFromHex(*req.Category)
		if err != nil {
			return nil, fmt.Errorf("invalid category ID format: %s", *req.Category)
		}
		update["category"] = coid
	}
	if req.Country != nil {
		update["country"] = *req.Country
	}
	if req.ShowOnHome != nil {
		update["show_on_home"] = *req.ShowOnHome
	}
	if req.Days != nil {
		update["days"] = *req.Days
	}
	if imageName != "" {
		update["main_image"] = imageName
	}

	if len(update) == 0 {
		return nil, fmt.Errorf("validation failed: no fields to update")
	}
	update["updated_at"] = time.Now()

	pkg, err := s.packages.Update(ctx, oid, update)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, fmt.Errorf("package %s not found", id)
	}

	s.log.Info("Package updated", zap.String("package_id", id))
	return pkg, nil
}

func (s *packageService) DeletePackage(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid package ID format: %s", id)
	}

	pkg, err := s.packages.Delete(ctx, oid)
	if err != nil {
		return err
	}
	if pkg == nil {
		return fmt.Errorf("package %s not found", id)
	}

	// Stored files are cleaned up best effort; a leftover file never fails
	// the delete.
	for _, img := range pkg.Images {
		if err := utils.RemoveUploadedFile(s.config.Upload.Dir, img); err != nil {
			s.log.Warn("Failed to remove package image",
				zap.String("package_id", id),
				zap.String("image", img),
				zap.Error(err))
		}
	}
	if pkg.MainImage != "" {
		if err := utils.RemoveUploadedFile(s.config.Upload.Dir, pkg.MainImage); err != nil {
			s.log.Warn("Failed to remove package main image",
				zap.String("package_id", id),
				zap.String("image", pkg.MainImage),
				zap.Error(err))
		}
	}

	s.log.Info("Package deleted", zap.String("package_id", id))
	return nil
}
