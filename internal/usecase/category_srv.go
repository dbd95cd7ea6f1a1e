package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"
	"travel-booking/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, req *request.CreateCategoryRequest, imageName string) (*entity.Category, error)
	GetCategories(ctx context.Context) ([]*entity.Category, error)
	GetCategoryByID(ctx context.Context, id string) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id string, req *request.UpdateCategoryRequest, imageName string) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type categoryService struct {
	categories repository.CategoryRepository
	config     *utils.Config
	log        *zap.Logger
}

func NewCategoryService(categories repository.CategoryRepository, config *utils.Config, log *zap.Logger) CategoryService {
	return &categoryService{
		categories: categories,
		config:     config,
		log:        log.With(zap.String("service", "category")),
	}
}

// imageURL converts a stored file name into the absolute URL persisted on
// the category document.
func (s *categoryService) imageURL(name string) string {
	return s.config.App.BaseURL + "/uploads/" + name
}

// storedName recovers the file name from a persisted image URL so stale
// files can be cleaned up.
func storedName(imageURL string) string {
	idx := strings.LastIndex(imageURL, "/")
	if idx < 0 {
		return imageURL
	}
	return imageURL[idx+1:]
}

func (s *categoryService) CreateCategory(ctx context.Context, req *request.CreateCategoryRequest, imageName string) (*entity.Category, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	category := &entity.Category{
		Base:  entity.Base{CreatedAt: now, UpdatedAt: now},
		Title: req.Title,
	}
	if imageName != "" {
		category.Image = s.imageURL(imageName)
	}

	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}

	s.log.Info("Category created", zap.String("category_id", category.ID.Hex()), zap.String("title", category.Title))
	return category, nil
}

func (s *categoryService) GetCategories(ctx context.Context) ([]*entity.Category, error) {
	return s.categories.FindAll(ctx)
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id string) (*entity.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid category ID format: %s", id)
	}

	category, err := s.categories.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("category %s not found", id)
	}

	return category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id string, req *request.UpdateCategoryRequest, imageName string) (*entity.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid category ID format: %s", id)
	}

	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	var previous *entity.Category
	if imageName != "" {
		previous, err = s.categories.FindByID(ctx, oid)
		if err != nil {
			return nil, err
		}
	}

	update := bson.M{}
	if req.Title != nil {
		update["title"] = *req.Title
	}
	if imageName != "" {
		update["image"] = s.imageURL(imageName)
	}

	if len(update) == 0 {
		return s.GetCategoryByID(ctx, id)
	}
	update["updated_at"] = time.Now()

	category, err := s.categories.Update(ctx, oid, update)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("category %s not found", id)
	}

	if previous != nil && previous.Image != "" {
		if err := utils.RemoveUploadedFile(s.config.Upload.Dir, storedName(previous.Image)); err != nil {
			s.log.Warn("Failed to remove replaced category image",
				zap.String("category_id", id),
				zap.Error(err))
		}
	}

	s.log.Info("Category updated", zap.String("category_id", id))
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid category ID format: %s", id)
	}

	category, err := s.categories.Delete(ctx, oid)
	if err != nil {
		return err
	}
	if category == nil {
		return fmt.Errorf("category %s not found", id)
	}

	if category.Image != "" {
		if err := utils.RemoveUploadedFile(s.config.Upload.Dir, storedName(category.Image)); err != nil {
			s.log.Warn("Failed to remove category image",
				zap.String("category_id", id),
				zap.Error(err))
		}
	}

	s.log.Info("Category deleted", zap.String("category_id", id))
	return nil
}
