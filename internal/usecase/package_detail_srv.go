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

type PackageDetailService interface {
	// CreatePackageDetails flattens the nested day blocks into one record
	// per image and inserts them in a single batch. Uploaded file names are
	// consumed positionally in day-then-image order. A package may only be
	// detailed once.
	CreatePackageDetails(ctx context.Context, req *request.CreatePackageDetailRequest, mainImage string, images []string) ([]*entity.PackageDetail, error)
	GetPackageDetails(ctx context.Context, page, limit int, packageID string) (*response.PaginatedDetailsResponse, error)
	GetPackageDetailByID(ctx context.Context, id string) (*entity.PackageDetail, error)
	GetDetailsGroupedByPackage(ctx context.Context, packageID string) (response.GroupedDetailsResponse, error)
	UpdatePackageDetail(ctx context.Context, id string, req *request.UpdatePackageDetailRequest, imageName string) (*entity.PackageDetail, error)
	DeletePackageDetail(ctx context.Context, id string) error
}

type packageDetailService struct {
	details repository.PackageDetailRepository
	config  *utils.Config
	log     *zap.Logger
}

func NewPackageDetailService(details repository.PackageDetailRepository, config *utils.Config, log *zap.Logger) PackageDetailService {
	return &packageDetailService{
		details: details,
		config:  config,
		log:     log.With(zap.String("service", "package_detail")),
	}
}

func (s *packageDetailService) CreatePackageDetails(ctx context.Context, req *request.CreatePackageDetailRequest, mainImage string, images []string) ([]*entity.PackageDetail, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	packageID, err := primitive.ObjectIDFromHex(req.PackageID)
	if err != nil {
		return nil, fmt.Errorf("invalid package ID format: %s", req.PackageID)
	}

	count, err := s.details.CountByPackageID(ctx, packageID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("package details already exist for package %s", req.PackageID)
	}

	now := time.Now()
	var docs []*entity.PackageDetail
	imageIndex := 0
	for dayIndex, day := range req.Days {
		dayNumber := day.DayNumber
		if dayNumber <= 0 {
			dayNumber = dayIndex + 1
		}

		for position, img := range day.Images {
			imagePath := ""
			if imageIndex < len(images) {
				imagePath = images[imageIndex]
			}
			imageIndex++

			imageName := img.ImageName
			if imageName == "" {
				imageName = fmt.Sprintf("Image %d", imageIndex)
			}

			docs = append(docs, &entity.PackageDetail{
				Base:         entity.Base{CreatedAt: now, UpdatedAt: now},
				PackageID:    packageID,
				MainImage:    mainImage,
				Day:          dayNumber,
				Position:     position,
				Image:        imagePath,
				ImageName:    imageName,
				TouristPlace: img.TouristPlace,
				Rating:       img.Rating,
				Review:       img.Review,
				ImageDetail:  img.ImageDetail,
			})
		}
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("image data is required to create package details")
	}

	if err := s.details.InsertMany(ctx, docs); err != nil {
		if repository.IsDuplicateErr(err) {
			return nil, fmt.Errorf("package details already exist for package %s", req.PackageID)
		}
		return nil, err
	}

	s.log.Info("Package details created",
		zap.String("package_id", req.PackageID),
		zap.Int("records", len(docs)))
	return docs, nil
}

func (s *packageDetailService) GetPackageDetails(ctx context.Context, page, limit int, packageID string) (*response.PaginatedDetailsResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var filterID *primitive.ObjectID
	if packageID != "" {
		oid, err := primitive.ObjectIDFromHex(packageID)
		if err != nil {
			return nil, fmt.Errorf("invalid package ID format: %s", packageID)
		}
		filterID = &oid
	}

	details, total, err := s.details.FindPage(ctx, filterID, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	if details == nil {
		details = []*entity.PackageDetail{}
	}

	return &response.PaginatedDetailsResponse{
		Page:  int64(page),
		Limit: int64(limit),
		Total: total,
		Data:  details,
	}, nil
}

func (s *packageDetailService) GetPackageDetailByID(ctx context.Context, id string) (*entity.PackageDetail, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid package detail ID format: %s", id)
	}

	detail, err := s.details.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, fmt.Errorf("package detail %s not found", id)
	}

	return detail, nil
}

func (s *packageDetailService) GetDetailsGroupedByPackage(ctx context.Context, packageID string) (response.GroupedDetailsResponse, error) {
	oid, err := primitive.ObjectIDFromHex(packageID)
	if err != nil {
		return nil, fmt.Errorf("invalid package ID format: %s", packageID)
	}

	details, err := s.details.FindByPackageID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, fmt.Errorf("package details not found for package %s", packageID)
	}

	grouped := make(response.GroupedDetailsResponse)
	for _, detail := range details {
		grouped[detail.Day] = append(grouped[detail.Day], detail)
	}

	return grouped, nil
}

func (s *packageDetailService) UpdatePackageDetail(ctx context.Context, id string, req *request.UpdatePackageDetailRequest, imageName string) (*entity.PackageDetail, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid package detail ID format: %s", id)
	}

	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	update := bson.M{}
	if req.MainImage != nil {
		update["main_image"] = *req.MainImage
	}
	if req.Day != nil {
		update["day"] = *req.Day
	}
	if req.ImageName != nil {
		update["image_name"] = *req.ImageName
	}
	if req.TouristPlace != nil {
		update["tourist_place"] = *req.TouristPlace
	}
	if req.Rating != nil {
		update["rating"] = *req.Rating
	}
	if req.Review != nil {
		update["review"] = *req.Review
	}
	if req.ImageDetail != nil {
		update["image_detail"] = *req.ImageDetail
	}
	if imageName != "" {
		update["image"] = imageName
	}

	if len(update) == 0 {
		return nil, fmt.Errorf("validation failed: no fields to update")
	}
	update["updated_at"] = time.Now()

	detail, err := s.details.Update(ctx, oid, update)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, fmt.Errorf("package detail %s not found", id)
	}

	s.log.Info("Package detail updated", zap.String("detail_id", id))
	return detail, nil
}

func (s *packageDetailService) DeletePackageDetail(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid package detail ID format: %s", id)
	}

	detail, err := s.details.Delete(ctx, oid)
	if err != nil {
		return err
	}
	if detail == nil {
		return fmt.Errorf("package detail %s not found", id)
	}

	if detail.Image != "" {
		if err := utils.RemoveUploadedFile(s.config.Upload.Dir, detail.Image); err != nil {
			s.log.Warn("Failed to remove detail image",
				zap.String("detail_id", id),
				zap.String("image", detail.Image),
				zap.Error(err))
		}
	}

	s.log.Info("Package detail deleted", zap.String("detail_id", id))
	return nil
}
