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

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*entity.Review, error)
	GetReviews(ctx context.Context) ([]*response.ReviewResponse, error)
}

type reviewService struct {
	reviews  repository.ReviewRepository
	users    repository.UserRepository
	packages repository.PackageRepository
	log      *zap.Logger
}

func NewReviewService(reviews repository.ReviewRepository, users repository.UserRepository, packages repository.PackageRepository, log *zap.Logger) ReviewService {
	return &reviewService{
		reviews:  reviews,
		users:    users,
		packages: packages,
		log:      log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*entity.Review, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format: %s", req.UserID)
	}
	packageID, err := primitive.ObjectIDFromHex(req.PackageID)
	if err != nil {
		return nil, fmt.Errorf("invalid package ID format: %s", req.PackageID)
	}

	now := time.Now()
	review := &entity.Review{
		Base:       entity.Base{CreatedAt: now, UpdatedAt: now},
		UserID:     userID,
		PackageID:  packageID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
		ReviewDate: now,
		Status:     entity.ReviewStatusPending,
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.Hex()),
		zap.String("package_id", req.PackageID))
	return review, nil
}

func (s *reviewService) GetReviews(ctx context.Context) ([]*response.ReviewResponse, error) {
	reviews, err := s.reviews.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*response.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		user, err := s.users.FindByID(ctx, review.UserID)
		if err != nil {
			s.log.Warn("Failed to resolve review user",
				zap.String("review_id", review.ID.Hex()),
				zap.Error(err))
		}
		pkg, err := s.packages.FindByID(ctx, review.PackageID)
		if err != nil {
			s.log.Warn("Failed to resolve review package",
				zap.String("review_id", review.ID.Hex()),
				zap.Error(err))
		}
		result = append(result, response.NewReviewResponse(review, user, pkg))
	}

	return result, nil
}
