package usecase

import (
	"context"
	"fmt"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"
	"travel-booking/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type TouristPlaceService interface {
	CreatePlace(ctx context.Context, req *request.TouristPlaceRequest) (*entity.TouristPlace, error)
	GetPlaces(ctx context.Context) ([]*entity.TouristPlace, error)
	GetPlaceByID(ctx context.Context, id string) (*entity.TouristPlace, error)
	UpdatePlace(ctx context.Context, id string, req *request.UpdateTouristPlaceRequest) (*entity.TouristPlace, error)
	DeletePlace(ctx context.Context, id string) error
}

type touristPlaceService struct {
	places repository.TouristPlaceRepository
	log    *zap.Logger
}

func NewTouristPlaceService(places repository.TouristPlaceRepository, log *zap.Logger) TouristPlaceService {
	return &touristPlaceService{
		places: places,
		log:    log.With(zap.String("service", "tourist_place")),
	}
}

func (s *touristPlaceService) CreatePlace(ctx context.Context, req *request.TouristPlaceRequest) (*entity.TouristPlace, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	place := &entity.TouristPlace{
		Base: entity.Base{CreatedAt: now, UpdatedAt: now},
		Name: req.Name,
	}

	if err := s.places.Create(ctx, place); err != nil {
		return nil, err
	}

	s.log.Info("Tourist place created", zap.String("place_id", place.ID.Hex()), zap.String("name", place.Name))
	return place, nil
}

func (s *touristPlaceService) GetPlaces(ctx context.Context) ([]*entity.TouristPlace, error) {
	return s.places.FindAll(ctx)
}

func (s *touristPlaceService) GetPlaceByID(ctx context.Context, id string) (*entity.TouristPlace, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid tourist place ID format: %s", id)
	}

	place, err := s.places.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if place == nil {
		return nil, fmt.Errorf("tourist place %s not found", id)
	}

	return place, nil
}

func (s *touristPlaceService) UpdatePlace(ctx context.Context, id string, req *request.UpdateTouristPlaceRequest) (*entity.TouristPlace, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid tourist place ID format: %s", id)
	}

	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	update := bson.M{}
	if req.Name != nil {
		update["name"] = *req.Name
	}

	if len(update) == 0 {
		return s.GetPlaceByID(ctx, id)
	}
	update["updated_at"] = time.Now()

	place, err := s.places.Update(ctx, oid, update)
	if err != nil {
		return nil, err
	}
	if place == nil {
		return nil, fmt.Errorf("tourist place %s not found", id)
	}

	s.log.Info("Tourist place updated", zap.String("place_id", id))
	return place, nil
}

func (s *touristPlaceService) DeletePlace(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid tourist place ID format: %s", id)
	}

	return s.places.Delete(ctx, oid)
}
