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

type HotelService interface {
	CreateHotel(ctx context.Context, req *request.CreateHotelRequest) (*entity.Hotel, error)
	GetHotels(ctx context.Context) ([]*entity.Hotel, error)
	GetHotelByID(ctx context.Context, id string) (*entity.Hotel, error)
	UpdateHotel(ctx context.Context, id string, req *request.UpdateHotelRequest) (*entity.Hotel, error)
	DeleteHotel(ctx context.Context, id string) error
}

type hotelService struct {
	hotels repository.HotelRepository
	log    *zap.Logger
}

func NewHotelService(hotels repository.HotelRepository, log *zap.Logger) HotelService {
	return &hotelService{
		hotels: hotels,
		log:    log.With(zap.String("service", "hotel")),
	}
}

func roomsFromInput(inputs []request.RoomInput) []entity.Room {
	rooms := make([]entity.Room, 0, len(inputs))
	for _, in := range inputs {
		available := true
		if in.Available != nil {
			available = *in.Available
		}
		rooms = append(rooms, entity.Room{
			RoomType:      in.RoomType,
			PricePerNight: in.PricePerNight,
			MaxGuests:     in.MaxGuests,
			Available:     available,
		})
	}
	return rooms
}

func (s *hotelService) CreateHotel(ctx context.Context, req *request.CreateHotelRequest) (*entity.Hotel, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	status := entity.HotelStatus(req.Status)
	if status == "" {
		status = entity.HotelStatusActive
	}

	now := time.Now()
	hotel := &entity.Hotel{
		Base: entity.Base{CreatedAt: now, UpdatedAt: now},
		Name: req.Name,
		Location: entity.Location{
			City:    req.Location.City,
			State:   req.Location.State,
			Country: req.Location.Country,
		},
		Address:     req.Address,
		Description: req.Description,
		Images:      req.Images,
		Amenities:   req.Amenities,
		Rooms:       roomsFromInput(req.Rooms),
		Rating:      req.Rating,
		Status:      status,
	}

	if err := s.hotels.Create(ctx, hotel); err != nil {
		return nil, err
	}

	s.log.Info("Hotel created", zap.String("hotel_id", hotel.ID.Hex()), zap.String("name", hotel.Name))
	return hotel, nil
}

func (s *hotelService) GetHotels(ctx context.Context) ([]*entity.Hotel, error) {
	return s.hotels.FindAll(ctx)
}

func (s *hotelService) GetHotelByID(ctx context.Context, id string) (*entity.Hotel, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid hotel ID format: %s", id)
	}

	hotel, err := s.hotels.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if hotel == nil {
		return nil, fmt.Errorf("hotel %s not found", id)
	}

	return hotel, nil
}

func (s *hotelService) UpdateHotel(ctx context.Context, id string, req *request.UpdateHotelRequest) (*entity.Hotel, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid hotel ID format: %s", id)
	}

	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	update := bson.M{}
	if req.Name != nil {
		update["name"] = *req.Name
	}
	if req.Location != nil {
		update["location"] = entity.Location{
			City:    req.Location.City,
			State:   req.Location.State,
			Country: req.Location.Country,
		}
	}
	if req.Address != nil {
		update["address"] = *req.Address
	}
	if req.Description != nil {
		update["description"] = *req.Description
	}
	if req.Images != nil {
		update["images"] = *req.Images
	}
	if req.Amenities != nil {
		update["amenities"] = *req.Amenities
	}
	if req.Rooms != nil {
		update["rooms"] = roomsFromInput(*req.Rooms)
	}
	if req.Rating != nil {
		update["rating"] = *req.Rating
	}
	if req.Status != nil {
		update["status"] = *req.Status
	}

	if len(update) == 0 {
		return nil, fmt.Errorf("validation failed: no fields to update")
	}
	update["updated_at"] = time.Now()

	hotel, err := s.hotels.Update(ctx, oid, update)
	if err != nil {
		return nil, err
	}
	if hotel == nil {
		return nil, fmt.Errorf("hotel %s not found", id)
	}

	s.log.Info("Hotel updated", zap.String("hotel_id", id))
	return hotel, nil
}

func (s *hotelService) DeleteHotel(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid hotel ID format: %s", id)
	}

	return s.hotels.Delete(ctx, oid)
}
