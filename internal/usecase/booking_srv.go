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

// rewardPointsPerUnit is the paid-amount slab that earns one point.
const rewardPointsPerUnit = 1000

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*entity.Booking, error)
	GetBookings(ctx context.Context) ([]*response.BookingResponse, error)
	GetBookingByID(ctx context.Context, id string) (*response.BookingResponse, error)
	UpdateBookingStatus(ctx context.Context, id string, req *request.UpdateBookingStatusRequest) (*entity.Booking, error)
}

type bookingService struct {
	bookings repository.BookingRepository
	users    repository.UserRepository
	packages repository.PackageRepository
	log      *zap.Logger
}

func NewBookingService(bookings repository.BookingRepository, users repository.UserRepository, packages repository.PackageRepository, log *zap.Logger) BookingService {
	return &bookingService{
		bookings: bookings,
		users:    users,
		packages: packages,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*entity.Booking, error) {
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

	paymentMethod := entity.PaymentMethod(req.PaymentMethod)
	if paymentMethod == "" {
		paymentMethod = entity.PaymentMethodCard
	}

	now := time.Now()
	booking := &entity.Booking{
		Base:      entity.Base{CreatedAt: now, UpdatedAt: now},
		UserID:    userID,
		PackageID: packageID,
		Travelers: entity.Travelers{
			Adults:   req.Travelers.Adults,
			Children: req.Travelers.Children,
		},
		TravelDates: entity.TravelDates{
			Start: req.TravelDates.Start,
			End:   req.TravelDates.End,
		},
		BookingDate:   now,
		AmountPaid:    req.AmountPaid,
		PaymentMethod: paymentMethod,
		PaymentStatus: entity.PaymentStatusPending,
		BookingStatus: entity.BookingStatusPending,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	// Points accrue on every booking; a failed accrual is logged but never
	// rolls the booking back.
	points := int(req.AmountPaid) / rewardPointsPerUnit
	if err := s.users.IncrementRewardPoints(ctx, userID, points); err != nil {
		s.log.Warn("Failed to accrue reward points for booking",
			zap.String("booking_id", booking.ID.Hex()),
			zap.String("user_id", req.UserID),
			zap.Int("points", points),
			zap.Error(err))
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.Hex()),
		zap.String("user_id", req.UserID),
		zap.Float64("amount_paid", req.AmountPaid))
	return booking, nil
}

// expand resolves the user and package references; a dangling reference
// leaves the field null rather than failing the lookup.
func (s *bookingService) expand(ctx context.Context, booking *entity.Booking) *response.BookingResponse {
	user, err := s.users.FindByID(ctx, booking.UserID)
	if err != nil {
		s.log.Warn("Failed to resolve booking user",
			zap.String("booking_id", booking.ID.Hex()),
			zap.Error(err))
	}

	pkg, err := s.packages.FindByID(ctx, booking.PackageID)
	if err != nil {
		s.log.Warn("Failed to resolve booking package",
			zap.String("booking_id", booking.ID.Hex()),
			zap.Error(err))
	}

	return response.NewBookingResponse(booking, user, pkg)
}

func (s *bookingService) GetBookings(ctx context.Context) ([]*response.BookingResponse, error) {
	bookings, err := s.bookings.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		result = append(result, s.expand(ctx, booking))
	}

	return result, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, id string) (*response.BookingResponse, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format: %s", id)
	}

	booking, err := s.bookings.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", id)
	}

	return s.expand(ctx, booking), nil
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, id string, req *request.UpdateBookingStatusRequest) (*entity.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format: %s", id)
	}

	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	update := bson.M{}
	if req.BookingStatus != nil {
		update["booking_status"] = *req.BookingStatus
	}
	if req.PaymentStatus != nil {
		update["payment_status"] = *req.PaymentStatus
	}

	if len(update) == 0 {
		return nil, fmt.Errorf("validation failed: no status fields to update")
	}
	update["updated_at"] = time.Now()

	booking, err := s.bookings.Update(ctx, oid, update)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", id)
	}

	s.log.Info("Booking status updated", zap.String("booking_id", id))
	return booking, nil
}
