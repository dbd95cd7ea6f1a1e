package repository

import (
	"travel-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User          UserRepository
	Package       PackageRepository
	PackageDetail PackageDetailRepository
	Category      CategoryRepository
	Booking       BookingRepository
	Deal          DealRepository
	Reward        RewardRepository
	Review        ReviewRepository
	Hotel         HotelRepository
	TouristPlace  TouristPlaceRepository
	State         StateRepository
}

func NewRepository(db *database.DB, log *zap.Logger) *Repository {
	return &Repository{
		User:          NewUserRepository(db, log),
		Package:       NewPackageRepository(db, log),
		PackageDetail: NewPackageDetailRepository(db, log),
		Category:      NewCategoryRepository(db, log),
		Booking:       NewBookingRepository(db, log),
		Deal:          NewDealRepository(db, log),
		Reward:        NewRewardRepository(db, log),
		Review:        NewReviewRepository(db, log),
		Hotel:         NewHotelRepository(db, log),
		TouristPlace:  NewTouristPlaceRepository(db, log),
		State:         NewStateRepository(db, log),
	}
}
