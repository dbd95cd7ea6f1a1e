package usecase

import (
	"travel-booking/internal/data/repository"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

// Service bundles every domain service behind one handle for wiring.
type Service struct {
	User          UserService
	Package       PackageService
	PackageDetail PackageDetailService
	Category      CategoryService
	Booking       BookingService
	Deal          DealService
	Reward        RewardService
	Review        ReviewService
	Hotel         HotelService
	TouristPlace  TouristPlaceService
	State         StateService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		User:          NewUserService(repo.User, config, log),
		Package:       NewPackageService(repo.Package, repo.Category, config, log),
		PackageDetail: NewPackageDetailService(repo.PackageDetail, config, log),
		Category:      NewCategoryService(repo.Category, config, log),
		Booking:       NewBookingService(repo.Booking, repo.User, repo.Package, log),
		Deal:          NewDealService(repo.Deal, log),
		Reward:        NewRewardService(repo.Reward, repo.User, log),
		Review:        NewReviewService(repo.Review, repo.User, repo.Package, log),
		Hotel:         NewHotelService(repo.Hotel, log),
		TouristPlace:  NewTouristPlaceService(repo.TouristPlace, log),
		State:         NewStateService(repo.State, log),
	}
}
