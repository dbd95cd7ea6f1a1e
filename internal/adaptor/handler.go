package adaptor

import (
	"mime/multipart"
	"net/http"
	"strings"

	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

// Handler bundles every resource handler for wiring.
type Handler struct {
	User          *UserHandler
	Package       *PackageHandler
	PackageDetail *PackageDetailHandler
	Category      *CategoryHandler
	Booking       *BookingHandler
	Deal          *DealHandler
	Reward        *RewardHandler
	Review        *ReviewHandler
	Hotel         *HotelHandler
	TouristPlace  *TouristPlaceHandler
	State         *StateHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		User:          NewUserHandler(service.User, log),
		Package:       NewPackageHandler(service.Package, config, log),
		PackageDetail: NewPackageDetailHandler(service.PackageDetail, config, log),
		Category:      NewCategoryHandler(service.Category, config, log),
		Booking:       NewBookingHandler(service.Booking, log),
		Deal:          NewDealHandler(service.Deal, log),
		Reward:        NewRewardHandler(service.Reward, log),
		Review:        NewReviewHandler(service.Review, log),
		Hotel:         NewHotelHandler(service.Hotel, log),
		TouristPlace:  NewTouristPlaceHandler(service.TouristPlace, log),
		State:         NewStateHandler(service.State, log),
	}
}

// handleServiceError maps a service error onto an HTTP status by its
// message. Services phrase their errors to match these buckets.
func handleServiceError(w http.ResponseWriter, err error) {
	msg := err.Error()

	switch {
	case strings.Contains(msg, "invalid credentials"):
		utils.ResponseUnauthorized(w, msg)
	case strings.Contains(msg, "blocked"):
		utils.ResponseForbidden(w, msg)
	case strings.Contains(msg, "not found"):
		utils.ResponseNotFound(w, msg)
	case strings.Contains(msg, "validation failed"),
		strings.Contains(msg, "invalid"),
		strings.Contains(msg, "required"),
		strings.Contains(msg, "already"):
		utils.ResponseBadRequest(w, msg, nil)
	default:
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// multipartFile returns the first uploaded file for the field, or nil when
// none was sent.
func multipartFile(r *http.Request, field string) *multipart.FileHeader {
	if r.MultipartForm == nil {
		return nil
	}
	if fhs := r.MultipartForm.File[field]; len(fhs) > 0 {
		return fhs[0]
	}
	return nil
}

// multipartFiles returns at most max uploaded files for the field.
func multipartFiles(r *http.Request, field string, max int) []*multipart.FileHeader {
	if r.MultipartForm == nil {
		return nil
	}
	fhs := r.MultipartForm.File[field]
	if len(fhs) > max {
		fhs = fhs[:max]
	}
	return fhs
}

// formString returns the form field value and whether it was present, so
// partial updates can tell "absent" from "empty".
func formString(r *http.Request, key string) (string, bool) {
	if r.MultipartForm == nil {
		return "", false
	}
	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}
