package adaptor

import (
	"encoding/json"
	"net/http"

	"travel-booking/internal/dto/request"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TouristPlaceHandler struct {
	service usecase.TouristPlaceService
	log     *zap.Logger
}

func NewTouristPlaceHandler(service usecase.TouristPlaceService, log *zap.Logger) *TouristPlaceHandler {
	return &TouristPlaceHandler{
		service: service,
		log:     log.With(zap.String("handler", "tourist_place")),
	}
}

func (h *TouristPlaceHandler) CreatePlace(w http.ResponseWriter, r *http.Request) {
	var req request.TouristPlaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	place, err := h.service.CreatePlace(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Tourist place created successfully", place)
}

func (h *TouristPlaceHandler) GetPlaces(w http.ResponseWriter, r *http.Request) {
	places, err := h.service.GetPlaces(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Tourist places retrieved successfully", places)
}

func (h *TouristPlaceHandler) GetPlace(w http.ResponseWriter, r *http.Request) {
	place, err := h.service.GetPlaceByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Tourist place retrieved successfully", place)
}

func (h *TouristPlaceHandler) UpdatePlace(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateTouristPlaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	place, err := h.service.UpdatePlace(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Tourist place updated successfully", place)
}

func (h *TouristPlaceHandler) DeletePlace(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeletePlace(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Tourist place deleted successfully", nil)
}
