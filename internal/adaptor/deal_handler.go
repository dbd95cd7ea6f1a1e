package adaptor

import (
	"encoding/json"
	"net/http"

	"travel-booking/internal/dto/request"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

type DealHandler struct {
	service usecase.DealService
	log     *zap.Logger
}

func NewDealHandler(service usecase.DealService, log *zap.Logger) *DealHandler {
	return &DealHandler{
		service: service,
		log:     log.With(zap.String("handler", "deal")),
	}
}

func (h *DealHandler) CreateDeal(w http.ResponseWriter, r *http.Request) {
	var req request.CreateDealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	deal, err := h.service.CreateDeal(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Deal created successfully", deal)
}

func (h *DealHandler) GetDeals(w http.ResponseWriter, r *http.Request) {
	deals, err := h.service.GetDeals(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Deals retrieved successfully", deals)
}

func (h *DealHandler) ApplyDeal(w http.ResponseWriter, r *http.Request) {
	var req request.ApplyDealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	deal, err := h.service.ApplyDeal(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Deal applied successfully", deal)
}
