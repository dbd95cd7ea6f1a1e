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

type StateHandler struct {
	service usecase.StateService
	log     *zap.Logger
}

func NewStateHandler(service usecase.StateService, log *zap.Logger) *StateHandler {
	return &StateHandler{
		service: service,
		log:     log.With(zap.String("handler", "state")),
	}
}

func (h *StateHandler) CreateState(w http.ResponseWriter, r *http.Request) {
	var req request.StateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	state, err := h.service.CreateState(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "State created successfully", state)
}

func (h *StateHandler) GetStates(w http.ResponseWriter, r *http.Request) {
	states, err := h.service.GetStates(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "States retrieved successfully", states)
}

func (h *StateHandler) GetState(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.GetStateByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "State retrieved successfully", state)
}

func (h *StateHandler) UpdateState(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateStateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	state, err := h.service.UpdateState(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "State updated successfully", state)
}

func (h *StateHandler) DeleteState(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteState(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "State deleted successfully", nil)
}
