package adaptor

import (
	"encoding/json"
	"net/http"

	"travel-booking/internal/dto/request"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

type RewardHandler struct {
	service usecase.RewardService
	log     *zap.Logger
}

func NewRewardHandler(service usecase.RewardService, log *zap.Logger) *RewardHandler {
	return &RewardHandler{
		service: service,
		log:     log.With(zap.String("handler", "reward")),
	}
}

func (h *RewardHandler) AddReward(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRewardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	reward, err := h.service.AddReward(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Reward added successfully", reward)
}

func (h *RewardHandler) GetRewards(w http.ResponseWriter, r *http.Request) {
	rewards, err := h.service.GetRewards(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Rewards retrieved successfully", rewards)
}
