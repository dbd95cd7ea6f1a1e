package wire

import (
	"net/http"

	"travel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func RewardRoutes(h *adaptor.RewardHandler, protect, admin func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(protect, admin)
	r.Post("/", h.AddReward)
	r.Get("/", h.GetRewards)

	return r
}
