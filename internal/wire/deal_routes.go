package wire

import (
	"net/http"

	"travel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func DealRoutes(h *adaptor.DealHandler, protect, admin func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.GetDeals)
	r.Post("/apply", h.ApplyDeal)

	r.Group(func(r chi.Router) {
		r.Use(protect, admin)
		r.Post("/", h.CreateDeal)
	})

	return r
}
