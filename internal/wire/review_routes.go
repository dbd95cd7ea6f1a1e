package wire

import (
	"net/http"

	"travel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func ReviewRoutes(h *adaptor.ReviewHandler, protect func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.GetReviews)

	r.Group(func(r chi.Router) {
		r.Use(protect)
		r.Post("/", h.CreateReview)
	})

	return r
}
