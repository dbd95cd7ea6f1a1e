package wire

import (
	"net/http"

	"travel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func TouristPlaceRoutes(h *adaptor.TouristPlaceHandler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.CreatePlace)
	r.Get("/", h.GetPlaces)
	r.Get("/{id}", h.GetPlace)
	r.Put("/{id}", h.UpdatePlace)
	r.Delete("/{id}", h.DeletePlace)

	return r
}

func StateRoutes(h *adaptor.StateHandler, protect, admin func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.GetStates)
	r.Get("/{id}", h.GetState)

	r.Group(func(r chi.Router) {
		r.Use(protect, admin)
		r.Post("/", h.CreateState)
		r.Put("/{id}", h.UpdateState)
		r.Delete("/{id}", h.DeleteState)
	})

	return r
}
