package wire

import (
	"net/http"

	"travel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func HotelRoutes(h *adaptor.HotelHandler, protect, admin func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.GetHotels)
	r.Get("/{id}", h.GetHotel)

	r.Group(func(r chi.Router) {
		r.Use(protect, admin)
		r.Post("/", h.CreateHotel)
		r.Put("/{id}", h.UpdateHotel)
		r.Delete("/{id}", h.DeleteHotel)
	})

	return r
}
