package wire

import (
	"net/http"

	"travel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func BookingRoutes(h *adaptor.BookingHandler, protect, admin func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.CreateBooking)

	r.Group(func(r chi.Router) {
		r.Use(protect, admin)
		r.Get("/", h.GetBookings)
		r.Get("/{id}", h.GetBooking)
		r.Put("/{id}", h.UpdateBookingStatus)
	})

	return r
}
