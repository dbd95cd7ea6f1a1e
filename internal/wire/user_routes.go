package wire

import (
	"net/http"

	"travel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func UserRoutes(h *adaptor.UserHandler, protect, admin func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)

	r.Group(func(r chi.Router) {
		r.Use(protect)
		r.Get("/{id}", h.GetUser)
	})

	r.Group(func(r chi.Router) {
		r.Use(protect, admin)
		r.Get("/", h.GetUsers)
		r.Put("/{id}", h.UpdateUser)
		r.Delete("/{id}", h.DeleteUser)
	})

	return r
}
