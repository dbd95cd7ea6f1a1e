package wire

import (
	"travel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func CategoryRoutes(h *adaptor.CategoryHandler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.CreateCategory)
	r.Get("/", h.GetCategories)
	r.Get("/{id}", h.GetCategory)
	r.Put("/{id}", h.UpdateCategory)
	r.Delete("/{id}", h.DeleteCategory)

	return r
}
