package wire

import (
	"net/http"

	"travel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func PackageRoutes(h *adaptor.PackageHandler, protect, admin func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.GetPackages)
	r.Get("/type/{type}", h.GetPackagesByType)
	r.Get("/category/{categoryId}", h.GetPackagesByCategory)
	r.Get("/home", h.GetHomePackages)
	r.Get("/compare", h.ComparePackages)
	r.Get("/byid/{id}", h.GetPackage)

	r.Group(func(r chi.Router) {
		r.Use(protect, admin)
		r.Post("/", h.CreatePackage)
		r.Put("/{id}", h.UpdatePackage)
		r.Delete("/{id}", h.DeletePackage)
	})

	return r
}
