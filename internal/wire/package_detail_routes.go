package wire

import (
	"net/http"

	"travel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func PackageDetailRoutes(h *adaptor.PackageDetailHandler, protect, admin func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.GetPackageDetails)
	r.Get("/packagebyid/{id}", h.GetDetailsByPackage)
	r.Get("/{id}", h.GetPackageDetail)

	r.Group(func(r chi.Router) {
		r.Use(protect, admin)
		r.Post("/", h.CreatePackageDetails)
		r.Patch("/{id}", h.UpdatePackageDetail)
		r.Delete("/{id}", h.DeletePackageDetail)
	})

	return r
}
