package adaptor

import (
	"net/http"

	"travel-booking/internal/dto/request"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PackageHandler struct {
	service usecase.PackageService
	config  *utils.Config
	log     *zap.Logger
}

func NewPackageHandler(service usecase.PackageService, config *utils.Config, log *zap.Logger) *PackageHandler {
	return &PackageHandler{
		service: service,
		config:  config,
		log:     log.With(zap.String("handler", "package")),
	}
}

func (h *PackageHandler) maxUploadSize() int64 {
	return int64(h.config.Upload.MaxSizeMB) << 20
}

// saveOptionalFile stores the uploaded file for the field if one was sent
// and returns its stored name.
func (h *PackageHandler) saveOptionalFile(r *http.Request, field string) (string, error) {
	fh := multipartFile(r, field)
	if fh == nil {
		return "", nil
	}
	return utils.SaveUploadedFile(fh, h.config.Upload.Dir)
}

func (h *PackageHandler) GetPackages(w http.ResponseWriter, r *http.Request) {
	packages, err := h.service.GetPackages(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Packages retrieved successfully", packages)
}

func (h *PackageHandler) GetPackagesByType(w http.ResponseWriter, r *http.Request) {
	packages, err := h.service.GetPackagesByType(r.Context(), chi.URLParam(r, "type"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Packages retrieved successfully", packages)
}

func (h *PackageHandler) GetPackagesByCategory(w http.ResponseWriter, r *http.Request) {
	packages, err := h.service.GetPackagesByCategory(r.Context(), chi.URLParam(r, "categoryId"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Packages retrieved successfully", packages)
}

func (h *PackageHandler) GetHomePackages(w http.ResponseWriter, r *http.Request) {
	packages, err := h.service.GetHomePackages(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Home packages retrieved successfully", packages)
}

func (h *PackageHandler) ComparePackages(w http.ResponseWriter, r *http.Request) {
	ids := utils.SplitCSV(r.URL.Query().Get("ids"))

	packages, err := h.service.ComparePackages(r.Context(), ids)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Packages retrieved successfully", packages)
}

func (h *PackageHandler) GetPackage(w http.ResponseWriter, r *http.Request) {
	pkg, err := h.service.GetPackageByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Package retrieved successfully", pkg)
}

func (h *PackageHandler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUploadSize()); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	req := request.CreatePackageRequest{
		Title:      r.FormValue("title"),
		Price:      utils.ParseFloat(r.FormValue("price")),
		Rating:     utils.ParseFloat(r.FormValue("rating")),
		Review:     r.FormValue("review"),
		Type:       r.FormValue("type"),
		Category:   r.FormValue("category"),
		Country:    r.FormValue("country"),
		ShowOnHome: utils.ParseBool(r.FormValue("showOnHome")),
		Days:       utils.ParseInt(r.FormValue("days"), 0),
	}

	imageName, err := h.saveOptionalFile(r, "image")
	if err != nil {
		h.log.Error("Failed to store package image", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to store uploaded file")
		return
	}

	pkg, err := h.service.CreatePackage(r.Context(), &req, imageName)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Package created successfully", pkg)
}

func (h *PackageHandler) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUploadSize()); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	var req request.UpdatePackageRequest
	if v, ok := formString(r, "title"); ok {
		req.Title = &v
	}
	if v, ok := formString(r, "price"); ok {
		f := utils.ParseFloat(v)
		req.Price = &f
	}
	if v, ok := formString(r, "rating"); ok {
		f := utils.ParseFloat(v)
		req.Rating = &f
	}
	if v, ok := formString(r, "review"); ok {
		req.Review = &v
	}
	if v, ok := formString(r, "type"); ok {
		req.Type = &v
	}
	if v, ok := formString(r, "category"); ok {
		req.Category = &v
	}
	if v, ok := formString(r, "country"); ok {
		req.Country = &v
	}
	if v, ok := formString(r, "showOnHome"); ok {
		b := utils.ParseBool(v)
		req.ShowOnHome = &b
	}
	if v, ok := formString(r, "days"); ok {
		n := utils.ParseInt(v, 0)
		req.Days = &n
	}

	imageName, err := h.saveOptionalFile(r, "image")
	if err != nil {
		h.log.Error("Failed to store package image", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to store uploaded file")
		return
	}

	pkg, err := h.service.UpdatePackage(r.Context(), chi.URLParam(r, "id"), &req, imageName)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Package updated successfully", pkg)
}

func (h *PackageHandler) DeletePackage(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeletePackage(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Package deleted successfully", nil)
}
