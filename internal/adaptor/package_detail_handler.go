package adaptor

import (
	"encoding/json"
	"net/http"

	"travel-booking/internal/dto/request"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxDetailImages caps the image files accepted per creation request.
const maxDetailImages = 50

type PackageDetailHandler struct {
	service usecase.PackageDetailService
	config  *utils.Config
	log     *zap.Logger
}

func NewPackageDetailHandler(service usecase.PackageDetailService, config *utils.Config, log *zap.Logger) *PackageDetailHandler {
	return &PackageDetailHandler{
		service: service,
		config:  config,
		log:     log.With(zap.String("handler", "package_detail")),
	}
}

func (h *PackageDetailHandler) CreatePackageDetails(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(int64(h.config.Upload.MaxSizeMB) << 20); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	daysRaw := r.FormValue("days")
	if daysRaw == "" {
		utils.ResponseBadRequest(w, "days field is required", nil)
		return
	}

	var days []request.DayInput
	if err := json.Unmarshal([]byte(daysRaw), &days); err != nil {
		utils.ResponseBadRequest(w, "Invalid days format: expected a JSON array", nil)
		return
	}

	mainImage := ""
	if fh := multipartFile(r, "mainImage"); fh != nil {
		name, err := utils.SaveUploadedFile(fh, h.config.Upload.Dir)
		if err != nil {
			h.log.Error("Failed to store main image", zap.Error(err))
			utils.ResponseInternalError(w, "Failed to store uploaded file")
			return
		}
		mainImage = name
	}

	var images []string
	for _, fh := range multipartFiles(r, "images", maxDetailImages) {
		name, err := utils.SaveUploadedFile(fh, h.config.Upload.Dir)
		if err != nil {
			h.log.Error("Failed to store detail image", zap.Error(err))
			utils.ResponseInternalError(w, "Failed to store uploaded file")
			return
		}
		images = append(images, name)
	}

	req := request.CreatePackageDetailRequest{
		PackageID: r.FormValue("packageID"),
		Days:      days,
	}

	details, err := h.service.CreatePackageDetails(r.Context(), &req, mainImage, images)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Package details created successfully", details)
}

func (h *PackageDetailHandler) GetPackageDetails(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := utils.ParseInt(q.Get("page"), 1)
	limit := utils.ParseInt(q.Get("limit"), 10)

	result, err := h.service.GetPackageDetails(r.Context(), page, limit, q.Get("packageID"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Package details retrieved successfully", result)
}

func (h *PackageDetailHandler) GetPackageDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.service.GetPackageDetailByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Package detail retrieved successfully", detail)
}

func (h *PackageDetailHandler) GetDetailsByPackage(w http.ResponseWriter, r *http.Request) {
	grouped, err := h.service.GetDetailsGroupedByPackage(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Package details retrieved successfully", grouped)
}

func (h *PackageDetailHandler) UpdatePackageDetail(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(int64(h.config.Upload.MaxSizeMB) << 20); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	var req request.UpdatePackageDetailRequest
	if v, ok := formString(r, "mainImage"); ok {
		req.MainImage = &v
	}
	if v, ok := formString(r, "day"); ok {
		n := utils.ParseInt(v, 0)
		req.Day = &n
	}
	if v, ok := formString(r, "imageName"); ok {
		req.ImageName = &v
	}
	if v, ok := formString(r, "touristPlace"); ok {
		req.TouristPlace = &v
	}
	if v, ok := formString(r, "rating"); ok {
		f := utils.ParseFloat(v)
		req.Rating = &f
	}
	if v, ok := formString(r, "review"); ok {
		n := utils.ParseInt(v, 0)
		req.Review = &n
	}
	if v, ok := formString(r, "imageDetail"); ok {
		req.ImageDetail = &v
	}

	imageName := ""
	if fh := multipartFile(r, "image"); fh != nil {
		name, err := utils.SaveUploadedFile(fh, h.config.Upload.Dir)
		if err != nil {
			h.log.Error("Failed to store detail image", zap.Error(err))
			utils.ResponseInternalError(w, "Failed to store uploaded file")
			return
		}
		imageName = name
	}

	detail, err := h.service.UpdatePackageDetail(r.Context(), chi.URLParam(r, "id"), &req, imageName)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Package detail updated successfully", detail)
}

func (h *PackageDetailHandler) DeletePackageDetail(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeletePackageDetail(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Package detail deleted successfully", nil)
}
