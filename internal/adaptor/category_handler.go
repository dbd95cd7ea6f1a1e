package adaptor

import (
	"net/http"

	"travel-booking/internal/dto/request"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	service usecase.CategoryService
	config  *utils.Config
	log     *zap.Logger
}

func NewCategoryHandler(service usecase.CategoryService, config *utils.Config, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		config:  config,
		log:     log.With(zap.String("handler", "category")),
	}
}

func (h *CategoryHandler) saveOptionalFile(r *http.Request, field string) (string, error) {
	fh := multipartFile(r, field)
	if fh == nil {
		return "", nil
	}
	return utils.SaveUploadedFile(fh, h.config.Upload.Dir)
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(int64(h.config.Upload.MaxSizeMB) << 20); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	req := request.CreateCategoryRequest{Title: r.FormValue("title")}

	imageName, err := h.saveOptionalFile(r, "image")
	if err != nil {
		h.log.Error("Failed to store category image", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to store uploaded file")
		return
	}

	category, err := h.service.CreateCategory(r.Context(), &req, imageName)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Category created successfully", category)
}

func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetCategories(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Categories retrieved successfully", categories)
}

func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.service.GetCategoryByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Category retrieved successfully", category)
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(int64(h.config.Upload.MaxSizeMB) << 20); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	var req request.UpdateCategoryRequest
	if v, ok := formString(r, "title"); ok {
		req.Title = &v
	}

	imageName, err := h.saveOptionalFile(r, "image")
	if err != nil {
		h.log.Error("Failed to store category image", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to store uploaded file")
		return
	}

	category, err := h.service.UpdateCategory(r.Context(), chi.URLParam(r, "id"), &req, imageName)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Category updated successfully", category)
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Category deleted successfully", nil)
}
