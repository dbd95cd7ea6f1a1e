package request

// Category payloads arrive as multipart form fields; the image file is
// handled by the handler.
type CreateCategoryRequest struct {
	Title string `json:"title" validate:"required"`
}

type UpdateCategoryRequest struct {
	Title *string `json:"title" validate:"omitempty,min=1"`
}
