package request

// CreatePackageRequest is decoded from multipart form fields; the optional
// image file is handled separately by the handler.
type CreatePackageRequest struct {
	Title      string  `json:"title" validate:"required"`
	Price      float64 `json:"price" validate:"required,gte=0"`
	Rating     float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Review     string  `json:"review"`
	Type       string  `json:"type"`
	Category   string  `json:"category"`
	Country    string  `json:"country"`
	ShowOnHome bool    `json:"showOnHome"`
	Days       int     `json:"days" validate:"omitempty,gte=1"`
}

type UpdatePackageRequest struct {
	Title      *string  `json:"title"`
	Price      *float64 `json:"price" validate:"omitempty,gte=0"`
	Rating     *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Review     *string  `json:"review"`
	Type       *string  `json:"type"`
	Category   *string  `json:"category"`
	Country    *string  `json:"country"`
	ShowOnHome *bool    `json:"showOnHome"`
	Days       *int     `json:"days" validate:"omitempty,gte=1"`
}
