package request

// ImageInput is one image descriptor inside a day block.
type ImageInput struct {
	ImageName    string  `json:"imageName"`
	TouristPlace string  `json:"touristPlace"`
	Rating       float64 `json:"rating"`
	Review       int     `json:"review"`
	ImageDetail  string  `json:"imageDetail"`
}

// DayInput is one day block of the nested days payload. The "days" form
// field carries a JSON array of these.
type DayInput struct {
	DayNumber int          `json:"dayNumber"`
	Images    []ImageInput `json:"images"`
}

type CreatePackageDetailRequest struct {
	PackageID string     `validate:"required"`
	Days      []DayInput `validate:"required,min=1"`
}

type UpdatePackageDetailRequest struct {
	MainImage    *string  `json:"mainImage"`
	Day          *int     `json:"day" validate:"omitempty,gte=1"`
	ImageName    *string  `json:"imageName"`
	TouristPlace *string  `json:"touristPlace"`
	Rating       *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Review       *int     `json:"review" validate:"omitempty,gte=0"`
	ImageDetail  *string  `json:"imageDetail"`
}
