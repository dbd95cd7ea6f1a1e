package response

import (
	"time"

	"travel-booking/internal/data/entity"
)

// CategoryRef is the expanded category shape embedded in a package response.
type CategoryRef struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title"`
}

// PackageResponse is a package with its category reference resolved. A
// missing or dangling category resolves to the "Uncategorized" fallback.
type PackageResponse struct {
	ID         string             `json:"id"`
	Title      string             `json:"title"`
	Price      float64            `json:"price"`
	Images     []string           `json:"images,omitempty"`
	MainImage  string             `json:"mainImage,omitempty"`
	Rating     float64            `json:"rating"`
	Review     string             `json:"review,omitempty"`
	Type       string             `json:"type,omitempty"`
	Category   CategoryRef        `json:"category"`
	Country    string             `json:"country,omitempty"`
	ShowOnHome bool               `json:"showOnHome"`
	Days       int                `json:"days,omitempty"`
	Details    []entity.DayDetail `json:"details,omitempty"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

func NewPackageResponse(pkg *entity.Package, category *entity.Category) *PackageResponse {
	ref := CategoryRef{Title: "Uncategorized"}
	if category != nil {
		ref = CategoryRef{ID: category.ID.Hex(), Title: category.Title}
	}
	return &PackageResponse{
		ID:         pkg.ID.Hex(),
		Title:      pkg.Title,
		Price:      pkg.Price,
		Images:     pkg.Images,
		MainImage:  pkg.MainImage,
		Rating:     pkg.Rating,
		Review:     pkg.Review,
		Type:       string(pkg.Type),
		Category:   ref,
		Country:    pkg.Country,
		ShowOnHome: pkg.ShowOnHome,
		Days:       pkg.Days,
		Details:    pkg.Details,
		CreatedAt:  pkg.CreatedAt,
		UpdatedAt:  pkg.UpdatedAt,
	}
}

// PackageRef is the embedded package shape used by expanded booking and
// review responses.
type PackageRef struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price,omitempty"`
}

func NewPackageRef(pkg *entity.Package, withPrice bool) *PackageRef {
	if pkg == nil {
		return nil
	}
	ref := &PackageRef{ID: pkg.ID.Hex(), Title: pkg.Title}
	if withPrice {
		ref.Price = pkg.Price
	}
	return ref
}
