package entity

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PackageType string

const (
	PackageTypeDomestic PackageType = "Domestic"
	PackageTypeOverseas PackageType = "Overseas"
)

// ValidPackageType matches case-insensitively, so "domestic" and "Domestic"
// are the same type.
func ValidPackageType(t string) bool {
	return strings.EqualFold(t, string(PackageTypeDomestic)) ||
		strings.EqualFold(t, string(PackageTypeOverseas))
}

type ImageDetail struct {
	ImageURL  string  `bson:"image_url" json:"imageUrl"`
	ImageName string  `bson:"image_name" json:"imageName"`
	Rating    float64 `bson:"rating" json:"rating"`
	Review    int     `bson:"review" json:"review"`
	Details   string  `bson:"details" json:"details"`
}

type DayDetail struct {
	DayNumber int           `bson:"day_number" json:"dayNumber"`
	Images    []ImageDetail `bson:"images" json:"images"`
}

type Package struct {
	Base       `bson:",inline"`
	Title      string             `bson:"title" json:"title"`
	Price      float64            `bson:"price" json:"price"`
	Images     []string           `bson:"images" json:"images"`
	MainImage  string             `bson:"main_image" json:"mainImage"`
	Rating     float64            `bson:"rating" json:"rating"`
	Review     string             `bson:"review" json:"review"`
	Type       PackageType        `bson:"type" json:"type"`
	Category   primitive.ObjectID `bson:"category,omitempty" json:"category,omitempty"`
	Country    string             `bson:"country" json:"country"`
	ShowOnHome bool               `bson:"show_on_home" json:"showOnHome"`
	Days       int                `bson:"days" json:"days"`
	// Day-wise image details embedded on the package. The package_details
	// collection stores a flattened copy of the same structure; the
	// duplication comes from the upstream data model and is kept as-is.
	Details []DayDetail `bson:"details" json:"details"`
}
