package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PackageDetail is one record per (package, day, image) triple. Position is
// the zero-based insert order within a day; together with package_id and day
// it forms the unique index that enforces single creation per package.
type PackageDetail struct {
	Base         `bson:",inline"`
	PackageID    primitive.ObjectID `bson:"package_id" json:"packageId"`
	MainImage    string             `bson:"main_image" json:"mainImage"`
	Day          int                `bson:"day" json:"day"`
	Position     int                `bson:"position" json:"position"`
	Image        string             `bson:"image" json:"image"`
	ImageName    string             `bson:"image_name" json:"imageName"`
	TouristPlace string             `bson:"tourist_place" json:"touristPlace"`
	Rating       float64            `bson:"rating" json:"rating"`
	Review       int                `bson:"review" json:"review"`
	ImageDetail  string             `bson:"image_detail" json:"imageDetail"`
}
