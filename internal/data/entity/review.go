package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

type Review struct {
	Base       `bson:",inline"`
	UserID     primitive.ObjectID `bson:"user_id" json:"userId"`
	PackageID  primitive.ObjectID `bson:"package_id" json:"packageId"`
	Rating     int                `bson:"rating" json:"rating"`
	ReviewText string             `bson:"review_text" json:"reviewText"`
	ReviewDate time.Time          `bson:"review_date" json:"reviewDate"`
	Status     ReviewStatus       `bson:"status" json:"status"`
}
