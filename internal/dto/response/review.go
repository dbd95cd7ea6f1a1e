package response

import (
	"time"

	"travel-booking/internal/data/entity"
)

type ReviewResponse struct {
	ID         string      `json:"id"`
	User       *UserRef    `json:"user"`
	Package    *PackageRef `json:"package"`
	Rating     int         `json:"rating"`
	ReviewText string      `json:"reviewText,omitempty"`
	ReviewDate time.Time   `json:"reviewDate"`
	CreatedAt  time.Time   `json:"createdAt"`
}

func NewReviewResponse(review *entity.Review, user *entity.User, pkg *entity.Package) *ReviewResponse {
	return &ReviewResponse{
		ID:         review.ID.Hex(),
		User:       NewUserRef(user, false),
		Package:    NewPackageRef(pkg, false),
		Rating:     review.Rating,
		ReviewText: review.ReviewText,
		ReviewDate: review.ReviewDate,
		CreatedAt:  review.CreatedAt,
	}
}
