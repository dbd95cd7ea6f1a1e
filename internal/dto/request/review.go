package request

type CreateReviewRequest struct {
	UserID     string `json:"userId" validate:"required"`
	PackageID  string `json:"packageId" validate:"required"`
	Rating     int    `json:"rating" validate:"required,gte=1,lte=5"`
	ReviewText string `json:"reviewText"`
}
