package request

type CreateRewardRequest struct {
	UserID         string `json:"userId" validate:"required"`
	PointsEarned   int    `json:"pointsEarned" validate:"omitempty,gte=0"`
	PointsRedeemed int    `json:"pointsRedeemed" validate:"omitempty,gte=0"`
	Reason         string `json:"reason"`
}
