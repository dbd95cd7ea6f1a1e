package response

import (
	"time"

	"travel-booking/internal/data/entity"
)

type RewardResponse struct {
	ID              string    `json:"id"`
	User            *UserRef  `json:"user"`
	PointsEarned    int       `json:"pointsEarned"`
	PointsRedeemed  int       `json:"pointsRedeemed"`
	PointsBalance   int       `json:"pointsBalance"`
	TransactionDate time.Time `json:"transactionDate"`
	Reason          string    `json:"reason,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

func NewRewardResponse(reward *entity.Reward, user *entity.User) *RewardResponse {
	return &RewardResponse{
		ID:              reward.ID.Hex(),
		User:            NewUserRef(user, true),
		PointsEarned:    reward.PointsEarned,
		PointsRedeemed:  reward.PointsRedeemed,
		PointsBalance:   reward.PointsBalance,
		TransactionDate: reward.TransactionDate,
		Reason:          reward.Reason,
		CreatedAt:       reward.CreatedAt,
	}
}
