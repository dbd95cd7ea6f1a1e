package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reward is an append-only ledger entry. The user's rewardPoints field is a
// cached running balance updated alongside each entry, not computed from the
// ledger.
type Reward struct {
	Base            `bson:",inline"`
	UserID          primitive.ObjectID `bson:"user_id" json:"userId"`
	PointsEarned    int                `bson:"points_earned" json:"pointsEarned"`
	PointsRedeemed  int                `bson:"points_redeemed" json:"pointsRedeemed"`
	PointsBalance   int                `bson:"points_balance" json:"pointsBalance"`
	TransactionDate time.Time          `bson:"transaction_date" json:"transactionDate"`
	Reason          string             `bson:"reason" json:"reason"`
}
