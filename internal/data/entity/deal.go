package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DiscountType string

const (
	DiscountTypeFlat       DiscountType = "flat"
	DiscountTypePercentage DiscountType = "percentage"
)

type DealStatus string

const (
	DealStatusActive  DealStatus = "active"
	DealStatusExpired DealStatus = "expired"
)

// Deal is a discount code with a validity window. UsageLimit is stored but
// never decremented; redemption counting is a documented gap.
type Deal struct {
	Base               `bson:",inline"`
	Code               string               `bson:"code" json:"code"`
	DiscountType       DiscountType         `bson:"discount_type" json:"discountType"`
	DiscountValue      float64              `bson:"discount_value" json:"discountValue"`
	ValidFrom          time.Time            `bson:"valid_from" json:"validFrom"`
	ValidTo            time.Time            `bson:"valid_to" json:"validTo"`
	ApplicablePackages []primitive.ObjectID `bson:"applicable_packages" json:"applicablePackages"`
	UsageLimit         int                  `bson:"usage_limit" json:"usageLimit"`
	Status             DealStatus           `bson:"status" json:"status"`
}
