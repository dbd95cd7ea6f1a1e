package request

import "time"

type CreateDealRequest struct {
	Code               string    `json:"code" validate:"required"`
	DiscountType       string    `json:"discountType" validate:"required,oneof=flat percentage"`
	DiscountValue      float64   `json:"discountValue" validate:"required,gt=0"`
	ValidFrom          time.Time `json:"validFrom" validate:"required"`
	ValidTo            time.Time `json:"validTo" validate:"required"`
	ApplicablePackages []string  `json:"applicablePackages"`
	UsageLimit         int       `json:"usageLimit" validate:"omitempty,gte=1"`
	Status             string    `json:"status" validate:"omitempty,oneof=active expired"`
}

type ApplyDealRequest struct {
	Code string `json:"code" validate:"required"`
}
