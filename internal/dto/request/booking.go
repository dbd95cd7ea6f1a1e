package request

import "time"

type TravelersInput struct {
	Adults   int `json:"adults" validate:"omitempty,gte=1"`
	Children int `json:"children" validate:"omitempty,gte=0"`
}

type TravelDatesInput struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type CreateBookingRequest struct {
	UserID        string           `json:"userId" validate:"required"`
	PackageID     string           `json:"packageId" validate:"required"`
	Travelers     TravelersInput   `json:"numberOfTravelers"`
	TravelDates   TravelDatesInput `json:"travelDates"`
	AmountPaid    float64          `json:"amountPaid" validate:"required,gte=0"`
	PaymentMethod string           `json:"paymentMethod" validate:"omitempty,oneof=card upi paypal netbanking"`
}

// UpdateBookingStatusRequest merges only the provided status fields; the
// other one keeps its stored value.
type UpdateBookingStatusRequest struct {
	BookingStatus *string `json:"bookingStatus" validate:"omitempty,oneof=pending confirmed completed cancelled"`
	PaymentStatus *string `json:"paymentStatus" validate:"omitempty,oneof=pending confirmed refunded"`
}
