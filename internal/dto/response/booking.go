package response

import (
	"time"

	"travel-booking/internal/data/entity"
)

// BookingResponse is a booking with its user and package references
// resolved; a dangling reference leaves the field null.
type BookingResponse struct {
	ID            string             `json:"id"`
	User          *UserRef           `json:"user"`
	Package       *PackageRef        `json:"package"`
	Travelers     entity.Travelers   `json:"numberOfTravelers"`
	TravelDates   entity.TravelDates `json:"travelDates"`
	BookingDate   time.Time          `json:"bookingDate"`
	AmountPaid    float64            `json:"amountPaid"`
	PaymentMethod string             `json:"paymentMethod"`
	PaymentStatus string             `json:"paymentStatus"`
	BookingStatus string             `json:"bookingStatus"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

func NewBookingResponse(booking *entity.Booking, user *entity.User, pkg *entity.Package) *BookingResponse {
	return &BookingResponse{
		ID:            booking.ID.Hex(),
		User:          NewUserRef(user, true),
		Package:       NewPackageRef(pkg, true),
		Travelers:     booking.Travelers,
		TravelDates:   booking.TravelDates,
		BookingDate:   booking.BookingDate,
		AmountPaid:    booking.AmountPaid,
		PaymentMethod: string(booking.PaymentMethod),
		PaymentStatus: string(booking.PaymentStatus),
		BookingStatus: string(booking.BookingStatus),
		CreatedAt:     booking.CreatedAt,
		UpdatedAt:     booking.UpdatedAt,
	}
}
