package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentMethod string

const (
	PaymentMethodCard       PaymentMethod = "card"
	PaymentMethodUPI        PaymentMethod = "upi"
	PaymentMethodPaypal     PaymentMethod = "paypal"
	PaymentMethodNetbanking PaymentMethod = "netbanking"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusConfirmed PaymentStatus = "confirmed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Travelers struct {
	Adults   int `bson:"adults" json:"adults"`
	Children int `bson:"children" json:"children"`
}

type TravelDates struct {
	Start time.Time `bson:"start" json:"start"`
	End   time.Time `bson:"end" json:"end"`
}

type Booking struct {
	Base          `bson:",inline"`
	UserID        primitive.ObjectID `bson:"user_id" json:"userId"`
	PackageID     primitive.ObjectID `bson:"package_id" json:"packageId"`
	Travelers     Travelers          `bson:"number_of_travelers" json:"numberOfTravelers"`
	TravelDates   TravelDates        `bson:"travel_dates" json:"travelDates"`
	BookingDate   time.Time          `bson:"booking_date" json:"bookingDate"`
	AmountPaid    float64            `bson:"amount_paid" json:"amountPaid"`
	PaymentMethod PaymentMethod      `bson:"payment_method" json:"paymentMethod"`
	PaymentStatus PaymentStatus      `bson:"payment_status" json:"paymentStatus"`
	BookingStatus BookingStatus      `bson:"booking_status" json:"bookingStatus"`
}
