package entity

type HotelStatus string

const (
	HotelStatusActive   HotelStatus = "active"
	HotelStatusInactive HotelStatus = "inactive"
)

type Location struct {
	City    string `bson:"city" json:"city"`
	State   string `bson:"state" json:"state"`
	Country string `bson:"country" json:"country"`
}

type Room struct {
	RoomType      string  `bson:"room_type" json:"roomType"`
	PricePerNight float64 `bson:"price_per_night" json:"pricePerNight"`
	MaxGuests     int     `bson:"max_guests" json:"maxGuests"`
	Available     bool    `bson:"available" json:"available"`
}

type Hotel struct {
	Base        `bson:",inline"`
	Name        string      `bson:"name" json:"name"`
	Location    Location    `bson:"location" json:"location"`
	Address     string      `bson:"address" json:"address"`
	Description string      `bson:"description" json:"description"`
	Images      []string    `bson:"images" json:"images"`
	Amenities   []string    `bson:"amenities" json:"amenities"`
	Rooms       []Room      `bson:"rooms" json:"rooms"`
	Rating      float64     `bson:"rating" json:"rating"`
	Status      HotelStatus `bson:"status" json:"status"`
}
