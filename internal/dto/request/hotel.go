package request

type LocationInput struct {
	City    string `json:"city" validate:"required"`
	State   string `json:"state"`
	Country string `json:"country" validate:"required"`
}

type RoomInput struct {
	RoomType      string  `json:"roomType" validate:"required"`
	PricePerNight float64 `json:"pricePerNight" validate:"required,gte=0"`
	MaxGuests     int     `json:"maxGuests" validate:"required,gte=1"`
	Available     *bool   `json:"available"`
}

type CreateHotelRequest struct {
	Name        string        `json:"name" validate:"required"`
	Location    LocationInput `json:"location" validate:"required"`
	Address     string        `json:"address"`
	Description string        `json:"description"`
	Images      []string      `json:"images"`
	Amenities   []string      `json:"amenities"`
	Rooms       []RoomInput   `json:"rooms" validate:"omitempty,dive"`
	Rating      float64       `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Status      string        `json:"status" validate:"omitempty,oneof=active inactive"`
}

type UpdateHotelRequest struct {
	Name        *string        `json:"name"`
	Location    *LocationInput `json:"location"`
	Address     *string        `json:"address"`
	Description *string        `json:"description"`
	Images      *[]string      `json:"images"`
	Amenities   *[]string      `json:"amenities"`
	Rooms       *[]RoomInput   `json:"rooms" validate:"omitempty,dive"`
	Rating      *float64       `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Status      *string        `json:"status" validate:"omitempty,oneof=active inactive"`
}
