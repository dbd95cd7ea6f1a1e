package request

type TouristPlaceRequest struct {
	Name string `json:"name" validate:"required"`
}

type UpdateTouristPlaceRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1"`
}

type StateRequest struct {
	Name string `json:"name" validate:"required"`
	Code string `json:"code"`
}

type UpdateStateRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1"`
	Code *string `json:"code"`
}
