package request

type RegisterRequest struct {
	Name     string   `json:"name" validate:"required,min=2,max=100"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=6"`
	Role     string   `json:"role" validate:"omitempty,oneof=user admin"`
	Prefs    []string `json:"preferences" validate:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest carries partial-merge fields; nil means "leave as is".
type UpdateUserRequest struct {
	Name        *string   `json:"name" validate:"omitempty,min=2,max=100"`
	Role        *string   `json:"role" validate:"omitempty,oneof=user admin"`
	Status      *string   `json:"status" validate:"omitempty,oneof=active blocked"`
	Preferences *[]string `json:"preferences"`
}
