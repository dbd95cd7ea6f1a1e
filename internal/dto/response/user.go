package response

import "travel-booking/internal/data/entity"

// AuthResponse is returned by register and login.
type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

func NewAuthResponse(user *entity.User, token string) *AuthResponse {
	return &AuthResponse{
		ID:    user.ID.Hex(),
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
		Token: token,
	}
}

// UserRef is the embedded user shape used by expanded booking, reward and
// review responses.
type UserRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

func NewUserRef(user *entity.User, withEmail bool) *UserRef {
	if user == nil {
		return nil
	}
	ref := &UserRef{ID: user.ID.Hex(), Name: user.Name}
	if withEmail {
		ref.Email = user.Email
	}
	return ref
}
