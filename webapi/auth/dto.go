package auth

// SignUpRequest is the registration payload. Password rules beyond length
// live in the gateway so the provider classification stays in one place.
type SignUpRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Username        string `json:"username"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
	Country         string `json:"country"`
}

// SignInRequest is the login payload.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
