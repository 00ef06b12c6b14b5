package models

// RegisterRequest is the JSON body of POST /auth/register/.
type RegisterRequest struct {
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	PhoneNumber *string `json:"phone_number"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	DateOfBirth *Date   `json:"date_of_birth"`
}

// LoginRequest is the JSON body of POST /auth/login/.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest is the JSON body of PATCH /users/update/me.
// Every field is optional; absent fields are left untouched.
type UpdateUserRequest struct {
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	DateOfBirth *Date   `json:"date_of_birth"`
}

// IsEmpty reports whether the partial payload carries no fields at all.
func (r UpdateUserRequest) IsEmpty() bool {
	return r.Email == nil &&
		r.PhoneNumber == nil &&
		r.FirstName == nil &&
		r.LastName == nil &&
		r.DateOfBirth == nil
}

// TokenResponse is the success body of POST /auth/login/.
// RefreshToken is always null: token rotation is not supported.
type TokenResponse struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken *string `json:"refresh_token"`
}

// MessageResponse is a generic informational response body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
