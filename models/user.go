package models

import "time"

// User is the account entity used for authentication and profile data.
// Optional attributes are pointers so that absence is distinguishable from
// an explicit zero value. The password hash must never leave the server;
// it is excluded from JSON serialization.
type User struct {
	// ID is the server-assigned unique identifier of the user.
	ID int64 `json:"id"`

	// Email is the unique login identifier. Required.
	Email string `json:"email"`

	// PhoneNumber is the optional, globally unique phone number in
	// international format ("+" followed by digits).
	PhoneNumber *string `json:"phone_number"`

	// FirstName is the optional given name.
	FirstName *string `json:"first_name"`

	// LastName is the optional family name.
	LastName *string `json:"last_name"`

	// DateOfBirth is optional; when present the user must be at least 18.
	DateOfBirth *Date `json:"date_of_birth"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last mutation of the record.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
