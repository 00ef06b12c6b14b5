package models

import "time"

// Default values applied when a salary record is created alongside its user.
const (
	// DefaultSalaryAmount is the starting salary for every new user.
	DefaultSalaryAmount int64 = 80000

	// DefaultRaiseAfterDays is the offset from the creation date used to
	// compute the default next raise date.
	DefaultRaiseAfterDays = 180
)

// Salary is the financial record owned by exactly one user (1:1).
// It is created only inside the registration transaction and removed by
// the cascading user delete; it never exists on its own.
type Salary struct {
	// ID is the server-assigned unique identifier of the salary record.
	ID int64 `json:"id"`

	// Amount is the salary amount, always >= 0.
	Amount int64 `json:"amount"`

	// NextRaiseDate is the optional date of the next planned raise.
	// When set it must lie strictly in the future.
	NextRaiseDate *Date `json:"next_raise_date"`

	// UserID references the owning user record.
	UserID int64 `json:"-"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time `json:"-"`

	// UpdatedAt is the timestamp of the last mutation of the record.
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Salary model.
func (s Salary) TableName() string {
	return "salary"
}
