package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates ("2006-01-02").
const DateLayout = "2006-01-02"

// Date is a calendar date without a time-of-day component.
// It marshals to/from JSON as "YYYY-MM-DD" and maps to the SQL DATE type.
type Date struct {
	time.Time
}

// NewDate builds a Date from year, month and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar date in UTC.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		return nil
	}

	// An empty string is malformed input, not an absent value; absence is
	// expressed by a JSON null or by omitting the field.
	parsed, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}

	d.Time = parsed
	return nil
}

// Value implements [driver.Valuer] so Date can be passed as a query argument.
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// Scan implements [sql.Scanner] for reading DATE columns.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case string:
		parsed, err := time.Parse(DateLayout, v)
		if err != nil {
			return fmt.Errorf("cannot scan %q into Date: %w", v, err)
		}
		d.Time = parsed
		return nil
	case nil:
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

// AddDays returns the date shifted by the given number of days.
func (d Date) AddDays(days int) Date {
	return DateOf(d.Time.AddDate(0, 0, days))
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

func (d Date) String() string {
	return d.Format(DateLayout)
}
