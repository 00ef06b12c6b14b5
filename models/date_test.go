package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateMarshalJSON(t *testing.T) {
	d := NewDate(1990, time.April, 7)

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if string(data) != `"1990-04-07"` {
		t.Errorf(`expected "1990-04-07", got %s`, data)
	}
}

func TestDateUnmarshalJSON(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2024-12-31"`), &d); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if d.Year() != 2024 || d.Month() != time.December || d.Day() != 31 {
		t.Errorf("expected 2024-12-31, got %s", d)
	}
}

func TestDateUnmarshalJSON_Invalid(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"31/12/2024"`), &d); err == nil {
		t.Error("expected error for malformed date, got nil")
	}
}

func TestDateUnmarshalJSON_EmptyString(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`""`), &d); err == nil {
		t.Error("expected error for empty-string date, got nil")
	}
	if !d.IsZero() {
		t.Errorf("expected date to stay zero, got %s", d)
	}
}

func TestDateUnmarshalJSON_Null(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`null`), &d); err != nil {
		t.Fatalf("expected null to be ignored, got: %v", err)
	}
	if !d.IsZero() {
		t.Errorf("expected zero date, got %s", d)
	}
}

func TestDateOf(t *testing.T) {
	ts := time.Date(2025, time.June, 15, 23, 59, 58, 0, time.UTC)

	d := DateOf(ts)

	if d.Hour() != 0 || d.Minute() != 0 || d.Second() != 0 {
		t.Errorf("expected time-of-day to be truncated, got %v", d.Time)
	}
	if d.String() != "2025-06-15" {
		t.Errorf("expected 2025-06-15, got %s", d)
	}
}

func TestDateAddDays(t *testing.T) {
	d := NewDate(2025, time.January, 1)

	got := d.AddDays(180)

	if got.String() != "2025-06-30" {
		t.Errorf("expected 2025-06-30, got %s", got)
	}
}

func TestDateScan(t *testing.T) {
	var d Date

	if err := d.Scan(time.Date(2000, time.February, 29, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("expected no error scanning time.Time, got: %v", err)
	}
	if d.String() != "2000-02-29" {
		t.Errorf("expected 2000-02-29, got %s", d)
	}

	if err := d.Scan("1999-01-02"); err != nil {
		t.Fatalf("expected no error scanning string, got: %v", err)
	}
	if d.String() != "1999-01-02" {
		t.Errorf("expected 1999-01-02, got %s", d)
	}

	if err := d.Scan(42); err == nil {
		t.Error("expected error scanning unsupported type, got nil")
	}
}

func TestDateBefore(t *testing.T) {
	a := NewDate(2020, time.March, 1)
	b := NewDate(2020, time.March, 2)

	if !a.Before(b) {
		t.Error("expected a to be before b")
	}
	if b.Before(a) {
		t.Error("expected b not to be before a")
	}
}
