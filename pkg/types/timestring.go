package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const timeLayout = "15:04"

// TimeString represents a time of day in "HH:MM" format.
// It is stored as a plain string so it can be compared, used as a map key
// and written to a TIME column without conversion.
type TimeString string

// NewTimeString creates a TimeString from the time-of-day component of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses s ("HH:MM") into a TimeString.
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid time %q, expected HH:MM: %v", s, err)
	}
	return TimeString(t.Format(timeLayout)), nil
}

// String returns the "HH:MM" representation.
func (ts TimeString) String() string {
	return string(ts)
}

// IsZero returns true if the value is empty.
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// Validate checks that the value is a well-formed "HH:MM" time.
func (ts TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(ts)); err != nil {
		return fmt.Errorf("invalid time %q, expected HH:MM: %v", string(ts), err)
	}
	return nil
}

// IsBefore returns true if ts is strictly earlier in the day than other.
// Malformed values compare as not-before.
func (ts TimeString) IsBefore(other TimeString) bool {
	a, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return false
	}
	b, err := time.Parse(timeLayout, string(other))
	if err != nil {
		return false
	}
	return a.Before(b)
}

// IsAfter returns true if ts is strictly later in the day than other.
func (ts TimeString) IsAfter(other TimeString) bool {
	a, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return false
	}
	b, err := time.Parse(timeLayout, string(other))
	if err != nil {
		return false
	}
	return a.After(b)
}

// AddMinutes returns the time-of-day minutes later than ts.
// The result wraps around midnight.
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	t, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return "", fmt.Errorf("invalid time %q, expected HH:MM: %v", string(ts), err)
	}
	return TimeString(t.Add(time.Duration(minutes) * time.Minute).Format(timeLayout)), nil
}

// Value implements driver.Valuer so TimeString can be bound to TIME columns.
func (ts TimeString) Value() (driver.Value, error) {
	return string(ts), nil
}

// Scan implements sql.Scanner. Postgres TIME columns arrive either as
// "HH:MM:SS" strings or as time.Time values depending on the driver.
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*ts = ""
		return nil
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	case string:
		return ts.scanString(v)
	case []byte:
		return ts.scanString(string(v))
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
}

func (ts *TimeString) scanString(s string) error {
	// "HH:MM:SS" and "HH:MM:SS.ffffff" are truncated to "HH:MM".
	if len(s) > len(timeLayout) {
		s = s[:len(timeLayout)]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}
