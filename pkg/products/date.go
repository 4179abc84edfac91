package products

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	perrors "instrument-model/internal/errors"
)

// Date is a calendar date with no time-of-day and no zone.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate stores the fields as given. Use Valid to check calendar rules.
func NewDate(year int, month time.Month, day int) Date {
	return Date{year: year, month: month, day: day}
}

// ParseDate parses the form produced by Date.String: a year of any width with
// an optional leading '-', then two-digit month and day.
func ParseDate(s string) (Date, error) {
	invalid := perrors.NewValidationError("date", s, "expected YYYY-MM-DD", perrors.ErrInvalidDate)

	body, neg := strings.CutPrefix(s, "-")
	parts := strings.Split(body, "-")
	if len(parts) != 3 || !digits(parts[0], 1) || !digits(parts[1], 2) || !digits(parts[2], 2) {
		return Date{}, invalid
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, invalid
	}
	if neg {
		year = -year
	}
	month, _ := strconv.Atoi(parts[1])
	day, _ := strconv.Atoi(parts[2])

	d := NewDate(year, time.Month(month), day)
	if !d.Valid() {
		return Date{}, perrors.NewValidationError("date", s, "not a calendar date", perrors.ErrInvalidDate)
	}
	return d, nil
}

// digits reports whether s is all ASCII digits and, when exact > 1, exactly that long.
func digits(s string, exact int) bool {
	if len(s) == 0 || (exact > 1 && len(s) != exact) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

func (d Date) Year() int         { return d.year }
func (d Date) Month() time.Month { return d.month }
func (d Date) Day() int          { return d.day }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Valid reports whether d names a real day in the proleptic Gregorian calendar.
func (d Date) Valid() bool {
	if d.month < time.January || d.month > time.December || d.day < 1 {
		return false
	}
	return d.day <= daysIn(d.year, d.month)
}

func daysIn(year int, month time.Month) int {
	// day 0 of the next month normalizes to the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Time returns midnight UTC on d.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// Compare returns -1, 0 or +1 as d is before, equal to or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.year != o.year:
		return cmpInt(d.year, o.year)
	case d.month != o.month:
		return cmpInt(int(d.month), int(o.month))
	default:
		return cmpInt(d.day, o.day)
	}
}

// Before reports whether d is strictly before o.
func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// String renders d as YYYY-MM-DD. The year is not padded.
func (d Date) String() string {
	return fmt.Sprintf("%d-%02d-%02d", d.year, int(d.month), d.day)
}

func (d Date) validate(field string) error {
	if d.IsZero() {
		return perrors.NewValidationError(field, d, "must be set", nil)
	}
	if !d.Valid() {
		return perrors.NewValidationError(field, d, "not a calendar date", perrors.ErrInvalidDate)
	}
	return nil
}
