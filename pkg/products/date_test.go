package products

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_String(t *testing.T) {
	tests := []struct {
		date Date
		want string
	}{
		{NewDate(2027, time.June, 5), "2027-06-05"},
		{NewDate(2027, time.December, 25), "2027-12-25"},
		{NewDate(2025, time.January, 15), "2025-01-15"},
		{NewDate(987, time.March, 9), "987-03-09"},
		{NewDate(12345, time.October, 10), "12345-10-10"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.date.String())
	}
}

func TestDate_Valid(t *testing.T) {
	assert.True(t, NewDate(2024, time.February, 29).Valid())
	assert.True(t, NewDate(2000, time.February, 29).Valid())
	assert.False(t, NewDate(1900, time.February, 29).Valid())
	assert.False(t, NewDate(2023, time.February, 29).Valid())
	assert.False(t, NewDate(2027, time.April, 31).Valid())
	assert.False(t, NewDate(2027, 13, 1).Valid())
	assert.False(t, NewDate(2027, 0, 1).Valid())
	assert.False(t, NewDate(2027, time.May, 0).Valid())
	assert.True(t, Date{}.IsZero())
	assert.False(t, Date{}.Valid())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2027-05-31")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2027, time.May, 31), d)

	widths := []struct {
		in   string
		want Date
	}{
		{"999-03-04", NewDate(999, time.March, 4)},
		{"12345-01-02", NewDate(12345, time.January, 2)},
		{"-5-01-02", NewDate(-5, time.January, 2)},
		{"0-02-29", NewDate(0, time.February, 29)},
	}
	for _, tt := range widths {
		d, err := ParseDate(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, d, tt.in)
		assert.Equal(t, tt.in, d.String())
	}

	for _, bad := range []string{
		"", "2027-5-31", "31/05/2027", "2023-02-29", "2027-13-01",
		"-2027-05", "2027-05-31-01", "+2027-05-31", "--5-01-02", "2027-0a-31", "2027-05-31T00:00",
	} {
		_, err := ParseDate(bad)
		require.Error(t, err, bad)
		assert.True(t, errors.Is(err, ErrInvalidDate), bad)
	}
}

func TestDate_Compare(t *testing.T) {
	a := NewDate(2025, time.January, 15)
	b := NewDate(2030, time.January, 15)

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, -1, NewDate(2025, 1, 14).Compare(a))
	assert.Equal(t, 1, NewDate(2025, 2, 1).Compare(a))
}

func TestDate_Time(t *testing.T) {
	d := NewDate(2027, time.May, 31)
	tm := d.Time()
	assert.Equal(t, time.UTC, tm.Location())
	assert.Equal(t, d, DateOf(tm))
}
