package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// DayLayout is the wire format for calendar days.
const DayLayout = "2006-01-02"

// Day is a calendar date with no time-of-day significance. It is backed by a
// UTC-midnight instant so that comparisons are always by (year, month, day)
// and never drift because of wall-clock components.
type Day struct {
	t time.Time
}

// NewDay builds a Day from a year/month/day triple.
func NewDay(year int, month time.Month, day int) Day {
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DayOf truncates an arbitrary instant to its calendar day.
func DayOf(t time.Time) Day {
	if t.IsZero() {
		return Day{}
	}
	return NewDay(t.Year(), t.Month(), t.Day())
}

// ParseDay parses the "2006-01-02" wire format. The zero Day is returned for
// unparseable input together with the parse error.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid calendar day %q: %w", s, err)
	}
	return DayOf(t), nil
}

// IsZero reports whether the Day carries no date.
func (d Day) IsZero() bool { return d.t.IsZero() }

func (d Day) Before(other Day) bool { return d.t.Before(other.t) }
func (d Day) After(other Day) bool  { return d.t.After(other.t) }
func (d Day) Equal(other Day) bool  { return d.t.Equal(other.t) }

// AddDays returns the Day n days away (n may be negative).
func (d Day) AddDays(n int) Day {
	return DayOf(d.t.AddDate(0, 0, n))
}

// DaysUntil returns the signed number of calendar days from d to other.
// Both days are UTC midnights, so the division is exact.
func (d Day) DaysUntil(other Day) int {
	return int(other.t.Sub(d.t) / (24 * time.Hour))
}

// Weekday returns the weekday with Sunday == 0, matching time.Weekday.
func (d Day) Weekday() time.Weekday { return d.t.Weekday() }

func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DayLayout)
}

// Time exposes the underlying UTC-midnight instant.
func (d Day) Time() time.Time { return d.t }

// MinDay returns the earlier of two days.
func MinDay(a, b Day) Day {
	if b.Before(a) {
		return b
	}
	return a
}

// MaxDay returns the later of two days.
func MaxDay(a, b Day) Day {
	if b.After(a) {
		return b
	}
	return a
}

// MarshalJSON encodes the Day as its "2006-01-02" string; the zero Day
// encodes as null.
func (d Day) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts null, "", or a "2006-01-02" string. Malformed input
// leaves the Day zero rather than failing the whole document; restriction
// entries with unparseable dates are treated as non-restrictive downstream.
func (d *Day) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		*d = Day{}
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := ParseDay(s)
	if err != nil {
		*d = Day{}
		return nil
	}
	*d = parsed
	return nil
}

// MarshalBSONValue stores the Day as its "2006-01-02" string in MongoDB.
func (d Day) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(d.String())
}

// UnmarshalBSONValue mirrors UnmarshalJSON's tolerance of malformed values.
func (d *Day) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	var s string
	if err := bson.UnmarshalValue(t, data, &s); err != nil {
		*d = Day{}
		return nil
	}
	parsed, err := ParseDay(s)
	if err != nil {
		*d = Day{}
		return nil
	}
	*d = parsed
	return nil
}
