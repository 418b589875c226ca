package fixture

import (
	"cmp"
	"fmt"
	"time"
)

const dateLabelLayout = "Monday, January 2, 2006"

// DateKey is the calendar day a fixture is played on. Grouping and labels both derive from it.
type DateKey struct {
	Year  int
	Month time.Month
	Day   int
}

// KeyOf returns the calendar day of t in loc. A nil loc keeps t's own offset, which matches
// the YYYY-MM-DD prefix of the upstream timestamp.
func KeyOf(t time.Time, loc *time.Location) DateKey {
	if loc != nil {
		t = t.In(loc)
	}
	y, m, d := t.Date()
	return DateKey{Year: y, Month: m, Day: d}
}

func (k DateKey) Compare(other DateKey) int {
	if c := cmp.Compare(k.Year, other.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(k.Month, other.Month); c != 0 {
		return c
	}
	return cmp.Compare(k.Day, other.Day)
}

func (k DateKey) Before(other DateKey) bool {
	return k.Compare(other) < 0
}

// String is the ISO form, e.g. "2023-08-11".
func (k DateKey) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", k.Year, int(k.Month), k.Day)
}

// Label is the display form, e.g. "Friday, August 11, 2023".
func (k DateKey) Label() string {
	return k.midnight().Format(dateLabelLayout)
}

func (k DateKey) midnight() time.Time {
	return time.Date(k.Year, k.Month, k.Day, 0, 0, 0, 0, time.UTC)
}
