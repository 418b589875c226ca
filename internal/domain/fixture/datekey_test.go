package fixture

import (
	"testing"
	"time"
)

func TestDateKey_OrderAndFormat(t *testing.T) {
	t.Parallel()

	a := KeyOf(time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC), nil)
	b := KeyOf(time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC), nil)

	if !a.Before(b) || b.Before(a) {
		t.Fatalf("expected %s before %s", a, b)
	}
	if a.Compare(a) != 0 {
		t.Fatalf("expected key equal to itself")
	}
	if got, want := a.String(), "2023-12-31"; got != want {
		t.Fatalf("unexpected iso form: got=%s want=%s", got, want)
	}
	if got, want := b.Label(), "Monday, January 1, 2024"; got != want {
		t.Fatalf("unexpected label: got=%s want=%s", got, want)
	}
}

func TestKeyOf_DisplayLocation(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2023, 8, 11, 20, 0, 0, 0, time.UTC)
	if got := KeyOf(kickoff, time.FixedZone("AEST", 10*60*60)).String(); got != "2023-08-12" {
		t.Fatalf("unexpected key in display location: got=%s", got)
	}
	if got := KeyOf(kickoff, nil).String(); got != "2023-08-11" {
		t.Fatalf("unexpected key without location: got=%s", got)
	}
}
