package fixture

import (
	"slices"
	"time"
)

// UpcomingLimit caps the number of scheduled fixtures, not days, in an Upcoming view.
const UpcomingLimit = 10

// MatchDay is a non-empty run of fixtures sharing one calendar day.
type MatchDay struct {
	Key      DateKey
	Label    string
	Fixtures []Fixture
}

// Upcoming is the day-grouped schedule. Fallback marks the illustrative static set.
type Upcoming struct {
	Days     []MatchDay
	Fallback bool
}

func (u Upcoming) Len() int {
	n := 0
	for _, d := range u.Days {
		n += len(d.Fixtures)
	}
	return n
}

// SelectLive keeps live fixtures in upstream order.
func SelectLive(fixtures []Fixture) []Fixture {
	return filter(fixtures, CategoryLive)
}

// SelectMostRecentResults returns every finished fixture played on the latest finished day,
// in upstream order. Recency compares calendar days, not kickoff times.
func SelectMostRecentResults(fixtures []Fixture, loc *time.Location) []Fixture {
	finished := filter(fixtures, CategoryFinished)
	if len(finished) == 0 {
		return finished
	}

	keys := make([]DateKey, len(finished))
	latest := KeyOf(finished[0].Kickoff, loc)
	for i, f := range finished {
		keys[i] = KeyOf(f.Kickoff, loc)
		if latest.Before(keys[i]) {
			latest = keys[i]
		}
	}

	out := make([]Fixture, 0, len(finished))
	for i, f := range finished {
		if keys[i] == latest {
			out = append(out, f)
		}
	}
	return out
}

// GroupUpcoming sorts scheduled fixtures by kickoff, keeps the first UpcomingLimit and groups
// them by day. With nothing scheduled it groups FallbackFixtures instead and sets Fallback.
func GroupUpcoming(fixtures []Fixture, loc *time.Location) Upcoming {
	scheduled := filter(fixtures, CategoryScheduled)
	if len(scheduled) == 0 {
		return Upcoming{
			Days:     groupByDay(soonest(FallbackFixtures(), UpcomingLimit), loc),
			Fallback: true,
		}
	}
	return Upcoming{Days: groupByDay(soonest(scheduled, UpcomingLimit), loc)}
}

// soonest sorts in place; callers pass a slice they own.
func soonest(fixtures []Fixture, limit int) []Fixture {
	slices.SortStableFunc(fixtures, func(a, b Fixture) int {
		return a.Kickoff.Compare(b.Kickoff)
	})
	if len(fixtures) > limit {
		fixtures = fixtures[:limit]
	}
	return fixtures
}

func groupByDay(fixtures []Fixture, loc *time.Location) []MatchDay {
	days := make([]MatchDay, 0, 4)
	index := make(map[DateKey]int, 4)
	for _, f := range fixtures {
		key := KeyOf(f.Kickoff, loc)
		i, ok := index[key]
		if !ok {
			i = len(days)
			index[key] = i
			days = append(days, MatchDay{Key: key, Label: key.Label()})
		}
		days[i].Fixtures = append(days[i].Fixtures, f)
	}

	// Mixed upstream offsets can put an instant-sorted fixture on an earlier calendar day.
	slices.SortStableFunc(days, func(a, b MatchDay) int {
		return a.Key.Compare(b.Key)
	})
	return days
}
