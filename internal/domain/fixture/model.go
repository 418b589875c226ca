package fixture

import (
	"strings"
	"time"
)

// Short status codes in the API-Football vocabulary. Other adapters map onto these.
const (
	StatusFirstHalf  = "1H"
	StatusSecondHalf = "2H"
	StatusLive       = "LIVE"
	StatusExtraTime  = "ET"
	StatusPenalties  = "P"
	StatusInPlay     = "IN_PLAY"
	StatusHalfTime   = "HT"
	StatusFullTime   = "FT"
	StatusNotStarted = "NS"
)

type Category int

const (
	CategoryNone Category = iota
	CategoryLive
	CategoryFinished
	CategoryScheduled
)

func (c Category) String() string {
	switch c {
	case CategoryLive:
		return "live"
	case CategoryFinished:
		return "finished"
	case CategoryScheduled:
		return "scheduled"
	default:
		return "none"
	}
}

type Team struct {
	ID    int64
	Name  string
	Crest string
}

type Status struct {
	Short   string
	Long    string
	Elapsed int
}

// Goals are zero until the match has started; absent upstream values decode as zero.
type Goals struct {
	Home int
	Away int
}

// Fixture is one scheduled or played match, normalized across upstream providers.
type Fixture struct {
	ID      int64
	Kickoff time.Time
	Home    Team
	Away    Team
	Status  Status
	Goals   Goals
	Round   string
	Venue   string
}

func NormalizeStatus(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

// Classify maps a fixture onto exactly one category. Unknown codes, HT included, are CategoryNone.
func Classify(f Fixture) Category {
	switch NormalizeStatus(f.Status.Short) {
	case StatusFirstHalf, StatusSecondHalf, StatusLive, StatusExtraTime, StatusPenalties, StatusInPlay:
		return CategoryLive
	case StatusFullTime:
		return CategoryFinished
	case StatusNotStarted:
		return CategoryScheduled
	default:
		return CategoryNone
	}
}

func IsLive(f Fixture) bool {
	return Classify(f) == CategoryLive
}

func filter(fixtures []Fixture, category Category) []Fixture {
	out := make([]Fixture, 0, len(fixtures))
	for _, f := range fixtures {
		if Classify(f) == category {
			out = append(out, f)
		}
	}
	return out
}
