package fixture

import "time"

type BoardMode string

const (
	BoardModeLive    BoardMode = "live"
	BoardModeResults BoardMode = "results"
)

type BoardOptions struct {
	// Location is the display timezone for day grouping; nil keeps upstream offsets.
	Location *time.Location
}

// Board is the three views for one poll. In live mode Results and Upcoming stay empty.
type Board struct {
	Mode     BoardMode
	Live     []Fixture
	Results  []Fixture
	Upcoming Upcoming
}

func BuildBoard(fixtures []Fixture, opts BoardOptions) Board {
	live := SelectLive(fixtures)
	if len(live) > 0 {
		return Board{Mode: BoardModeLive, Live: live}
	}

	return Board{
		Mode:     BoardModeResults,
		Live:     live,
		Results:  SelectMostRecentResults(fixtures, opts.Location),
		Upcoming: GroupUpcoming(fixtures, opts.Location),
	}
}
