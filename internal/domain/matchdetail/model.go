package matchdetail

// Statistic values are passed through as upstream sends them ("54%", 7, null).
type Statistic struct {
	Type  string
	Value any
}

type TeamStatistics struct {
	Team  string
	Items []Statistic
}

type Player struct {
	Name     string
	Position string
	Number   int
}

type TeamLineup struct {
	Team      string
	Formation string
	StartXI   []Player
}

// Details backs the match modal. Either section may be empty when upstream lacks it.
type Details struct {
	FixtureID  int64
	Statistics []TeamStatistics
	Lineups    []TeamLineup
}

func (d Details) Empty() bool {
	return len(d.Statistics) == 0 && len(d.Lineups) == 0
}
