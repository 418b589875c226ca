package leaguestanding

// Record is a team's season tally.
type Record struct {
	Played       int
	Win          int
	Draw         int
	Lose         int
	GoalsFor     int
	GoalsAgainst int
}

type Team struct {
	ID   int64
	Name string
	Logo string
}

// Standing is one league table row, in upstream rank order.
type Standing struct {
	Rank        int
	Team        Team
	Points      int
	GoalsDiff   int
	Group       string
	Form        string
	Description string
	All         Record
}

// Table is a league's standings. Cup competitions have no table.
type Table struct {
	LeagueCode string
	HasTable   bool
	Rows       []Standing
}
