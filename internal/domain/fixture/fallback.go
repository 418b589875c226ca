package fixture

import "time"

// FallbackFixtures is a fixed illustrative schedule shown when upstream has nothing scheduled.
// It is never real data; views built from it carry Upcoming.Fallback.
func FallbackFixtures() []Fixture {
	return []Fixture{
		staticFixture("Burnley", "Manchester City", time.Date(2023, 8, 11, 20, 0, 0, 0, time.UTC)),
		staticFixture("Arsenal", "Nottingham Forest", time.Date(2023, 8, 12, 12, 30, 0, 0, time.UTC)),
		staticFixture("Bournemouth", "West Ham", time.Date(2023, 8, 12, 15, 0, 0, 0, time.UTC)),
		staticFixture("Brighton", "Luton", time.Date(2023, 8, 12, 15, 0, 0, 0, time.UTC)),
		staticFixture("Everton", "Fulham", time.Date(2023, 8, 12, 15, 0, 0, 0, time.UTC)),
	}
}

func staticFixture(home, away string, kickoff time.Time) Fixture {
	return Fixture{
		Kickoff: kickoff,
		Home:    Team{Name: home},
		Away:    Team{Name: away},
		Status:  Status{Short: StatusNotStarted, Long: "Not Started"},
	}
}
