package apifootball

// Envelopes mirror only the fields the service reads. Pointers mark values upstream may send as null.

type fixturesEnvelope struct {
	Response []fixtureItem `json:"response"`
}

type fixtureItem struct {
	Fixture struct {
		ID     int64  `json:"id"`
		Date   string `json:"date"`
		Status struct {
			Long    string `json:"long"`
			Short   string `json:"short"`
			Elapsed *int   `json:"elapsed"`
		} `json:"status"`
		Venue struct {
			Name string `json:"name"`
			City string `json:"city"`
		} `json:"venue"`
	} `json:"fixture"`
	League struct {
		ID    int64  `json:"id"`
		Round string `json:"round"`
	} `json:"league"`
	Teams struct {
		Home teamRef `json:"home"`
		Away teamRef `json:"away"`
	} `json:"teams"`
	Goals struct {
		Home *int `json:"home"`
		Away *int `json:"away"`
	} `json:"goals"`
}

type teamRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// StandingsEnvelope is the /standings body: response[0].league.standings[0] is the table.
type StandingsEnvelope struct {
	Response []struct {
		League *struct {
			ID        int64           `json:"id"`
			Standings [][]standingRow `json:"standings"`
		} `json:"league"`
	} `json:"response"`
}

type standingRow struct {
	Rank        int     `json:"rank"`
	Team        teamRef `json:"team"`
	Points      int     `json:"points"`
	GoalsDiff   int     `json:"goalsDiff"`
	Group       string  `json:"group"`
	Form        string  `json:"form"`
	Description string  `json:"description"`
	All         struct {
		Played int `json:"played"`
		Win    int `json:"win"`
		Draw   int `json:"draw"`
		Lose   int `json:"lose"`
		Goals  struct {
			For     int `json:"for"`
			Against int `json:"against"`
		} `json:"goals"`
	} `json:"all"`
}

type statisticsEnvelope struct {
	Response []struct {
		Team       teamRef `json:"team"`
		Statistics []struct {
			Type  string `json:"type"`
			Value any    `json:"value"`
		} `json:"statistics"`
	} `json:"response"`
}

type lineupsEnvelope struct {
	Response []struct {
		Team      teamRef `json:"team"`
		Formation string  `json:"formation"`
		StartXI   []struct {
			Player struct {
				ID     int64  `json:"id"`
				Name   string `json:"name"`
				Number int    `json:"number"`
				Pos    string `json:"pos"`
			} `json:"player"`
		} `json:"startXI"`
	} `json:"response"`
}
