package footballdata

import (
	"fmt"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/live-scores/internal/domain/fixture"
	"github.com/riskibarqy/live-scores/internal/domain/leaguestanding"
	"github.com/riskibarqy/live-scores/internal/domain/matchdetail"
	"github.com/riskibarqy/live-scores/internal/usecase"
)

type matchesEnvelope struct {
	Matches []struct {
		ID       int64   `json:"id"`
		UTCDate  string  `json:"utcDate"`
		Status   string  `json:"status"`
		Matchday *int    `json:"matchday"`
		Stage    string  `json:"stage"`
		Venue    string  `json:"venue"`
		HomeTeam teamRef `json:"homeTeam"`
		AwayTeam teamRef `json:"awayTeam"`
		Score    struct {
			FullTime scorePair `json:"fullTime"`
		} `json:"score"`
	} `json:"matches"`
}

type teamRef struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Crest    string `json:"crest"`
	CrestURL string `json:"crestUrl"`
}

func (t teamRef) crest() string {
	if t.Crest != "" {
		return t.Crest
	}
	return t.CrestURL
}

// scorePair accepts both the v2 (homeTeam/awayTeam) and v4 (home/away) key names.
type scorePair struct {
	Home     *int `json:"home"`
	Away     *int `json:"away"`
	HomeTeam *int `json:"homeTeam"`
	AwayTeam *int `json:"awayTeam"`
}

func (s scorePair) goals() fixture.Goals {
	home, away := s.Home, s.Away
	if home == nil {
		home = s.HomeTeam
	}
	if away == nil {
		away = s.AwayTeam
	}
	return fixture.Goals{Home: derefInt(home), Away: derefInt(away)}
}

type standingsEnvelope struct {
	Standings []struct {
		Stage string        `json:"stage"`
		Type  string        `json:"type"`
		Group *string       `json:"group"`
		Table []standingRow `json:"table"`
	} `json:"standings"`
}

type standingRow struct {
	Position       int     `json:"position"`
	Team           teamRef `json:"team"`
	PlayedGames    int     `json:"playedGames"`
	Form           *string `json:"form"`
	Won            int     `json:"won"`
	Draw           int     `json:"draw"`
	Lost           int     `json:"lost"`
	Points         int     `json:"points"`
	GoalsFor       int     `json:"goalsFor"`
	GoalsAgainst   int     `json:"goalsAgainst"`
	GoalDifference int     `json:"goalDifference"`
}

var statusMap = map[string]fixture.Status{
	"SCHEDULED": {Short: fixture.StatusNotStarted, Long: "Not Started"},
	"TIMED":     {Short: fixture.StatusNotStarted, Long: "Not Started"},
	"IN_PLAY":   {Short: fixture.StatusInPlay, Long: "In Play"},
	"LIVE":      {Short: fixture.StatusLive, Long: "In Progress"},
	"PAUSED":    {Short: fixture.StatusHalfTime, Long: "Halftime"},
	"FINISHED":  {Short: fixture.StatusFullTime, Long: "Match Finished"},
}

// MapStatus translates football-data status words onto the API-Football vocabulary.
// Unknown words are kept as-is and classify as CategoryNone.
func MapStatus(raw string) fixture.Status {
	word := fixture.NormalizeStatus(raw)
	if status, ok := statusMap[word]; ok {
		return status
	}
	return fixture.Status{Short: word, Long: word}
}

// Decoder normalizes football-data.org payloads.
type Decoder struct{}

func (Decoder) DecodeFixtures(raw []byte) ([]fixture.Fixture, error) {
	var env matchesEnvelope
	if err := decode(raw, &env, "matches"); err != nil {
		return nil, err
	}

	out := make([]fixture.Fixture, 0, len(env.Matches))
	for _, m := range env.Matches {
		f := fixture.Fixture{
			ID:      m.ID,
			Kickoff: parseUTCDate(m.UTCDate),
			Home:    fixture.Team{ID: m.HomeTeam.ID, Name: strings.TrimSpace(m.HomeTeam.Name), Crest: m.HomeTeam.crest()},
			Away:    fixture.Team{ID: m.AwayTeam.ID, Name: strings.TrimSpace(m.AwayTeam.Name), Crest: m.AwayTeam.crest()},
			Status:  MapStatus(m.Status),
			Goals:   m.Score.FullTime.goals(),
			Venue:   m.Venue,
		}
		if m.Matchday != nil {
			f.Round = fmt.Sprintf("Matchday %d", *m.Matchday)
		}
		out = append(out, f)
	}
	return out, nil
}

// DecodeStandings reads standings[0].table; missing levels give an empty table.
func (Decoder) DecodeStandings(raw []byte) ([]leaguestanding.Standing, error) {
	var env standingsEnvelope
	if err := decode(raw, &env, "standings"); err != nil {
		return nil, err
	}
	if len(env.Standings) == 0 {
		return []leaguestanding.Standing{}, nil
	}

	group := ""
	if env.Standings[0].Group != nil {
		group = *env.Standings[0].Group
	}

	rows := env.Standings[0].Table
	out := make([]leaguestanding.Standing, 0, len(rows))
	for _, row := range rows {
		form := ""
		if row.Form != nil {
			form = strings.ReplaceAll(*row.Form, ",", "")
		}
		out = append(out, leaguestanding.Standing{
			Rank:      row.Position,
			Team:      leaguestanding.Team{ID: row.Team.ID, Name: strings.TrimSpace(row.Team.Name), Logo: row.Team.crest()},
			Points:    row.Points,
			GoalsDiff: row.GoalDifference,
			Group:     group,
			Form:      form,
			All: leaguestanding.Record{
				Played:       row.PlayedGames,
				Win:          row.Won,
				Draw:         row.Draw,
				Lose:         row.Lost,
				GoalsFor:     row.GoalsFor,
				GoalsAgainst: row.GoalsAgainst,
			},
		})
	}
	return out, nil
}

func (Decoder) DecodeStatistics(_ []byte) ([]matchdetail.TeamStatistics, error) {
	return nil, fmt.Errorf("%w: footballdata match statistics", usecase.ErrNotSupported)
}

func (Decoder) DecodeLineups(_ []byte) ([]matchdetail.TeamLineup, error) {
	return nil, fmt.Errorf("%w: footballdata lineups", usecase.ErrNotSupported)
}

func decode(raw []byte, target any, what string) error {
	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrapf(usecase.ErrUpstream, "decode footballdata %s: %v", what, err)
	}
	return nil
}

func parseUTCDate(raw string) time.Time {
	parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}
	}
	return parsed
}

func derefInt(v *int) int {
	if v == nil || *v < 0 {
		return 0
	}
	return *v
}
