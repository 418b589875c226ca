package apifootball

import (
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/live-scores/internal/domain/fixture"
	"github.com/riskibarqy/live-scores/internal/domain/leaguestanding"
	"github.com/riskibarqy/live-scores/internal/domain/matchdetail"
	"github.com/riskibarqy/live-scores/internal/usecase"
)

// Decoder normalizes API-Football v3 payloads.
type Decoder struct{}

func (Decoder) DecodeFixtures(raw []byte) ([]fixture.Fixture, error) {
	var env fixturesEnvelope
	if err := decode(raw, &env, "fixtures"); err != nil {
		return nil, err
	}

	out := make([]fixture.Fixture, 0, len(env.Response))
	for _, item := range env.Response {
		out = append(out, mapFixture(item))
	}
	return out, nil
}

func (Decoder) DecodeStandings(raw []byte) ([]leaguestanding.Standing, error) {
	var env StandingsEnvelope
	if err := decode(raw, &env, "standings"); err != nil {
		return nil, err
	}
	return ExtractStandingsTable(env), nil
}

func (Decoder) DecodeStatistics(raw []byte) ([]matchdetail.TeamStatistics, error) {
	var env statisticsEnvelope
	if err := decode(raw, &env, "statistics"); err != nil {
		return nil, err
	}

	out := make([]matchdetail.TeamStatistics, 0, len(env.Response))
	for _, item := range env.Response {
		stats := matchdetail.TeamStatistics{
			Team:  strings.TrimSpace(item.Team.Name),
			Items: make([]matchdetail.Statistic, 0, len(item.Statistics)),
		}
		for _, s := range item.Statistics {
			stats.Items = append(stats.Items, matchdetail.Statistic{Type: s.Type, Value: s.Value})
		}
		out = append(out, stats)
	}
	return out, nil
}

func (Decoder) DecodeLineups(raw []byte) ([]matchdetail.TeamLineup, error) {
	var env lineupsEnvelope
	if err := decode(raw, &env, "lineups"); err != nil {
		return nil, err
	}

	out := make([]matchdetail.TeamLineup, 0, len(env.Response))
	for _, item := range env.Response {
		lineup := matchdetail.TeamLineup{
			Team:      strings.TrimSpace(item.Team.Name),
			Formation: item.Formation,
			StartXI:   make([]matchdetail.Player, 0, len(item.StartXI)),
		}
		for _, p := range item.StartXI {
			lineup.StartXI = append(lineup.StartXI, matchdetail.Player{
				Name:     strings.TrimSpace(p.Player.Name),
				Position: p.Player.Pos,
				Number:   p.Player.Number,
			})
		}
		out = append(out, lineup)
	}
	return out, nil
}

// ExtractStandingsTable unwraps response[0].league.standings[0]. Any missing level yields an
// empty table; rows keep upstream rank order.
func ExtractStandingsTable(env StandingsEnvelope) []leaguestanding.Standing {
	if len(env.Response) == 0 || env.Response[0].League == nil {
		return []leaguestanding.Standing{}
	}
	groups := env.Response[0].League.Standings
	if len(groups) == 0 {
		return []leaguestanding.Standing{}
	}

	rows := groups[0]
	out := make([]leaguestanding.Standing, 0, len(rows))
	for _, row := range rows {
		out = append(out, leaguestanding.Standing{
			Rank:        row.Rank,
			Team:        leaguestanding.Team{ID: row.Team.ID, Name: strings.TrimSpace(row.Team.Name), Logo: row.Team.Logo},
			Points:      row.Points,
			GoalsDiff:   row.GoalsDiff,
			Group:       row.Group,
			Form:        row.Form,
			Description: row.Description,
			All: leaguestanding.Record{
				Played:       row.All.Played,
				Win:          row.All.Win,
				Draw:         row.All.Draw,
				Lose:         row.All.Lose,
				GoalsFor:     row.All.Goals.For,
				GoalsAgainst: row.All.Goals.Against,
			},
		})
	}
	return out
}

func mapFixture(item fixtureItem) fixture.Fixture {
	venue := strings.TrimSpace(item.Fixture.Venue.Name)
	if city := strings.TrimSpace(item.Fixture.Venue.City); venue != "" && city != "" {
		venue += ", " + city
	}

	return fixture.Fixture{
		ID:      item.Fixture.ID,
		Kickoff: parseProviderDateTime(item.Fixture.Date),
		Home:    fixture.Team{ID: item.Teams.Home.ID, Name: strings.TrimSpace(item.Teams.Home.Name), Crest: item.Teams.Home.Logo},
		Away:    fixture.Team{ID: item.Teams.Away.ID, Name: strings.TrimSpace(item.Teams.Away.Name), Crest: item.Teams.Away.Logo},
		Status: fixture.Status{
			Short:   fixture.NormalizeStatus(item.Fixture.Status.Short),
			Long:    item.Fixture.Status.Long,
			Elapsed: derefInt(item.Fixture.Status.Elapsed),
		},
		Goals: fixture.Goals{
			Home: derefInt(item.Goals.Home),
			Away: derefInt(item.Goals.Away),
		},
		Round: item.League.Round,
		Venue: venue,
	}
}

func decode(raw []byte, target any, what string) error {
	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrapf(usecase.ErrUpstream, "decode apifootball %s: %v", what, err)
	}
	return nil
}

// parseProviderDateTime keeps the upstream offset; unparseable values become the zero time.
func parseProviderDateTime(raw string) time.Time {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05Z0700",
		"2006-01-02 15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func derefInt(v *int) int {
	if v == nil || *v < 0 {
		return 0
	}
	return *v
}
