package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/live-scores/internal/domain/fixture"
	"github.com/riskibarqy/live-scores/internal/domain/league"
	"github.com/riskibarqy/live-scores/internal/domain/leaguestanding"
	"github.com/riskibarqy/live-scores/internal/domain/matchdetail"
	usecasemock "github.com/riskibarqy/live-scores/internal/mocks/usecase"
	"github.com/riskibarqy/live-scores/internal/usecase"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newScoreboard(t *testing.T) (*usecase.ScoreboardService, *usecasemock.RawSource, *usecasemock.PayloadDecoder) {
	t.Helper()

	source := usecasemock.NewRawSource(t)
	decoder := usecasemock.NewPayloadDecoder(t)
	service := usecase.NewScoreboardService(
		usecase.Feed{Source: source, Decoder: decoder},
		newRegistry(t),
		usecase.ScoreboardConfig{Location: time.UTC},
		nil,
	)
	return service, source, decoder
}

func TestScoreboardService_BoardRunsPipeline(t *testing.T) {
	t.Parallel()

	service, source, decoder := newScoreboard(t)
	raw := []byte(`{"response":[]}`)

	source.On("Fixtures", mock.Anything, mock.MatchedBy(func(l league.League) bool { return l.Code == "PL" })).
		Return(usecase.RawPayload{Body: raw}, nil).
		Once()
	decoder.On("DecodeFixtures", raw).
		Return([]fixture.Fixture{
			{ID: 1, Kickoff: time.Date(2024, 1, 3, 20, 0, 0, 0, time.UTC), Status: fixture.Status{Short: "FT"}},
			{ID: 2, Kickoff: time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC), Status: fixture.Status{Short: "FT"}},
		}, nil).
		Once()

	got, err := service.Board(context.Background(), "pl")
	require.NoError(t, err)
	require.Equal(t, "PL", got.League.Code)
	require.Equal(t, fixture.BoardModeResults, got.Board.Mode)
	require.Len(t, got.Board.Results, 1)
	require.EqualValues(t, 1, got.Board.Results[0].ID)
	require.True(t, got.Board.Upcoming.Fallback)
	require.False(t, got.FetchedAt.IsZero())
}

func TestScoreboardService_BoardPropagatesFeedErrors(t *testing.T) {
	t.Parallel()

	service, source, decoder := newScoreboard(t)
	raw := []byte(`<html>`)

	source.On("Fixtures", mock.Anything, mock.Anything).Return(usecase.RawPayload{Body: raw}, nil).Once()
	decoder.On("DecodeFixtures", raw).Return(nil, usecase.ErrUpstream).Once()

	_, err := service.Board(context.Background(), "PL")
	require.ErrorIs(t, err, usecase.ErrUpstream)

	_, err = service.Board(context.Background(), "")
	require.ErrorIs(t, err, usecase.ErrInvalidInput)
}

func TestScoreboardService_StandingsForCupHasNoTable(t *testing.T) {
	t.Parallel()

	service, _, _ := newScoreboard(t)

	table, err := service.Standings(context.Background(), "FAC")
	require.NoError(t, err)
	require.False(t, table.HasTable)
	require.NotNil(t, table.Rows)
	require.Empty(t, table.Rows)
}

func TestScoreboardService_Standings(t *testing.T) {
	t.Parallel()

	service, source, decoder := newScoreboard(t)
	raw := []byte(`{}`)
	rows := []leaguestanding.Standing{{Rank: 1, Team: leaguestanding.Team{Name: "Leicester"}, Points: 97}}

	source.On("Standings", mock.Anything, mock.Anything).Return(usecase.RawPayload{Body: raw}, nil).Once()
	decoder.On("DecodeStandings", raw).Return(rows, nil).Once()

	table, err := service.Standings(context.Background(), "CH")
	require.NoError(t, err)
	require.True(t, table.HasTable)
	require.Equal(t, "CH", table.LeagueCode)
	require.Equal(t, rows, table.Rows)
}

func TestScoreboardService_MatchDetails(t *testing.T) {
	t.Parallel()

	statsRaw := []byte(`stats`)
	lineRaw := []byte(`lineups`)
	stats := []matchdetail.TeamStatistics{{Team: "Burnley", Items: []matchdetail.Statistic{{Type: "Shots on Goal", Value: float64(1)}}}}
	lineups := []matchdetail.TeamLineup{{Team: "Burnley", Formation: "4-4-2"}}

	tests := []struct {
		name        string
		statsErr    error
		lineErr     error
		wantErr     error
		wantStats   int
		wantLineups int
	}{
		{name: "both sections", wantStats: 1, wantLineups: 1},
		{name: "stats failing degrades", statsErr: usecase.ErrUpstream, wantStats: 0, wantLineups: 1},
		{name: "lineups failing degrades", lineErr: usecase.ErrUpstream, wantStats: 1, wantLineups: 0},
		{name: "both failing", statsErr: usecase.ErrUpstream, lineErr: usecase.ErrUpstream, wantErr: usecase.ErrUpstream},
		{name: "provider without details", statsErr: usecase.ErrNotSupported, lineErr: usecase.ErrNotSupported, wantErr: usecase.ErrNotSupported},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			service, source, decoder := newScoreboard(t)
			source.On("FixtureStatistics", mock.Anything, int64(77)).Return(usecase.RawPayload{Body: statsRaw}, tc.statsErr).Once()
			source.On("FixtureLineups", mock.Anything, int64(77)).Return(usecase.RawPayload{Body: lineRaw}, tc.lineErr).Once()
			if tc.statsErr == nil {
				decoder.On("DecodeStatistics", statsRaw).Return(stats, nil).Once()
			}
			if tc.lineErr == nil {
				decoder.On("DecodeLineups", lineRaw).Return(lineups, nil).Once()
			}

			got, err := service.MatchDetails(context.Background(), "77")
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			require.NoError(t, err)
			require.EqualValues(t, 77, got.FixtureID)
			require.Len(t, got.Statistics, tc.wantStats)
			require.Len(t, got.Lineups, tc.wantLineups)
			require.NotNil(t, got.Statistics)
			require.NotNil(t, got.Lineups)
		})
	}
}
