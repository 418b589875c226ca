package footballdata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/live-scores/internal/domain/fixture"
	"github.com/riskibarqy/live-scores/internal/domain/league"
	"github.com/riskibarqy/live-scores/internal/usecase"
	"github.com/stretchr/testify/require"
)

func TestMapStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want string
		cat  fixture.Category
	}{
		{"SCHEDULED", "NS", fixture.CategoryScheduled},
		{"TIMED", "NS", fixture.CategoryScheduled},
		{"IN_PLAY", "IN_PLAY", fixture.CategoryLive},
		{"PAUSED", "HT", fixture.CategoryNone},
		{"FINISHED", "FT", fixture.CategoryFinished},
		{"POSTPONED", "POSTPONED", fixture.CategoryNone},
		{"cancelled", "CANCELLED", fixture.CategoryNone},
	}

	for _, tc := range tests {
		got := MapStatus(tc.raw)
		if got.Short != tc.want {
			t.Fatalf("map %q: got=%s want=%s", tc.raw, got.Short, tc.want)
		}
		if cat := fixture.Classify(fixture.Fixture{Status: got}); cat != tc.cat {
			t.Fatalf("classify %q: got=%s want=%s", tc.raw, cat, tc.cat)
		}
	}
}

func TestDecodeFixtures_V2AndV4Scores(t *testing.T) {
	t.Parallel()

	payload := `{"matches":[
	  {"id":1,"utcDate":"2023-08-11T19:00:00Z","status":"FINISHED","matchday":1,
	   "homeTeam":{"id":328,"name":"Burnley FC"},"awayTeam":{"id":65,"name":"Manchester City FC"},
	   "score":{"fullTime":{"homeTeam":0,"awayTeam":3}}},
	  {"id":2,"utcDate":"2023-08-12T12:30:00Z","status":"FINISHED","matchday":1,
	   "homeTeam":{"id":57,"name":"Arsenal FC","crest":"https://crests.football-data.org/57.png"},"awayTeam":{"id":351,"name":"Nottingham Forest FC"},
	   "score":{"fullTime":{"home":2,"away":1}}},
	  {"id":3,"utcDate":"2023-08-19T14:00:00Z","status":"TIMED","matchday":null,
	   "homeTeam":{"name":"Everton FC"},"awayTeam":{"name":"Fulham FC"},"score":{"fullTime":{"home":null,"away":null}}}
	]}`

	got, err := Decoder{}.DecodeFixtures([]byte(payload))
	require.NoError(t, err)
	require.Len(t, got, 3)

	require.Equal(t, fixture.Goals{Home: 0, Away: 3}, got[0].Goals)
	require.Equal(t, "Matchday 1", got[0].Round)
	require.Equal(t, fixture.Goals{Home: 2, Away: 1}, got[1].Goals)
	require.Equal(t, "https://crests.football-data.org/57.png", got[1].Home.Crest)
	require.Equal(t, fixture.Goals{}, got[2].Goals)
	require.Empty(t, got[2].Round)
	require.Equal(t, fixture.StatusNotStarted, got[2].Status.Short)
	require.True(t, got[0].Kickoff.Equal(time.Date(2023, 8, 11, 19, 0, 0, 0, time.UTC)))
}

func TestDecodeStandings(t *testing.T) {
	t.Parallel()

	got, err := Decoder{}.DecodeStandings([]byte(`{"standings":[{"type":"TOTAL","group":null,"table":[
	  {"position":1,"team":{"id":65,"name":"Manchester City FC","crestUrl":"mci.svg"},"playedGames":38,"form":"W,W,W,W,D",
	   "won":28,"draw":5,"lost":5,"points":89,"goalsFor":94,"goalsAgainst":33,"goalDifference":61}]}]}`))
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "WWWWD", got[0].Form)
	require.Equal(t, "mci.svg", got[0].Team.Logo)
	require.Equal(t, 38, got[0].All.Played)

	empty, err := Decoder{}.DecodeStandings([]byte(`{"standings":[]}`))
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)
}

func TestDetailsAreNotSupported(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.DecodeStatistics(nil)
	require.True(t, errors.Is(err, usecase.ErrNotSupported))

	client := NewClient(ClientConfig{BaseURL: "http://127.0.0.1:0"})
	_, err = client.FixtureLineups(context.Background(), 1)
	require.ErrorIs(t, err, usecase.ErrNotSupported)
}

func TestClient_CompetitionPaths(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Auth-Token") != "tok" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		_, _ = w.Write([]byte(r.URL.Path))
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{HTTPClient: &http.Client{Timeout: time.Second}, BaseURL: srv.URL, Token: "tok"})
	raw, err := client.Fixtures(context.Background(), league.League{Code: "CH", CompetitionCode: "ELC"})
	require.NoError(t, err)
	require.Equal(t, "/competitions/ELC/matches", string(raw.Body))

	raw, err = client.Standings(context.Background(), league.League{Code: "PL"})
	require.NoError(t, err)
	require.Equal(t, "/competitions/PL/standings", string(raw.Body))
}
