package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/gorilla/websocket"
	"github.com/riskibarqy/live-scores/internal/domain/fixture"
	"github.com/riskibarqy/live-scores/internal/domain/league"
	usecasemock "github.com/riskibarqy/live-scores/internal/mocks/usecase"
	"github.com/riskibarqy/live-scores/internal/usecase"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testDeps struct {
	source  *usecasemock.RawSource
	decoder *usecasemock.PayloadDecoder
	boards  *usecasemock.BoardFetcher
	feed    *usecase.LiveFeed
	router  http.Handler
}

func newTestRouter(t *testing.T) testDeps {
	t.Helper()

	registry, err := league.NewRegistry(league.Defaults(), nil)
	require.NoError(t, err)

	source := usecasemock.NewRawSource(t)
	decoder := usecasemock.NewPayloadDecoder(t)
	boards := usecasemock.NewBoardFetcher(t)

	pl, ok := registry.Resolve("PL")
	require.True(t, ok)
	feed, err := usecase.NewLiveFeed(boards, usecase.LiveFeedConfig{
		Interval: time.Hour,
		Leagues:  []league.League{pl},
	}, nil)
	require.NoError(t, err)
	t.Cleanup(feed.Close)

	handler := NewHandler(
		usecase.NewRelayService(source, registry, nil),
		usecase.NewScoreboardService(usecase.Feed{Source: source, Decoder: decoder}, registry, usecase.ScoreboardConfig{Location: time.UTC}, nil),
		feed,
		nil,
	)

	return testDeps{
		source:  source,
		decoder: decoder,
		boards:  boards,
		feed:    feed,
		router:  NewRouter(handler, nil, nil),
	}
}

func serve(router http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Origin", "https://scores.example.com")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRelayRoutes_PassBodyThrough(t *testing.T) {
	deps := newTestRouter(t)
	body := []byte(`{"get":"fixtures","response":[{"fixture":{"id":868078}}]}`)

	deps.source.
		On("Fixtures", mock.Anything, mock.MatchedBy(func(l league.League) bool { return l.Code == "PL" })).
		Return(usecase.RawPayload{ContentType: "application/json; charset=utf-8", Body: body}, nil).
		Twice()

	for _, target := range []string{"/matches?league=PL", "/api/matches"} {
		rec := serve(deps.router, target)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: got=%d want=%d", target, rec.Code, http.StatusOK)
		}
		require.Equal(t, body, rec.Body.Bytes())
		require.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
		require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestRelayRoutes_UpstreamFailure(t *testing.T) {
	deps := newTestRouter(t)

	deps.source.On("Standings", mock.Anything, mock.Anything).Return(usecase.RawPayload{}, usecase.ErrUpstream).Once()

	rec := serve(deps.router, "/api/standings?league=CH")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("got=%d want=%d", rec.Code, http.StatusBadGateway)
	}
	require.JSONEq(t, `{"error":"Failed to fetch standings"}`, rec.Body.String())
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRelayRoutes_InvalidInput(t *testing.T) {
	deps := newTestRouter(t)

	tests := []string{
		"/api/matches?league=SERIEA",
		"/api/matches?league=P%20L",
		"/api/matchstats",
		"/api/lineups?fixture=abc",
		"/lineups?fixture=0",
	}
	for _, target := range tests {
		rec := serve(deps.router, target)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: got=%d want=%d", target, rec.Code, http.StatusBadRequest)
		}
	}
}

func TestRelayRoutes_MatchStats(t *testing.T) {
	deps := newTestRouter(t)
	body := []byte(`{"response":[]}`)

	deps.source.On("FixtureStatistics", mock.Anything, int64(1035037)).Return(usecase.RawPayload{Body: body}, nil).Once()

	rec := serve(deps.router, "/api/matchstats?fixture=1035037")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, body, rec.Body.Bytes())
}

func TestListLeagues(t *testing.T) {
	deps := newTestRouter(t)

	rec := serve(deps.router, "/v1/leagues")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []leagueDTO `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, len(league.Defaults()))
	require.Equal(t, "PL", body.Data[0].Code)
	require.False(t, body.Data[len(body.Data)-1].HasTable)
}

func TestGetScoreboard(t *testing.T) {
	deps := newTestRouter(t)
	raw := []byte(`raw`)

	deps.source.On("Fixtures", mock.Anything, mock.Anything).Return(usecase.RawPayload{Body: raw}, nil).Once()
	deps.decoder.On("DecodeFixtures", raw).Return([]fixture.Fixture{
		{ID: 1, Kickoff: time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC), Status: fixture.Status{Short: "2H", Elapsed: 67}, Goals: fixture.Goals{Home: 2, Away: 1}},
		{ID: 2, Kickoff: time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC), Status: fixture.Status{Short: "FT"}},
	}, nil).Once()

	rec := serve(deps.router, "/v1/leagues/pl/scoreboard")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data scoreboardDTO `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "PL", body.Data.League.Code)
	require.Equal(t, "live", body.Data.Board.Mode)
	require.Len(t, body.Data.Board.Live, 1)
	require.Equal(t, "live", body.Data.Board.Live[0].Category)
	require.Equal(t, 67, body.Data.Board.Live[0].Status.Elapsed)
	require.Empty(t, body.Data.Board.Results)
}

func TestGetScoreboard_Errors(t *testing.T) {
	deps := newTestRouter(t)

	deps.source.On("Fixtures", mock.Anything, mock.Anything).Return(usecase.RawPayload{}, usecase.ErrUpstream).Once()

	rec := serve(deps.router, "/v1/leagues/PL/scoreboard")
	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), usecase.LoadErrorMessage))

	rec = serve(deps.router, "/v1/leagues/SERIEA/scoreboard")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetStandings_Cup(t *testing.T) {
	deps := newTestRouter(t)

	rec := serve(deps.router, "/v1/leagues/FAC/standings")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"apiVersion":"2.0","data":{"league":"FAC","hasTable":false,"rows":[]}}`, rec.Body.String())
}

func TestGetMatchDetails_InvalidFixture(t *testing.T) {
	deps := newTestRouter(t)

	rec := serve(deps.router, "/v1/fixtures/abc")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStreamLive_SendsLatestSnapshot(t *testing.T) {
	deps := newTestRouter(t)

	deps.boards.On("BoardFor", mock.Anything, mock.Anything).Return(usecase.Scoreboard{
		League: league.League{Code: "PL"},
		Board:  fixture.Board{Mode: fixture.BoardModeResults},
	}, nil).Once()

	gen := deps.feed.Tick(context.Background())
	require.Eventually(t, func() bool {
		_, ok := deps.feed.Latest("PL")
		return ok
	}, 2*time.Second, 10*time.Millisecond)

	server := httptest.NewServer(deps.router)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/v1/leagues/PL/live"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var frame liveFrameDTO
	require.NoError(t, sonic.Unmarshal(msg, &frame))
	require.Equal(t, "snapshot", frame.Type)
	require.Equal(t, "PL", frame.League)
	require.Equal(t, gen, frame.Generation)
	require.NotNil(t, frame.Scoreboard)
	require.Equal(t, "results", frame.Scoreboard.Board.Mode)
}

func TestStreamLive_UntrackedLeague(t *testing.T) {
	deps := newTestRouter(t)

	rec := serve(deps.router, "/v1/leagues/CH/live")
	require.Equal(t, http.StatusNotFound, rec.Code)
}
