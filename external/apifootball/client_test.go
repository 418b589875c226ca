package apifootball

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/live-scores/internal/domain/league"
	"github.com/stretchr/testify/require"
)

func TestClient_RequestsCarryLeagueSeasonAndKey(t *testing.T) {
	t.Parallel()

	var (
		mu   sync.Mutex
		seen []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-apisports-key") != "k" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		mu.Lock()
		seen = append(seen, r.URL.RequestURI())
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response":[]}`))
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{
		HTTPClient: &http.Client{Timeout: time.Second},
		BaseURL:    srv.URL,
		Key:        "k",
		Season:     2025,
	})
	pl := league.League{Code: "PL", ProviderID: 39}

	ctx := context.Background()
	raw, err := client.Fixtures(ctx, pl)
	require.NoError(t, err)
	require.Equal(t, `{"response":[]}`, string(raw.Body))
	require.Equal(t, "application/json", raw.ContentType)

	_, err = client.Standings(ctx, pl)
	require.NoError(t, err)
	_, err = client.FixtureStatistics(ctx, 1035037)
	require.NoError(t, err)
	_, err = client.FixtureLineups(ctx, 1035037)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{
		"/fixtures?league=39&season=2025",
		"/standings?league=39&season=2025",
		"/fixtures/statistics?fixture=1035037",
		"/fixtures/lineups?fixture=1035037",
	}, seen)
}
