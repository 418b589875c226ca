package app

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/live-scores/external/apifootball"
	"github.com/riskibarqy/live-scores/external/footballdata"
	"github.com/riskibarqy/live-scores/external/relayclient"
	"github.com/riskibarqy/live-scores/internal/config"
	"github.com/riskibarqy/live-scores/internal/domain/league"
	"github.com/riskibarqy/live-scores/internal/platform/logging"
	"github.com/stretchr/testify/require"
)

func TestTrackedLeagues(t *testing.T) {
	registry, err := league.NewRegistry(league.Defaults(), nil)
	require.NoError(t, err)

	all, err := trackedLeagues(registry, nil)
	require.NoError(t, err)
	require.Len(t, all, len(league.Defaults()))

	some, err := trackedLeagues(registry, []string{"CH", "39", "ch"})
	require.NoError(t, err)
	require.Len(t, some, 2)
	require.Equal(t, "CH", some[0].Code)
	require.Equal(t, "PL", some[1].Code)

	_, err = trackedLeagues(registry, []string{"SERIEA"})
	require.Error(t, err)
}

func TestNewFeed_SelectsSourceAndDecoder(t *testing.T) {
	tests := []struct {
		name       string
		cfg        config.Config
		assertions func(t *testing.T, source any, decoder any)
	}{
		{
			name: "direct apifootball",
			cfg:  config.Config{UpstreamProvider: config.ProviderAPIFootball, ScoreboardSource: config.SourceDirect, APIFootballKey: "k"},
			assertions: func(t *testing.T, source any, decoder any) {
				require.IsType(t, &apifootball.Client{}, source)
				require.IsType(t, apifootball.Decoder{}, decoder)
			},
		},
		{
			name: "direct footballdata",
			cfg:  config.Config{UpstreamProvider: config.ProviderFootballData, ScoreboardSource: config.SourceDirect, FootballDataToken: "t"},
			assertions: func(t *testing.T, source any, decoder any) {
				require.IsType(t, &footballdata.Client{}, source)
				require.IsType(t, footballdata.Decoder{}, decoder)
			},
		},
		{
			name: "relay decodes provider payloads",
			cfg: config.Config{
				UpstreamProvider:       config.ProviderFootballData,
				ScoreboardSource:       config.SourceRelay,
				ScoreboardRelayBaseURL: "http://relay.internal:3000",
			},
			assertions: func(t *testing.T, source any, decoder any) {
				require.IsType(t, &relayclient.Client{}, source)
				require.IsType(t, footballdata.Decoder{}, decoder)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feed, err := newFeed(tt.cfg, logging.NewNop())
			require.NoError(t, err)
			tt.assertions(t, feed.Source, feed.Decoder)
		})
	}
}

func TestNew_WiresServer(t *testing.T) {
	cfg := config.Config{
		HTTPAddr:               ":0",
		ReadTimeout:            time.Second,
		WriteTimeout:           time.Second,
		CORSAllowedOrigins:     []string{"*"},
		UpstreamProvider:       config.ProviderAPIFootball,
		ScoreboardSource:       config.SourceDirect,
		APIFootballKey:         "k",
		ScoreboardPollInterval: time.Hour,
		ScoreboardLeagues:      []string{"PL"},
	}

	a, err := New(cfg, logging.NewNop())
	require.NoError(t, err)
	defer a.Close()
	require.NotNil(t, a.Server.Handler)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, a.RunLiveFeed(ctx))
}

func TestNew_RejectsUnknownLeagueOverride(t *testing.T) {
	cfg := config.Config{
		HTTPAddr:         ":0",
		UpstreamProvider: config.ProviderAPIFootball,
		ScoreboardSource: config.SourceDirect,
		LeagueIDMap:      map[string]int64{"SERIEA": 135},
	}

	_, err := New(cfg, logging.NewNop())
	require.Error(t, err)
}
