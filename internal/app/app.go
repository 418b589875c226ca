package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/live-scores/external/apifootball"
	"github.com/riskibarqy/live-scores/external/footballdata"
	"github.com/riskibarqy/live-scores/external/relayclient"
	"github.com/riskibarqy/live-scores/internal/config"
	"github.com/riskibarqy/live-scores/internal/domain/league"
	"github.com/riskibarqy/live-scores/internal/interfaces/httpapi"
	"github.com/riskibarqy/live-scores/internal/platform/logging"
	"github.com/riskibarqy/live-scores/internal/usecase"
)

// App owns the HTTP server and the background live feed.
type App struct {
	Server   *http.Server
	liveFeed *usecase.LiveFeed
	logger   *logging.Logger
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	registry, err := league.NewRegistry(league.Defaults(), cfg.LeagueIDMap)
	if err != nil {
		return nil, fmt.Errorf("build league registry: %w", err)
	}

	feed, err := newFeed(cfg, logger)
	if err != nil {
		return nil, err
	}

	relaySvc := usecase.NewRelayService(feed.Source, registry, logger)
	scoreboardSvc := usecase.NewScoreboardService(feed, registry, usecase.ScoreboardConfig{
		Location: cfg.DisplayLocation,
	}, logger)

	tracked, err := trackedLeagues(registry, cfg.ScoreboardLeagues)
	if err != nil {
		return nil, err
	}
	liveFeed, err := usecase.NewLiveFeed(scoreboardSvc, usecase.LiveFeedConfig{
		Interval: cfg.ScoreboardPollInterval,
		Leagues:  tracked,
		Workers:  cfg.ScoreboardWorkers,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("build live feed: %w", err)
	}

	handler := httpapi.NewHandler(relaySvc, scoreboardSvc, liveFeed, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		liveFeed.Close()
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	logger.Info("app wired",
		"provider", cfg.UpstreamProvider,
		"source", cfg.ScoreboardSource,
		"tracked_leagues", len(tracked),
		"poll_interval", cfg.ScoreboardPollInterval.String(),
	)

	return &App{Server: server, liveFeed: liveFeed, logger: logger}, nil
}

// RunLiveFeed polls until ctx is done.
func (a *App) RunLiveFeed(ctx context.Context) error {
	return a.liveFeed.Run(ctx)
}

func (a *App) Close() {
	a.liveFeed.Close()
}

// newFeed picks the raw source (provider or relay) and the decoder for the configured provider.
// A relay forwards provider bodies untouched, so its payloads decode with the same decoder.
func newFeed(cfg config.Config, logger *logging.Logger) (usecase.Feed, error) {
	var decoder usecase.PayloadDecoder
	switch cfg.UpstreamProvider {
	case config.ProviderFootballData:
		decoder = footballdata.Decoder{}
	default:
		decoder = apifootball.Decoder{}
	}

	if cfg.ScoreboardSource == config.SourceRelay {
		client, err := relayclient.New(relayclient.Config{
			BaseURL:        cfg.ScoreboardRelayBaseURL,
			Timeout:        cfg.UpstreamTimeout,
			Logger:         logger,
			CircuitBreaker: cfg.UpstreamCircuit,
		})
		if err != nil {
			return usecase.Feed{}, fmt.Errorf("build relay client: %w", err)
		}
		return usecase.Feed{Source: client, Decoder: decoder}, nil
	}

	switch cfg.UpstreamProvider {
	case config.ProviderFootballData:
		return usecase.Feed{
			Source: footballdata.NewClient(footballdata.ClientConfig{
				BaseURL:        cfg.FootballDataBaseURL,
				Token:          cfg.FootballDataToken,
				Timeout:        cfg.UpstreamTimeout,
				MaxRetries:     cfg.UpstreamMaxRetries,
				Logger:         logger,
				CircuitBreaker: cfg.UpstreamCircuit,
			}),
			Decoder: decoder,
		}, nil
	default:
		return usecase.Feed{
			Source: apifootball.NewClient(apifootball.ClientConfig{
				BaseURL:        cfg.APIFootballBaseURL,
				Key:            cfg.APIFootballKey,
				Season:         cfg.APIFootballSeason,
				Timeout:        cfg.UpstreamTimeout,
				MaxRetries:     cfg.UpstreamMaxRetries,
				Logger:         logger,
				CircuitBreaker: cfg.UpstreamCircuit,
			}),
			Decoder: decoder,
		}, nil
	}
}

// trackedLeagues resolves the configured codes; an empty list tracks every registered league.
func trackedLeagues(registry *league.Registry, codes []string) ([]league.League, error) {
	if len(codes) == 0 {
		return registry.List(), nil
	}

	out := make([]league.League, 0, len(codes))
	seen := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		l, ok := registry.Resolve(code)
		if !ok {
			return nil, fmt.Errorf("SCOREBOARD_LEAGUES: unknown league %q", code)
		}
		if _, dup := seen[l.Code]; dup {
			continue
		}
		seen[l.Code] = struct{}{}
		out = append(out, l)
	}
	return out, nil
}
