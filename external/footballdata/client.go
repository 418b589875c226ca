package footballdata

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/riskibarqy/live-scores/external/upstream"
	"github.com/riskibarqy/live-scores/internal/domain/league"
	"github.com/riskibarqy/live-scores/internal/platform/logging"
	"github.com/riskibarqy/live-scores/internal/platform/resilience"
	"github.com/riskibarqy/live-scores/internal/usecase"
)

const (
	DefaultBaseURL = "https://api.football-data.org/v2"
	authHeader     = "X-Auth-Token"
)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads football-data.org v2. It has no per-match statistics or lineups.
type Client struct {
	http *upstream.Client
}

func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		http: upstream.NewClient(upstream.ClientConfig{
			Name:           "footballdata",
			HTTPClient:     cfg.HTTPClient,
			BaseURL:        baseURL,
			AuthHeader:     authHeader,
			Token:          cfg.Token,
			Timeout:        cfg.Timeout,
			MaxRetries:     cfg.MaxRetries,
			Logger:         cfg.Logger,
			CircuitBreaker: cfg.CircuitBreaker,
		}),
	}
}

func (c *Client) Fixtures(ctx context.Context, l league.League) (usecase.RawPayload, error) {
	return c.get(ctx, competitionPath(l, "matches"))
}

func (c *Client) Standings(ctx context.Context, l league.League) (usecase.RawPayload, error) {
	return c.get(ctx, competitionPath(l, "standings"))
}

func (c *Client) FixtureStatistics(_ context.Context, _ int64) (usecase.RawPayload, error) {
	return usecase.RawPayload{}, fmt.Errorf("%w: footballdata match statistics", usecase.ErrNotSupported)
}

func (c *Client) FixtureLineups(_ context.Context, _ int64) (usecase.RawPayload, error) {
	return usecase.RawPayload{}, fmt.Errorf("%w: footballdata lineups", usecase.ErrNotSupported)
}

func competitionPath(l league.League, resource string) string {
	code := l.CompetitionCode
	if code == "" {
		code = l.Code
	}
	return "/competitions/" + url.PathEscape(code) + "/" + resource
}

func (c *Client) get(ctx context.Context, path string) (usecase.RawPayload, error) {
	resp, err := c.http.Get(ctx, path, nil)
	if err != nil {
		return usecase.RawPayload{}, err
	}
	return usecase.RawPayload{ContentType: resp.ContentType, Body: resp.Body}, nil
}
