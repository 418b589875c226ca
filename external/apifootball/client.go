package apifootball

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/riskibarqy/live-scores/external/upstream"
	"github.com/riskibarqy/live-scores/internal/domain/league"
	"github.com/riskibarqy/live-scores/internal/platform/logging"
	"github.com/riskibarqy/live-scores/internal/platform/resilience"
	"github.com/riskibarqy/live-scores/internal/usecase"
)

const (
	DefaultBaseURL = "https://v3.football.api-sports.io"
	DefaultSeason  = 2023
	authHeader     = "x-apisports-key"
)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Key            string
	Season         int
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads API-Football v3 and hands back bodies untouched.
type Client struct {
	http   *upstream.Client
	season int
}

func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	season := cfg.Season
	if season <= 0 {
		season = DefaultSeason
	}

	return &Client{
		http: upstream.NewClient(upstream.ClientConfig{
			Name:           "apifootball",
			HTTPClient:     cfg.HTTPClient,
			BaseURL:        baseURL,
			AuthHeader:     authHeader,
			Token:          cfg.Key,
			Timeout:        cfg.Timeout,
			MaxRetries:     cfg.MaxRetries,
			Logger:         cfg.Logger,
			CircuitBreaker: cfg.CircuitBreaker,
		}),
		season: season,
	}
}

func (c *Client) Fixtures(ctx context.Context, l league.League) (usecase.RawPayload, error) {
	return c.get(ctx, "/fixtures", c.leagueQuery(l))
}

func (c *Client) Standings(ctx context.Context, l league.League) (usecase.RawPayload, error) {
	return c.get(ctx, "/standings", c.leagueQuery(l))
}

func (c *Client) FixtureStatistics(ctx context.Context, fixtureID int64) (usecase.RawPayload, error) {
	return c.get(ctx, "/fixtures/statistics", fixtureQuery(fixtureID))
}

func (c *Client) FixtureLineups(ctx context.Context, fixtureID int64) (usecase.RawPayload, error) {
	return c.get(ctx, "/fixtures/lineups", fixtureQuery(fixtureID))
}

func (c *Client) leagueQuery(l league.League) url.Values {
	return url.Values{
		"league": {strconv.FormatInt(l.ProviderID, 10)},
		"season": {strconv.Itoa(c.season)},
	}
}

func fixtureQuery(fixtureID int64) url.Values {
	return url.Values{"fixture": {strconv.FormatInt(fixtureID, 10)}}
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (usecase.RawPayload, error) {
	resp, err := c.http.Get(ctx, path, query)
	if err != nil {
		return usecase.RawPayload{}, err
	}
	return usecase.RawPayload{ContentType: resp.ContentType, Body: resp.Body}, nil
}
