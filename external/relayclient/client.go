package relayclient

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/live-scores/internal/domain/league"
	"github.com/riskibarqy/live-scores/internal/platform/logging"
	"github.com/riskibarqy/live-scores/internal/platform/resilience"
	"github.com/riskibarqy/live-scores/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
)

const maxBodyBytes = 6 << 20

var errRelayTransient = crerr.New("relay transient failure")

type Config struct {
	BaseURL        string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads provider payloads through a relay instance's /api routes.
type Client struct {
	http    *fasthttp.Client
	baseURL string
	timeout time.Duration
	logger  *logging.Logger
	breaker *resilience.CircuitBreaker
}

func New(cfg Config) (*Client, error) {
	baseURL, err := validateHTTPBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, crerr.Wrap(err, "invalid SCOREBOARD_RELAY_BASE_URL")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	return &Client{
		http: &fasthttp.Client{
			Name:                "live-scores-relayclient",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxResponseBodySize: maxBodyBytes,
		},
		baseURL: baseURL,
		timeout: timeout,
		logger:  logger.Named("relayclient"),
		breaker: resilience.NewCircuitBreakerFromConfig(cfg.CircuitBreaker),
	}, nil
}

func (c *Client) Fixtures(ctx context.Context, l league.League) (usecase.RawPayload, error) {
	return c.get(ctx, "/api/matches", "league", l.Code)
}

func (c *Client) Standings(ctx context.Context, l league.League) (usecase.RawPayload, error) {
	return c.get(ctx, "/api/standings", "league", l.Code)
}

func (c *Client) FixtureStatistics(ctx context.Context, fixtureID int64) (usecase.RawPayload, error) {
	return c.get(ctx, "/api/matchstats", "fixture", strconv.FormatInt(fixtureID, 10))
}

func (c *Client) FixtureLineups(ctx context.Context, fixtureID int64) (usecase.RawPayload, error) {
	return c.get(ctx, "/api/lineups", "fixture", strconv.FormatInt(fixtureID, 10))
}

func (c *Client) get(ctx context.Context, path, param, value string) (usecase.RawPayload, error) {
	if err := ctx.Err(); err != nil {
		return usecase.RawPayload{}, crerr.Wrapf(usecase.ErrUpstream, "relay request aborted: %v", err)
	}

	target := c.buildURL(path, param, value)
	var out usecase.RawPayload
	err := c.breaker.Do(func() error {
		payload, err := c.do(ctx, target)
		out = payload
		return err
	}, isRelayCircuitFailure)
	if err != nil {
		if crerr.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "relay circuit breaker rejected request", "state", string(c.breaker.State()))
			return usecase.RawPayload{}, crerr.Wrap(usecase.ErrDependencyUnavailable, "relay is temporarily unavailable")
		}
		c.logger.WarnContext(ctx, "relay request failed", "url", target, "error", err)
		return usecase.RawPayload{}, err
	}
	return out, nil
}

type relayResult struct {
	payload usecase.RawPayload
	err     error
}

// do runs the fasthttp call on its own goroutine so a cancelled ctx releases the caller at once;
// the abandoned call still ends at its deadline.
func (c *Client) do(ctx context.Context, target string) (usecase.RawPayload, error) {
	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	done := make(chan relayResult, 1)
	go func() {
		payload, err := c.send(target, deadline)
		done <- relayResult{payload: payload, err: err}
	}()

	select {
	case <-ctx.Done():
		return usecase.RawPayload{}, crerr.Wrapf(usecase.ErrUpstream, "relay request aborted: %v", ctx.Err())
	case res := <-done:
		return res.payload, res.err
	}
}

func (c *Client) send(target string, deadline time.Time) (usecase.RawPayload, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(target)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		return usecase.RawPayload{}, crerr.Mark(crerr.Wrapf(usecase.ErrUpstream, "send relay request: %v", err), errRelayTransient)
	}

	status := resp.StatusCode()
	body := resp.Body()
	switch {
	case status >= 200 && status < 300:
		return usecase.RawPayload{
			ContentType: string(resp.Header.ContentType()),
			Body:        append([]byte(nil), body...),
		}, nil
	case status == fasthttp.StatusNotImplemented:
		return usecase.RawPayload{}, crerr.Wrapf(usecase.ErrNotSupported, "relay status=%d body=%s", status, abbreviateBody(body))
	case status == fasthttp.StatusTooManyRequests || status >= fasthttp.StatusInternalServerError:
		return usecase.RawPayload{}, crerr.Mark(crerr.Wrapf(usecase.ErrUpstream, "relay status=%d body=%s", status, abbreviateBody(body)), errRelayTransient)
	default:
		return usecase.RawPayload{}, crerr.Wrapf(usecase.ErrUpstream, "relay status=%d body=%s", status, abbreviateBody(body))
	}
}

func (c *Client) buildURL(path, param, value string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(c.baseURL)
	_, _ = buf.WriteString(path)
	_ = buf.WriteByte('?')
	_, _ = buf.WriteString(url.QueryEscape(param))
	_ = buf.WriteByte('=')
	_, _ = buf.WriteString(url.QueryEscape(value))

	return buf.String()
}

func validateHTTPBaseURL(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", crerr.New("value is empty")
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", crerr.Wrapf(err, "parse %q", candidate)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", crerr.Newf("%q uses unsupported scheme=%q; expected http or https", candidate, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", crerr.Newf("%q has empty host", candidate)
	}

	return strings.TrimRight(candidate, "/"), nil
}

func isRelayCircuitFailure(err error) bool {
	return err != nil && crerr.Is(err, errRelayTransient)
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
