package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/live-scores/internal/platform/logging"
	"github.com/riskibarqy/live-scores/internal/platform/resilience"
	"github.com/riskibarqy/live-scores/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/singleflight"
)

const maxBodyBytes = 6 << 20

var errTransient = crerr.New("upstream transient failure")
var secretParamRegex = regexp.MustCompile(`(?i)\b(api_token|apikey|api_key|token|key)=[^&\s"']+`)

var secretParams = map[string]struct{}{
	"api_token": {},
	"apikey":    {},
	"api_key":   {},
	"token":     {},
	"key":       {},
}

type ClientConfig struct {
	// Name tags logs and spans, e.g. "apifootball".
	Name           string
	HTTPClient     *http.Client
	BaseURL        string
	AuthHeader     string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Response is an upstream reply as received. Body is shared between de-duplicated callers
// and must not be modified.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// Client performs credentialed GET requests against one upstream API.
type Client struct {
	name       string
	httpClient *http.Client
	baseURL    string
	authHeader string
	token      string
	maxRetries int
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
	flight     singleflight.Group
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		name = "upstream"
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport,
				otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
					return name + " GET " + r.URL.Path
				}),
			),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	breaker := resilience.NewCircuitBreakerFromConfig(cfg.CircuitBreaker)
	client := &Client{
		name:       name,
		httpClient: httpClient,
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		authHeader: strings.TrimSpace(cfg.AuthHeader),
		token:      strings.TrimSpace(cfg.Token),
		maxRetries: max(cfg.MaxRetries, 0),
		logger:     logger.Named(name),
		breaker:    breaker,
	}
	breaker.OnStateChange(func(from, to resilience.CircuitState) {
		client.logger.Warn("upstream circuit breaker state changed", "from", string(from), "to", string(to))
	})

	return client
}

func (c *Client) Name() string {
	return c.name
}

// Get fetches path with query. Non-2xx replies are errors wrapping usecase.ErrUpstream.
// Identical concurrent calls share one request; it runs detached from any single caller, so a
// caller giving up neither fails the others nor counts against the breaker.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (Response, error) {
	encoded := query.Encode()
	fullURL := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if encoded != "" {
		fullURL += "?" + encoded
	}
	if err := ctx.Err(); err != nil {
		return Response{}, crerr.Wrapf(usecase.ErrUpstream, "request aborted: %v", err)
	}

	ch := c.flight.DoChan(fullURL, func() (any, error) {
		flightCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.flightBudget())
		defer cancel()

		var resp Response
		err := c.breaker.Do(func() error {
			out, err := c.executeRequest(flightCtx, fullURL)
			resp = out
			return err
		}, isCircuitFailure)
		return resp, err
	})

	select {
	case <-ctx.Done():
		return Response{}, crerr.Wrapf(usecase.ErrUpstream, "request aborted: %v", ctx.Err())
	case res := <-ch:
		if res.Shared {
			c.logger.DebugContext(ctx, "upstream request de-duplicated", "url", redactURL(fullURL))
		}
		if res.Err != nil {
			if crerr.Is(res.Err, resilience.ErrCircuitOpen) {
				c.logger.WarnContext(ctx, "upstream circuit breaker rejected request", "state", string(c.breaker.State()))
				return Response{}, fmt.Errorf("%w: %s is temporarily unavailable", usecase.ErrDependencyUnavailable, c.name)
			}
			return Response{}, res.Err
		}
		return res.Val.(Response), nil
	}
}

// flightBudget bounds a detached request: every attempt at the client timeout plus the backoffs.
func (c *Client) flightBudget() time.Duration {
	backoff := time.Duration(c.maxRetries*(c.maxRetries+1)/2) * time.Second
	return time.Duration(c.maxRetries+1)*c.httpClient.Timeout + backoff
}

// GetJSON fetches and decodes into target, returning the raw body as well.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, target any) ([]byte, error) {
	resp, err := c.Get(ctx, path, query)
	if err != nil {
		return nil, err
	}
	if err := sonic.Unmarshal(resp.Body, target); err != nil {
		return nil, crerr.Wrapf(usecase.ErrUpstream, "decode %s payload: %v", c.name, err)
	}
	return resp.Body, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) (Response, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return Response{}, crerr.Wrapf(usecase.ErrUpstream, "build request: %v", err)
		}
		req.Header.Set("accept", "application/json")
		if c.authHeader != "" && c.token != "" {
			req.Header.Set(c.authHeader, c.token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = transient(crerr.Wrapf(usecase.ErrUpstream, "send request: %s", c.sanitize(err.Error())))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = transient(crerr.Wrapf(usecase.ErrUpstream, "read response body: %v", readErr))
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return Response{
					StatusCode:  resp.StatusCode,
					ContentType: resp.Header.Get("Content-Type"),
					Body:        raw,
				}, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = transient(crerr.Wrapf(usecase.ErrUpstream, "provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw)))
			default:
				lastErr = crerr.Wrapf(usecase.ErrUpstream, "provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
				c.logger.WarnContext(ctx, "upstream request rejected", "url", redactURL(fullURL), "status", resp.StatusCode)
				return Response{}, lastErr
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return Response{}, crerr.Wrapf(usecase.ErrUpstream, "%v", ctx.Err())
		case <-timer.C:
		}
	}

	c.logger.WarnContext(ctx, "upstream request failed", "url", redactURL(fullURL), "error", lastErr)
	return Response{}, lastErr
}

func (c *Client) sanitize(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if c.token != "" {
		value = strings.ReplaceAll(value, c.token, "REDACTED")
	}
	return secretParamRegex.ReplaceAllString(value, "$1=REDACTED")
}

func transient(err error) error {
	return crerr.Mark(err, errTransient)
}

// IsTransient reports failures worth retrying or counting against the breaker.
func IsTransient(err error) bool {
	return err != nil && crerr.Is(err, errTransient)
}

func isCircuitFailure(err error) bool {
	return IsTransient(err)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func redactURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return secretParamRegex.ReplaceAllString(rawURL, "$1=REDACTED")
	}
	query := parsed.Query()
	changed := false
	for key := range query {
		if _, secret := secretParams[strings.ToLower(key)]; secret {
			query.Set(key, "REDACTED")
			changed = true
		}
	}
	if changed {
		parsed.RawQuery = query.Encode()
	}
	return parsed.String()
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
