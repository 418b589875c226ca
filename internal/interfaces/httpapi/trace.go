package httpapi

import (
	"context"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("github.com/riskibarqy/live-scores/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		// Filtered routes (health, websocket) carry no parent; skip helper roots.
		return ctx, noopSpan
	}
	if !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name)
}

// startHandlerSpan tags the handler span with the league or fixture the request is about.
func startHandlerSpan(r *http.Request, name string) (context.Context, trace.Span) {
	ctx, span := startSpan(r.Context(), name)
	if attrs := requestScopeAttrs(r); len(attrs) > 0 {
		span.SetAttributes(attrs...)
	}
	return ctx, span
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
}

// requestScopeAttrs reads the league from /v1 paths or the relay's ?league=, and the fixture
// from /v1/fixtures/{fixtureID} or the relay's ?fixture=.
func requestScopeAttrs(r *http.Request) []attribute.KeyValue {
	var attrs []attribute.KeyValue

	leagueRef := strings.TrimSpace(r.PathValue("league"))
	if leagueRef == "" {
		leagueRef = strings.TrimSpace(r.URL.Query().Get("league"))
	}
	if leagueRef != "" {
		attrs = append(attrs, attribute.String("scores.league", strings.ToUpper(leagueRef)))
	}

	fixtureRef := strings.TrimSpace(r.PathValue("fixtureID"))
	if fixtureRef == "" {
		fixtureRef = strings.TrimSpace(r.URL.Query().Get("fixture"))
	}
	if fixtureRef != "" {
		attrs = append(attrs, attribute.String("scores.fixture_id", fixtureRef))
	}
	return attrs
}
