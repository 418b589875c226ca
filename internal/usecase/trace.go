package usecase

import (
	"context"
	"strings"

	"github.com/riskibarqy/live-scores/internal/domain/league"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("github.com/riskibarqy/live-scores/usecase")
var usecaseNoopSpan = trace.SpanFromContext(context.Background())

const (
	attrLeague     = attribute.Key("scores.league")
	attrFixtureID  = attribute.Key("scores.fixture_id")
	attrGeneration = attribute.Key("scores.generation")
)

// liveFeedSpanPrefix marks background refreshes, which start their own trace.
const liveFeedSpanPrefix = "usecase.LiveFeed."

func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if !shouldStartUsecaseSpan(ctx, name) {
		return ctx, usecaseNoopSpan
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// shouldStartUsecaseSpan nests request work under its caller's span and lets live feed
// refreshes open a root span.
func shouldStartUsecaseSpan(ctx context.Context, name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	if trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return true
	}
	return strings.HasPrefix(name, liveFeedSpanPrefix)
}

func leagueAttr(l league.League) attribute.KeyValue {
	return attrLeague.String(l.Code)
}

func fixtureAttr(id int64) attribute.KeyValue {
	return attrFixtureID.Int64(id)
}

// failSpan records err on span; upstream detail stays in the span, not in responses.
func failSpan(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
