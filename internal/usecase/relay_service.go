package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/live-scores/internal/domain/league"
	"github.com/riskibarqy/live-scores/internal/platform/logging"
)

// RelayService forwards provider payloads untouched. The credential lives in the RawSource.
type RelayService struct {
	source   RawSource
	registry *league.Registry
	logger   *logging.Logger
}

func NewRelayService(source RawSource, registry *league.Registry, logger *logging.Logger) *RelayService {
	if logger == nil {
		logger = logging.Default()
	}
	return &RelayService{
		source:   source,
		registry: registry,
		logger:   logger.Named("relay"),
	}
}

func (s *RelayService) Matches(ctx context.Context, leagueRef string) (RawPayload, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RelayService.Matches")
	defer span.End()

	l, err := s.resolveLeague(leagueRef)
	if err != nil {
		return RawPayload{}, err
	}
	span.SetAttributes(leagueAttr(l))
	payload, err := s.source.Fixtures(ctx, l)
	if err != nil {
		failSpan(span, err)
		s.logger.ErrorContext(ctx, "relay fetch matches failed", "league", l.Code, "error", err)
		return RawPayload{}, fmt.Errorf("fetch matches league=%s: %w", l.Code, err)
	}
	return payload, nil
}

func (s *RelayService) Standings(ctx context.Context, leagueRef string) (RawPayload, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RelayService.Standings")
	defer span.End()

	l, err := s.resolveLeague(leagueRef)
	if err != nil {
		return RawPayload{}, err
	}
	span.SetAttributes(leagueAttr(l))
	payload, err := s.source.Standings(ctx, l)
	if err != nil {
		failSpan(span, err)
		s.logger.ErrorContext(ctx, "relay fetch standings failed", "league", l.Code, "error", err)
		return RawPayload{}, fmt.Errorf("fetch standings league=%s: %w", l.Code, err)
	}
	return payload, nil
}

func (s *RelayService) MatchStats(ctx context.Context, fixtureRef string) (RawPayload, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RelayService.MatchStats")
	defer span.End()

	fixtureID, err := ParseFixtureID(fixtureRef)
	if err != nil {
		return RawPayload{}, err
	}
	span.SetAttributes(fixtureAttr(fixtureID))
	payload, err := s.source.FixtureStatistics(ctx, fixtureID)
	if err != nil {
		failSpan(span, err)
		s.logger.ErrorContext(ctx, "relay fetch match stats failed", "fixture_id", fixtureID, "error", err)
		return RawPayload{}, fmt.Errorf("fetch match stats fixture=%d: %w", fixtureID, err)
	}
	return payload, nil
}

func (s *RelayService) Lineups(ctx context.Context, fixtureRef string) (RawPayload, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RelayService.Lineups")
	defer span.End()

	fixtureID, err := ParseFixtureID(fixtureRef)
	if err != nil {
		return RawPayload{}, err
	}
	span.SetAttributes(fixtureAttr(fixtureID))
	payload, err := s.source.FixtureLineups(ctx, fixtureID)
	if err != nil {
		failSpan(span, err)
		s.logger.ErrorContext(ctx, "relay fetch lineups failed", "fixture_id", fixtureID, "error", err)
		return RawPayload{}, fmt.Errorf("fetch lineups fixture=%d: %w", fixtureID, err)
	}
	return payload, nil
}

// resolveLeague treats an empty reference as the first registered league.
func (s *RelayService) resolveLeague(ref string) (league.League, error) {
	return resolveLeague(s.registry, ref, true)
}

func resolveLeague(registry *league.Registry, ref string, allowDefault bool) (league.League, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		leagues := registry.List()
		if !allowDefault || len(leagues) == 0 {
			return league.League{}, fmt.Errorf("%w: league is required", ErrInvalidInput)
		}
		return leagues[0], nil
	}

	l, ok := registry.Resolve(ref)
	if !ok {
		return league.League{}, fmt.Errorf("%w: unknown league %q", ErrInvalidInput, ref)
	}
	return l, nil
}

// ParseFixtureID accepts positive decimal ids only.
func ParseFixtureID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: fixture is required", ErrInvalidInput)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: fixture must be a positive integer", ErrInvalidInput)
	}
	return id, nil
}
