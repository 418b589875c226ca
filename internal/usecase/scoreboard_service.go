package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/live-scores/internal/domain/fixture"
	"github.com/riskibarqy/live-scores/internal/domain/league"
	"github.com/riskibarqy/live-scores/internal/domain/leaguestanding"
	"github.com/riskibarqy/live-scores/internal/domain/matchdetail"
	"github.com/riskibarqy/live-scores/internal/platform/logging"
	"github.com/sourcegraph/conc"
)

// Scoreboard is one league's board at FetchedAt.
type Scoreboard struct {
	League    league.League
	Board     fixture.Board
	FetchedAt time.Time
}

type ScoreboardConfig struct {
	// Location is the display timezone for match-day grouping; nil keeps upstream offsets.
	Location *time.Location
}

// ScoreboardService fetches fresh fixtures per call and runs the classification pipeline.
type ScoreboardService struct {
	feed     Feed
	registry *league.Registry
	location *time.Location
	logger   *logging.Logger
	now      func() time.Time
}

func NewScoreboardService(feed Feed, registry *league.Registry, cfg ScoreboardConfig, logger *logging.Logger) *ScoreboardService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ScoreboardService{
		feed:     feed,
		registry: registry,
		location: cfg.Location,
		logger:   logger.Named("scoreboard"),
		now:      time.Now,
	}
}

func (s *ScoreboardService) Leagues() []league.League {
	return s.registry.List()
}

func (s *ScoreboardService) ResolveLeague(ref string) (league.League, error) {
	return resolveLeague(s.registry, ref, false)
}

func (s *ScoreboardService) Board(ctx context.Context, leagueRef string) (Scoreboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreboardService.Board")
	defer span.End()

	l, err := s.ResolveLeague(leagueRef)
	if err != nil {
		return Scoreboard{}, err
	}
	return s.BoardFor(ctx, l)
}

// BoardFor skips league resolution; the live feed calls it with registry entries.
func (s *ScoreboardService) BoardFor(ctx context.Context, l league.League) (Scoreboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreboardService.BoardFor", leagueAttr(l))
	defer span.End()

	fixtures, err := s.feed.Fixtures(ctx, l)
	if err != nil {
		failSpan(span, err)
		s.logger.WarnContext(ctx, "fetch fixtures failed", "league", l.Code, "error", err)
		return Scoreboard{}, fmt.Errorf("fetch fixtures league=%s: %w", l.Code, err)
	}

	return Scoreboard{
		League:    l,
		Board:     fixture.BuildBoard(fixtures, fixture.BoardOptions{Location: s.location}),
		FetchedAt: s.now().UTC(),
	}, nil
}

func (s *ScoreboardService) Standings(ctx context.Context, leagueRef string) (leaguestanding.Table, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreboardService.Standings")
	defer span.End()

	l, err := s.ResolveLeague(leagueRef)
	if err != nil {
		return leaguestanding.Table{}, err
	}

	span.SetAttributes(leagueAttr(l))
	table := leaguestanding.Table{LeagueCode: l.Code, HasTable: l.HasTable(), Rows: []leaguestanding.Standing{}}
	if !l.HasTable() {
		return table, nil
	}

	rows, err := s.feed.Standings(ctx, l)
	if err != nil {
		failSpan(span, err)
		s.logger.WarnContext(ctx, "fetch standings failed", "league", l.Code, "error", err)
		return leaguestanding.Table{}, fmt.Errorf("fetch standings league=%s: %w", l.Code, err)
	}
	table.Rows = rows
	return table, nil
}

// MatchDetails fetches statistics and lineups concurrently. One failing section comes back
// empty; both failing is an error.
func (s *ScoreboardService) MatchDetails(ctx context.Context, fixtureRef string) (matchdetail.Details, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreboardService.MatchDetails")
	defer span.End()

	fixtureID, err := ParseFixtureID(fixtureRef)
	if err != nil {
		return matchdetail.Details{}, err
	}
	span.SetAttributes(fixtureAttr(fixtureID))

	var (
		stats    []matchdetail.TeamStatistics
		lineups  []matchdetail.TeamLineup
		statsErr error
		lineErr  error
		wg       conc.WaitGroup
	)
	wg.Go(func() {
		stats, statsErr = s.feed.Statistics(ctx, fixtureID)
	})
	wg.Go(func() {
		lineups, lineErr = s.feed.Lineups(ctx, fixtureID)
	})
	wg.Wait()

	if statsErr != nil && lineErr != nil {
		failSpan(span, statsErr)
		s.logger.WarnContext(ctx, "fetch match details failed", "fixture_id", fixtureID, "stats_error", statsErr, "lineups_error", lineErr)
		if errors.Is(statsErr, ErrNotSupported) && errors.Is(lineErr, ErrNotSupported) {
			return matchdetail.Details{}, fmt.Errorf("match details fixture=%d: %w", fixtureID, statsErr)
		}
		return matchdetail.Details{}, fmt.Errorf("match details fixture=%d: %w", fixtureID, errors.Join(statsErr, lineErr))
	}
	if statsErr != nil {
		s.logger.WarnContext(ctx, "fetch match statistics failed, serving lineups only", "fixture_id", fixtureID, "error", statsErr)
		stats = nil
	}
	if lineErr != nil {
		s.logger.WarnContext(ctx, "fetch lineups failed, serving statistics only", "fixture_id", fixtureID, "error", lineErr)
		lineups = nil
	}

	return matchdetail.Details{
		FixtureID:  fixtureID,
		Statistics: nonNil(stats),
		Lineups:    nonNil(lineups),
	}, nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
