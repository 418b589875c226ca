package usecase

import (
	"context"

	"github.com/riskibarqy/live-scores/internal/domain/fixture"
	"github.com/riskibarqy/live-scores/internal/domain/league"
	"github.com/riskibarqy/live-scores/internal/domain/leaguestanding"
	"github.com/riskibarqy/live-scores/internal/domain/matchdetail"
)

// RawPayload is an upstream body passed through unmodified.
type RawPayload struct {
	ContentType string
	Body        []byte
}

// RawSource fetches provider payloads, either from the provider itself or through a relay.
type RawSource interface {
	Fixtures(ctx context.Context, l league.League) (RawPayload, error)
	Standings(ctx context.Context, l league.League) (RawPayload, error)
	FixtureStatistics(ctx context.Context, fixtureID int64) (RawPayload, error)
	FixtureLineups(ctx context.Context, fixtureID int64) (RawPayload, error)
}

// PayloadDecoder normalizes one provider's payload shapes.
type PayloadDecoder interface {
	DecodeFixtures(raw []byte) ([]fixture.Fixture, error)
	DecodeStandings(raw []byte) ([]leaguestanding.Standing, error)
	DecodeStatistics(raw []byte) ([]matchdetail.TeamStatistics, error)
	DecodeLineups(raw []byte) ([]matchdetail.TeamLineup, error)
}

// Feed pairs a raw source with the decoder for the provider behind it.
type Feed struct {
	Source  RawSource
	Decoder PayloadDecoder
}

func (f Feed) Fixtures(ctx context.Context, l league.League) ([]fixture.Fixture, error) {
	raw, err := f.Source.Fixtures(ctx, l)
	if err != nil {
		return nil, err
	}
	return f.Decoder.DecodeFixtures(raw.Body)
}

func (f Feed) Standings(ctx context.Context, l league.League) ([]leaguestanding.Standing, error) {
	raw, err := f.Source.Standings(ctx, l)
	if err != nil {
		return nil, err
	}
	return f.Decoder.DecodeStandings(raw.Body)
}

func (f Feed) Statistics(ctx context.Context, fixtureID int64) ([]matchdetail.TeamStatistics, error) {
	raw, err := f.Source.FixtureStatistics(ctx, fixtureID)
	if err != nil {
		return nil, err
	}
	return f.Decoder.DecodeStatistics(raw.Body)
}

func (f Feed) Lineups(ctx context.Context, fixtureID int64) ([]matchdetail.TeamLineup, error) {
	raw, err := f.Source.FixtureLineups(ctx, fixtureID)
	if err != nil {
		return nil, err
	}
	return f.Decoder.DecodeLineups(raw.Body)
}
