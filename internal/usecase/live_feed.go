package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/live-scores/internal/domain/league"
	"github.com/riskibarqy/live-scores/internal/platform/logging"
)

// LoadErrorMessage is what viewers see when a tick could not load a league.
const LoadErrorMessage = "unable to load matches"

const (
	defaultPollInterval     = 30 * time.Second
	defaultSubscriberBuffer = 4
)

// BoardFetcher builds a fresh board for one league.
type BoardFetcher interface {
	BoardFor(ctx context.Context, l league.League) (Scoreboard, error)
}

// LiveSnapshot is one published board. Error is set, and Scoreboard empty, when the fetch failed.
type LiveSnapshot struct {
	League      league.League
	Scoreboard  Scoreboard
	Error       string
	Generation  uint64
	PublishedAt time.Time
}

type LiveFeedConfig struct {
	Interval         time.Duration
	Leagues          []league.League
	Workers          int
	SubscriberBuffer int
}

type liveSubscription struct {
	ch chan LiveSnapshot
}

// LiveFeed polls every tracked league on a fixed interval and fans boards out to subscribers.
//
// Each tick cancels the previous tick's in-flight fetches and carries a generation number;
// a result older than the newest one published for its league is dropped.
type LiveFeed struct {
	boards   BoardFetcher
	interval time.Duration
	leagues  []league.League
	buffer   int
	logger   *logging.Logger
	pool     *ants.Pool
	now      func() time.Time

	generation atomic.Uint64
	dropped    atomic.Uint64
	stale      atomic.Uint64

	tickMu     sync.Mutex
	cancelTick context.CancelFunc

	mu     sync.Mutex
	latest map[string]LiveSnapshot
	subs   map[string]map[*liveSubscription]struct{}
}

func NewLiveFeed(boards BoardFetcher, cfg LiveFeedConfig, logger *logging.Logger) (*LiveFeed, error) {
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("livefeed")

	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	buffer := cfg.SubscriberBuffer
	if buffer < 1 {
		buffer = defaultSubscriberBuffer
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = max(len(cfg.Leagues), 1)
	}

	pool, err := ants.NewPool(workers, ants.WithPanicHandler(func(p any) {
		logger.Error("live feed job panicked", "panic", fmt.Sprint(p))
	}))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}

	leagues := make([]league.League, len(cfg.Leagues))
	copy(leagues, cfg.Leagues)

	return &LiveFeed{
		boards:   boards,
		interval: interval,
		leagues:  leagues,
		buffer:   buffer,
		logger:   logger,
		pool:     pool,
		now:      time.Now,
		latest:   make(map[string]LiveSnapshot, len(leagues)),
		subs:     make(map[string]map[*liveSubscription]struct{}, len(leagues)),
	}, nil
}

// Tracks reports whether code is polled by this feed.
func (f *LiveFeed) Tracks(code string) bool {
	for _, l := range f.leagues {
		if l.Code == code {
			return true
		}
	}
	return false
}

// Run ticks immediately and then every interval until ctx is done.
func (f *LiveFeed) Run(ctx context.Context) error {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()
	defer f.cancelInFlight()

	f.logger.InfoContext(ctx, "live feed started", "interval", f.interval.String(), "leagues", len(f.leagues))
	f.Tick(ctx)
	for {
		select {
		case <-ctx.Done():
			f.logger.InfoContext(ctx, "live feed stopped",
				"dropped_snapshots", f.dropped.Load(),
				"stale_results", f.stale.Load(),
			)
			return nil
		case <-ticker.C:
			f.Tick(ctx)
		}
	}
}

// Tick starts a new generation, cancelling whatever the previous one still has in flight.
func (f *LiveFeed) Tick(parent context.Context) uint64 {
	gen := f.generation.Add(1)
	ctx, cancel := context.WithCancel(parent)

	f.tickMu.Lock()
	if f.cancelTick != nil {
		f.cancelTick()
	}
	f.cancelTick = cancel
	f.tickMu.Unlock()

	for _, l := range f.leagues {
		if err := f.pool.Submit(func() { f.refresh(ctx, gen, l) }); err != nil {
			f.logger.WarnContext(ctx, "submit live feed job failed", "league", l.Code, "generation", gen, "error", err)
		}
	}
	return gen
}

func (f *LiveFeed) refresh(ctx context.Context, gen uint64, l league.League) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveFeed.refresh", leagueAttr(l), attrGeneration.Int64(int64(gen)))
	defer span.End()

	board, err := f.boards.BoardFor(ctx, l)
	if ctx.Err() != nil {
		// Superseded by a newer tick or shutting down.
		f.stale.Add(1)
		return
	}

	snap := LiveSnapshot{
		League:      l,
		Generation:  gen,
		PublishedAt: f.now().UTC(),
	}
	if err != nil {
		failSpan(span, err)
		f.logger.WarnContext(ctx, "live feed refresh failed", "league", l.Code, "generation", gen, "error", err)
		snap.Error = LoadErrorMessage
	} else {
		snap.Scoreboard = board
	}
	f.publish(snap)
}

// publish stores snap as the league's latest and offers it to every subscriber without blocking.
func (f *LiveFeed) publish(snap LiveSnapshot) bool {
	code := snap.League.Code

	f.mu.Lock()
	defer f.mu.Unlock()

	if prev, ok := f.latest[code]; ok && prev.Generation > snap.Generation {
		f.stale.Add(1)
		return false
	}
	f.latest[code] = snap

	for sub := range f.subs[code] {
		select {
		case sub.ch <- snap:
		default:
			f.dropped.Add(1)
		}
	}
	return true
}

// Latest returns the newest snapshot published for code.
func (f *LiveFeed) Latest(code string) (LiveSnapshot, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	snap, ok := f.latest[code]
	return snap, ok
}

// Subscribe streams snapshots for one league, starting with the latest if any. The returned
// func unsubscribes and closes the channel; it is safe to call more than once.
func (f *LiveFeed) Subscribe(code string) (<-chan LiveSnapshot, func()) {
	sub := &liveSubscription{ch: make(chan LiveSnapshot, f.buffer)}

	f.mu.Lock()
	if f.subs[code] == nil {
		f.subs[code] = make(map[*liveSubscription]struct{})
	}
	f.subs[code][sub] = struct{}{}
	if snap, ok := f.latest[code]; ok {
		sub.ch <- snap
	}
	f.mu.Unlock()

	var once sync.Once
	return sub.ch, func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.subs[code], sub)
			close(sub.ch)
			f.mu.Unlock()
		})
	}
}

// Close stops in-flight fetches and releases the worker pool.
func (f *LiveFeed) Close() {
	f.cancelInFlight()
	f.pool.Release()
}

func (f *LiveFeed) cancelInFlight() {
	f.tickMu.Lock()
	defer f.tickMu.Unlock()
	if f.cancelTick != nil {
		f.cancelTick()
		f.cancelTick = nil
	}
}
