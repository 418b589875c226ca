package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/live-scores/internal/domain/fixture"
	"github.com/riskibarqy/live-scores/internal/domain/league"
	"github.com/stretchr/testify/require"
)

type fakeBoards struct {
	mu    sync.Mutex
	calls map[string]int
	err   error
	block chan struct{}
}

func (f *fakeBoards) BoardFor(ctx context.Context, l league.League) (Scoreboard, error) {
	f.mu.Lock()
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[l.Code]++
	block := f.block
	err := f.err
	f.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return Scoreboard{}, ctx.Err()
		}
	}
	if err != nil {
		return Scoreboard{}, err
	}
	return Scoreboard{League: l, Board: fixture.Board{Mode: fixture.BoardModeResults}}, nil
}

var (
	premierLeague = league.League{Code: "PL", ProviderID: 39}
	championship  = league.League{Code: "CH", ProviderID: 40}
)

func newTestFeed(t *testing.T, boards BoardFetcher, buffer int) *LiveFeed {
	t.Helper()
	feed, err := NewLiveFeed(boards, LiveFeedConfig{
		Interval:         time.Hour,
		Leagues:          []league.League{premierLeague, championship},
		SubscriberBuffer: buffer,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(feed.Close)
	return feed
}

func receive(t *testing.T, ch <-chan LiveSnapshot) LiveSnapshot {
	t.Helper()
	select {
	case snap, ok := <-ch:
		if !ok {
			t.Fatalf("subscription closed unexpectedly")
		}
		return snap
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for snapshot")
	}
	return LiveSnapshot{}
}

func TestLiveFeed_TickPublishesToSubscribers(t *testing.T) {
	t.Parallel()

	feed := newTestFeed(t, &fakeBoards{}, 4)
	require.True(t, feed.Tracks("PL"))
	require.False(t, feed.Tracks("FAC"))

	ch, unsubscribe := feed.Subscribe("PL")
	defer unsubscribe()

	gen := feed.Tick(context.Background())
	snap := receive(t, ch)
	require.Equal(t, gen, snap.Generation)
	require.Equal(t, "PL", snap.League.Code)
	require.Empty(t, snap.Error)
	require.Equal(t, fixture.BoardModeResults, snap.Scoreboard.Board.Mode)

	latest, ok := feed.Latest("PL")
	require.True(t, ok)
	require.Equal(t, gen, latest.Generation)
}

func TestLiveFeed_SubscribeReplaysLatest(t *testing.T) {
	t.Parallel()

	feed := newTestFeed(t, &fakeBoards{}, 4)
	require.True(t, feed.publish(LiveSnapshot{League: championship, Generation: 3}))

	ch, unsubscribe := feed.Subscribe("CH")
	snap := receive(t, ch)
	require.EqualValues(t, 3, snap.Generation)

	unsubscribe()
	unsubscribe()
	_, open := <-ch
	require.False(t, open)
}

func TestLiveFeed_FailedFetchPublishesErrorSnapshot(t *testing.T) {
	t.Parallel()

	feed := newTestFeed(t, &fakeBoards{err: errors.New("upstream down")}, 4)
	ch, unsubscribe := feed.Subscribe("CH")
	defer unsubscribe()

	feed.Tick(context.Background())
	snap := receive(t, ch)
	require.Equal(t, LoadErrorMessage, snap.Error)
	require.Empty(t, snap.Scoreboard.League.Code)
}

func TestLiveFeed_PublishDropsStaleGenerations(t *testing.T) {
	t.Parallel()

	feed := newTestFeed(t, &fakeBoards{}, 4)

	require.True(t, feed.publish(LiveSnapshot{League: premierLeague, Generation: 5}))
	require.False(t, feed.publish(LiveSnapshot{League: premierLeague, Generation: 4}))
	require.True(t, feed.publish(LiveSnapshot{League: premierLeague, Generation: 5}))

	latest, _ := feed.Latest("PL")
	require.EqualValues(t, 5, latest.Generation)
	require.EqualValues(t, 1, feed.stale.Load())
}

func TestLiveFeed_SlowSubscriberDoesNotBlockPublish(t *testing.T) {
	t.Parallel()

	feed := newTestFeed(t, &fakeBoards{}, 1)
	ch, unsubscribe := feed.Subscribe("PL")
	defer unsubscribe()

	for gen := uint64(1); gen <= 3; gen++ {
		require.True(t, feed.publish(LiveSnapshot{League: premierLeague, Generation: gen}))
	}

	snap := receive(t, ch)
	require.EqualValues(t, 1, snap.Generation)
	require.EqualValues(t, 2, feed.dropped.Load())
}

func TestLiveFeed_NewTickCancelsPrevious(t *testing.T) {
	t.Parallel()

	boards := &fakeBoards{block: make(chan struct{})}
	feed := newTestFeed(t, boards, 4)
	ch, unsubscribe := feed.Subscribe("PL")
	defer unsubscribe()

	feed.Tick(context.Background())
	require.Eventually(t, func() bool {
		boards.mu.Lock()
		defer boards.mu.Unlock()
		return boards.calls["PL"] == 1
	}, 2*time.Second, 10*time.Millisecond)

	boards.mu.Lock()
	boards.block = nil
	boards.mu.Unlock()

	second := feed.Tick(context.Background())
	snap := receive(t, ch)
	require.Equal(t, second, snap.Generation)

	require.Eventually(t, func() bool { return feed.stale.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
}
