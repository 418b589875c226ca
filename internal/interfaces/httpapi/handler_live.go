package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/gorilla/websocket"
	"github.com/riskibarqy/live-scores/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const (
	liveWriteWait  = 10 * time.Second
	livePongWait   = 60 * time.Second
	livePingPeriod = livePongWait * 9 / 10
)

// StreamLive upgrades to a websocket and pushes every live-feed snapshot for one league.
// The latest snapshot, when there is one, is sent first.
func (h *Handler) StreamLive(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.StreamLive")
	defer span.End()

	req := leaguePathRequest{League: strings.TrimSpace(r.PathValue("league"))}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	l, err := h.scoreboardService.ResolveLeague(req.League)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if h.liveFeed == nil || !h.liveFeed.Tracks(l.Code) {
		writeError(ctx, w, fmt.Errorf("%w: league %s is not streamed", usecase.ErrNotFound, l.Code))
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already answered the client.
		h.logger.WarnContext(ctx, "websocket upgrade failed", "league", l.Code, "error", err)
		return
	}
	defer conn.Close()

	snapshots, unsubscribe := h.liveFeed.Subscribe(l.Code)
	defer unsubscribe()

	h.logger.InfoContext(ctx, "live stream opened", "league", l.Code, "remote_addr", r.RemoteAddr)
	defer h.logger.InfoContext(ctx, "live stream closed", "league", l.Code, "remote_addr", r.RemoteAddr)

	closed := make(chan struct{})
	go drainClient(conn, closed)

	ping := time.NewTicker(livePingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-closed:
			return
		case <-ctx.Done():
			return
		case snap, ok := <-snapshots:
			if !ok {
				return
			}
			if err := writeLiveFrame(conn, snap); err != nil {
				h.logger.WarnContext(ctx, "live stream write failed", "league", l.Code, "error", err)
				return
			}
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(liveWriteWait)); err != nil {
				return
			}
		}
	}
}

// drainClient discards inbound frames so pongs and close frames are processed.
func drainClient(conn *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(livePongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(livePongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func writeLiveFrame(conn *websocket.Conn, snap usecase.LiveSnapshot) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(liveSnapshotToDTO(snap)); err != nil {
		return fmt.Errorf("encode live frame: %w", err)
	}
	if err := conn.SetWriteDeadline(time.Now().Add(liveWriteWait)); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, buf.B)
}
