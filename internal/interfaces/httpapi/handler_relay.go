package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) RelayMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.RelayMatches")
	defer span.End()

	req := relayLeagueQuery{League: strings.TrimSpace(r.URL.Query().Get("league"))}
	if err := h.validateRequest(ctx, req); err != nil {
		writeRelayError(ctx, w, "matches", err)
		return
	}

	payload, err := h.relayService.Matches(ctx, req.League)
	if err != nil {
		h.logger.WarnContext(ctx, "relay matches failed", "league", req.League, "error", err)
		writeRelayError(ctx, w, "matches", err)
		return
	}
	writeRaw(ctx, w, payload)
}

func (h *Handler) RelayStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.RelayStandings")
	defer span.End()

	req := relayLeagueQuery{League: strings.TrimSpace(r.URL.Query().Get("league"))}
	if err := h.validateRequest(ctx, req); err != nil {
		writeRelayError(ctx, w, "standings", err)
		return
	}

	payload, err := h.relayService.Standings(ctx, req.League)
	if err != nil {
		h.logger.WarnContext(ctx, "relay standings failed", "league", req.League, "error", err)
		writeRelayError(ctx, w, "standings", err)
		return
	}
	writeRaw(ctx, w, payload)
}

func (h *Handler) RelayMatchStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.RelayMatchStats")
	defer span.End()

	req := relayFixtureQuery{Fixture: strings.TrimSpace(r.URL.Query().Get("fixture"))}
	if err := h.validateRequest(ctx, req); err != nil {
		writeRelayError(ctx, w, "match stats", err)
		return
	}

	payload, err := h.relayService.MatchStats(ctx, req.Fixture)
	if err != nil {
		h.logger.WarnContext(ctx, "relay match stats failed", "fixture", req.Fixture, "error", err)
		writeRelayError(ctx, w, "match stats", err)
		return
	}
	writeRaw(ctx, w, payload)
}

func (h *Handler) RelayLineups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.RelayLineups")
	defer span.End()

	req := relayFixtureQuery{Fixture: strings.TrimSpace(r.URL.Query().Get("fixture"))}
	if err := h.validateRequest(ctx, req); err != nil {
		writeRelayError(ctx, w, "lineups", err)
		return
	}

	payload, err := h.relayService.Lineups(ctx, req.Fixture)
	if err != nil {
		h.logger.WarnContext(ctx, "relay lineups failed", "fixture", req.Fixture, "error", err)
		writeRelayError(ctx, w, "lineups", err)
		return
	}
	writeRaw(ctx, w, payload)
}
