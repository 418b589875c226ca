package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

// registerRelayRoutes serves the pass-through endpoints both at the root and under /api.
func registerRelayRoutes(mux *http.ServeMux, handler *Handler) {
	for _, prefix := range []string{"", "/api"} {
		mux.HandleFunc("GET "+prefix+"/matches", handler.RelayMatches)
		mux.HandleFunc("GET "+prefix+"/standings", handler.RelayStandings)
		mux.HandleFunc("GET "+prefix+"/matchstats", handler.RelayMatchStats)
		mux.HandleFunc("GET "+prefix+"/lineups", handler.RelayLineups)
	}
}

func registerScoreboardRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{league}/scoreboard", handler.GetScoreboard)
	mux.HandleFunc("GET /v1/leagues/{league}/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/leagues/{league}/live", handler.StreamLive)
	mux.HandleFunc("GET /v1/fixtures/{fixtureID}", handler.GetMatchDetails)
}
