package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/live-scores/internal/config"
	"github.com/riskibarqy/live-scores/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "live-scores-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitUptrace(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestObservability_DisabledIsNoop(t *testing.T) {
	cfg := config.Config{PprofEnabled: false, PyroscopeEnabled: false}

	srv, err := StartPprofServer(cfg, logging.NewNop())
	if err != nil || srv != nil {
		t.Fatalf("expected no pprof server, got srv=%v err=%v", srv, err)
	}
	if err := StopPprofServer(nil, nil, 0); err != nil {
		t.Fatalf("stop nil pprof server: %v", err)
	}

	stop, err := InitPyroscope(cfg, nil)
	if err != nil {
		t.Fatalf("init pyroscope: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop pyroscope: %v", err)
	}
}

func TestProfilerTags(t *testing.T) {
	tags := profilerTags(config.Config{
		AppEnv:           config.EnvProd,
		ServiceName:      "live-scores-api",
		UpstreamProvider: config.ProviderFootballData,
		ScoreboardSource: config.SourceRelay,
	})
	if tags["provider"] != config.ProviderFootballData || tags["source"] != config.SourceRelay {
		t.Fatalf("got=%v want provider and source tags", tags)
	}

	bare := profilerTags(config.Config{AppEnv: config.EnvDev, ServiceName: "live-scores-api"})
	if _, ok := bare["provider"]; ok {
		t.Fatalf("got=%v want no provider tag", bare)
	}
	if len(bare) != 2 {
		t.Fatalf("got=%d want=%d tags", len(bare), 2)
	}
}

func TestPprofMux_ServesProfilesOnly(t *testing.T) {
	mux := pprofMux()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("got=%d want=%d", rec.Code, http.StatusOK)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/matches", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("got=%d want=%d", rec.Code, http.StatusNotFound)
	}
}
