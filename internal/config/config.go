package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/live-scores/internal/platform/logging"
	"github.com/riskibarqy/live-scores/internal/platform/resilience"
)

const (
	ProviderAPIFootball  = "apifootball"
	ProviderFootballData = "footballdata"

	SourceDirect = "direct"
	SourceRelay  = "relay"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	LogLevel           logging.Level
	CORSAllowedOrigins []string

	PprofEnabled               bool
	PprofAddr                  string
	UptraceEnabled             bool
	UptraceDSN                 string
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration

	UpstreamProvider    string
	APIFootballBaseURL  string
	APIFootballKey      string
	APIFootballSeason   int
	FootballDataBaseURL string
	FootballDataToken   string
	UpstreamTimeout     time.Duration
	UpstreamMaxRetries  int
	UpstreamCircuit     resilience.CircuitBreakerConfig
	// LeagueIDMap overrides API-Football league ids per league code, e.g. PL:39.
	LeagueIDMap map[string]int64

	ScoreboardSource       string
	ScoreboardRelayBaseURL string
	ScoreboardPollInterval time.Duration
	// ScoreboardLeagues lists the league codes the live feed polls; empty means every league.
	ScoreboardLeagues []string
	ScoreboardWorkers int
	DisplayTimezone   string
	// DisplayLocation is nil when DisplayTimezone is empty; kickoffs then keep upstream offsets.
	DisplayLocation *time.Location
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	provider, err := parseProvider(getEnv("UPSTREAM_PROVIDER", ProviderAPIFootball))
	if err != nil {
		return Config{}, err
	}
	source, err := parseSource(getEnv("SCOREBOARD_SOURCE", SourceDirect))
	if err != nil {
		return Config{}, err
	}

	apiFootballSeason, err := getEnvAsInt("API_FOOTBALL_SEASON", 2023)
	if err != nil {
		return Config{}, fmt.Errorf("parse API_FOOTBALL_SEASON: %w", err)
	}
	if apiFootballSeason < 1900 {
		return Config{}, fmt.Errorf("API_FOOTBALL_SEASON must be a four digit year")
	}

	upstreamTimeout, err := time.ParseDuration(getEnv("UPSTREAM_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPSTREAM_TIMEOUT: %w", err)
	}
	if upstreamTimeout <= 0 {
		return Config{}, fmt.Errorf("UPSTREAM_TIMEOUT must be > 0")
	}
	upstreamMaxRetries, err := getEnvAsInt("UPSTREAM_MAX_RETRIES", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPSTREAM_MAX_RETRIES: %w", err)
	}
	if upstreamMaxRetries < 0 {
		return Config{}, fmt.Errorf("UPSTREAM_MAX_RETRIES must be >= 0")
	}

	circuitEnabled, err := strconv.ParseBool(getEnv("UPSTREAM_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPSTREAM_CIRCUIT_ENABLED: %w", err)
	}
	circuitFailureCount, err := getEnvAsInt("UPSTREAM_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPSTREAM_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if circuitFailureCount < 1 {
		return Config{}, fmt.Errorf("UPSTREAM_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	circuitOpenTimeout, err := time.ParseDuration(getEnv("UPSTREAM_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPSTREAM_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if circuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("UPSTREAM_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	circuitHalfOpenMaxReq, err := getEnvAsInt("UPSTREAM_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPSTREAM_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if circuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("UPSTREAM_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	leagueIDMap, err := parseIDMap(getEnv("LEAGUE_ID_MAP", ""))
	if err != nil {
		return Config{}, fmt.Errorf("parse LEAGUE_ID_MAP: %w", err)
	}

	pollInterval, err := time.ParseDuration(getEnv("SCOREBOARD_POLL_INTERVAL", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SCOREBOARD_POLL_INTERVAL: %w", err)
	}
	if pollInterval < time.Second {
		return Config{}, fmt.Errorf("SCOREBOARD_POLL_INTERVAL must be >= 1s")
	}
	workers, err := getEnvAsInt("SCOREBOARD_WORKERS", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCOREBOARD_WORKERS: %w", err)
	}
	if workers < 0 {
		return Config{}, fmt.Errorf("SCOREBOARD_WORKERS must be >= 0")
	}

	displayTimezone := strings.TrimSpace(getEnv("DISPLAY_TIMEZONE", ""))
	var displayLocation *time.Location
	if displayTimezone != "" {
		displayLocation, err = time.LoadLocation(displayTimezone)
		if err != nil {
			return Config{}, fmt.Errorf("parse DISPLAY_TIMEZONE: %w", err)
		}
	}

	cfg := Config{
		AppEnv:                     appEnv,
		ServiceName:                getEnv("APP_SERVICE_NAME", "live-scores-api"),
		ServiceVersion:             getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                   getEnv("APP_HTTP_ADDR", portAddr(getEnv("PORT", "3000"))),
		ReadTimeout:                readTimeout,
		WriteTimeout:               writeTimeout,
		LogLevel:                   parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		CORSAllowedOrigins:         splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		PprofEnabled:               pprofEnabled,
		PprofAddr:                  pprofAddr,
		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
		UpstreamProvider:           provider,
		APIFootballBaseURL:         strings.TrimSpace(getEnv("API_FOOTBALL_BASE_URL", "https://v3.football.api-sports.io")),
		APIFootballKey:             strings.TrimSpace(getEnv("API_FOOTBALL_KEY", "")),
		APIFootballSeason:          apiFootballSeason,
		FootballDataBaseURL:        strings.TrimSpace(getEnv("FOOTBALL_DATA_BASE_URL", "https://api.football-data.org/v2")),
		FootballDataToken:          strings.TrimSpace(getEnv("FOOTBALL_DATA_TOKEN", "")),
		UpstreamTimeout:            upstreamTimeout,
		UpstreamMaxRetries:         upstreamMaxRetries,
		UpstreamCircuit: resilience.CircuitBreakerConfig{
			Enabled:          circuitEnabled,
			FailureThreshold: circuitFailureCount,
			OpenTimeout:      circuitOpenTimeout,
			HalfOpenMaxReq:   circuitHalfOpenMaxReq,
		},
		LeagueIDMap:            leagueIDMap,
		ScoreboardSource:       source,
		ScoreboardRelayBaseURL: strings.TrimSpace(getEnv("SCOREBOARD_RELAY_BASE_URL", "")),
		ScoreboardPollInterval: pollInterval,
		ScoreboardLeagues:      upperAll(splitCSV(getEnv("SCOREBOARD_LEAGUES", ""))),
		ScoreboardWorkers:      workers,
		DisplayTimezone:        displayTimezone,
		DisplayLocation:        displayLocation,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	if err := cfg.validateUpstream(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// validateUpstream checks that the selected source has what it needs. The relay source never
// holds a provider credential.
func (c Config) validateUpstream() error {
	if c.ScoreboardSource == SourceRelay {
		if c.ScoreboardRelayBaseURL == "" {
			return fmt.Errorf("SCOREBOARD_RELAY_BASE_URL is required when SCOREBOARD_SOURCE=relay")
		}
		if err := validateBaseURL(c.ScoreboardRelayBaseURL); err != nil {
			return fmt.Errorf("SCOREBOARD_RELAY_BASE_URL: %w", err)
		}
		if relayPointsAtSelf(c.ScoreboardRelayBaseURL, c.HTTPAddr) {
			return fmt.Errorf("SCOREBOARD_RELAY_BASE_URL %q points at this server (APP_HTTP_ADDR=%s); relay mode needs another instance running in direct mode", c.ScoreboardRelayBaseURL, c.HTTPAddr)
		}
		return nil
	}

	switch c.UpstreamProvider {
	case ProviderFootballData:
		if c.FootballDataToken == "" {
			return fmt.Errorf("FOOTBALL_DATA_TOKEN is required when UPSTREAM_PROVIDER=footballdata")
		}
		if err := validateBaseURL(c.FootballDataBaseURL); err != nil {
			return fmt.Errorf("FOOTBALL_DATA_BASE_URL: %w", err)
		}
	default:
		if c.APIFootballKey == "" {
			return fmt.Errorf("API_FOOTBALL_KEY is required when UPSTREAM_PROVIDER=apifootball")
		}
		if err := validateBaseURL(c.APIFootballBaseURL); err != nil {
			return fmt.Errorf("API_FOOTBALL_BASE_URL: %w", err)
		}
	}
	return nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("host is required")
	}
	return nil
}

// relayPointsAtSelf reports whether baseURL reaches this process's own listener. Only
// loopback and literal listen hosts are recognised.
func relayPointsAtSelf(baseURL, httpAddr string) bool {
	u, err := url.Parse(baseURL)
	if err != nil {
		return false
	}
	listenHost, listenPort, err := net.SplitHostPort(httpAddr)
	if err != nil {
		return false
	}

	relayPort := u.Port()
	if relayPort == "" {
		relayPort = "80"
		if u.Scheme == "https" {
			relayPort = "443"
		}
	}
	if relayPort != listenPort {
		return false
	}

	relayHost := strings.ToLower(u.Hostname())
	if strings.EqualFold(relayHost, listenHost) {
		return true
	}
	if listenHost == "" || isUnspecified(listenHost) || isLoopback(listenHost) {
		return isLoopback(relayHost) || isUnspecified(relayHost)
	}
	return false
}

func isLoopback(host string) bool {
	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

func isUnspecified(host string) bool {
	ip := net.ParseIP(host)
	return ip != nil && ip.IsUnspecified()
}

func parseProvider(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case ProviderAPIFootball, ProviderFootballData:
		return value, nil
	default:
		return "", fmt.Errorf("invalid UPSTREAM_PROVIDER %q: valid values are %s, %s", v, ProviderAPIFootball, ProviderFootballData)
	}
}

func parseSource(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case SourceDirect, SourceRelay:
		return value, nil
	default:
		return "", fmt.Errorf("invalid SCOREBOARD_SOURCE %q: valid values are %s, %s", v, SourceDirect, SourceRelay)
	}
}

// portAddr turns a bare PORT value into a listen address.
func portAddr(port string) string {
	port = strings.TrimSpace(port)
	if strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func upperAll(items []string) []string {
	for i := range items {
		items[i] = strings.ToUpper(items[i])
	}
	return items
}

func parseIDMap(raw string) (map[string]int64, error) {
	out := make(map[string]int64)
	parts := strings.Split(raw, ",")
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}

		segments := strings.SplitN(item, ":", 2)
		if len(segments) != 2 {
			return nil, fmt.Errorf("invalid map item %q, expected league_code:number", item)
		}

		key := strings.ToUpper(strings.TrimSpace(segments[0]))
		if key == "" {
			return nil, fmt.Errorf("empty league code in item %q", item)
		}
		value, err := strconv.ParseInt(strings.TrimSpace(segments[1]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number in item %q: %w", item, err)
		}
		if value <= 0 {
			return nil, fmt.Errorf("id must be > 0 in item %q", item)
		}

		out[key] = value
	}
	return out, nil
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
