package config

import (
	"os"
	"strconv"
	"time"
)

// Config is built once at process start and read-only afterwards. The API
// server and the pinger load the same struct; each uses the fields it needs.
type Config struct {
	Addr        string // API bind address, e.g., ":10000"
	FrontendURL string // CORS allow-list entry; empty allows all origins (dev)
	JWTSecret   string // HS256 signing key for session tokens
	LogDir      string // logs directory

	// Pinger
	BackendURL    string        // base URL of the backend to keep alive
	PingPath      string        // health endpoint path on the backend
	PingInterval  time.Duration // spacing between check starts
	PingTimeout   time.Duration // per-check request timeout
	SlackWebhook  string        // empty disables downtime alerts
	AlertCooldown time.Duration // minimum gap between repeated DOWN alerts

	// Registration rate limiting (0 disables)
	AuthRPM   int
	AuthBurst int
}

func FromEnv() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "10000"
	}

	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	backend := os.Getenv("BACKEND_URL")
	if backend == "" {
		// the hosted deployment the keep-alive loop was written for
		backend = "https://velour-sub002.onrender.com"
	}

	pingPath := os.Getenv("PING_PATH")
	if pingPath == "" {
		pingPath = "/api/ping"
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		// preflight treats an empty secret as fatal for real deploys
		secret = "velour-dev-secret"
	}

	return Config{
		Addr:          ":" + port,
		FrontendURL:   os.Getenv("FRONTEND_URL"),
		JWTSecret:     secret,
		LogDir:        logDir,
		BackendURL:    backend,
		PingPath:      pingPath,
		PingInterval:  envDurationMS("PING_INTERVAL_MS", 5*time.Minute),
		PingTimeout:   envDurationMS("PING_TIMEOUT_MS", 30*time.Second),
		SlackWebhook:  os.Getenv("SLACK_WEBHOOK_URL"),
		AlertCooldown: envDurationMS("ALERT_COOLDOWN_MS", 15*time.Minute),
		AuthRPM:       envInt("AUTH_RPM", 120),
		AuthBurst:     envInt("AUTH_BURST", 30),
	}
}

func envInt(name string, def int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func envDurationMS(name string, def time.Duration) time.Duration {
	if v := os.Getenv(name); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return def
}
