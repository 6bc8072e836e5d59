package app

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Session backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

const (
	defaultAPIURL   = "https://aniresfr-backend.vercel.app"
	defaultAppURL   = "http://localhost:3000"
	defaultRedisURL = "redis://localhost:6379/0"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	APIURL            string        // auth service base URL
	AppURL            string        // application root that success navigates to
	Home              string        // config directory, e.g. $HOME/.aniresfr
	SessionBackend    string        // "file" or "redis"
	SessionPassphrase string        // seals the file store when set
	RedisURL          string        // used when SessionBackend is "redis"
	HTTPTimeout       time.Duration // 0 leaves timing to the transport
	LogLevel          string
	LogFormat         string
	MetricsFile       string       // Prometheus text file written after each command
	HTTP              *http.Client // optional; built from HTTPTimeout when nil
}

// LoadConfig reads .env (if present) and the environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		APIURL:            getEnv("ANIRESFR_API_URL", defaultAPIURL),
		AppURL:            getEnv("ANIRESFR_APP_URL", defaultAppURL),
		Home:              os.Getenv("ANIRESFR_HOME"),
		SessionBackend:    strings.ToLower(getEnv("ANIRESFR_SESSION_BACKEND", BackendFile)),
		SessionPassphrase: os.Getenv("ANIRESFR_SESSION_PASSPHRASE"),
		RedisURL:          getEnv("ANIRESFR_REDIS_URL", defaultRedisURL),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "text"),
		MetricsFile:       os.Getenv("ANIRESFR_METRICS_FILE"),
	}

	if raw := os.Getenv("ANIRESFR_HTTP_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d < 0 {
			return Config{}, fmt.Errorf("invalid ANIRESFR_HTTP_TIMEOUT %q", raw)
		}
		cfg.HTTPTimeout = d
	}

	if cfg.Home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		cfg.Home = filepath.Join(dir, ".aniresfr")
	}
	return cfg, nil
}

// Validate checks values that flags or the environment may have set.
func (c Config) Validate() error {
	switch c.SessionBackend {
	case BackendFile, BackendRedis:
	default:
		return fmt.Errorf("unknown session backend %q (want %s or %s)", c.SessionBackend, BackendFile, BackendRedis)
	}
	if c.APIURL == "" {
		return fmt.Errorf("auth service URL is empty")
	}
	if c.SessionBackend == BackendFile && c.Home == "" {
		return fmt.Errorf("home directory is empty")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
