package app

import (
	"io"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"aniresfr/internal/authapi"
	"aniresfr/internal/domain"
	"aniresfr/internal/logger"
	"aniresfr/internal/metrics"
	"aniresfr/internal/navigate"
	authsvc "aniresfr/internal/services/auth"
	"aniresfr/internal/store"
	"aniresfr/internal/validate"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Auth     *authsvc.Service
	Client   domain.AuthClient
	Sessions domain.SessionStore
	Log      logger.Logger
	Registry *prometheus.Registry
	HTTP     *http.Client

	cfg    Config
	closer io.Closer
}

// NewWire constructs the dependency graph from cfg. out receives navigation
// notices; logs go to stderr.
func NewWire(cfg Config, out io.Writer) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	sessions, closer, err := openSessionStore(cfg)
	if err != nil {
		return nil, err
	}

	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}
	client := authapi.NewHTTP(cfg.APIURL, httpClient)

	reg := prometheus.NewRegistry()
	svc := authsvc.New(
		client,
		sessions,
		navigate.NewWriter(cfg.AppURL, out),
		validate.Fields{},
		metrics.New(reg),
		log,
	)

	return &Wire{
		Auth:     svc,
		Client:   client,
		Sessions: sessions,
		Log:      log,
		Registry: reg,
		HTTP:     httpClient,
		cfg:      cfg,
		closer:   closer,
	}, nil
}

// Close writes the metrics file when configured and releases the store.
func (w *Wire) Close() error {
	var firstErr error
	if w.cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(w.cfg.MetricsFile, w.Registry); err != nil {
			firstErr = err
		}
	}
	if w.closer != nil {
		if err := w.closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func openSessionStore(cfg Config) (domain.SessionStore, io.Closer, error) {
	if cfg.SessionBackend == BackendRedis {
		rs, err := store.OpenRedisStore(cfg.RedisURL, "")
		if err != nil {
			return nil, nil, err
		}
		return rs, rs, nil
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, nil, err
	}
	if cfg.SessionPassphrase != "" {
		return store.NewSealedFileStore(cfg.Home, cfg.SessionPassphrase), nil, nil
	}
	return store.NewFileStore(cfg.Home), nil, nil
}
