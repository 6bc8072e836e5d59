package auth_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"aniresfr/internal/ctxkey"
	"aniresfr/internal/domain"
	"aniresfr/internal/metrics"
	"aniresfr/internal/navigate"
	"aniresfr/internal/services/auth"
	"aniresfr/internal/store"
)

// recorder captures every sink call in order.
type recorder struct {
	mu     sync.Mutex
	errors []string
	states []domain.ButtonState
}

func (r *recorder) ReportError(message string) {
	r.mu.Lock()
	r.errors = append(r.errors, message)
	r.mu.Unlock()
}

func (r *recorder) ReportButtonState(state domain.ButtonState) {
	r.mu.Lock()
	r.states = append(r.states, state)
	r.mu.Unlock()
}

// fakeClient answers with a fixed token or error and counts calls.
type fakeClient struct {
	mu           sync.Mutex
	token        domain.SessionToken
	err          error
	logins       []domain.LoginPayload
	registration []domain.RegistrationPayload
	requestIDs   []string
}

func (c *fakeClient) Login(ctx context.Context, p domain.LoginPayload) (domain.SessionToken, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logins = append(c.logins, p)
	c.requestIDs = append(c.requestIDs, requestID(ctx))
	return c.token, c.err
}

func (c *fakeClient) RegisterNGO(ctx context.Context, p domain.RegistrationPayload) (domain.SessionToken, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.registration = append(c.registration, p)
	c.requestIDs = append(c.requestIDs, requestID(ctx))
	return c.token, c.err
}

func (c *fakeClient) calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.logins) + len(c.registration)
}

// failingStore rejects every write.
type failingStore struct{ *store.MemoryStore }

func (failingStore) Set(context.Context, string, string) error { return errors.New("disk full") }

type harness struct {
	svc     *auth.Service
	client  *fakeClient
	store   *store.MemoryStore
	nav     *navigate.Recorder
	metrics *metrics.AuthMetrics
}

func newHarness(t *testing.T, client *fakeClient) *harness {
	t.Helper()
	h := &harness{
		client:  client,
		store:   store.NewMemoryStore(),
		nav:     &navigate.Recorder{},
		metrics: metrics.New(prometheus.NewRegistry()),
	}
	h.svc = auth.New(client, h.store, h.nav, nil, h.metrics, nil)
	return h
}

func validProfile() domain.RegistrationProfile {
	return domain.RegistrationProfile{
		OrgName:          "Paws",
		PhoneNumber:      "9876543210",
		Email:            "org@example.com",
		Password:         "secret",
		EmergencyContact: "+919123456780",
		Location:         "Pune",
		WebsiteLink:      "https://paws.example",
		Latitude:         18.52,
		Longitude:        73.85,
	}
}

func requestID(ctx context.Context) string { return ctxkey.GetString(ctx, ctxkey.RequestID) }
