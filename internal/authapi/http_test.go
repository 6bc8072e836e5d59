package authapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"aniresfr/internal/authapi"
	"aniresfr/internal/ctxkey"
	"aniresfr/internal/domain"
)

type captured struct {
	method    string
	path      string
	header    http.Header
	body      map[string]any
	requestID string
}

func newServer(t *testing.T, status int, respBody string, got *captured) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		if got != nil {
			got.method = r.Method
			got.path = r.URL.Path
			got.header = r.Header.Clone()
			got.requestID = r.Header.Get("X-Request-ID")
			require.NoError(t, json.Unmarshal(raw, &got.body))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, respBody)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLogin_PostsCredentialsAndReturnsToken(t *testing.T) {
	var got captured
	srv := newServer(t, http.StatusOK, `{"token":"abc123"}`, &got)
	c := authapi.NewHTTP(srv.URL+"/", srv.Client())

	ctx := ctxkey.WithValue(context.Background(), ctxkey.RequestID, "req-42")
	token, err := c.Login(ctx, domain.LoginPayload{Email: "org@example.com", Password: "pw"})
	require.NoError(t, err)
	require.Equal(t, domain.SessionToken("abc123"), token)

	require.Equal(t, http.MethodPost, got.method)
	require.Equal(t, "/login/", got.path)
	require.Equal(t, "application/json", got.header.Get("Content-Type"))
	require.Equal(t, "req-42", got.requestID)
	require.Equal(t, map[string]any{"email": "org@example.com", "password": "pw"}, got.body)
}

func TestRegisterNGO_PostsPayloadFieldNames(t *testing.T) {
	var got captured
	srv := newServer(t, http.StatusCreated, `{"token":"reg-token"}`, &got)
	c := authapi.NewHTTP(srv.URL, srv.Client())

	payload := domain.NewRegistrationPayload(domain.RegistrationProfile{
		OrgName:          "Paws",
		PhoneNumber:      "9876543210",
		Email:            "org@example.com",
		Password:         "pw",
		EmergencyContact: "9123456780",
		Location:         "Pune",
		WebsiteLink:      "https://paws.example",
		Latitude:         18.52,
		Longitude:        73.85,
	})
	token, err := c.RegisterNGO(context.Background(), payload)
	require.NoError(t, err)
	require.Equal(t, domain.SessionToken("reg-token"), token)

	require.Equal(t, "/register/ngo", got.path)
	require.Empty(t, got.requestID)
	require.Equal(t, map[string]any{
		"name":                     "Paws",
		"phone_number":             "9876543210",
		"email":                    "org@example.com",
		"password":                 "pw",
		"emergency_contact_number": "9123456780",
		"animals_supported":        []any{},
		"website":                  "https://paws.example",
		"address":                  "temp",
		"latitude":                 18.52,
		"longitude":                73.85,
	}, got.body)
}

func TestServerErrorClassification(t *testing.T) {
	cases := []struct {
		name       string
		status     int
		body       string
		message    string
		structured bool
	}{
		{"structured", http.StatusBadRequest, `{"error":"Email already registered"}`, "Email already registered", true},
		{"no error field", http.StatusInternalServerError, `{"detail":"oops"}`, "", false},
		{"non-json body", http.StatusBadGateway, `<html>bad gateway</html>`, "", false},
		{"non-string error", http.StatusBadRequest, `{"error":{"code":7}}`, "", false},
		{"empty error", http.StatusUnauthorized, `{"error":""}`, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := newServer(t, tc.status, tc.body, nil)
			c := authapi.NewHTTP(srv.URL, srv.Client())

			_, err := c.Login(context.Background(), domain.LoginPayload{Email: "a@b.co"})
			var se *authapi.ServerError
			require.ErrorAs(t, err, &se)
			require.Equal(t, tc.status, se.StatusCode)
			require.Equal(t, tc.message, se.Message)
			require.Equal(t, tc.structured, se.Structured())
		})
	}
}

func TestSuccessWithoutToken(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{"detail":"ok"}`, nil)
	c := authapi.NewHTTP(srv.URL, srv.Client())

	_, err := c.Login(context.Background(), domain.LoginPayload{})
	require.ErrorIs(t, err, authapi.ErrMissingToken)
}

func TestSuccessWithMalformedBody(t *testing.T) {
	srv := newServer(t, http.StatusOK, `not json`, nil)
	c := authapi.NewHTTP(srv.URL, srv.Client())

	_, err := c.Login(context.Background(), domain.LoginPayload{})
	require.Error(t, err)
	var se *authapi.ServerError
	require.False(t, errors.As(err, &se))
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c := authapi.NewHTTP(base, nil)
	_, err := c.Login(context.Background(), domain.LoginPayload{})
	require.Error(t, err)
	var se *authapi.ServerError
	require.False(t, errors.As(err, &se))
}

func TestCanceledContext(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{"token":"t"}`, nil)
	c := authapi.NewHTTP(srv.URL, srv.Client())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Login(ctx, domain.LoginPayload{})
	require.ErrorIs(t, err, context.Canceled)
}
