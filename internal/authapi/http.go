package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"aniresfr/internal/ctxkey"
	"aniresfr/internal/domain"
)

const (
	loginPath    = "/login/"
	registerPath = "/register/ngo"

	requestIDHeader = "X-Request-ID"

	// maxBodyBytes caps how much of a response body is read.
	maxBodyBytes = 1 << 20
)

// ErrMissingToken is returned when a 2xx response carries no token.
var ErrMissingToken = errors.New("authapi: response carries no token")

// ServerError is a non-2xx response from the auth service.
type ServerError struct {
	StatusCode int
	// Message is the structured "error" field of the body, or "" when the
	// body had none.
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("auth service returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("auth service returned %d", e.StatusCode)
}

// Structured reports whether the service described the failure itself.
func (e *ServerError) Structured() bool { return e.Message != "" }

// HTTP talks to the auth service over JSON/HTTP.
type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for base. A nil hc falls back to http.DefaultClient.
func NewHTTP(base string, hc *http.Client) *HTTP {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: hc}
}

// Login posts credentials to /login/.
func (c *HTTP) Login(ctx context.Context, p domain.LoginPayload) (domain.SessionToken, error) {
	return c.postToken(ctx, loginPath, p)
}

// RegisterNGO posts a registration payload to /register/ngo.
func (c *HTTP) RegisterNGO(ctx context.Context, p domain.RegistrationPayload) (domain.SessionToken, error) {
	return c.postToken(ctx, registerPath, p)
}

type tokenResponse struct {
	Token string `json:"token"`
}

type errorResponse struct {
	Error json.RawMessage `json:"error"`
}

func (c *HTTP) postToken(ctx context.Context, path string, in any) (domain.SessionToken, error) {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return "", fmt.Errorf("authapi: encode %s: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return "", fmt.Errorf("authapi: build %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if id := ctxkey.GetString(ctx, ctxkey.RequestID); id != "" {
		req.Header.Set(requestIDHeader, id)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("authapi: post %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("authapi: read %s response: %w", path, err)
	}
	if resp.StatusCode/100 != 2 {
		return "", &ServerError{StatusCode: resp.StatusCode, Message: errorMessage(body)}
	}

	var out tokenResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("authapi: decode %s response: %w", path, err)
	}
	if out.Token == "" {
		return "", ErrMissingToken
	}
	return domain.SessionToken(out.Token), nil
}

// errorMessage extracts a non-empty string "error" field from body.
func errorMessage(body []byte) string {
	var er errorResponse
	if err := json.Unmarshal(body, &er); err != nil || len(er.Error) == 0 {
		return ""
	}
	var msg string
	if err := json.Unmarshal(er.Error, &msg); err != nil {
		return ""
	}
	return msg
}

var _ domain.AuthClient = (*HTTP)(nil)
