package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"aniresfr/internal/authapi"
	"aniresfr/internal/crypto"
	"aniresfr/internal/ctxkey"
	"aniresfr/internal/domain"
	"aniresfr/internal/logger"
	"aniresfr/internal/metrics"
	"aniresfr/internal/validate"
)

const (
	// SessionKey is the storage key the issued token is written under.
	SessionKey = "csrftoken"
	// RootPath is where a successful attempt navigates.
	RootPath = "/"
)

// Messages reported through the error sink.
const (
	MsgInvalidEmail            = "Enter a valid email address."
	MsgInvalidPhone            = "Enter a valid phone number."
	MsgInvalidEmergencyContact = "Enter a valid emergency contact number."
	MsgLoginFailed             = "An error occurred while logging in."
	MsgRegistrationFailed      = "An error occurred while registering."
)

// Service is the auth orchestrator.
type Service struct {
	client    domain.AuthClient
	store     domain.SessionStore
	nav       domain.Navigator
	validator domain.FieldValidator
	metrics   *metrics.AuthMetrics
	log       logger.Logger
	newID     func() string
	now       func() time.Time
}

// New returns a Service. A nil validator uses the validate package
// predicates; a nil logger discards; nil metrics record nothing.
func New(
	client domain.AuthClient,
	store domain.SessionStore,
	nav domain.Navigator,
	validator domain.FieldValidator,
	m *metrics.AuthMetrics,
	log logger.Logger,
) *Service {
	if validator == nil {
		validator = validate.Fields{}
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Service{
		client:    client,
		store:     store,
		nav:       nav,
		validator: validator,
		metrics:   m,
		log:       log.With("component", "auth"),
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

// Login runs one login attempt. The email is trimmed before it is checked
// and sent.
func (s *Service) Login(ctx context.Context, creds domain.Credentials, r domain.Reporter) domain.AuthOutcome {
	creds.Email = strings.TrimSpace(creds.Email)
	if !s.validator.IsValidEmail(creds.Email) {
		return s.reject(ctx, domain.OperationLogin, MsgInvalidEmail, r)
	}

	payload := domain.LoginPayload{Email: creds.Email, Password: creds.Password}
	return s.submit(ctx, domain.OperationLogin, MsgLoginFailed, r,
		func(ctx context.Context) (domain.SessionToken, error) {
			return s.client.Login(ctx, payload)
		})
}

// Register runs one organisation registration attempt. Fields are checked in
// order: email, phone number, emergency contact. The email is trimmed before
// it is checked and sent.
func (s *Service) Register(ctx context.Context, p domain.RegistrationProfile, r domain.Reporter) domain.AuthOutcome {
	p.Email = strings.TrimSpace(p.Email)
	switch {
	case !s.validator.IsValidEmail(p.Email):
		return s.reject(ctx, domain.OperationRegistration, MsgInvalidEmail, r)
	case !s.validator.IsValidPhoneNumber(p.PhoneNumber):
		return s.reject(ctx, domain.OperationRegistration, MsgInvalidPhone, r)
	case !s.validator.IsValidPhoneNumber(p.EmergencyContact):
		return s.reject(ctx, domain.OperationRegistration, MsgInvalidEmergencyContact, r)
	}

	payload := domain.NewRegistrationPayload(p)
	return s.submit(ctx, domain.OperationRegistration, MsgRegistrationFailed, r,
		func(ctx context.Context) (domain.SessionToken, error) {
			return s.client.RegisterNGO(ctx, payload)
		})
}

// reject reports a local validation failure. The button state is left alone.
func (s *Service) reject(ctx context.Context, op domain.Operation, msg string, r domain.Reporter) domain.AuthOutcome {
	s.log.DebugContext(ctx, "input rejected", "operation", op.String(), "reason", msg)
	s.metrics.IncAttempt(op.String(), metrics.OutcomeValidationError)
	r.ReportError(msg)
	return domain.Failure(domain.FailureValidation, msg)
}

func (s *Service) submit(
	ctx context.Context,
	op domain.Operation,
	fallback string,
	r domain.Reporter,
	call func(context.Context) (domain.SessionToken, error),
) domain.AuthOutcome {
	ctx = ctxkey.WithValue(ctx, ctxkey.RequestID, s.newID())
	ctx = ctxkey.WithValue(ctx, ctxkey.Operation, op.String())

	r.ReportError("")
	r.ReportButtonState(domain.ButtonLoading)

	start := s.now()
	token, err := call(ctx)
	s.metrics.ObserveRequest(op.String(), s.now().Sub(start))
	if err != nil {
		return s.fail(ctx, op, classify(err, fallback), err, r)
	}

	if err := s.store.Set(ctx, SessionKey, token.String()); err != nil {
		return s.fail(ctx, op, domain.Failure(domain.FailureUnclassified, fallback), err, r)
	}

	r.ReportButtonState(domain.ButtonSuccess)
	s.metrics.IncAttempt(op.String(), metrics.OutcomeSuccess)
	s.log.InfoContext(ctx, "authenticated", "token", crypto.Fingerprint([]byte(token)))
	s.nav.GoTo(RootPath)
	return domain.Success(token)
}

func (s *Service) fail(
	ctx context.Context,
	op domain.Operation,
	out domain.AuthOutcome,
	err error,
	r domain.Reporter,
) domain.AuthOutcome {
	outcome := metrics.OutcomeUnclassifiedError
	if out.Kind == domain.FailureServer {
		outcome = metrics.OutcomeServerError
	}
	s.log.WarnContext(ctx, "attempt failed", "kind", string(out.Kind), "error", err.Error())
	s.metrics.IncAttempt(op.String(), outcome)

	r.ReportButtonState(domain.ButtonError)
	r.ReportError(out.Message)
	return out
}

// classify turns a client error into the outcome shown to the user: the
// service's own message when it sent one, the fallback otherwise.
func classify(err error, fallback string) domain.AuthOutcome {
	var se *authapi.ServerError
	if errors.As(err, &se) && se.Structured() {
		return domain.Failure(domain.FailureServer, se.Message)
	}
	return domain.Failure(domain.FailureUnclassified, fallback)
}
