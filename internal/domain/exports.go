package domain

import (
	interfaces "aniresfr/internal/domain/interfaces"
	types "aniresfr/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	SessionToken        = types.SessionToken
	ButtonState         = types.ButtonState
	Operation           = types.Operation
	Credentials         = types.Credentials
	RegistrationProfile = types.RegistrationProfile
	LoginPayload        = types.LoginPayload
	RegistrationPayload = types.RegistrationPayload
	FailureKind         = types.FailureKind
	AuthOutcome         = types.AuthOutcome
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	FieldValidator = interfaces.FieldValidator
	AuthClient     = interfaces.AuthClient
	SessionStore   = interfaces.SessionStore
	Navigator      = interfaces.Navigator
	Reporter       = interfaces.Reporter
)

const (
	ButtonIdle    = types.ButtonIdle
	ButtonLoading = types.ButtonLoading
	ButtonSuccess = types.ButtonSuccess
	ButtonError   = types.ButtonError

	OperationLogin        = types.OperationLogin
	OperationRegistration = types.OperationRegistration

	FailureNone         = types.FailureNone
	FailureValidation   = types.FailureValidation
	FailureServer       = types.FailureServer
	FailureUnclassified = types.FailureUnclassified

	PlaceholderAddress = types.PlaceholderAddress
)

// Function re-exports.
var (
	NewRegistrationPayload = types.NewRegistrationPayload
	Success                = types.Success
	Failure                = types.Failure
)

// ReporterFuncs adapts two plain callbacks to Reporter. Nil fields are skipped.
type ReporterFuncs struct {
	Error       func(message string)
	ButtonState func(state ButtonState)
}

// ReportError calls f.Error.
func (f ReporterFuncs) ReportError(message string) {
	if f.Error != nil {
		f.Error(message)
	}
}

// ReportButtonState calls f.ButtonState.
func (f ReporterFuncs) ReportButtonState(state ButtonState) {
	if f.ButtonState != nil {
		f.ButtonState(state)
	}
}

var _ Reporter = ReporterFuncs{}
