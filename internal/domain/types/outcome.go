package types

// FailureKind classifies why an attempt did not produce a token.
type FailureKind string

const (
	FailureNone         FailureKind = ""
	FailureValidation   FailureKind = "validation"
	FailureServer       FailureKind = "server"
	FailureUnclassified FailureKind = "unclassified"
)

// AuthOutcome is the result of one login or registration attempt. Exactly one
// of Token or Message is set.
type AuthOutcome struct {
	Token   SessionToken
	Message string
	Kind    FailureKind
}

// Succeeded reports whether the attempt produced a token.
func (o AuthOutcome) Succeeded() bool { return o.Kind == FailureNone && o.Token != "" }

// Success builds a successful outcome.
func Success(token SessionToken) AuthOutcome { return AuthOutcome{Token: token} }

// Failure builds a failed outcome carrying the message shown to the user.
func Failure(kind FailureKind, message string) AuthOutcome {
	return AuthOutcome{Message: message, Kind: kind}
}
