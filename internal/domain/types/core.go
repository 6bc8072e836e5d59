package types

// SessionToken is the opaque token issued by the auth service on success.
type SessionToken string

// String returns the string form of the token.
func (t SessionToken) String() string { return string(t) }

// ButtonState mirrors pipeline progress to the submit control of a form.
type ButtonState string

const (
	ButtonIdle    ButtonState = "idle"
	ButtonLoading ButtonState = "loading"
	ButtonSuccess ButtonState = "success"
	ButtonError   ButtonState = "error"
)

// String returns the string form of the state.
func (s ButtonState) String() string { return string(s) }

// Terminal reports whether no further transition follows s within an attempt.
func (s ButtonState) Terminal() bool { return s == ButtonSuccess || s == ButtonError }

// Operation names one of the two pipelines.
type Operation string

const (
	OperationLogin        Operation = "login"
	OperationRegistration Operation = "registration"
)

// String returns the string form of the operation.
func (o Operation) String() string { return string(o) }
