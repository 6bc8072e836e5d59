package interfaces

// FieldValidator holds the pure format predicates run before any request.
type FieldValidator interface {
	IsValidEmail(value string) bool
	IsValidPhoneNumber(value string) bool
}
