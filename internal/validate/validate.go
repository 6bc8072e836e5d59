// Package validate provides the field format predicates checked before any
// request leaves the client.
package validate

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// phoneSeparators are stripped before a phone number is checked.
var phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")

// IsValidEmail reports whether value is a syntactically valid email address.
func IsValidEmail(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	return validate.Var(value, "email") == nil
}

// IsValidPhoneNumber accepts E.164 numbers (+ and 8-15 digits) or national
// numbers of exactly ten digits, ignoring spaces, dashes, dots and parentheses.
func IsValidPhoneNumber(value string) bool {
	n := phoneSeparators.Replace(strings.TrimSpace(value))
	if n == "" {
		return false
	}
	if strings.HasPrefix(n, "+") {
		return validate.Var(n, "e164") == nil
	}
	return validate.Var(n, "numeric,len=10") == nil
}

// Fields implements domain.FieldValidator using the package predicates.
type Fields struct{}

func (Fields) IsValidEmail(value string) bool { return IsValidEmail(value) }

func (Fields) IsValidPhoneNumber(value string) bool { return IsValidPhoneNumber(value) }
