package interfaces

import domaintypes "aniresfr/internal/domain/types"

// Navigator performs the post-success redirect.
type Navigator interface {
	GoTo(path string)
}

// Reporter receives pipeline progress. Both methods are called synchronously
// from the goroutine running the attempt.
type Reporter interface {
	ReportError(message string)
	ReportButtonState(state domaintypes.ButtonState)
}
