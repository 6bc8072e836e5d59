package commands

import (
	"fmt"
	"io"

	"aniresfr/internal/domain"
)

// terminalReporter renders pipeline progress the way a form would: the
// current error under the fields and the submit button's state.
type terminalReporter struct {
	out, errOut io.Writer
}

func (r terminalReporter) ReportError(message string) {
	if message == "" {
		return
	}
	fmt.Fprintln(r.errOut, message)
}

func (r terminalReporter) ReportButtonState(state domain.ButtonState) {
	switch state {
	case domain.ButtonLoading:
		fmt.Fprintln(r.out, "Submitting...")
	case domain.ButtonSuccess:
		fmt.Fprintln(r.out, "Done.")
	case domain.ButtonError:
		fmt.Fprintln(r.out, "Failed.")
	}
}
