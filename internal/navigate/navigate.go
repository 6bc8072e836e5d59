// Package navigate implements domain.Navigator for non-browser callers.
package navigate

import (
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"

	"aniresfr/internal/domain"
)

// Resolve joins path onto the application base URL. A base that does not
// parse is treated as a bare prefix.
func Resolve(base, path string) string {
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" {
		return strings.TrimRight(base, "/") + path
	}
	ref, err := url.Parse(path)
	if err != nil {
		return strings.TrimRight(base, "/") + path
	}
	return u.ResolveReference(ref).String()
}

// Writer announces the redirect target on w.
type Writer struct {
	Base string
	Out  io.Writer
}

// NewWriter returns a Writer resolving paths against base.
func NewWriter(base string, out io.Writer) *Writer {
	return &Writer{Base: base, Out: out}
}

// GoTo prints the resolved destination.
func (n *Writer) GoTo(path string) {
	_, _ = fmt.Fprintf(n.Out, "Redirecting to %s\n", Resolve(n.Base, path))
}

// Recorder remembers every destination, in order.
type Recorder struct {
	mu    sync.Mutex
	paths []string
}

func (r *Recorder) GoTo(path string) {
	r.mu.Lock()
	r.paths = append(r.paths, path)
	r.mu.Unlock()
}

// Paths returns a copy of the recorded destinations.
func (r *Recorder) Paths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

var (
	_ domain.Navigator = (*Writer)(nil)
	_ domain.Navigator = (*Recorder)(nil)
)
