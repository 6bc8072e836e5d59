// Package memzero wipes derived key material once it is no longer needed.
package memzero

import "runtime"

// Zero overwrites b with zeros.
//
//go:noinline
func Zero(b []byte) {
	clear(b)
	runtime.KeepAlive(b)
}
