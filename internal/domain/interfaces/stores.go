package interfaces

import "context"

// SessionStore is the client-durable key-value slot holding the session token.
// Set overwrites; last writer wins.
type SessionStore interface {
	Set(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (string, bool, error)
	Delete(ctx context.Context, key string) error
}
