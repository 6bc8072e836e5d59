// Package store provides the client-durable key-value backends behind
// domain.SessionStore.
//
// The package includes:
//   - FileStore: a JSON map on disk, written atomically via temp file and
//     rename. NewSealedFileStore seals the map with a passphrase.
//   - RedisStore: entries kept in redis under a key prefix.
//   - MemoryStore: process-lifetime entries, for tests and dry runs.
//
// All stores are safe for concurrent use. Set overwrites, so the last writer
// wins.
package store
