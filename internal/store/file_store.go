package store

import (
	"context"
	"path/filepath"
	"sync"

	"aniresfr/internal/domain"
)

const (
	sessionFilename       = "session.json"
	sealedSessionFilename = "session.json.enc"
)

// FileStore persists session entries as a JSON map on disk. When a passphrase
// is set the map is sealed with scrypt + ChaCha20-Poly1305.
type FileStore struct {
	path       string
	passphrase string
	kdf        kdfParams
	mu         sync.Mutex
}

// NewFileStore returns a plaintext FileStore rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, sessionFilename)}
}

// NewSealedFileStore returns a FileStore rooted at dir whose file is sealed
// with passphrase.
func NewSealedFileStore(dir, passphrase string) *FileStore {
	return &FileStore{
		path:       filepath.Join(dir, sealedSessionFilename),
		passphrase: passphrase,
		kdf:        defaultKDF(),
	}
}

// Path returns the file backing the store.
func (s *FileStore) Path() string { return s.path }

// Set stores value under key, replacing any previous value.
func (s *FileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := readEntries(s.path, s.opener())
	if err != nil {
		return err
	}
	entries[key] = value
	return writeEntries(s.path, entries, s.sealer())
}

// Get returns the value stored under key.
func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := readEntries(s.path, s.opener())
	if err != nil {
		return "", false, err
	}
	v, ok := entries[key]
	return v, ok, nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *FileStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := readEntries(s.path, s.opener())
	if err != nil {
		return err
	}
	if _, ok := entries[key]; !ok {
		return nil
	}
	delete(entries, key)
	return writeEntries(s.path, entries, s.sealer())
}

func (s *FileStore) opener() func([]byte) ([]byte, error) {
	if s.passphrase == "" {
		return nil
	}
	return func(b []byte) ([]byte, error) { return open(s.passphrase, b) }
}

func (s *FileStore) sealer() func([]byte) ([]byte, error) {
	if s.passphrase == "" {
		return nil
	}
	return func(b []byte) ([]byte, error) { return seal(s.passphrase, b, s.kdf) }
}

// Compile-time assertion that FileStore implements domain.SessionStore.
var _ domain.SessionStore = (*FileStore)(nil)
