package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// readFile reads the file at path; a missing file yields (nil, nil).
func readFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// readEntries decodes the key-value map stored at path. A missing file or a
// JSON null is an empty map.
func readEntries(path string, open func([]byte) ([]byte, error)) (map[string]string, error) {
	entries := make(map[string]string)
	b, err := readFile(path)
	if err != nil || b == nil {
		return entries, err
	}
	if open != nil {
		if b, err = open(b); err != nil {
			return nil, err
		}
	}
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = make(map[string]string)
	}
	return entries, nil
}

// writeEntries encodes entries, optionally seals them, and replaces path.
func writeEntries(path string, entries map[string]string, seal func([]byte) ([]byte, error)) error {
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if seal != nil {
		if b, err = seal(b); err != nil {
			return err
		}
	}
	return writeFile(path, b, 0o600)
}

// writeFile writes bytes via a temp file, then atomically replaces the target.
func writeFile(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	f, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
