package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns a short hex digest that identifies secret material
// (such as a session token) in logs without revealing it.
//
// It hashes with SHA-256 and truncates to 6 bytes (12 hex chars).
func Fingerprint(secret []byte) string {
	sum := sha256.Sum256(secret)
	return hex.EncodeToString(sum[:6])
}
