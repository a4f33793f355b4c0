// Package anonymize pseudonymizes user identifiers at the HTTP
// boundary. Raw identifiers must never reach the analytics engine or
// the vector store.
package anonymize

import (
	"crypto/sha256"
	"encoding/hex"
)

const pseudonymLength = 16

// UserID derives a stable pseudonymous id from a raw user identifier:
// hex SHA-256, truncated. The same raw id always maps to the same
// pseudonym, so per-user history stays linkable without being
// reversible.
func UserID(rawUserID string) string {
	sum := sha256.Sum256([]byte(rawUserID))
	return hex.EncodeToString(sum[:])[:pseudonymLength]
}
