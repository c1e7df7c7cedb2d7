package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Key returns prefix:sha256(parts...). Parts are JSON-encoded before
// hashing, so their order and types matter.
func Key(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// GraphKey returns the key of a dependency graph rendered from dot in the
// given output format.
func GraphKey(dot, format string) string {
	return Key("graph", Hash([]byte(dot)), format)
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
