package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/ppiankov/floatchat/internal/catalog"
)

// Cache stores encoded answers
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// CacheKey derives a key from the asking role and the question.
// The question is normalized the same way the resolver normalizes it, so
// questions differing only in case or surrounding space share a key.
func CacheKey(role, query string) string {
	normalized := catalog.NormalizeKey(query)
	hash := sha256.Sum256([]byte(role + "\x00" + normalized))
	return "floatchat:v1:" + hex.EncodeToString(hash[:])
}
