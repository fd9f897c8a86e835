package store

import (
	"crypto/sha256"
	"encoding/hex"
)

const cacheKeyPrefix = "sum:"

// CacheKey derives the content-addressed cache key for a (content, model)
// pair. It is a pure function: no timestamp or random component may enter,
// so identical inputs across process restarts hit the same entry.
func CacheKey(content, model string) string {
	h := sha256.New()
	h.Write([]byte(content))
	h.Write([]byte{0})
	h.Write([]byte(model))
	return cacheKeyPrefix + hex.EncodeToString(h.Sum(nil))
}
