package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for the key-value store behind history
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key namespaces a logical name, e.g. Key("history") = "placevalue:v1:history"
func Key(name string) string {
	return "placevalue:v1:" + name
}

// fileName maps a key to a filesystem-safe name
func fileName(key string) string {
	hash := sha256.Sum256([]byte(key))
	return hex.EncodeToString(hash[:])
}
