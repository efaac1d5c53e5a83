// Package cache stores adjudicator verdicts keyed by kind and input.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/model"
)

const keyPrefix = "credcheck:v1:"

// Cache is a byte-oriented TTL cache. A zero ttl selects the backend default.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key hashes the parts (kind, provider, model, input...) into a fixed-length
// key that is safe as a file name.
func Key(parts ...string) string {
	hash := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return keyPrefix + hex.EncodeToString(hash[:])
}

// New builds the cache described by cfg: nothing when disabled, memory only
// without a disk directory, memory over disk otherwise.
func New(cfg model.CacheConfig) Cache {
	switch {
	case !cfg.Enabled:
		return Noop{}
	case cfg.DiskDir == "":
		return NewMemoryCache(cfg.MemoryTTL, cleanupInterval(cfg.MemoryTTL))
	default:
		return NewLayeredCache(cfg.MemoryTTL, cfg.DiskDir, cfg.DiskTTL)
	}
}

func cleanupInterval(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return 10 * time.Minute
	}
	return ttl
}

// Noop never stores anything.
type Noop struct{}

func (Noop) Get(string) ([]byte, bool)               { return nil, false }
func (Noop) Set(string, []byte, time.Duration) error { return nil }
func (Noop) Delete(string) error                     { return nil }
func (Noop) Clear() error                            { return nil }
