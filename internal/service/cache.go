package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// resultCache memoizes analysis results keyed by a content hash of the
// input tables and parameters. Identical inputs always hit; any ingest
// changes the hash, so no explicit invalidation is needed. Entries also
// expire after a TTL to bound memory.
type resultCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

type cacheEntry struct {
	value    interface{}
	storedAt time.Time
}

func newResultCache(ttl time.Duration) *resultCache {
	return &resultCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

func (c *resultCache) get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if time.Since(entry.storedAt) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return entry.value, true
}

func (c *resultCache) put(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{value: value, storedAt: time.Now()}
}

// cacheKey hashes an operation name plus its inputs. JSON encoding is
// deterministic for the struct and slice shapes used here.
func cacheKey(op string, inputs ...interface{}) string {
	h := sha256.New()
	h.Write([]byte(op))
	enc := json.NewEncoder(h)
	for _, in := range inputs {
		if err := enc.Encode(in); err != nil {
			// Unhashable input: fall back to a never-matching key.
			return fmt.Sprintf("%s:%d", op, time.Now().UnixNano())
		}
	}
	return op + ":" + hex.EncodeToString(h.Sum(nil))
}
