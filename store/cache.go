package store

import (
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru"
)

// CachedResponse is one memoized chat answer.
type CachedResponse struct {
	Response   string
	Confidence float64
	Timestamp  time.Time
}

// ResponseCache memoizes chat responses keyed by normalized query text,
// independent of session. Expiry is lazy: stale entries are treated as absent
// and evicted on read, there is no background sweep. The LRU cap bounds
// memory for long-running processes with many distinct queries.
type ResponseCache struct {
	entries *lru.Cache
	ttl     time.Duration
	now     func() time.Time
}

func NewResponseCache(maxEntries int, ttl time.Duration) (*ResponseCache, error) {
	entries, err := lru.New(maxEntries)
	if err != nil {
		return nil, err
	}
	return &ResponseCache{
		entries: entries,
		ttl:     ttl,
		now:     time.Now,
	}, nil
}

// CacheKey normalizes a query into its cache key.
func CacheKey(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Get returns the live cached response for the query, if any.
func (c *ResponseCache) Get(query string) (CachedResponse, bool) {
	key := CacheKey(query)
	value, ok := c.entries.Get(key)
	if !ok {
		return CachedResponse{}, false
	}
	cached := value.(CachedResponse)
	if c.now().Sub(cached.Timestamp) >= c.ttl {
		c.entries.Remove(key)
		return CachedResponse{}, false
	}
	return cached, true
}

// Put writes through the response for the query. Concurrent writers for the
// same key are last-write-wins.
func (c *ResponseCache) Put(query string, response string, confidence float64) {
	c.entries.Add(CacheKey(query), CachedResponse{
		Response:   response,
		Confidence: confidence,
		Timestamp:  c.now(),
	})
}

// Len reports the number of resident entries, expired or not.
func (c *ResponseCache) Len() int {
	return c.entries.Len()
}
