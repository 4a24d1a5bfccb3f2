package cache

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// IndexPageKey is the fixed key of the cached home listing.
const IndexPageKey = "index_page"

type entry struct {
	Body      []byte
	ExpiresAt time.Time
}

// Cache is a TTL wrapper over an LRU store of rendered page bodies. It is
// constructed once at process start and passed by reference to whoever needs
// it; entries leave only by expiry, eviction or an explicit Delete/Clear.
type Cache struct {
	lruCache *lru.Cache[string, entry]
}

func New(capacity int) (*Cache, error) {
	l, err := lru.New[string, entry](capacity)
	if err != nil {
		return nil, err
	}
	return &Cache{lruCache: l}, nil
}

// Set stores body under key until ttl elapses.
func (c *Cache) Set(key string, body []byte, ttl time.Duration) {
	c.lruCache.Add(key, entry{
		Body:      body,
		ExpiresAt: time.Now().Add(ttl),
	})
}

// Get returns the cached body, dropping the entry if it has expired.
func (c *Cache) Get(key string) ([]byte, bool) {
	val, ok := c.lruCache.Get(key)
	if !ok {
		return nil, false
	}

	if time.Now().After(val.ExpiresAt) {
		c.lruCache.Remove(key)
		return nil, false
	}

	return val.Body, true
}

// Delete removes a single entry.
func (c *Cache) Delete(key string) {
	c.lruCache.Remove(key)
}

// Clear drops every entry. Used by administrative action and test setup.
func (c *Cache) Clear() {
	c.lruCache.Purge()
}
