// Package translate provides language detection and translation for query
// text. Two adapters implement the same contract: Remote speaks to a
// LibreTranslate-style HTTP service, Offline works from script detection and
// word dictionaries with no network at all. The query pipeline treats both
// identically and degrades to untranslated text when either fails.
package translate

import (
	"context"
	"sync"
)

// Translator detects the language of free text and translates between
// supported languages. Detect is local and cheap; Translate may hit the
// network depending on the adapter.
type Translator interface {
	Detect(text string) (string, error)
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// Cache memoizes translations by (text, source, target). It is safe for
// concurrent use and injected at adapter construction so tests and the two
// adapters can share one.
type Cache struct {
	mu      sync.Mutex
	entries map[cacheKey]string
}

type cacheKey struct {
	text, source, target string
}

// NewCache returns an empty translation cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]string)}
}

// Get returns the cached translation and whether it was present.
func (c *Cache) Get(text, source, target string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[cacheKey{text, source, target}]
	return v, ok
}

// Put stores a translation.
func (c *Cache) Put(text, source, target, translated string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey{text, source, target}] = translated
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
