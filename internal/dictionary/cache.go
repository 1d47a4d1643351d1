package dictionary

import (
	"container/list"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// LRUCache is a thread-safe least-recently-used cache of lookup results
type LRUCache struct {
	maxSize int
	mu      sync.Mutex
	items   map[string]*list.Element
	order   *list.List
}

type cacheEntry struct {
	key   string
	value []Suggestion
}

// NewLRUCache creates a new LRU cache with the specified maximum size
func NewLRUCache(maxSize int) *LRUCache {
	if maxSize <= 0 {
		maxSize = 100
	}
	return &LRUCache{
		maxSize: maxSize,
		items:   make(map[string]*list.Element),
		order:   list.New(),
	}
}

// Get retrieves a value from the cache and marks it as recently used
func (c *LRUCache) Get(key string) ([]Suggestion, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(*cacheEntry).value, true
	}
	return nil, false
}

// Set adds or updates a value in the cache. Racing writers on one key are
// harmless: lookups are pure, so every writer stores the same value.
func (c *LRUCache) Set(key string, value []Suggestion) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*cacheEntry).value = value
		return
	}

	elem := c.order.PushFront(&cacheEntry{key: key, value: value})
	c.items[key] = elem

	if c.order.Len() > c.maxSize {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.items, oldest.Value.(*cacheEntry).key)
		}
	}
}

// Size returns the current number of items in the cache
func (c *LRUCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// CachedDictionary memoizes Dictionary lookups. Concurrent identical
// lookups that miss the cache are collapsed into one computation.
type CachedDictionary struct {
	dict  *Dictionary
	cache *LRUCache
	group singleflight.Group
}

// NewCachedDictionary wraps d with an LRU cache of the given size
func NewCachedDictionary(d *Dictionary, size int) *CachedDictionary {
	return &CachedDictionary{
		dict:  d,
		cache: NewLRUCache(size),
	}
}

// Lookup behaves exactly like Dictionary.Lookup
func (c *CachedDictionary) Lookup(word string, maxEditDistance, maxResults int) ([]Suggestion, error) {
	key := strconv.Itoa(maxEditDistance) + "\x00" + strconv.Itoa(maxResults) + "\x00" + word
	if cached, ok := c.cache.Get(key); ok {
		return cloneSuggestions(cached), nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		res, err := c.dict.Lookup(word, maxEditDistance, maxResults)
		if err != nil {
			return nil, err
		}
		c.cache.Set(key, res)
		return res, nil
	})
	if err != nil {
		return nil, err
	}
	return cloneSuggestions(v.([]Suggestion)), nil
}

// Dictionary returns the wrapped dictionary
func (c *CachedDictionary) Dictionary() *Dictionary {
	return c.dict
}

// CacheSize returns the number of memoized lookups
func (c *CachedDictionary) CacheSize() int {
	return c.cache.Size()
}

// cloneSuggestions keeps callers from mutating shared cached slices
func cloneSuggestions(s []Suggestion) []Suggestion {
	out := make([]Suggestion, len(s))
	copy(out, s)
	return out
}
