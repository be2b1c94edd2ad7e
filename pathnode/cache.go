package pathnode

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/dgryski/go-tinylfu"
)

// Cache memoizes split results keyed on the exact input path string.
// Implementations must be safe for concurrent use: two goroutines splitting
// the same novel path may both compute and store the same result, but the
// cache must never be corrupted.
type Cache interface {
	Get(path string) ([]string, bool)
	Add(path string, nodes []string)
}

// MapCache is the default split cache: an unbounded map with no eviction,
// living for the process lifetime.
type MapCache struct {
	mu sync.RWMutex
	m  map[string][]string
}

// NewMapCache returns an empty MapCache.
func NewMapCache() *MapCache {
	return &MapCache{m: make(map[string][]string)}
}

// Get returns the memoized nodes for path.
func (c *MapCache) Get(path string) ([]string, bool) {
	c.mu.RLock()
	nodes, ok := c.m[path]
	c.mu.RUnlock()
	return nodes, ok
}

// Add memoizes nodes for path, overwriting any previous entry.
func (c *MapCache) Add(path string, nodes []string) {
	c.mu.Lock()
	c.m[path] = nodes
	c.mu.Unlock()
}

// Len returns the number of memoized paths.
func (c *MapCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

// TinyLFUCache is a bounded split cache backed by a TinyLFU admission
// policy. Unlike [MapCache] it evicts, so it trades the engine's default
// no-eviction contract for a memory bound. Useful when callers split an
// unbounded stream of distinct paths.
type TinyLFUCache struct {
	mu  sync.Mutex
	lfu *tinylfu.T[string, []string]
}

// NewTinyLFUCache returns a TinyLFU-backed cache holding at most size
// entries.
func NewTinyLFUCache(size int) *TinyLFUCache {
	return &TinyLFUCache{
		lfu: tinylfu.New[string, []string](size, size*10, hashPath),
	}
}

func hashPath(path string) uint64 {
	return xxhash.Sum64String(path)
}

// Get returns the memoized nodes for path.
func (c *TinyLFUCache) Get(path string) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lfu.Get(path)
}

// Add memoizes nodes for path, possibly evicting another entry.
func (c *TinyLFUCache) Add(path string, nodes []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lfu.Add(path, nodes)
}

var (
	cacheMu      sync.RWMutex
	defaultCache Cache = NewMapCache()
)

// SetSplitCache installs c as the cache used by [Split]. Passing nil
// disables memoization. The previous cache is returned so tests can
// restore it.
func SetSplitCache(c Cache) Cache {
	cacheMu.Lock()
	prev := defaultCache
	defaultCache = c
	cacheMu.Unlock()
	return prev
}

func splitCache() Cache {
	cacheMu.RLock()
	c := defaultCache
	cacheMu.RUnlock()
	return c
}
