package pathnode

import (
	"fmt"
	"slices"
	"sync"
	"testing"
)

// countingCache wraps a MapCache and counts Add calls.
type countingCache struct {
	*MapCache
	mu   sync.Mutex
	adds int
}

func (c *countingCache) Add(path string, nodes []string) {
	c.mu.Lock()
	c.adds++
	c.mu.Unlock()
	c.MapCache.Add(path, nodes)
}

func TestSplitMemoizes(t *testing.T) {
	cc := &countingCache{MapCache: NewMapCache()}
	prev := SetSplitCache(cc)
	defer SetSplitCache(prev)

	p := join("a", "b", "c")
	first := Split(p)
	second := Split(p)

	if !slices.Equal(first, second) {
		t.Errorf("Split results differ: %v vs %v", first, second)
	}
	cc.mu.Lock()
	adds := cc.adds
	cc.mu.Unlock()
	if adds != 1 {
		t.Errorf("cache Add called %d times, want 1", adds)
	}
}

func TestSplitCacheKeyIsLiteral(t *testing.T) {
	// No normalization before lookup: trailing separators and case
	// variants are cached independently.
	c := NewMapCache()
	prev := SetSplitCache(c)
	defer SetSplitCache(prev)

	Split(join("a", "b"))
	Split(join("a", "b") + Separator)
	Split(join("A", "b"))

	if c.Len() != 3 {
		t.Errorf("cache holds %d entries, want 3", c.Len())
	}
}

func TestSetSplitCacheNilDisables(t *testing.T) {
	prev := SetSplitCache(nil)
	defer SetSplitCache(prev)

	p := join("x", "y")
	if got := Split(p); !slices.Equal(got, []string{"x", "y"}) {
		t.Errorf("Split(%q) = %v with memoization disabled", p, got)
	}
}

func TestMapCacheConcurrentSplit(t *testing.T) {
	prev := SetSplitCache(NewMapCache())
	defer SetSplitCache(prev)

	// Redundant computation is fine; corruption is not.
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				p := join("w", fmt.Sprintf("n%d", (i+j)%10), "leaf")
				want := []string{"w", fmt.Sprintf("n%d", (i+j)%10), "leaf"}
				if got := Split(p); !slices.Equal(got, want) {
					t.Errorf("Split(%q) = %v, want %v", p, got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestTinyLFUCache(t *testing.T) {
	c := NewTinyLFUCache(64)
	prev := SetSplitCache(c)
	defer SetSplitCache(prev)

	p := join("a", "b", "c")
	want := []string{"a", "b", "c"}
	if got := Split(p); !slices.Equal(got, want) {
		t.Errorf("Split(%q) = %v, want %v", p, got, want)
	}
	// The entry may or may not have been admitted; a hit must return the
	// exact node sequence either way.
	if nodes, ok := c.Get(p); ok && !slices.Equal(nodes, want) {
		t.Errorf("cache Get(%q) = %v, want %v", p, nodes, want)
	}

	// Splitting far more distinct paths than the bound must not fail.
	for i := range 1000 {
		q := join("root", fmt.Sprintf("dir%d", i), "file.txt")
		if got := Split(q); len(got) != 3 {
			t.Fatalf("Split(%q) = %v, want 3 nodes", q, got)
		}
	}
}
