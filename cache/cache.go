// Package cache memoizes expensive scalar sum evaluations keyed by the
// outer index n and the concrete q value. The Chen-Hou-Mu prover evaluates
// the same partial sums repeatedly across its recurrence and
// initial-condition checks; this keeps those evaluations O(1) after the
// first.
package cache

import (
	"fmt"
	"sync"

	"github.com/gerardgarvan/qKangaroo-sub000/number"
)

// SumCache is a bounded map from (n, q) to an exact sum value. Safe for
// concurrent use. When full, an arbitrary entry is evicted; the workloads
// this serves revisit a small window of n values, so anything smarter is
// wasted effort.
type SumCache struct {
	mu      sync.Mutex
	max     int
	entries map[string]number.Rat
	hits    uint64
	misses  uint64
}

// New returns a cache holding at most max entries. max <= 0 panics.
func New(max int) *SumCache {
	if max <= 0 {
		panic(fmt.Sprintf("cache: size must be positive, got %d", max))
	}
	return &SumCache{
		max:     max,
		entries: make(map[string]number.Rat, max),
	}
}

func key(n int64, q number.Rat) string {
	return fmt.Sprintf("%d@%s", n, q.String())
}

// Get looks up the sum for (n, q).
func (c *SumCache) Get(n int64, q number.Rat) (number.Rat, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key(n, q)]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return v, ok
}

// Put stores the sum for (n, q), evicting an arbitrary entry if the cache
// is full.
func (c *SumCache) Put(n int64, q number.Rat, v number.Rat) {
	c.mu.Lock()
	defer c.mu.Unlock()
	k := key(n, q)
	if _, exists := c.entries[k]; !exists && len(c.entries) >= c.max {
		for victim := range c.entries {
			delete(c.entries, victim)
			break
		}
	}
	c.entries[k] = v
}

// Len returns the number of cached entries.
func (c *SumCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns the cumulative hit and miss counts.
func (c *SumCache) Stats() (hits, misses uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
