package cache

import (
	"errors"
	"sync"
)

// ErrLoadPanicked is returned to callers waiting on a load that panicked.
var ErrLoadPanicked = errors.New("cache: load panicked")

// Cache is a thread-safe LRU cache bounded by the total cost of its values.
// When an insertion pushes the total over the limit, least recently used
// entries are evicted. A value whose cost alone exceeds the limit is
// returned to the caller but not stored.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*node[K, V]
	lru      list[K, V]
	inflight map[K]*call[V]
	cost     func(V) int64
	maxCost  int64
	total    int64

	hits, misses, evictions uint64
}

// call is a load in progress. Waiters block on done.
type call[V any] struct {
	done  chan struct{}
	value V
	err   error
}

// New creates a cache holding values up to maxCost in total. cost reports
// the cost of one value; nil counts every value as 1. A maxCost of 0 or
// less means unlimited.
func New[K comparable, V any](maxCost int64, cost func(V) int64) *Cache[K, V] {
	if cost == nil {
		cost = func(V) int64 { return 1 }
	}
	return &Cache[K, V]{
		entries:  make(map[K]*node[K, V]),
		inflight: make(map[K]*call[V]),
		cost:     cost,
		maxCost:  maxCost,
	}
}

// Get returns the value for key and marks it recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.lru.moveToFront(n)
	return n.value, true
}

// Set stores value under key, replacing any previous value.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, value)
}

// Load returns the cached value for key, or calls load to produce it.
//
// Concurrent Loads of the same missing key share a single call to load.
// Errors are returned to every waiter and are not cached. If load panics,
// the panic propagates to the caller and waiters get ErrLoadPanicked.
func (c *Cache[K, V]) Load(key K, load func() (V, error)) (V, error) {
	c.mu.Lock()
	if n, ok := c.entries[key]; ok {
		c.hits++
		c.lru.moveToFront(n)
		c.mu.Unlock()
		return n.value, nil
	}
	if cl, ok := c.inflight[key]; ok {
		c.hits++
		c.mu.Unlock()
		<-cl.done
		return cl.value, cl.err
	}
	c.misses++
	cl := &call[V]{done: make(chan struct{})}
	c.inflight[key] = cl
	c.mu.Unlock()

	completed := false
	defer func() {
		if !completed {
			cl.err = ErrLoadPanicked
		}
		c.mu.Lock()
		delete(c.inflight, key)
		if cl.err == nil {
			c.set(key, cl.value)
		}
		c.mu.Unlock()
		close(cl.done)
	}()

	cl.value, cl.err = load()
	completed = true
	return cl.value, cl.err
}

// Delete removes key. It reports whether the key was present.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.entries[key]
	if !ok {
		return false
	}
	c.remove(n)
	return true
}

// Clear removes all entries. Statistics are kept.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*node[K, V])
	c.lru = list[K, V]{}
	c.total = 0
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Len:       len(c.entries),
		Cost:      c.total,
		MaxCost:   c.maxCost,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
}

// set stores value. Caller must hold c.mu.
func (c *Cache[K, V]) set(key K, value V) {
	if old, ok := c.entries[key]; ok {
		c.remove(old)
	}

	cost := c.cost(value)
	if c.maxCost > 0 && cost > c.maxCost {
		return
	}

	n := &node[K, V]{key: key, value: value, cost: cost}
	c.entries[key] = n
	c.lru.pushFront(n)
	c.total += cost

	for c.maxCost > 0 && c.total > c.maxCost {
		c.remove(c.lru.tail)
		c.evictions++
	}
}

// remove unlinks n. Caller must hold c.mu.
func (c *Cache[K, V]) remove(n *node[K, V]) {
	c.lru.unlink(n)
	delete(c.entries, n.key)
	c.total -= n.cost
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Cost is the total cost of the stored values.
	Cost int64
	// MaxCost is the cost limit, 0 or less for unlimited.
	MaxCost int64
	// Hits counts lookups served from the cache or a shared load.
	Hits uint64
	// Misses counts lookups that found nothing.
	Misses uint64
	// Evictions counts entries dropped to stay under MaxCost.
	Evictions uint64
}

// HitRate returns hits / (hits + misses), or 0 before any lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
