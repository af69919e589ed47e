// Package cache provides a bounded, thread-safe result cache keyed by an
// external message or document identifier. It lets a calling layer
// deduplicate repeated requests (the same forwarded email processed
// twice) without the core holding any global state: the cache is owned
// and injected by the caller.
package cache

import (
	"sync"

	"github.com/fintrack/docparse/internal/model"
)

// DefaultCapacity bounds the cache when the caller passes no limit.
const DefaultCapacity = 100

// ResultCache is a fixed-capacity LRU cache of extraction results. All
// methods are safe for concurrent use.
type ResultCache struct {
	mu       sync.RWMutex
	capacity int
	items    map[string]*entry
	head     *entry // most recently used
	tail     *entry // least recently used
	hits     int64
	misses   int64
}

type entry struct {
	key  string
	doc  *model.ExtractedDocument
	prev *entry
	next *entry
}

func New(capacity int) *ResultCache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &ResultCache{
		capacity: capacity,
		items:    make(map[string]*entry),
		head:     &entry{},
		tail:     &entry{},
	}
	c.head.next = c.tail
	c.tail.prev = c.head
	return c
}

// Get returns the cached result for id and marks it recently used.
func (c *ResultCache) Get(id string) (*model.ExtractedDocument, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[id]
	if !ok {
		c.misses++
		return nil, false
	}
	c.moveToFront(e)
	c.hits++
	return e.doc, true
}

// Put stores a result under id, evicting the least recently used entry
// once the capacity is exceeded.
func (c *ResultCache) Put(id string, doc *model.ExtractedDocument) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.items[id]; ok {
		e.doc = doc
		c.moveToFront(e)
		return
	}
	e := &entry{key: id, doc: doc}
	c.addToFront(e)
	c.items[id] = e
	if len(c.items) > c.capacity {
		c.evict()
	}
}

// Contains reports whether id is cached without touching recency.
func (c *ResultCache) Contains(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.items[id]
	return ok
}

// Len returns the current number of cached results.
func (c *ResultCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Capacity returns the fixed maximum size.
func (c *ResultCache) Capacity() int { return c.capacity }

// Stats reports hit/miss counters for logging.
func (c *ResultCache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := c.hits + c.misses
	rate := 0.0
	if total > 0 {
		rate = float64(c.hits) / float64(total)
	}
	return Stats{Hits: c.hits, Misses: c.misses, HitRate: rate, Size: len(c.items)}
}

// Stats summarizes cache effectiveness.
type Stats struct {
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	HitRate float64 `json:"hit_rate"`
	Size    int     `json:"size"`
}

func (c *ResultCache) moveToFront(e *entry) {
	c.unlink(e)
	c.addToFront(e)
}

func (c *ResultCache) addToFront(e *entry) {
	e.prev = c.head
	e.next = c.head.next
	c.head.next.prev = e
	c.head.next = e
}

func (c *ResultCache) unlink(e *entry) {
	e.prev.next = e.next
	e.next.prev = e.prev
}

func (c *ResultCache) evict() {
	lru := c.tail.prev
	if lru != c.head {
		c.unlink(lru)
		delete(c.items, lru.key)
	}
}
