package analysis

import (
	"fmt"
	"sync"

	"github.com/couchcryptid/flood-risk-api/internal/domain"
)

// assessmentCache is a thread-safe LRU cache of model-backed coordinate
// assessments, keyed on the coordinate pair rounded to four decimal places
// (~11m). Fallback records are never cached so a recovered model gets asked
// again.
type assessmentCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*cacheEntry
	head       *cacheEntry // most recently used
	tail       *cacheEntry // least recently used
}

type cacheEntry struct {
	key   string
	value domain.RiskAssessment
	prev  *cacheEntry
	next  *cacheEntry
}

func newAssessmentCache(maxEntries int) *assessmentCache {
	return &assessmentCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*cacheEntry),
	}
}

func cacheKey(lat, lon float64) string {
	return fmt.Sprintf("%.4f,%.4f", lat, lon)
}

func (c *assessmentCache) get(lat, lon float64) (domain.RiskAssessment, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[cacheKey(lat, lon)]
	if !ok {
		return domain.RiskAssessment{}, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *assessmentCache) put(lat, lon float64, value domain.RiskAssessment) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey(lat, lon)
	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &cacheEntry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *assessmentCache) moveToFront(e *cacheEntry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *assessmentCache) addToFront(e *cacheEntry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *assessmentCache) remove(e *cacheEntry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *assessmentCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
