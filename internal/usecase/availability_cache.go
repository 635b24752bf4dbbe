package usecase

import (
	"sync"

	"locaequip/internal/domain/entities"
)

// AvailabilityCache memoizes availability results by their composite query
// key. It is purely a performance cache: every write that can change the
// reservation set (rental create/update/delete, budget approval, status
// roll-forward) must call Invalidate.
type AvailabilityCache struct {
	mu      sync.RWMutex
	entries map[string]entities.Availability
}

func NewAvailabilityCache() *AvailabilityCache {
	return &AvailabilityCache{entries: make(map[string]entities.Availability)}
}

func (c *AvailabilityCache) get(key string) (entities.Availability, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *AvailabilityCache) set(key string, v entities.Availability) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = v
}

// Invalidate drops every memoized result.
func (c *AvailabilityCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entities.Availability)
}

// Len is used by tests to observe cache population.
func (c *AvailabilityCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
