package repositories

import "sync"

// Record is anything stored in a Collection
type Record interface {
	RecordID() int
}

// Collection is an ordered in-memory list of records, newest first.
// Writes are serialized so concurrent HTTP handlers observe one writer at a time.
type Collection[T Record] struct {
	mu    sync.RWMutex
	items []T
}

// NewCollection creates a collection holding a copy of seed
func NewCollection[T Record](seed []T) *Collection[T] {
	items := make([]T, len(seed))
	copy(items, seed)
	return &Collection[T]{items: items}
}

// List returns a snapshot of the records in collection order
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of records
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Find returns the record with the given id
func (c *Collection[T]) Find(id int) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if item.RecordID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// NextID returns max(existing ids)+1, or 1 when empty
func (c *Collection[T]) NextID() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.nextIDLocked()
}

func (c *Collection[T]) nextIDLocked() int {
	maxID := 0
	for _, item := range c.items {
		if id := item.RecordID(); id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

// Create allocates the next id, builds the record with it and prepends it.
func (c *Collection[T]) Create(build func(id int) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	record := build(c.nextIDLocked())
	c.items = append([]T{record}, c.items...)
	return record
}

// UpdateByID applies fn to the record with the given id in place.
// Ordering is unchanged. A miss leaves the collection untouched.
func (c *Collection[T]) UpdateByID(id int, fn func(*T)) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].RecordID() == id {
			fn(&c.items[i])
			return c.items[i], true
		}
	}
	var zero T
	return zero, false
}

// DeleteByID removes the record with the given id
func (c *Collection[T]) DeleteByID(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].RecordID() == id {
			c.items = append(c.items[:i:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}
