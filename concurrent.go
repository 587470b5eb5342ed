package hyperloglog

import "sync"

// Concurrent guards a Sketch with a read-write lock so that Insert may be
// called from multiple goroutines.
type Concurrent[T any] struct {
	mu sync.RWMutex
	sk *Sketch[T]
}

// NewConcurrent wraps sk. The caller must not use sk directly afterwards.
func NewConcurrent[T any](sk *Sketch[T]) *Concurrent[T] {
	return &Concurrent[T]{sk: sk}
}

// Insert adds element e under the write lock.
func (c *Concurrent[T]) Insert(e T) bool {
	// Hash outside the lock.
	x := c.sk.hash(e)
	return c.InsertHash(x)
}

// InsertHash adds hash x under the write lock.
func (c *Concurrent[T]) InsertHash(x uint32) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sk.InsertHash(x)
}

// Estimate returns the raw estimate under the read lock.
func (c *Concurrent[T]) Estimate() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sk.Estimate()
}

// CorrectedEstimate returns the range corrected estimate under the read lock.
func (c *Concurrent[T]) CorrectedEstimate() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sk.CorrectedEstimate()
}

// Registers returns a copy of the register array under the read lock.
func (c *Concurrent[T]) Registers() []uint8 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sk.Registers()
}

// Snapshot returns a deep copy of the wrapped sketch.
func (c *Concurrent[T]) Snapshot() *Sketch[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sk.Clone()
}
