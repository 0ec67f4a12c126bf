package runner

import "sync"

const (
	growAfterSuccesses = 5
	growFactorNum      = 5 // x1.25
	growFactorDen      = 4
)

// ChunkManager adapts the batch size to what the RPC provider accepts.
// The size grows by a quarter after consecutive successes and halves on
// range-too-large errors, always staying within [min, max].
type ChunkManager struct {
	mu        sync.Mutex
	current   uint64
	min       uint64
	max       uint64
	successes int
}

// NewChunkManager creates a chunk manager starting at initial, clamped to [minSize, maxSize].
func NewChunkManager(initial, minSize, maxSize uint64) *ChunkManager {
	minSize = max(minSize, 1)
	maxSize = max(maxSize, minSize)

	return &ChunkManager{
		current: min(max(initial, minSize), maxSize),
		min:     minSize,
		max:     maxSize,
	}
}

// Size returns the current batch size in blocks.
func (c *ChunkManager) Size() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// OnSuccess records a successful batch.
func (c *ChunkManager) OnSuccess() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.successes++
	if c.successes < growAfterSuccesses || c.current >= c.max {
		return
	}

	c.successes = 0
	c.current = min(c.current*growFactorNum/growFactorDen, c.max)
}

// OnChunkError halves the batch size, or drops it to suggested when the provider
// named a narrower span. It returns false when the size is already at the
// minimum and cannot shrink further.
func (c *ChunkManager) OnChunkError(suggested uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.successes = 0
	if c.current <= c.min {
		return false
	}

	next := c.current / 2 //nolint:mnd
	if suggested > 0 && suggested < c.current {
		next = suggested
	}
	c.current = max(next, c.min)
	return true
}
