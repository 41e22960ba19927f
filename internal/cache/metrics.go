package cache

import "sync/atomic"

// Cache metrics
var (
	hitsTotal   atomic.Int64
	missesTotal atomic.Int64
)

// IncrementHit increments the cache hit counter
func IncrementHit() {
	hitsTotal.Add(1)
}

// IncrementMiss increments the cache miss counter
func IncrementMiss() {
	missesTotal.Add(1)
}

// Stats returns the current hit/miss counts
func Stats() (hits, misses int64) {
	return hitsTotal.Load(), missesTotal.Load()
}
