package model

import "sync"

// CountMap tallies live neighbours per cell for a single generation
type CountMap map[Cell]uint8

// CountsToPool returns a count map to the pool for reuse
func CountsToPool(counts CountMap, pool *CountPool) {
	if pool == nil {
		return
	}

	pool.Put(counts)
}

// CountPool recycles neighbour count maps between generations
type CountPool struct {
	pool sync.Pool
}

func NewCountPool() *CountPool {
	return &CountPool{
		pool: sync.Pool{
			New: func() interface{} {
				return make(CountMap)
			},
		},
	}
}

// Get retrieves an empty count map from the pool
func (p *CountPool) Get() CountMap {
	counts := p.pool.Get().(CountMap)
	clear(counts)
	return counts
}

// Put returns a count map to the pool, clearing its state
func (p *CountPool) Put(counts CountMap) {
	// Clear the map before returning to pool
	clear(counts)
	p.pool.Put(counts)
}
