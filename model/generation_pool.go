package model

import "sync"

// GenerationToPool returns a generation to the pool for reuse
func GenerationToPool(g *Generation, pool *GenerationPool) {
	if pool == nil || g == nil {
		return
	}

	pool.Put(g)
}

// GenerationPool recycles discarded generations as next-generation accumulators
type GenerationPool struct {
	pool sync.Pool
}

func NewGenerationPool() *GenerationPool {
	return &GenerationPool{
		pool: sync.Pool{
			New: func() any {
				return NewGeneration()
			},
		},
	}
}

// Get retrieves an empty generation from the pool
func (p *GenerationPool) Get() *Generation {
	g := p.pool.Get().(*Generation)
	g.Reset()
	return g
}

// Put returns a generation to the pool, clearing its state.
// The caller must not read g afterwards.
func (p *GenerationPool) Put(g *Generation) {
	g.Reset()
	p.pool.Put(g)
}
