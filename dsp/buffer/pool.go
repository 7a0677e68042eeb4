package buffer

import "sync"

// Pool provides sync.Pool-based Plane reuse to reduce GC pressure when
// frames are processed back to back.
type Pool[T any] struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return &Plane[T]{}
			},
		},
	}
}

// Get returns a zeroed plane with the requested dimensions.
// Callers must return it via Put when done.
func (p *Pool[T]) Get(width, height int) *Plane[T] {
	pl := p.pool.Get().(*Plane[T])
	pl.Resize(width, height)
	return pl
}

// Put returns a plane to the pool for reuse.
// The caller must not use the plane after calling Put.
func (p *Pool[T]) Put(pl *Plane[T]) {
	if pl == nil {
		return
	}
	p.pool.Put(pl)
}
