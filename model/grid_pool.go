package model

import "sync"

// MatrixPool recycles cell matrices so Tick and Replace don't allocate a
// fresh board every generation.
type MatrixPool struct {
	pool sync.Pool
}

func NewMatrixPool() *MatrixPool {
	return &MatrixPool{
		pool: sync.Pool{
			New: func() interface{} {
				return [][]bool(nil)
			},
		},
	}
}

// Get retrieves an all-dead matrix of the requested shape, resizing a
// recycled one when possible.
func (p *MatrixPool) Get(width, height int) [][]bool {
	m := p.pool.Get().([][]bool)

	if len(m) != height {
		m = make([][]bool, height)
	}
	for y := range m {
		if len(m[y]) != width {
			m[y] = make([]bool, width)
		} else {
			// Clear existing cells
			for x := range m[y] {
				m[y][x] = false
			}
		}
	}
	return m
}

// Put returns a matrix to the pool
func (p *MatrixPool) Put(m [][]bool) {
	if m == nil {
		return
	}
	p.pool.Put(m)
}
