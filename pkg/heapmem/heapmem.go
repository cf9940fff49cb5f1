package heapmem

import (
	"github.com/polydung-dev/da/arena"
)

var _ arena.Arena = &HeapMem{}

// HeapMem is an arena backed by the regular Go heap. It never declines.
type HeapMem struct{}

// New returns new heapmem.
func New() *HeapMem {
	return &HeapMem{}
}

// Acquire always succeeds.
func (hm *HeapMem) Acquire(n int) error {
	return nil
}

// Release does nothing.
func (hm *HeapMem) Release(n int) {
}
