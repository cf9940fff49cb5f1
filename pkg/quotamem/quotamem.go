package quotamem

import (
	"github.com/pkg/errors"

	"github.com/polydung-dev/da/arena"
)

var _ arena.Arena = &QuotaMem{}

// QuotaMem is an arena with a fixed cell budget. Acquiring past the budget
// is declined, which makes out-of-memory paths testable without exhausting
// the real heap.
type QuotaMem struct {
	budget int
	used   int
}

// New returns new quotamem.
func New(budget int) *QuotaMem {
	return &QuotaMem{
		budget: budget,
	}
}

// Acquire reserves n cells or declines when the budget would be exceeded.
func (qm *QuotaMem) Acquire(n int) error {
	if n < 0 {
		return errors.Errorf("invalid cell count: %d", n)
	}
	if qm.used+n > qm.budget {
		return errors.Errorf("cell budget exhausted, budget: %d, used: %d, requested: %d", qm.budget, qm.used, n)
	}
	qm.used += n
	return nil
}

// Release returns n cells to the budget.
func (qm *QuotaMem) Release(n int) {
	qm.used -= n
	if qm.used < 0 {
		qm.used = 0
	}
}

// Used returns the number of currently acquired cells.
func (qm *QuotaMem) Used() int {
	return qm.used
}
