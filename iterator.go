package da

import (
	"github.com/pkg/errors"

	"github.com/polydung-dev/da/status"
)

// Iterator is a short-lived cursor into an array. Every capacity-changing
// operation on the owner invalidates all outstanding iterators; consuming a
// stale iterator, or one created by a different array, reports
// InvalidIterator. Offsets outside the consuming operation's valid range
// report OutOfBounds.
type Iterator[T comparable] struct {
	owner *Array[T]
	off   int
	gen   uint64
}

// Begin returns an iterator at offset 0.
func (a *Array[T]) Begin() Iterator[T] {
	return Iterator[T]{owner: a, gen: a.gen}
}

// End returns the one-past-the-end iterator. It is a valid insert position
// and the loop terminator for traversal.
func (a *Array[T]) End() Iterator[T] {
	return Iterator[T]{owner: a, off: a.len, gen: a.gen}
}

// Index returns an iterator at offset i. The offset is validated by the
// consuming operation, not here.
func (a *Array[T]) Index(i int) Iterator[T] {
	return Iterator[T]{owner: a, off: i, gen: a.gen}
}

// Add returns an iterator advanced by n offsets. n may be negative.
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.off += n
	return it
}

// Offset returns the cell offset the iterator points at.
func (it Iterator[T]) Offset() int {
	return it.off
}

// Value returns the element under the cursor.
func (it Iterator[T]) Value() (T, error) {
	if it.owner == nil {
		var zero T
		return zero, errors.WithStack(status.ErrInvalidIterator)
	}
	if it.gen != it.owner.gen {
		var zero T
		return zero, it.owner.record(errors.Wrap(status.ErrInvalidIterator, "stale iterator"))
	}
	v, err := it.owner.get(it.off)
	return v, it.owner.record(err)
}

// Insert inserts v before the cell referenced by it, shifting the tail one
// cell to the right. The one-past-the-end position appends.
func (a *Array[T]) Insert(it Iterator[T], v T) error {
	if err := a.checkIterator(it); err != nil {
		return a.record(err)
	}
	return a.record(a.insert(it.off, v))
}

// Erase removes the element referenced by it, shifting the tail one cell to
// the left and zeroing the vacated tail cell.
func (a *Array[T]) Erase(it Iterator[T]) error {
	if err := a.checkIterator(it); err != nil {
		return a.record(err)
	}
	return a.record(a.erase(it.off))
}

func (a *Array[T]) checkIterator(it Iterator[T]) error {
	if it.owner != a {
		return errors.Wrap(status.ErrInvalidIterator, "iterator owned by a different array")
	}
	if it.gen != a.gen {
		return errors.Wrap(status.ErrInvalidIterator, "stale iterator")
	}
	return nil
}
