// Package da implements a generic growable contiguous sequence container.
//
// An Array owns a heap-backed buffer of cells and tracks how many of them
// hold live elements. Appending is amortized constant, insertion and erasure
// shift the tail, and every fallible operation reports its outcome twice:
// as a returned error and in the per-array last-error slot inspected through
// Err, ErrorSite and Perror.
package da

import (
	"os"

	"github.com/pkg/errors"

	"github.com/polydung-dev/da/arena"
	"github.com/polydung-dev/da/pkg/heapmem"
	"github.com/polydung-dev/da/status"
)

// siteSkip positions the captured failure site at the caller of the exported
// operation. Frames above status.Record.Fail: 1 = record, 2 = the exported
// operation, 3 = its caller.
const siteSkip = 3

// Array is a growable contiguous sequence of cells of type T.
//
// Cells [0, Size()) hold the live elements. Operations that may change the
// capacity reallocate the backing buffer and invalidate all outstanding
// iterators and Data slices. Failed operations leave the array untouched.
//
// An Array is not safe for concurrent use.
type Array[T comparable] struct {
	data []T
	len  int
	cap  int

	factor int
	bias   int
	cells  arena.Arena

	gen  uint64
	last status.Record
}

// New returns a live array with the default configuration.
func New[T comparable]() (*Array[T], error) {
	return NewWithConfig[T](Config{})
}

// NewWithConfig returns a live array tuned by cfg.
func NewWithConfig[T comparable](cfg Config) (*Array[T], error) {
	if cfg.InitialCapacity < 0 || cfg.GrowthFactor < 0 || cfg.GrowthBias < 0 {
		return nil, errors.Wrapf(status.ErrInvalidSize,
			"negative configuration, initial capacity: %d, growth factor: %d, growth bias: %d",
			cfg.InitialCapacity, cfg.GrowthFactor, cfg.GrowthBias)
	}
	if cfg.InitialCapacity == 0 {
		cfg.InitialCapacity = DefaultInitialCapacity
	}
	if cfg.GrowthFactor == 0 {
		cfg.GrowthFactor = DefaultGrowthFactor
	}
	if cfg.Arena == nil {
		cfg.Arena = heapmem.New()
	}

	if err := cfg.Arena.Acquire(cfg.InitialCapacity); err != nil {
		return nil, errors.Wrapf(status.ErrOutOfMemory, "arena declined %d cells: %s", cfg.InitialCapacity, err)
	}

	return &Array[T]{
		data:   make([]T, cfg.InitialCapacity),
		cap:    cfg.InitialCapacity,
		factor: cfg.GrowthFactor,
		bias:   cfg.GrowthBias,
		cells:  cfg.Arena,
	}, nil
}

// Destroy releases the backing buffer and returns its cells to the arena.
// A destroyed array holds no buffer and reports zero size and capacity; it
// must not be used again except to be replaced by a newly created one.
func (a *Array[T]) Destroy() {
	if a.data == nil {
		return
	}
	a.cells.Release(a.cap)
	a.data = nil
	a.len = 0
	a.cap = 0
	a.gen++
}

// Size returns the number of live elements.
func (a *Array[T]) Size() int {
	return a.len
}

// Capacity returns the number of allocated cells.
func (a *Array[T]) Capacity() int {
	return a.cap
}

// Empty reports whether the array holds no elements.
func (a *Array[T]) Empty() bool {
	return a.len == 0
}

// Data returns the live prefix of the backing buffer. The slice is valid
// only until the next capacity-changing operation.
func (a *Array[T]) Data() []T {
	return a.data[:a.len]
}

// Front returns the first element. It panics on an empty array; check Empty
// first.
func (a *Array[T]) Front() T {
	return a.data[0]
}

// Back returns the last element. It panics on an empty array; check Empty
// first.
func (a *Array[T]) Back() T {
	return a.data[a.len-1]
}

// Get returns the element at index i. An out-of-range index reports
// OutOfBounds and yields the zero value.
func (a *Array[T]) Get(i int) (T, error) {
	v, err := a.get(i)
	return v, a.record(err)
}

// Set writes v to the cell at index i.
func (a *Array[T]) Set(i int, v T) error {
	return a.record(a.set(i, v))
}

// Reserve grows the capacity to at least n cells. It never shrinks and is a
// no-op when n does not exceed the current capacity.
func (a *Array[T]) Reserve(n int) error {
	return a.record(a.reserve(n))
}

// Resize sets the number of live elements to n. Cells newly included in the
// live prefix read as the zero value; cells dropped from it are zeroed so
// their old values are unreachable. Capacity never shrinks.
func (a *Array[T]) Resize(n int) error {
	return a.record(a.resize(n))
}

// Clear zeroes the live prefix and resets the size to 0. Capacity and the
// last-error slot are untouched.
func (a *Array[T]) Clear() {
	zeroCells(a.data[:a.len])
	a.len = 0
}

// PushBack appends v, growing the buffer if the array is full.
func (a *Array[T]) PushBack(v T) error {
	return a.record(a.pushBack(v))
}

// InsertAt inserts v before index i, shifting cells [i, Size()) one to the
// right. i equal to Size() appends.
func (a *Array[T]) InsertAt(i int, v T) error {
	return a.record(a.insert(i, v))
}

// EraseAt removes the element at index i, shifting the cells after it one to
// the left and zeroing the vacated tail cell.
func (a *Array[T]) EraseAt(i int) error {
	return a.record(a.erase(i))
}

// Err returns the outcome code of the most recent fallible operation.
func (a *Array[T]) Err() status.Code {
	return a.last.Err()
}

// ErrorSite returns the call site captured with the most recent failure.
func (a *Array[T]) ErrorSite() status.Site {
	return a.last.ErrorSite()
}

// Perror prints the diagnostic line for the last recorded outcome to the
// standard output.
func (a *Array[T]) Perror(prefix string) {
	a.last.Perror(os.Stdout, prefix)
}

// Strerror returns the fixed diagnostic string for the code.
func Strerror(c status.Code) string {
	return c.String()
}

func (a *Array[T]) get(i int) (T, error) {
	if i < 0 || i >= a.len {
		var zero T
		return zero, errors.Wrapf(status.ErrOutOfBounds, "index: %d, size: %d", i, a.len)
	}
	return a.data[i], nil
}

func (a *Array[T]) set(i int, v T) error {
	if i < 0 || i >= a.len {
		return errors.Wrapf(status.ErrOutOfBounds, "index: %d, size: %d", i, a.len)
	}
	a.data[i] = v
	return nil
}

func (a *Array[T]) reserve(n int) error {
	if n <= 0 {
		return errors.Wrapf(status.ErrInvalidSize, "capacity: %d", n)
	}
	if n <= a.cap {
		return nil
	}
	return a.realloc(n)
}

func (a *Array[T]) resize(n int) error {
	switch {
	case n <= 0:
		return errors.Wrapf(status.ErrInvalidSize, "size: %d", n)
	case n == a.len:
	case n > a.cap:
		if err := a.realloc(n); err != nil {
			return err
		}
		a.len = n
	case n > a.len:
		zeroCells(a.data[a.len:n])
		a.len = n
	default:
		zeroCells(a.data[n:a.len])
		a.len = n
	}
	return nil
}

func (a *Array[T]) pushBack(v T) error {
	if a.len == a.cap {
		if err := a.grow(); err != nil {
			return err
		}
	}
	a.data[a.len] = v
	a.len++
	return nil
}

func (a *Array[T]) insert(i int, v T) error {
	if i < 0 || i > a.len {
		return errors.Wrapf(status.ErrOutOfBounds, "position: %d, size: %d", i, a.len)
	}
	if a.len == a.cap {
		if err := a.grow(); err != nil {
			return err
		}
	}
	copy(a.data[i+1:a.len+1], a.data[i:a.len])
	a.data[i] = v
	a.len++
	return nil
}

func (a *Array[T]) erase(i int) error {
	if i < 0 || i >= a.len {
		return errors.Wrapf(status.ErrOutOfBounds, "position: %d, size: %d", i, a.len)
	}
	copy(a.data[i:a.len-1], a.data[i+1:a.len])
	var zero T
	a.data[a.len-1] = zero
	a.len--
	return nil
}

// grow enlarges a full buffer according to the growth policy, forcing a
// strict increase when the formula degenerates.
func (a *Array[T]) grow() error {
	next := a.cap*a.factor + a.bias
	if next <= a.cap {
		next = a.cap + 1
	}
	return a.realloc(next)
}

// realloc moves the live elements into a fresh buffer of n cells. The old
// buffer stays intact until the new one is committed, so a declined
// allocation leaves the array unchanged.
func (a *Array[T]) realloc(n int) error {
	if err := a.cells.Acquire(n - a.cap); err != nil {
		return errors.Wrapf(status.ErrOutOfMemory, "arena declined %d cells: %s", n-a.cap, err)
	}
	next := make([]T, n)
	copy(next, a.data[:a.len])
	a.data = next
	a.cap = n
	a.gen++
	return nil
}

// record classifies the outcome of an exported operation into the last-error
// slot, capturing the call site of that operation on failure.
func (a *Array[T]) record(err error) error {
	switch {
	case err == nil:
		a.last.OK()
	case errors.Is(err, status.ErrOutOfMemory):
		a.last.Fail(status.OutOfMemory, siteSkip)
	case errors.Is(err, status.ErrOutOfBounds):
		a.last.Fail(status.OutOfBounds, siteSkip)
	case errors.Is(err, status.ErrInvalidSize):
		a.last.Fail(status.InvalidSize, siteSkip)
	case errors.Is(err, status.ErrInvalidIterator):
		a.last.Fail(status.InvalidIterator, siteSkip)
	}
	return err
}

func zeroCells[T comparable](cells []T) {
	var zero T
	for i := range cells {
		cells[i] = zero
	}
}
