package arena

// Arena accounts element cells before a container materializes them.
// An Acquire error means the allocation was declined and nothing was
// reserved; the container maps it to its out-of-memory outcome.
type Arena interface {
	// Acquire reserves room for n more cells.
	Acquire(n int) error
	// Release returns n previously acquired cells.
	Release(n int)
}
