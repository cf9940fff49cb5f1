package da

import (
	"github.com/polydung-dev/da/arena"
)

const (
	// DefaultInitialCapacity is the number of cells allocated on creation.
	DefaultInitialCapacity = 1

	// DefaultGrowthFactor is the multiplier applied to the capacity when a
	// full array needs more room.
	DefaultGrowthFactor = 2

	// DefaultGrowthBias is the additive term applied after the growth factor.
	DefaultGrowthBias = 0
)

// Config tunes a single array instance. Zero-valued fields fall back to the
// defaults.
type Config struct {
	// InitialCapacity is the number of cells allocated on creation.
	InitialCapacity int

	// GrowthFactor multiplies the capacity when the array is full.
	GrowthFactor int

	// GrowthBias is added on top of the multiplied capacity. The growth
	// target is always forced to exceed the old capacity by at least one
	// cell.
	GrowthBias int

	// Arena accounts cell allocations. The heap arena is used when nil.
	Arena arena.Arena
}
