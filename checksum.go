package da

import (
	"github.com/cespare/xxhash/v2"
	"github.com/outofforest/photon"
)

// Checksum returns the xxhash fingerprint of the live prefix. Two arrays
// holding equal elements in equal order produce the same fingerprint, which
// makes whole-content comparisons cheap in drivers and tests. Element types
// containing pointers fingerprint the pointer values, not the pointees.
func Checksum[T comparable](a *Array[T]) uint64 {
	d := xxhash.New()
	for i := 0; i < a.len; i++ {
		_, _ = d.Write(photon.NewFromValue(&a.data[i]).B)
	}
	return d.Sum64()
}
