package da

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChecksumEqualContents(t *testing.T) {
	requireT := require.New(t)

	a, err := New[int]()
	requireT.NoError(err)
	b, err := NewWithConfig[int](Config{InitialCapacity: 16})
	requireT.NoError(err)

	for _, v := range []int{1, 2, 3} {
		requireT.NoError(a.PushBack(v))
		requireT.NoError(b.PushBack(v))
	}

	// Capacity does not participate, only the live prefix does.
	requireT.Equal(Checksum(a), Checksum(b))
}

func TestChecksumChangesWithContents(t *testing.T) {
	requireT := require.New(t)

	arr, err := New[int]()
	requireT.NoError(err)
	requireT.NoError(arr.PushBack(1))

	before := Checksum(arr)
	requireT.NoError(arr.Set(0, 2))
	requireT.NotEqual(before, Checksum(arr))
}

func TestChecksumEmpty(t *testing.T) {
	requireT := require.New(t)

	a, err := New[int]()
	requireT.NoError(err)
	b, err := New[int]()
	requireT.NoError(err)

	requireT.Equal(Checksum(a), Checksum(b))
}
