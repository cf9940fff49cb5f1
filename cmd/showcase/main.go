// Scripted driver exercising the whole operation surface: build a sequence,
// shift it around with positional inserts and erases, then tear it down.
// Each step prints the live contents, size and capacity.
package main

import (
	"fmt"

	"github.com/polydung-dev/da"
)

func main() {
	arr, err := da.New[int]()
	if err != nil {
		panic(err)
	}
	defer arr.Destroy()

	must(arr.Resize(4))
	dump(arr, "resize(4)")

	must(arr.PushBack(42))
	dump(arr, "push_back(42)")

	must(arr.Reserve(8))
	dump(arr, "reserve(8)")

	for _, v := range []int{5, 6, 7} {
		must(arr.PushBack(v))
	}
	dump(arr, "push_back(5,6,7)")

	must(arr.Insert(arr.Begin().Add(1), 7))
	must(arr.Insert(arr.Begin().Add(2), 4))
	must(arr.Insert(arr.Begin().Add(9), 6))
	dump(arr, "insert(1,7) insert(2,4) insert(9,6)")

	must(arr.Resize(1))
	dump(arr, "resize(1)")

	arr.Clear()
	dump(arr, "clear")

	must(arr.Insert(arr.End(), 69))
	dump(arr, "insert(end, 69)")

	fmt.Printf("checksum: %016x\n", da.Checksum(arr))

	// A failing access lands in the per-array error slot.
	if _, err := arr.Get(99); err != nil {
		arr.Perror("showcase")
	}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func dump(arr *da.Array[int], step string) {
	fmt.Printf("%-40s %v size=%d cap=%d\n", step, arr.Data(), arr.Size(), arr.Capacity())
}
