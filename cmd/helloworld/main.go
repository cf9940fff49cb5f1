// Caesar-shift demo: seeds a byte array with a shifted NUL-terminated
// payload and repairs it into "Hello, World!" through the positional
// operations.
package main

import (
	"fmt"

	"github.com/polydung-dev/da"
)

func main() {
	arr, err := da.New[byte]()
	if err != nil {
		panic(err)
	}
	defer arr.Destroy()

	// note: assumes ascii
	for _, c := range []byte("ifmmp xxpsme\x00") {
		must(arr.PushBack(c))
	}

	for i := 0; i < arr.Size(); i++ {
		c, err := arr.Get(i)
		must(err)
		if isAlpha(c) {
			must(arr.Set(i, c-1))
		}
	}

	front, err := arr.Get(0)
	must(err)
	must(arr.Set(0, toUpper(front)))

	// Extra room up front so the iterators below survive the mutations.
	must(arr.Reserve(arr.Size() + 2))

	it := arr.Begin().Add(6)
	c, err := it.Value()
	must(err)
	must(arr.Set(it.Offset(), toUpper(c)))
	must(arr.Insert(it.Add(-1), ','))
	must(arr.Erase(it.Add(2)))
	must(arr.Set(arr.Size()-1, '!'))
	must(arr.PushBack(0))

	payload := arr.Data()
	fmt.Println(string(payload[:len(payload)-1]))

	arr.Clear()
	if !arr.Empty() {
		fmt.Println("clear / empty fault")
	}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
