package lattice_test

import (
	"fmt"

	"github.com/katalvlaran/roadnet/lattice"
)

// ExampleNew builds the 100x100 lattice with 10-unit cells and links two
// neighbouring nodes.
func ExampleNew() {
	l, err := lattice.New(100, 100, 10)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("index %dx%d, active %dx%d\n", l.Cols, l.Rows, l.ActiveCols, l.ActiveRows)

	a, b := l.Index(0, 0), l.Index(1, 0)
	_ = l.Link(a, b)
	fmt.Println("chains:", l.Chains())
	fmt.Println("reverse allowed:", l.CanLink(b, a))
	// Output:
	// index 9x9, active 8x8
	// chains: [[0 1]]
	// reverse allowed: false
}
