package roads_test

import (
	"fmt"

	"github.com/katalvlaran/roadnet/geom"
	"github.com/katalvlaran/roadnet/roads"
)

// ExampleBoundary prints the outline of a 4-wide road running along +Z.
func ExampleBoundary() {
	g := roads.Boundary(geom.V(10, 0, 10), geom.V(10, 0, 30), 4)
	fmt.Println("direction:", g.Direction)
	fmt.Println("left:", g.Left, "right:", g.Right)
	fmt.Println("anchor:", g.Anchor)
	// Output:
	// direction: (0, 0, 1)
	// left: (8, 0, 10) right: (12, 0, 10)
	// anchor: (8, 0, 10)
}
