package grid_test

import (
	"fmt"

	"github.com/JaviLunes/AdventCodeTools/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: FindPath around a wall
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_FindPath routes around a vertical wall on a weighted field.
// Scenario:
//
//   - 3×3 grid; the middle column is impassable except on the bottom row.
//   - Start (0,0), goal (2,0); only route runs along the bottom.
func ExampleGrid_FindPath() {
	g, _ := grid.New([][]int{
		{1, -1, 1},
		{1, -1, 1},
		{1, 1, 1},
	})

	path, cost, _ := g.FindPath(0, 0, 2, 0)
	fmt.Println("cost:", cost)
	for _, c := range path {
		fmt.Printf("(%d,%d) ", c.X(), c.Y())
	}
	fmt.Println()

	// Output:
	// cost: 6
	// (0,0) (0,1) (0,2) (1,2) (2,2) (2,1) (2,0)
}
