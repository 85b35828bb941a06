package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/islewalk/bfs"
	"github.com/katalvlaran/islewalk/core"
)

// ExamplePath finds the fewest-steps route around a wall.
func ExamplePath() {
	g, _ := core.New([][]int{
		{1, -1, 1},
		{1, -1, 1},
		{1, 1, 1},
	})
	start, _ := g.Node(0)
	goal, _ := g.Node(2)

	path, found, _ := bfs.Path(g, start, goal)
	fmt.Println(found)
	for _, n := range path {
		r, c := g.Coordinate(n.ID)
		fmt.Printf("(%d,%d) ", r, c)
	}
	fmt.Println()
	// Output:
	// true
	// (0,0) (1,0) (2,0) (2,1) (2,2) (1,2) (0,2)
}
