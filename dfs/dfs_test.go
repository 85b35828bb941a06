package dfs_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/islewalk/core"
	"github.com/katalvlaran/islewalk/dfs"
)

func ids(nodes []*core.Node) []int {
	out := make([]int, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}

	return out
}

func mustGraph(t *testing.T, grid [][]int) *core.Graph {
	t.Helper()
	g, err := core.New(grid)
	if err != nil {
		t.Fatalf("core.New: %v", err)
	}

	return g
}

func node(t *testing.T, g *core.Graph, id int) *core.Node {
	t.Helper()
	n, err := g.Node(id)
	if err != nil {
		t.Fatalf("Node(%d): %v", id, err)
	}

	return n
}

// TestDFS_Errors verifies that invalid inputs are rejected.
func TestDFS_Errors(t *testing.T) {
	g := mustGraph(t, [][]int{{1}})
	other := mustGraph(t, [][]int{{1}})

	if _, err := dfs.DFS(nil, nil); !errors.Is(err, dfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	if _, err := dfs.DFS(g, nil); !errors.Is(err, dfs.ErrStartNotFound) {
		t.Errorf("nil start: want ErrStartNotFound, got %v", err)
	}
	if _, err := dfs.Recursive(g, node(t, other, 0)); !errors.Is(err, dfs.ErrStartNotFound) {
		t.Errorf("foreign start: want ErrStartNotFound, got %v", err)
	}
}

// TestDFS_Order covers both flavors on a 2x2 open grid.
//
//	0 1
//	2 3
func TestDFS_Order(t *testing.T) {
	g := mustGraph(t, [][]int{{1, 1}, {1, 1}})
	start := node(t, g, 0)

	got, err := dfs.DFS(g, start)
	if err != nil {
		t.Fatal(err)
	}
	// stack pops the last pushed neighbor (Right) first
	if want := []int{0, 1, 3, 2}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("DFS order = %v; want %v", ids(got), want)
	}

	got, err = dfs.Recursive(g, start)
	if err != nil {
		t.Fatal(err)
	}
	// recursion follows adjacency order: Down before Right
	if want := []int{0, 2, 3, 1}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("Recursive order = %v; want %v", ids(got), want)
	}
}

// TestDFS_VisitsComponentOnce ensures every reachable passable node appears
// exactly once and walls and other components never appear.
func TestDFS_VisitsComponentOnce(t *testing.T) {
	g := mustGraph(t, [][]int{
		{1, 1, -1, 1},
		{1, 1, -1, 1},
		{1, 1, -1, 1},
	})
	want := map[int]bool{0: true, 1: true, 4: true, 5: true, 8: true, 9: true}

	for name, run := range map[string]func(*core.Graph, *core.Node, ...dfs.Option) ([]*core.Node, error){
		"DFS":       dfs.DFS,
		"Recursive": dfs.Recursive,
	} {
		got, err := run(g, node(t, g, 0))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		seen := map[int]bool{}
		for _, id := range ids(got) {
			if seen[id] {
				t.Errorf("%s: node %d visited twice", name, id)
			}
			seen[id] = true
		}
		if !reflect.DeepEqual(seen, want) {
			t.Errorf("%s: visited %v; want %v", name, seen, want)
		}
	}
}

// TestDFS_HookAbort stops the walk on the first hook error.
func TestDFS_HookAbort(t *testing.T) {
	g := mustGraph(t, [][]int{{1, 1, 1}})
	stop := errors.New("stop")

	got, err := dfs.DFS(g, node(t, g, 0), dfs.WithOnVisit(func(n *core.Node) error {
		if n.ID == 1 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Fatalf("want wrapped stop error, got %v", err)
	}
	if want := []int{0, 1}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("partial order = %v; want %v", ids(got), want)
	}
}

// TestDFS_ImpassableStart visits only the start when it is walled in.
func TestDFS_ImpassableStart(t *testing.T) {
	g := mustGraph(t, [][]int{{-1, 1}})
	got, err := dfs.Recursive(g, node(t, g, 0))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("order = %v; want %v", ids(got), want)
	}
}
