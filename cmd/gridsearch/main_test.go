package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/islewalk/core"
	"github.com/katalvlaran/islewalk/search"
)

// TestReadGrid accepts spaces, commas, comments and blank lines.
func TestReadGrid(t *testing.T) {
	in := "# terrain\n1, 2,3\n\n4 -1\t6\n"
	grid, err := readGrid(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 3}, {4, -1, 6}}, grid)

	_, err = readGrid(strings.NewReader("1 x 3\n"))
	assert.ErrorContains(t, err, "line 1")
}

// TestNodeArg resolves and rejects cell arguments.
func TestNodeArg(t *testing.T) {
	g, err := core.New([][]int{{1, 1}, {1, 1}})
	require.NoError(t, err)

	n, err := nodeArg(g, "1, 0")
	require.NoError(t, err)
	assert.Equal(t, 2, n.ID)

	_, err = nodeArg(g, "1")
	assert.Error(t, err)
	_, err = nodeArg(g, "a,0")
	assert.Error(t, err)
	_, err = nodeArg(g, "2,0")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

// TestRunDemoGrid runs the weighted strategies over the demo grid.
func TestRunDemoGrid(t *testing.T) {
	for _, name := range []string{"path-dijkstra", "path-astar"} {
		var out bytes.Buffer
		require.NoError(t, run([]string{"-strategy", name}, nil, &out))

		got := out.String()
		assert.Contains(t, got, "strategy: "+name+"\n")
		assert.Contains(t, got, "found: true\n")
		assert.Contains(t, got, "steps: 12\n")
		assert.Contains(t, got, "cost: 12\n")
		assert.Contains(t, got, "path: (0,0) (1,0)")
	}
}

// TestRunTraversal reports the visit order for traversal strategies.
func TestRunTraversal(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-strategy", "bfs", "-goal", "4,4"}, nil, &out))

	got := out.String()
	assert.Contains(t, got, "found: true\n")
	assert.Contains(t, got, "visited: 21\n")
	assert.Contains(t, got, "order: (0,0) (1,0)")
}

// TestRunStdinBlocked reads a grid with a full wall row and finds nothing.
func TestRunStdinBlocked(t *testing.T) {
	grid := "1 1 1\n-1 -1 -1\n1 1 1\n"
	var out bytes.Buffer
	err := run([]string{"-grid", "-", "-strategy", "path-bfs", "-goal", "2,2", "-draw"}, strings.NewReader(grid), &out)
	require.NoError(t, err)

	assert.Equal(t, "strategy: path-bfs\nfound: false\n...\n###\n...\n", out.String())
}

// TestRunFileAndDraw marks the path on the printed grid.
func TestRunFileAndDraw(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 1 1\n1 -1 1\n"), 0o644))

	var out bytes.Buffer
	err := run([]string{"-grid", path, "-strategy", "path-dijkstra", "-start", "1,0", "-goal", "1,2", "-draw"}, nil, &out)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out.String(), "***\n*#*\n"), out.String())
}

// TestRunErrors surfaces bad strategy names and malformed grids.
func TestRunErrors(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-strategy", "teleport"}, nil, &out)
	assert.ErrorIs(t, err, search.ErrUnknownStrategy)

	err = run([]string{"-grid", "-"}, strings.NewReader("1 1\n1\n"), &out)
	assert.ErrorIs(t, err, core.ErrNonRectangular)

	err = run([]string{"-grid", "-"}, strings.NewReader(""), &out)
	assert.ErrorIs(t, err, core.ErrEmptyGrid)

	err = run([]string{"-start", "9,9"}, nil, &out)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

// TestRunZeroWeightCost reports the cheapest cost when free cells exist.
func TestRunZeroWeightCost(t *testing.T) {
	grid := "1 0 0 0 0\n1 5 5 5 0\n1 1 1 1 1\n"
	var out bytes.Buffer
	err := run([]string{"-grid", "-", "-start", "1,0", "-goal", "2,4"}, strings.NewReader(grid), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "cost: 2\n")
}
