// Command gridsearch reads an integer weight grid and runs one search
// strategy over it.
//
// Grid rows are lines of integers separated by spaces or commas; negative
// cells are walls. Blank lines and lines starting with '#' are skipped.
//
//	gridsearch -strategy path-dijkstra -start 0,0 -goal 0,4 < grid.txt
//
// Without -grid the built-in 5x5 demo grid is used.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/islewalk/core"
	"github.com/katalvlaran/islewalk/search"
)

// demoGrid has a wall down column 1 open only on the bottom row.
const demoGrid = `
1 -1  1 1 1
1 -1 10 5 1
1 -1 10 5 1
1 -1  5 1 1
1  1  1 1 1
`

func main() {
	log.SetFlags(0)
	log.SetPrefix("gridsearch: ")
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("gridsearch", flag.ContinueOnError)
	gridPath := fs.String("grid", "", `grid file; "-" reads stdin, empty uses the demo grid`)
	name := fs.String("strategy", "path-astar", "one of "+strings.Join(search.Names(), ", "))
	startArg := fs.String("start", "0,0", "start cell as row,col")
	goalArg := fs.String("goal", "", "goal cell as row,col; defaults to the opposite corner of the first row")
	draw := fs.Bool("draw", false, "print the grid with the result marked")
	if err := fs.Parse(args); err != nil {
		return err
	}

	src := io.Reader(strings.NewReader(demoGrid))
	switch *gridPath {
	case "":
	case "-":
		src = stdin
	default:
		f, err := os.Open(*gridPath)
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	}

	grid, err := readGrid(src)
	if err != nil {
		return err
	}
	g, err := core.New(grid)
	if err != nil {
		return err
	}

	st, err := search.Lookup(*name)
	if err != nil {
		return err
	}
	start, err := nodeArg(g, *startArg)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	goalCell := *goalArg
	if goalCell == "" {
		goalCell = fmt.Sprintf("0,%d", g.Cols()-1)
	}
	goal, err := nodeArg(g, goalCell)
	if err != nil {
		return fmt.Errorf("goal: %w", err)
	}

	s, err := search.New(g)
	if err != nil {
		return err
	}
	found, err := s.Search(st, start, goal)
	if err != nil {
		return err
	}

	report(stdout, g, st, found, s.Path())
	if *draw {
		drawGrid(stdout, g, s.Path())
	}

	return nil
}

// readGrid parses rows of integers.
func readGrid(r io.Reader) ([][]int, error) {
	var grid [][]int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			row[i] = v
		}
		grid = append(grid, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return grid, nil
}

// nodeArg resolves "row,col" to a node of g.
func nodeArg(g *core.Graph, s string) (*core.Node, error) {
	rs, cs, ok := strings.Cut(s, ",")
	if !ok {
		return nil, fmt.Errorf("want row,col, got %q", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return nil, err
	}
	col, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return nil, err
	}

	return g.NodeAt(row, col)
}

func report(w io.Writer, g *core.Graph, st search.Strategy, found bool, nodes []*core.Node) {
	fmt.Fprintf(w, "strategy: %s\n", st.Name())
	fmt.Fprintf(w, "found: %t\n", found)
	if len(nodes) == 0 {
		return
	}
	cells := make([]string, len(nodes))
	for i, n := range nodes {
		r, c := g.Coordinate(n.ID)
		cells[i] = fmt.Sprintf("(%d,%d)", r, c)
	}
	switch st.(type) {
	case search.DFS, search.RecursiveDFS, search.BFS:
		fmt.Fprintf(w, "visited: %d\n", len(nodes))
		fmt.Fprintf(w, "order: %s\n", strings.Join(cells, " "))
	default:
		fmt.Fprintf(w, "steps: %d\n", len(nodes)-1)
		fmt.Fprintf(w, "cost: %d\n", core.PathCost(nodes))
		fmt.Fprintf(w, "path: %s\n", strings.Join(cells, " "))
	}
}

// drawGrid prints walls as '#', marked cells as '*' and the rest as '.'.
func drawGrid(w io.Writer, g *core.Graph, marked []*core.Node) {
	on := make([]bool, g.Len())
	for _, n := range marked {
		on[n.ID] = true
	}
	var b strings.Builder
	for _, n := range g.Nodes() {
		switch {
		case !n.CanVisit():
			b.WriteByte('#')
		case on[n.ID]:
			b.WriteByte('*')
		default:
			b.WriteByte('.')
		}
		if _, c := g.Coordinate(n.ID); c == g.Cols()-1 {
			b.WriteByte('\n')
		}
	}
	io.WriteString(w, b.String())
}
