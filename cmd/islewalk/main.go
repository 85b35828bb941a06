// Command islewalk generates an island and lets the player walk it in the
// terminal. Click a revealed tile to plan a route; the player follows it one
// tile per tick, revealing fog as it goes.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/islewalk/stage"
	"github.com/katalvlaran/islewalk/tilemap"
)

type flags struct {
	width, height int
	seed          int64
	fog           int
	diagonal      string
	maxAttempts   int
	stepEvery     time.Duration
	sound         bool
	volume        float64
	logPath       string
	dump          bool
}

func parseFlags(args []string) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("islewalk", flag.ContinueOnError)
	fs.IntVar(&f.width, "width", 20, "map width in tiles")
	fs.IntVar(&f.height, "height", 20, "map height in tiles")
	fs.Int64Var(&f.seed, "seed", 0, "generation seed; 0 picks one from the clock")
	fs.IntVar(&f.fog, "fog", 2, "fog reveal radius")
	fs.StringVar(&f.diagonal, "diagonal", tilemap.DiagonalEitherFlank.String(), "corner rule: either, both or none")
	fs.IntVar(&f.maxAttempts, "attempts", tilemap.DefaultMaxAttempts, "retry budget per generated map")
	fs.DurationVar(&f.stepEvery, "step", 150*time.Millisecond, "time per waypoint")
	fs.BoolVar(&f.sound, "sound", true, "play footsteps")
	fs.Float64Var(&f.volume, "volume", 0.5, "footstep volume in [0,1]")
	fs.StringVar(&f.logPath, "log", "", "write the log to this file")
	fs.BoolVar(&f.dump, "dump", false, "print the generated map as text and exit")
	if err := fs.Parse(args); err != nil {
		return f, err
	}
	if f.stepEvery <= 0 {
		return f, fmt.Errorf("step must be positive, got %v", f.stepEvery)
	}

	return f, nil
}

func sessionConfig(f flags) (stage.Config, error) {
	cfg := stage.DefaultConfig()
	policy, ok := tilemap.ParseDiagonalPolicy(f.diagonal)
	if !ok {
		return cfg, fmt.Errorf("unknown diagonal policy %q", f.diagonal)
	}
	cfg.Width, cfg.Height = f.width, f.height
	cfg.FogRadius = f.fog
	cfg.Seed = f.seed
	cfg.Diagonal = policy
	cfg.MaxAttempts = f.maxAttempts

	return cfg, nil
}

func main() {
	f, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if f.seed == 0 {
		f.seed = time.Now().UnixNano()
	}

	logger := log.New(io.Discard, "", 0)
	if f.logPath != "" {
		lf, err := os.OpenFile(f.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer lf.Close()
		logger = log.New(lf, "islewalk: ", log.LstdFlags|log.Lmicroseconds)
	}

	cfg, err := sessionConfig(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg.Logger = logger

	ctx := context.Background()
	s, err := stage.NewSession(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate map: %v\n", err)
		os.Exit(1)
	}

	if f.dump {
		fmt.Print(dumpMap(s))
		return
	}

	g, err := newGame(s, f, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer g.cleanup()

	g.run(ctx)
}

// dumpMap renders every tile, fog included, as plain text.
func dumpMap(s *stage.Session) string {
	m := s.Map()
	var b strings.Builder
	for _, t := range m.Tiles() {
		r, _ := glyph(t)
		switch {
		case t == s.Player():
			r = '@'
		case !t.Revealed:
			r = '#'
		case t.Is(tilemap.Grass):
			r = ','
		}
		b.WriteRune(r)
		if x, _ := m.Coordinate(t.ID); x == m.Columns()-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}

type game struct {
	screen  tcell.Screen
	session *stage.Session
	steps   *footsteps
	logger  *log.Logger

	seed      int64
	stepEvery time.Duration
	note      string
}

func newGame(s *stage.Session, f flags, logger *log.Logger) (*game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()

	g := &game{
		screen:    screen,
		session:   s,
		steps:     &footsteps{},
		logger:    logger,
		seed:      f.seed,
		stepEvery: f.stepEvery,
	}
	if f.sound {
		steps, err := newFootsteps(f.volume)
		if err != nil {
			// the walk works without sound
			logger.Printf("audio initialization failed: %v", err)
		}
		g.steps = steps
	}

	return g, nil
}

func (g *game) draw() {
	drawSession(g.screen, g.session, statusLine(g.session, g.seed, g.note))
}

// handleEvent applies one terminal event and reports whether to keep running.
func (g *game) handleEvent(ctx context.Context, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case 'r':
			if _, err := g.session.Reset(ctx); err != nil {
				g.logger.Printf("reset failed: %v", err)
				g.note = "reset failed"
				return true
			}
			g.note = "new island"
		}

	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return true
		}
		x, y := ev.Position()
		g.note = g.requestMove(tileAtCell(g.session.Map(), x, y))

	case *tcell.EventResize:
		g.screen.Sync()
	}

	return true
}

// requestMove asks the session for a route to target and returns the status
// note to show.
func (g *game) requestMove(target int) string {
	found, err := g.session.RequestMove(target)
	switch {
	case errors.Is(err, stage.ErrTargetHidden):
		return "that tile is hidden"
	case err != nil:
		g.logger.Printf("move to %d: %v", target, err)
		return "cannot move"
	case !found:
		return "no path"
	}
	g.logger.Printf("route to %d: %d waypoints", target, len(g.session.Route()))

	return ""
}

// tick advances the player by one waypoint.
func (g *game) tick() {
	t, _, err := g.session.Step()
	if err != nil {
		g.logger.Printf("step: %v", err)
		return
	}
	if t == nil {
		return
	}
	g.steps.Step(t)
	if t.Is(tilemap.Castle) {
		g.note = "castle reached"
	}
}

func (g *game) run(ctx context.Context) {
	ticker := time.NewTicker(g.stepEvery)
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	g.draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !g.handleEvent(ctx, ev) {
				return
			}
			g.draw()

		case <-ticker.C:
			if g.session.Walking() {
				g.tick()
				g.draw()
			}
		}
	}
}

func (g *game) cleanup() {
	g.steps.Close()
	g.screen.Fini()
}
