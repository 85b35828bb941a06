package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/islewalk/stage"
	"github.com/katalvlaran/islewalk/tilemap"
)

// cellWidth is the number of terminal columns one tile occupies.
const cellWidth = 2

var (
	styleFog     = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
	styleWater   = tcell.StyleDefault.Foreground(tcell.ColorAqua).Background(tcell.ColorNavy)
	styleCoast   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorKhaki)
	styleGrass   = tcell.StyleDefault.Foreground(tcell.ColorLime).Background(tcell.ColorGreen)
	styleTree    = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen).Background(tcell.ColorGreen)
	styleHill    = tcell.StyleDefault.Foreground(tcell.ColorOlive).Background(tcell.ColorGreen)
	styleRock    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorGray)
	styleTown    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorGreen).Bold(true)
	styleCastle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorGreen).Bold(true)
	styleDungeon = tcell.StyleDefault.Foreground(tcell.ColorPurple).Background(tcell.ColorGreen)
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed).Bold(true)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

// glyph returns the rune and style a tile is drawn with.
func glyph(t *tilemap.Tile) (rune, tcell.Style) {
	if !t.Revealed {
		return '░', styleFog
	}
	switch t.Type() {
	case tilemap.Empty:
		return '~', styleWater
	case tilemap.Grass:
		return ' ', styleGrass
	case tilemap.Tree:
		return '♣', styleTree
	case tilemap.Hill:
		return '∩', styleHill
	case tilemap.Mountain:
		return '▲', styleRock
	case tilemap.Town:
		return '⌂', styleTown
	case tilemap.Castle:
		return 'Π', styleCastle
	case tilemap.Dungeon:
		return 'Ω', styleDungeon
	}

	return '.', styleCoast
}

// tileAtCell converts a screen cell to a tile ID, clamping the cell to the
// map so clicks on the margins pick the nearest edge tile.
func tileAtCell(m *tilemap.Map, x, y int) int {
	tx := x / cellWidth
	if x < 0 {
		tx = 0
	}
	if tx >= m.Columns() {
		tx = m.Columns() - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= m.Rows() {
		y = m.Rows() - 1
	}

	return y*m.Columns() + tx
}

// drawTile paints one tile in both of its cells.
func drawTile(screen tcell.Screen, m *tilemap.Map, t *tilemap.Tile) {
	x, y := m.Coordinate(t.ID)
	r, style := glyph(t)
	screen.SetContent(x*cellWidth, y, r, nil, style)
	screen.SetContent(x*cellWidth+1, y, ' ', nil, style)
}

// drawSession paints the map, the remaining route, the player and the
// status line.
func drawSession(screen tcell.Screen, s *stage.Session, status string) {
	m := s.Map()
	screen.Clear()
	for _, t := range m.Tiles() {
		drawTile(screen, m, t)
	}
	for _, t := range s.Route() {
		x, y := m.Coordinate(t.ID)
		_, style := glyph(t)
		screen.SetContent(x*cellWidth+1, y, '·', nil, style.Foreground(tcell.ColorWhite).Bold(true))
	}
	if p := s.Player(); p != nil {
		x, y := m.Coordinate(p.ID)
		screen.SetContent(x*cellWidth, y, '@', nil, stylePlayer)
		screen.SetContent(x*cellWidth+1, y, ' ', nil, stylePlayer)
	}
	drawText(screen, 0, m.Rows(), status, styleStatus)
	screen.Show()
}

// drawText writes s starting at (x, y) and stops at the screen edge.
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	w, _ := screen.Size()
	for _, r := range s {
		if x >= w {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// statusLine summarizes the player position for the bottom row.
func statusLine(s *stage.Session, seed int64, note string) string {
	m := s.Map()
	p := s.Player()
	x, y := m.Coordinate(p.ID)
	line := fmt.Sprintf(" seed %d  (%d,%d) %s  route %d  click=walk r=new q=quit", seed, x, y, p.Type(), len(s.Route()))
	if note != "" {
		line += "  " + note
	}

	return line
}
