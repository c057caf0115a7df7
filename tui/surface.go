// Package tui runs the particle field in a terminal with tcell. Canvas
// pixels map onto character cells: each cell covers CellW×CellH px.
package tui

import (
	"errors"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/devakorn/portfolio/canvas"
)

// Glyphs used for particles and links.
const (
	DotRune  = '•'
	LinkRune = '·'
)

var errNoScreen = errors.New("tui: no screen")

// Surface draws into a tcell screen. Particles own their cell for the
// frame: links never overwrite a dot.
type Surface struct {
	screen       tcell.Screen
	cellW, cellH int
	background   canvas.Color

	cols, rows int
	dots       []bool // cols*rows, reset by Clear
}

// NewSurface wraps an initialised screen.
func NewSurface(screen tcell.Screen, cellW, cellH int, background canvas.Color) *Surface {
	s := &Surface{
		screen:     screen,
		cellW:      max(1, cellW),
		cellH:      max(1, cellH),
		background: background,
	}
	s.Sync()
	return s
}

// Available reports an error when there is no screen.
func (s *Surface) Available() error {
	if s.screen == nil {
		return errNoScreen
	}
	return nil
}

// Sync picks up the screen size after a resize.
func (s *Surface) Sync() {
	if s.screen == nil {
		return
	}
	s.cols, s.rows = s.screen.Size()
	if n := s.cols * s.rows; cap(s.dots) < n {
		s.dots = make([]bool, n)
	} else {
		s.dots = s.dots[:n]
	}
}

// Size returns the canvas size in px.
func (s *Surface) Size() (int, int) {
	return s.cols * s.cellW, s.rows * s.cellH
}

// Cell returns the cell holding canvas point (x, y).
func (s *Surface) Cell(x, y float64) (col, row int) {
	return int(math.Floor(x / float64(s.cellW))), int(math.Floor(y / float64(s.cellH)))
}

// CellCenter returns the canvas point at the centre of a cell.
func (s *Surface) CellCenter(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * float64(s.cellW), (float64(row) + 0.5) * float64(s.cellH)
}

// Clear fills the screen with the background colour.
func (s *Surface) Clear() {
	s.Sync()
	s.screen.Fill(' ', s.style(s.background.WithAlpha(1)))
	clear(s.dots)
}

// FillCircle marks the particle's cell with a dot.
func (s *Surface) FillCircle(x, y, _ float64, c canvas.Color) {
	col, row := s.Cell(x, y)
	if !s.inside(col, row) {
		return
	}
	s.dots[row*s.cols+col] = true
	s.screen.SetContent(col, row, DotRune, nil, s.style(c))
}

// StrokeLine walks the cells between the two end points.
func (s *Surface) StrokeLine(x1, y1, x2, y2, _ float64, c canvas.Color) {
	c1, r1 := s.Cell(x1, y1)
	c2, r2 := s.Cell(x2, y2)
	steps := max(abs(c2-c1), abs(r2-r1))
	st := s.style(c)
	for i := 0; i <= steps; i++ {
		col, row := c1, r1
		if steps > 0 {
			t := float64(i) / float64(steps)
			col = c1 + int(math.Round(t*float64(c2-c1)))
			row = r1 + int(math.Round(t*float64(r2-r1)))
		}
		if !s.inside(col, row) || s.dots[row*s.cols+col] {
			continue
		}
		s.screen.SetContent(col, row, LinkRune, nil, st)
	}
}

func (s *Surface) inside(col, row int) bool {
	return col >= 0 && row >= 0 && col < s.cols && row < s.rows
}

// style draws c over the background: the terminal has no alpha, so the
// foreground is the blend.
func (s *Surface) style(c canvas.Color) tcell.Style {
	return tcell.StyleDefault.
		Foreground(Blend(c, s.background)).
		Background(rgb(s.background))
}

// Blend mixes c over an opaque background by c's alpha.
func Blend(c, bg canvas.Color) tcell.Color {
	a := min(max(c.A, 0), 1)
	mix := func(f, b uint8) int32 {
		return int32(math.Round(float64(b) + (float64(f)-float64(b))*a))
	}
	return tcell.NewRGBColor(mix(c.R, bg.R), mix(c.G, bg.G), mix(c.B, bg.B))
}

func rgb(c canvas.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

var (
	_ canvas.Surface = (*Surface)(nil)
	_ canvas.Prober  = (*Surface)(nil)
)
