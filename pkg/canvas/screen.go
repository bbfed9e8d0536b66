package canvas

import (
	"cmp"
	"slices"
	"strings"
)

// Cell is a plotted character.
type Cell struct {
	Char rune
	Fg   Colour
	Bg   Colour
}

// Point is a cell position, zero based from the top left corner.
type Point struct {
	X, Y uint32
}

// Screen is a sparse grid of plotted cells. It is not safe for concurrent use.
type Screen struct {
	width  uint32
	height uint32
	cells  map[Point]Cell
}

// NewScreen creates an empty screen of the size.
func NewScreen(width, height uint32) *Screen {
	return &Screen{width: width, height: height, cells: make(map[Point]Cell)}
}

// Size returns the screen width and height.
func (s *Screen) Size() (uint32, uint32) {
	return s.width, s.height
}

// Resize changes the visible area, plotted cells are kept.
func (s *Screen) Resize(width, height uint32) {
	s.width, s.height = width, height
}

// Clear removes all plotted cells.
func (s *Screen) Clear() {
	clear(s.cells)
}

// Set plots a cell.
func (s *Screen) Set(x, y uint32, c Cell) {
	s.cells[Point{x, y}] = c
}

// Cell returns a plotted cell.
func (s *Screen) Cell(x, y uint32) (Cell, bool) {
	c, ok := s.cells[Point{x, y}]
	return c, ok
}

// Len returns the number of plotted cells.
func (s *Screen) Len() int {
	return len(s.cells)
}

// Visible returns plotted cells inside the screen area ordered by row and column.
func (s *Screen) Visible() []Point {
	res := make([]Point, 0, len(s.cells))
	for p := range s.cells {
		if p.X < s.width && p.Y < s.height {
			res = append(res, p)
		}
	}
	slices.SortFunc(res, func(a, b Point) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
	return res
}

// Lines returns the visible area as text, blank cells are spaces.
func (s *Screen) Lines() []string {
	lines := make([]string, s.height)
	row := make([]rune, s.width)
	for y := range s.height {
		for x := range s.width {
			row[x] = ' '
			if c, ok := s.cells[Point{x, y}]; ok {
				row[x] = c.Char
			}
		}
		lines[y] = string(row)
	}
	return lines
}

// String implements [fmt.Stringer] interface.
func (s *Screen) String() string {
	return strings.Join(s.Lines(), "\n")
}

// Clone returns a copy of the screen.
func (s *Screen) Clone() *Screen {
	c := NewScreen(s.width, s.height)
	for p, cell := range s.cells {
		c.cells[p] = cell
	}
	return c
}
