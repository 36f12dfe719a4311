package geometry

import "github.com/trenchworks/lagoon-engine/internal/dig"

// Grid is the flat rasterization target: one CellState per cell and, for
// Boundary cells, the color of the segment that painted them. Cells are
// stored row-major and indexed y*Width+x.
type Grid struct {
	Width  int
	Height int
	states []CellState
	colors []dig.Color
}

// NewGrid allocates a Width x Height grid with every cell Background.
func NewGrid(width, height int) *Grid {
	total := width * height
	return &Grid{
		Width:  width,
		Height: height,
		states: make([]CellState, total),
		colors: make([]dig.Color, total),
	}
}

// State returns the classification of cell (x, y).
func (g *Grid) State(x, y int) CellState {
	return g.states[y*g.Width+x]
}

// Color returns the stored segment color of cell (x, y). Only meaningful
// for Boundary cells.
func (g *Grid) Color(x, y int) dig.Color {
	return g.colors[y*g.Width+x]
}

// States returns the packed row-major cell states, one byte per cell.
func (g *Grid) States() []byte {
	packed := make([]byte, len(g.states))
	for i, s := range g.states {
		packed[i] = byte(s)
	}
	return packed
}

func (g *Grid) setBoundary(x, y int, c dig.Color) {
	idx := y*g.Width + x
	g.states[idx] = Boundary
	g.colors[idx] = c
}

// Count returns the number of cells in the given state.
func (g *Grid) Count(state CellState) int {
	n := 0
	for _, s := range g.states {
		if s == state {
			n++
		}
	}
	return n
}

// Area is the enclosed cell count: everything that is not outside the
// loop, i.e. Boundary plus Interior.
func (g *Grid) Area() int {
	return g.Count(Boundary) + g.Count(Interior)
}

// Rasterize paints every cell covered by a normalized segment as Boundary
// with that segment's color. Segments are exactly horizontal or vertical,
// so each one is a single inclusive range along its varying axis; the range
// comes from the sorted endpoint coordinates, never from instruction
// direction. Overlapping segments repaint (last write wins), which keeps
// the pass idempotent.
func (l *Lagoon) Rasterize() *Grid {
	grid := NewGrid(l.Width, l.Height)
	for i := range l.Segments {
		segment := &l.Segments[i]
		if segment.Start.X == segment.End.X {
			x := segment.Start.X
			lo := min(segment.Start.Y, segment.End.Y)
			hi := max(segment.Start.Y, segment.End.Y)
			for y := lo; y <= hi; y++ {
				grid.setBoundary(x, y, segment.Color)
			}
		}
		if segment.Start.Y == segment.End.Y {
			y := segment.Start.Y
			lo := min(segment.Start.X, segment.End.X)
			hi := max(segment.Start.X, segment.End.X)
			for x := lo; x <= hi; x++ {
				grid.setBoundary(x, y, segment.Color)
			}
		}
	}
	return grid
}
