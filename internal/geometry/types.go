package geometry

import "github.com/trenchworks/lagoon-engine/internal/dig"

// Point is a cell coordinate. y grows downward so that row-major grid
// storage and rendered images share an orientation.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// TrenchSegment is one straight horizontal or vertical stretch of the
// trench loop, produced by a single dig instruction. MinX..MaxY are the
// segment's own bounding box (its two endpoints sorted per axis).
type TrenchSegment struct {
	Start Point
	End   Point
	MinX  int
	MaxX  int
	MinY  int
	MaxY  int
	Color dig.Color
}

func (s *TrenchSegment) shift(dx, dy int) {
	s.Start.X += dx
	s.Start.Y += dy
	s.End.X += dx
	s.End.Y += dy

	s.MinX += dx
	s.MaxX += dx
	s.MinY += dy
	s.MaxY += dy
}

// Lagoon accumulates the trench path: the ordered segments, the dig cursor,
// and the running bounding box over everything dug so far. After
// normalization MinX = MinY = 0 and Width/Height are the final grid
// dimensions.
type Lagoon struct {
	Width    int
	Height   int
	MinX     int
	MaxX     int
	MinY     int
	MaxY     int
	Position Point
	Segments []TrenchSegment
}

// CellState is the terminal classification of one grid cell.
type CellState uint8

const (
	Background CellState = iota
	Boundary
	Interior
)
