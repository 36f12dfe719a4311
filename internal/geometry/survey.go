package geometry

import "github.com/trenchworks/lagoon-engine/internal/dig"

// Result is a completed survey: the normalized lagoon, the fully
// classified grid, the cell counts, and the order in which the fill
// visited interior cells.
type Result struct {
	Lagoon    *Lagoon
	Grid      *Grid
	Area      int
	Boundary  int
	Interior  int
	FillOrder []Point
}

// Survey runs the whole pipeline over a decoded dig plan: dig the trench
// path, verify the loop closes, normalize to the origin, rasterize the
// boundary, and flood-fill the interior from the grid center.
func Survey(plan []dig.Instruction) (*Result, error) {
	lagoon := NewLagoon()
	if err := lagoon.DigTrenches(plan); err != nil {
		return nil, err
	}
	if !lagoon.Closed() {
		return nil, ErrOpenLoop
	}
	lagoon.Normalize()

	grid := lagoon.Rasterize()
	fillOrder := grid.FloodFill()

	boundary := grid.Count(Boundary)
	interior := grid.Count(Interior)
	return &Result{
		Lagoon:    lagoon,
		Grid:      grid,
		Area:      boundary + interior,
		Boundary:  boundary,
		Interior:  interior,
		FillOrder: fillOrder,
	}, nil
}
