package geometry

// FloodFill reclassifies every Background cell reachable from the grid's
// center cell as Interior, stopping at Boundary cells. The caller must
// guarantee the boundary forms a single closed loop around the center;
// with an open loop the fill leaks to the outside with no error signal.
//
// The traversal is a breadth-first fill over a coordinate queue. A cell is
// only marked when it is still Background at dequeue time, so duplicate
// queue entries are harmless and no separate visited set is needed. The
// returned slice is the fill order, used by the visualization stream to
// replay the fill cell by cell.
func (g *Grid) FloodFill() []Point {
	seed := Point{X: g.Width / 2, Y: g.Height / 2}
	total := g.Width * g.Height
	filled := make([]Point, 0, total)

	queue := make([]Point, 0, total)
	queue = append(queue, seed)

	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]

		idx := cell.Y*g.Width + cell.X
		if g.states[idx] != Background {
			continue
		}
		g.states[idx] = Interior
		filled = append(filled, cell)

		if cell.Y > 0 {
			queue = append(queue, Point{X: cell.X, Y: cell.Y - 1})
		}
		if cell.Y < g.Height-1 {
			queue = append(queue, Point{X: cell.X, Y: cell.Y + 1})
		}
		if cell.X > 0 {
			queue = append(queue, Point{X: cell.X - 1, Y: cell.Y})
		}
		if cell.X < g.Width-1 {
			queue = append(queue, Point{X: cell.X + 1, Y: cell.Y})
		}
	}

	return filled
}
