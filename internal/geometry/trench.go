package geometry

import (
	"math"

	"github.com/trenchworks/lagoon-engine/internal/dig"
)

// NewLagoon returns an empty lagoon with the dig cursor at the origin and
// bounds primed so the first segment establishes them.
func NewLagoon() *Lagoon {
	return &Lagoon{
		MinX: math.MaxInt,
		MaxX: math.MinInt,
		MinY: math.MaxInt,
		MaxY: math.MinInt,
	}
}

// DigTrench advances the cursor by one instruction, appends the resulting
// segment, and folds its bounds into the running global bounding box.
func (l *Lagoon) DigTrench(in dig.Instruction) {
	start := l.Position
	end := start
	switch in.Direction {
	case dig.Up:
		end.Y -= in.Length
	case dig.Down:
		end.Y += in.Length
	case dig.Left:
		end.X -= in.Length
	case dig.Right:
		end.X += in.Length
	}

	segment := TrenchSegment{
		Start: start,
		End:   end,
		MinX:  min(start.X, end.X),
		MaxX:  max(start.X, end.X),
		MinY:  min(start.Y, end.Y),
		MaxY:  max(start.Y, end.Y),
		Color: in.Color,
	}

	l.MinX = min(l.MinX, segment.MinX)
	l.MaxX = max(l.MaxX, segment.MaxX)
	l.MinY = min(l.MinY, segment.MinY)
	l.MaxY = max(l.MaxY, segment.MaxY)

	l.Position = end
	l.Segments = append(l.Segments, segment)
}

// DigTrenches digs the whole plan and fixes the grid dimensions. The plan
// must be non-empty; validation of individual instructions belongs to the
// decoder.
func (l *Lagoon) DigTrenches(plan []dig.Instruction) error {
	if len(plan) == 0 {
		return ErrEmptyPlan
	}
	for _, instruction := range plan {
		l.DigTrench(instruction)
	}

	l.Width = l.MaxX - l.MinX + 1
	l.Height = l.MaxY - l.MinY + 1
	return nil
}

// Closed reports whether the dug path returned to its starting cell. Only
// meaningful before Normalize moves the coordinate frame.
func (l *Lagoon) Closed() bool {
	return l.Position == Point{}
}

// Normalize translates every segment and the global bounds by
// (-MinX, -MinY) so the bounding box's minimum corner sits at the origin
// and all coordinates are valid grid indices. The shift is applied
// uniformly; afterwards MinX = MinY = 0 and MaxX/MaxY equal Width-1 and
// Height-1.
func (l *Lagoon) Normalize() {
	dx := -l.MinX
	dy := -l.MinY
	for i := range l.Segments {
		l.Segments[i].shift(dx, dy)
	}

	l.MinX += dx
	l.MaxX += dx
	l.MinY += dy
	l.MaxY += dy
	l.Position.X += dx
	l.Position.Y += dy
}
