package curve

import (
	"github.com/chewxy/math32"
)

// transitionScale converts curvature units into a perpendicular offset
// as a fraction of segment length.
const transitionScale = 0.1

// Transition is a smooth curve between two points. At curvature 0 it is
// a straight line; otherwise each interpolated point is offset
// perpendicular to the chord by a half-sine bump scaled by the
// curvature and 10% of the segment length.
type Transition struct {
	From      Point
	To        Point
	Curvature float32
	Direction Direction
}

// NewTransition creates a smooth transition. Negative curvature is
// floored at zero; values above 1.0 are allowed for extreme curves.
func NewTransition(from, to Point, curvature float32, dir Direction) *Transition {
	return &Transition{
		From:      from,
		To:        to,
		Curvature: math32.Max(curvature, 0),
		Direction: dir,
	}
}

// Line creates a straight line segment.
func Line(from, to Point) *Transition {
	return NewTransition(from, to, 0, DirectionNone)
}

// Points samples resolution+1 points along the transition.
// Points(0) degenerates to the two endpoints.
func (tr *Transition) Points(resolution int) []Point {
	if resolution <= 0 {
		return []Point{tr.From, tr.To}
	}

	points := make([]Point, 0, resolution+1)
	dx := tr.To.X - tr.From.X
	dy := tr.To.Y - tr.From.Y
	length := math32.Sqrt(dx*dx + dy*dy)

	for i := 0; i <= resolution; i++ {
		t := float32(i) / float32(resolution)
		base := Point{
			X: tr.From.X*(1-t) + tr.To.X*t,
			Y: tr.From.Y*(1-t) + tr.To.Y*t,
		}

		// Zero curvature or a zero-length chord degenerates to the
		// linear interpolation.
		if tr.Curvature == 0 || length == 0 {
			points = append(points, base)
			continue
		}

		var offset float32
		switch tr.Direction {
		case DirectionInward:
			offset = -tr.Curvature * math32.Sin(t*math32.Pi)
		case DirectionOutward:
			offset = tr.Curvature * math32.Sin(t*math32.Pi)
		}

		// Perpendicular to the chord, rotated 90 degrees counterclockwise.
		perpX := -dy / length
		perpY := dx / length
		points = append(points, Point{
			X: base.X + perpX*offset*length*transitionScale,
			Y: base.Y + perpY*offset*length*transitionScale,
		})
	}
	return points
}

// Start returns the first endpoint.
func (tr *Transition) Start() Point {
	return tr.From
}

// End returns the second endpoint.
func (tr *Transition) End() Point {
	return tr.To
}
