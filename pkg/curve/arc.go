package curve

import (
	"github.com/chewxy/math32"
)

// Arc is a circular arc described by center, radius, start/end angles
// (radians) and a winding direction.
type Arc struct {
	Center     Point
	Radius     float32
	StartAngle float32
	EndAngle   float32
	Clockwise  bool
}

// Quadrant identifies one quarter of a circle for QuarterArc.
type Quadrant int

const (
	QuadrantTopRight Quadrant = iota
	QuadrantTopLeft
	QuadrantBottomLeft
	QuadrantBottomRight
)

// NewArc creates a circular arc.
func NewArc(center Point, radius, startAngle, endAngle float32, clockwise bool) *Arc {
	return &Arc{
		Center:     center,
		Radius:     radius,
		StartAngle: startAngle,
		EndAngle:   endAngle,
		Clockwise:  clockwise,
	}
}

// QuarterArc creates a counterclockwise 90-degree arc covering the
// given quadrant.
func QuarterArc(center Point, radius float32, q Quadrant) *Arc {
	var start, end float32
	switch q {
	case QuadrantTopRight:
		start, end = 0, math32.Pi/2
	case QuadrantTopLeft:
		start, end = math32.Pi/2, math32.Pi
	case QuadrantBottomLeft:
		start, end = math32.Pi, 3*math32.Pi/2
	case QuadrantBottomRight:
		start, end = 3*math32.Pi/2, 2*math32.Pi
	}
	return NewArc(center, radius, start, end, false)
}

// span returns the angular span of the arc, normalized into (0, 2π]
// respecting the winding direction. The normalization guarantees that
// sampling the span away from the start angle lands exactly on the end
// angle, so chained arcs meet without drift.
func (a *Arc) span() float32 {
	if a.Clockwise {
		if a.StartAngle <= a.EndAngle {
			return a.StartAngle + 2*math32.Pi - a.EndAngle
		}
		return a.StartAngle - a.EndAngle
	}
	if a.EndAngle >= a.StartAngle {
		return a.EndAngle - a.StartAngle
	}
	return a.EndAngle + 2*math32.Pi - a.StartAngle
}

// Points samples resolution+1 uniformly spaced angles along the arc.
// Points(0) degenerates to the two endpoints.
func (a *Arc) Points(resolution int) []Point {
	if resolution <= 0 {
		return []Point{a.Start(), a.End()}
	}

	span := a.span()
	points := make([]Point, 0, resolution+1)
	for i := 0; i <= resolution; i++ {
		t := float32(i) / float32(resolution)
		angle := a.StartAngle + t*span
		if a.Clockwise {
			angle = a.StartAngle - t*span
		}
		points = append(points, a.at(angle))
	}
	return points
}

// Start returns the point at the start angle.
func (a *Arc) Start() Point {
	return a.at(a.StartAngle)
}

// End returns the point at the end angle.
func (a *Arc) End() Point {
	return a.at(a.EndAngle)
}

func (a *Arc) at(angle float32) Point {
	return Point{
		X: a.Center.X + a.Radius*math32.Cos(angle),
		Y: a.Center.Y + a.Radius*math32.Sin(angle),
	}
}
