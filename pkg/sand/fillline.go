package sand

import (
	"sort"

	"github.com/chewxy/math32"

	"github.com/chazu/hourglass/pkg/curve"
)

// clipFlat walks the body outline edge by edge and keeps the points on
// the sand side of a flat horizontal fill line: y in [centerY, fillLine]
// for the top bulb, y in [fillLine-or-below, centerY] for the bottom.
// Edges that cross the fill line contribute interpolated intersection
// points, and after the walk all intersections are re-emitted along
// the fill line to close the polygon.
//
// The closing order is asymmetric on purpose: reversed by x for the
// top bulb, forward for the bottom. Swapping it inverts the winding of
// the closing run and breaks triangulation.
func clipFlat(outline []curve.Point, fillLine float32, bulb Bulb, centerY float32) []curve.Point {
	var result []curve.Point
	var intersections []curve.Point

	included := func(p curve.Point) bool {
		switch bulb {
		case Top:
			return p.Y >= centerY && p.Y <= fillLine
		default:
			return p.Y <= centerY && p.Y <= fillLine
		}
	}

	for i := range outline {
		cur := outline[i]
		next := outline[(i+1)%len(outline)]

		curIn := included(cur)
		nextIn := included(next)

		if curIn {
			result = append(result, cur)
		}

		crosses := (cur.Y <= fillLine && next.Y > fillLine) ||
			(cur.Y > fillLine && next.Y <= fillLine)
		if !crosses {
			continue
		}

		hit, ok := lineIntersection(cur, next, fillLine)
		if !ok {
			continue
		}

		// Only intersections on the chosen bulb's side count.
		valid := hit.Y >= centerY
		if bulb == Bottom {
			valid = hit.Y <= centerY
		}
		if !valid {
			continue
		}

		intersections = append(intersections, hit)
		if curIn != nextIn {
			result = append(result, hit)
		}
	}

	if len(intersections) == 0 {
		return result
	}

	sort.Slice(intersections, func(a, b int) bool {
		return intersections[a].X < intersections[b].X
	})

	switch bulb {
	case Top:
		for i := len(intersections) - 1; i >= 0; i-- {
			if !containsPoint(result, intersections[i]) {
				result = append(result, intersections[i])
			}
		}
	case Bottom:
		for _, hit := range intersections {
			if !containsPoint(result, hit) {
				result = append(result, hit)
			}
		}
	}

	return result
}

// lineIntersection computes where the segment p1-p2 meets the
// horizontal line at yLine. Returns false for horizontal segments and
// for lines outside the segment's y range.
func lineIntersection(p1, p2 curve.Point, yLine float32) (curve.Point, bool) {
	if math32.Abs(p1.Y-p2.Y) < epsilon32 {
		return curve.Point{}, false
	}

	lo := math32.Min(p1.Y, p2.Y)
	hi := math32.Max(p1.Y, p2.Y)
	if yLine < lo || yLine > hi {
		return curve.Point{}, false
	}

	t := (yLine - p1.Y) / (p2.Y - p1.Y)
	return curve.Point{X: p1.X + t*(p2.X-p1.X), Y: yLine}, true
}

// epsilon32 is the smallest float32 step away from 1.0, used to detect
// horizontal segments.
const epsilon32 = 1.1920929e-07

// containsPoint reports whether pts already holds an exactly equal
// point. Intersections re-emitted along the fill line are bitwise
// copies of the ones collected during the walk, so exact comparison is
// sufficient.
func containsPoint(pts []curve.Point, p curve.Point) bool {
	for _, q := range pts {
		if q == p {
			return true
		}
	}
	return false
}
