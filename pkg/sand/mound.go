package sand

import (
	"sort"

	"github.com/chazu/hourglass/pkg/curve"
)

// crossingSamples is the number of sub-steps used to locate where an
// edge crosses the curved fill line. A linear scan keeps the mound
// shape identical to the upstream renderer; the error per crossing is
// bounded by edge length / crossingSamples.
const crossingSamples = 10

// crestSamples is the number of extra points emitted along the mound
// crest between the outermost crossings.
const crestSamples = 20

// moundScale converts mound strength into vertical units as a fraction
// of the sand width at the base fill line.
const moundScale = 0.1

// clipMounded clips the body outline for the bottom bulb against a
// parabolic fill line that piles sand toward the centerline. The mound
// is strongest while the top bulb is still mostly full and flattens as
// sand accumulates. A zero mound factor, or a fill line that does not
// span any sand width, falls back to the flat clip.
func clipMounded(outline []curve.Point, baseFillLine, centerY, moundFactor, fillPercent float32) []curve.Point {
	if moundFactor == 0 {
		return clipFlat(outline, baseFillLine, Bottom, centerY)
	}

	moundStrength := moundFactor * fillPercent

	// Measure the sand width where the flat fill line meets the walls.
	var leftX, rightX float32
	for i := range outline {
		cur := outline[i]
		next := outline[(i+1)%len(outline)]
		if hit, ok := lineIntersection(cur, next, baseFillLine); ok {
			if hit.X < 0 {
				leftX = hit.X
			} else {
				rightX = hit.X
			}
		}
	}

	sandWidth := rightX - leftX
	if sandWidth <= 0 {
		return clipFlat(outline, baseFillLine, Bottom, centerY)
	}

	// Parabolic crest: highest at the center of the sand span, zero at
	// the walls.
	fillLineAt := func(x float32) float32 {
		nx := (x - (leftX+rightX)*0.5) / (sandWidth * 0.5)
		if nx < -1 {
			nx = -1
		} else if nx > 1 {
			nx = 1
		}
		return baseFillLine + moundStrength*sandWidth*moundScale*(1-nx*nx)
	}

	included := func(p curve.Point) bool {
		return p.Y <= centerY && p.Y <= fillLineAt(p.X)
	}

	var result []curve.Point
	var crossings []curve.Point

	for i := range outline {
		cur := outline[i]
		next := outline[(i+1)%len(outline)]

		curIn := included(cur)
		if curIn {
			result = append(result, cur)
		}
		if curIn == included(next) {
			continue
		}

		// The fill line is curved, so the crossing is found by
		// sampling along the edge rather than solved in closed form.
		for j := 1; j < crossingSamples; j++ {
			t := float32(j) / float32(crossingSamples)
			x := cur.X*(1-t) + next.X*t
			y := cur.Y*(1-t) + next.Y*t

			if (y <= centerY && y <= fillLineAt(x)) != curIn {
				hit := curve.Point{X: x, Y: fillLineAt(x)}
				crossings = append(crossings, hit)
				result = append(result, hit)
				break
			}
		}
	}

	if len(crossings) == 0 {
		return result
	}

	sort.Slice(crossings, func(a, b int) bool {
		return crossings[a].X < crossings[b].X
	})

	// Resample the crest between the outermost crossings for a smooth
	// crown.
	if len(crossings) >= 2 {
		leftmost := crossings[0]
		rightmost := crossings[len(crossings)-1]
		for i := 0; i <= crestSamples; i++ {
			t := float32(i) / float32(crestSamples)
			x := leftmost.X*(1-t) + rightmost.X*t
			result = append(result, curve.Point{X: x, Y: fillLineAt(x)})
		}
	}

	return result
}
