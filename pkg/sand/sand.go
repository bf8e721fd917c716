// Package sand derives the renderable sand-mass polygon for one bulb
// of an hourglass from the body outline and the current fill fraction.
// All functions are pure: identical inputs produce identical point
// sequences, and degenerate fills yield an empty polygon rather than
// an error.
package sand

import (
	"github.com/chewxy/math32"

	"github.com/chazu/hourglass/pkg/curve"
)

// Bulb selects which chamber sand geometry is generated for.
type Bulb int

const (
	// Top is the draining upper chamber.
	Top Bulb = iota
	// Bottom is the receiving lower chamber.
	Bottom
)

// neckHalfGap is the half-width of the gap preserved between the two
// inset sand walls at the neck, per side of the centerline.
const neckHalfGap = 0.5

// Config carries the per-call inputs for sand outline generation.
// FillPercent is owned by the caller's flow simulator and must already
// be clamped to [0, 1]; the generator does not re-clamp.
type Config struct {
	FillPercent float32
	WallOffset  float32
	NeckHeight  float32
	MinY        float32
	MaxY        float32
	// MoundFactor shapes the convex sand pile in the bottom bulb.
	// Zero disables mounding. Ignored for the top bulb.
	MoundFactor float32
}

// Outline computes the sand-mass polygon for the chosen bulb.
//
// The body outline must be the closed hourglass polygon, typically
// generated with a wall-offset-widened neck so the inset below cannot
// push walls across the centerline. An empty result means the bulb has
// effectively zero fill and nothing should be rendered.
func Outline(body []curve.Point, bulb Bulb, cfg Config) []curve.Point {
	if len(body) == 0 {
		return nil
	}

	// Degenerate fills short-circuit to an empty polygon: a clip at the
	// exact boundary would otherwise emit collinear zero-area points.
	if bulb == Top && cfg.FillPercent <= 0 {
		return nil
	}
	if bulb == Bottom && cfg.FillPercent >= 1 {
		return nil
	}

	// The body frame is centered on the neck.
	const centerY float32 = 0

	// Bottom sand must never rise into the neck.
	neckBottom := centerY - cfg.NeckHeight/2

	var fillLine float32
	switch bulb {
	case Top:
		// 1.0 puts the line at the bulb apex, 0.0 at the neck center.
		fillLine = centerY + cfg.FillPercent*(cfg.MaxY-centerY)
	case Bottom:
		// The bottom fills as the top drains, capped at the neck bottom.
		fillLine = cfg.MinY + (1-cfg.FillPercent)*(neckBottom-cfg.MinY)
	}

	var filtered []curve.Point
	switch bulb {
	case Bottom:
		filtered = clipMounded(body, fillLine, centerY, cfg.MoundFactor, cfg.FillPercent)
	case Top:
		filtered = clipFlat(body, fillLine, Top, centerY)
	}

	// Fewer than three points has no area: an effectively empty fill.
	if len(filtered) < 3 {
		return nil
	}

	points := insetWalls(filtered, cfg.WallOffset, cfg.NeckHeight, centerY)

	// While the top bulb still holds sand, extend the neck points down
	// to the glass floor as the falling stream.
	if bulb == Top && len(points) > 0 && cfg.FillPercent > 0 {
		leftNeckX := points[0].X
		rightNeckX := points[len(points)-1].X
		points = append(points,
			curve.Point{X: rightNeckX, Y: cfg.MinY},
			curve.Point{X: leftNeckX, Y: cfg.MinY},
		)
	}

	return points
}

// insetWalls moves every point horizontally toward the centerline by
// wallOffset. Within the neck's vertical band the offset is clamped so
// the two walls keep a minimum gap instead of crossing.
func insetWalls(points []curve.Point, wallOffset, neckHeight, centerY float32) []curve.Point {
	neckBand := neckHeight / 2
	out := make([]curve.Point, 0, len(points))

	for _, p := range points {
		offset := wallOffset

		if math32.Abs(p.Y-centerY) <= neckBand {
			if p.X >= 0 && p.X-wallOffset <= neckHalfGap {
				offset = math32.Max(p.X-neckHalfGap, 0)
			} else if p.X < 0 && p.X+wallOffset >= -neckHalfGap {
				offset = math32.Max(-p.X-neckHalfGap, 0)
			}
		}

		if p.X >= 0 {
			out = append(out, curve.Point{X: p.X - offset, Y: p.Y})
		} else {
			out = append(out, curve.Point{X: p.X + offset, Y: p.Y})
		}
	}
	return out
}
