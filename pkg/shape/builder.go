package shape

import (
	"github.com/chazu/hourglass/pkg/curve"
)

// Builder assembles a closed hourglass outline from a total height and
// the bulb/neck styles. It is a pure function of its three fields; the
// same builder always produces the same polygon.
type Builder struct {
	TotalHeight float32
	Bulb        BulbStyle
	Neck        NeckStyle
}

// NewBuilder returns a builder with the default styles and a total
// height of 200 units.
func NewBuilder() Builder {
	return Builder{
		TotalHeight: 200,
		Bulb:        DefaultBulb(),
		Neck:        DefaultNeck(),
	}
}

// Outline generates the closed hourglass outline polygon. Points wind
// counterclockwise starting at the bottom-left bulb corner.
func (b Builder) Outline() []curve.Point {
	return b.OutlineWithWallOffset(0)
}

// OutlineWithWallOffset generates the outline with the neck widened so
// that sand walls inset by wallOffset cannot cross. Used when the
// outline feeds sand generation rather than the glass body itself.
//
// Segment order: bottom-left bulb, left neck, top-left bulb, top cap
// vertex, top-right bulb, right neck, bottom-right bulb. The bottom is
// closed implicitly by the polygon wrap-around. Each segment after the
// first drops its leading point, which duplicates the previous
// segment's endpoint.
func (b Builder) OutlineWithWallOffset(wallOffset float32) []curve.Point {
	halfHeight := b.TotalHeight / 2
	neckWidth := NeckWidth(b.Neck)
	if wallOffset > 0 {
		neckWidth = NeckWidthWithWallOffset(b.Neck, wallOffset)
	}
	neckHalfWidth := neckWidth / 2
	neckHalfHeight := NeckHeight(b.Neck) / 2

	// Total height is the authoritative dimension; bulbs take what the
	// neck leaves over.
	bulbHeight := (b.TotalHeight - NeckHeight(b.Neck)) / 2
	bulbWidth := bulbHeight * BulbWidthFactor(b.Bulb)

	bulbRes := BulbCurveResolution(b.Bulb)
	neckRes := NeckCurveResolution(b.Neck)

	var outline []curve.Point

	// Bottom-left bulb, bottom corner up to the neck.
	bottomLeft := b.bulbCurve(
		curve.Point{X: -bulbWidth, Y: -halfHeight},
		curve.Point{X: -neckHalfWidth, Y: -neckHalfHeight},
	)
	outline = append(outline, bottomLeft.Points(bulbRes)...)

	// Left neck, bottom to top.
	leftNeck := b.neckCurve(
		curve.Point{X: -neckHalfWidth, Y: -neckHalfHeight},
		curve.Point{X: -neckHalfWidth, Y: neckHalfHeight},
	)
	outline = appendSkippingFirst(outline, leftNeck.Points(neckRes))

	// Top-left bulb, neck up to the top corner.
	topLeft := b.bulbCurve(
		curve.Point{X: -neckHalfWidth, Y: neckHalfHeight},
		curve.Point{X: -bulbWidth, Y: halfHeight},
	)
	outline = appendSkippingFirst(outline, topLeft.Points(bulbRes))

	// Top cap: a straight cut across the top, so a single vertex.
	outline = append(outline, curve.Point{X: bulbWidth, Y: halfHeight})

	// Top-right bulb, top corner down to the neck.
	topRight := b.bulbCurve(
		curve.Point{X: bulbWidth, Y: halfHeight},
		curve.Point{X: neckHalfWidth, Y: neckHalfHeight},
	)
	outline = appendSkippingFirst(outline, topRight.Points(bulbRes))

	// Right neck, top to bottom.
	rightNeck := b.neckCurve(
		curve.Point{X: neckHalfWidth, Y: neckHalfHeight},
		curve.Point{X: neckHalfWidth, Y: -neckHalfHeight},
	)
	outline = appendSkippingFirst(outline, rightNeck.Points(neckRes))

	// Bottom-right bulb, neck down to the bottom corner. The wrap to
	// the first point closes the bottom.
	bottomRight := b.bulbCurve(
		curve.Point{X: neckHalfWidth, Y: -neckHalfHeight},
		curve.Point{X: bulbWidth, Y: -halfHeight},
	)
	outline = appendSkippingFirst(outline, bottomRight.Points(bulbRes))

	return outline
}

// bulbCurve creates the curve for one bulb side. Circular bulbs bow
// outward on every corner; straight bulbs are straight lines.
func (b Builder) bulbCurve(start, end curve.Point) curve.Generator {
	switch s := b.Bulb.(type) {
	case CircularBulb:
		return curve.NewTransition(start, end, s.Curvature, curve.DirectionOutward)
	case StraightBulb:
		return curve.Line(start, end)
	default:
		return curve.NewTransition(start, end, 1.0, curve.DirectionOutward)
	}
}

// neckCurve creates the curve for one neck side. Curved necks pinch
// inward; straight necks are straight lines.
func (b Builder) neckCurve(start, end curve.Point) curve.Generator {
	switch s := b.Neck.(type) {
	case StraightNeck:
		return curve.Line(start, end)
	case CurvedNeck:
		return curve.NewTransition(start, end, s.Curvature, curve.DirectionInward)
	default:
		return curve.NewTransition(start, end, 0.2, curve.DirectionInward)
	}
}

// appendSkippingFirst appends pts to dst without the first entry,
// which duplicates the previous segment's endpoint.
func appendSkippingFirst(dst, pts []curve.Point) []curve.Point {
	if len(pts) == 0 {
		return dst
	}
	return append(dst, pts[1:]...)
}
