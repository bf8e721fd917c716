// Package shape builds closed hourglass outline polygons from
// configurable bulb and neck styles.
package shape

import (
	"github.com/chewxy/math32"
)

// minNeckWidth is the absolute floor for neck width, preventing
// degenerate necks.
const minNeckWidth = 3.0

// minNeckGap is the minimum gap kept between the two inset sand walls
// inside the neck.
const minNeckGap = 2.0

// BulbStyle is a closed set of bulb shape variants. The concrete types
// are CircularBulb and StraightBulb; accessors type-switch over them
// exhaustively.
type BulbStyle interface {
	isBulbStyle()
}

// CircularBulb produces bulbs whose sides bow outward with adjustable
// curvature.
type CircularBulb struct {
	Curvature       float32
	WidthFactor     float32
	CurveResolution int
}

// StraightBulb produces straight-sided bulbs (a triangular silhouette).
type StraightBulb struct {
	WidthFactor float32
}

func (CircularBulb) isBulbStyle() {}
func (StraightBulb) isBulbStyle() {}

// DefaultBulb returns the default circular bulb style.
func DefaultBulb() BulbStyle {
	return CircularBulb{
		Curvature:       1.0,
		WidthFactor:     0.75,
		CurveResolution: 20,
	}
}

// BulbWidthFactor returns the bulb width as a fraction of bulb height.
// A nil style falls back to the default.
func BulbWidthFactor(s BulbStyle) float32 {
	switch b := s.(type) {
	case CircularBulb:
		return b.WidthFactor
	case StraightBulb:
		return b.WidthFactor
	default:
		return BulbWidthFactor(DefaultBulb())
	}
}

// BulbCurveResolution returns the tessellation resolution for a bulb
// curve. Straight bulbs need no tessellation and use a minimal value.
func BulbCurveResolution(s BulbStyle) int {
	switch b := s.(type) {
	case CircularBulb:
		return b.CurveResolution
	case StraightBulb:
		return 2
	default:
		return BulbCurveResolution(DefaultBulb())
	}
}

// NeckStyle is a closed set of neck shape variants. The concrete types
// are StraightNeck and CurvedNeck.
type NeckStyle interface {
	isNeckStyle()
}

// StraightNeck is a neck with straight walls.
type StraightNeck struct {
	Width  float32
	Height float32
}

// CurvedNeck is a neck whose walls pinch inward.
type CurvedNeck struct {
	Curvature       float32
	Width           float32
	Height          float32
	CurveResolution int
}

func (StraightNeck) isNeckStyle() {}
func (CurvedNeck) isNeckStyle()   {}

// DefaultNeck returns the default curved neck style.
func DefaultNeck() NeckStyle {
	return CurvedNeck{
		Curvature:       0.2,
		Width:           12,
		Height:          8,
		CurveResolution: 5,
	}
}

// NeckWidth returns the neck width, floored at the minimum absolute
// width. A nil style falls back to the default.
func NeckWidth(s NeckStyle) float32 {
	switch n := s.(type) {
	case StraightNeck:
		return math32.Max(n.Width, minNeckWidth)
	case CurvedNeck:
		return math32.Max(n.Width, minNeckWidth)
	default:
		return NeckWidth(DefaultNeck())
	}
}

// NeckWidthWithWallOffset returns the neck width widened, if necessary,
// so the two sand walls inset by wallOffset never cross inside the
// neck: at least 2*wallOffset plus the minimum gap.
func NeckWidthWithWallOffset(s NeckStyle, wallOffset float32) float32 {
	return math32.Max(NeckWidth(s), 2*wallOffset+minNeckGap)
}

// NeckHeight returns the neck height.
func NeckHeight(s NeckStyle) float32 {
	switch n := s.(type) {
	case StraightNeck:
		return n.Height
	case CurvedNeck:
		return n.Height
	default:
		return NeckHeight(DefaultNeck())
	}
}

// NeckCurveResolution returns the tessellation resolution for a neck
// curve. Straight necks use a minimal value.
func NeckCurveResolution(s NeckStyle) int {
	switch n := s.(type) {
	case StraightNeck:
		return 2
	case CurvedNeck:
		return n.CurveResolution
	default:
		return NeckCurveResolution(DefaultNeck())
	}
}
