package shape

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/chazu/hourglass/pkg/curve"
)

func TestDefaultOutlineDimensions(t *testing.T) {
	b := NewBuilder()
	outline := b.Outline()
	if len(outline) < 10 {
		t.Fatalf("outline has only %d points", len(outline))
	}

	var maxAbsY float32
	for _, p := range outline {
		if y := math32.Abs(p.Y); y > maxAbsY {
			maxAbsY = y
		}
	}
	if math32.Abs(maxAbsY-100) > 1e-3 {
		t.Errorf("outline height extent %.4f, want 100 (half of 200)", maxAbsY)
	}

	// The point closest to the horizontal midline sits on a neck wall.
	// With the default curved neck the wall pinches slightly inside the
	// nominal half width of 6.
	var closest curve.Point
	minAbsY := float32(math32.MaxFloat32)
	for _, p := range outline {
		if y := math32.Abs(p.Y); y < minAbsY {
			minAbsY = y
			closest = p
		}
	}
	if x := math32.Abs(closest.X); x < 5.5 || x > 6.01 {
		t.Errorf("narrowest point |x| = %.4f, want near the half neck width of 6", x)
	}
}

func TestOutlineSymmetry(t *testing.T) {
	// Both neck walls must be mirror images across x = 0.
	b := NewBuilder()
	outline := b.Outline()

	var minX, maxX float32
	for _, p := range outline {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
	}
	if math32.Abs(minX+maxX) > 1e-3 {
		t.Errorf("outline not symmetric: minX %.4f, maxX %.4f", minX, maxX)
	}
}

func TestOutlineNoConsecutiveDuplicates(t *testing.T) {
	b := NewBuilder()
	outline := b.Outline()
	for i := 1; i < len(outline); i++ {
		if outline[i] == outline[i-1] {
			t.Errorf("duplicate consecutive point at index %d: %v", i, outline[i])
		}
	}
}

func TestStraightStylesProduceCorners(t *testing.T) {
	b := Builder{
		TotalHeight: 100,
		Bulb:        StraightBulb{WidthFactor: 0.5},
		Neck:        StraightNeck{Width: 10, Height: 20},
	}
	outline := b.Outline()

	// bulbHeight = (100-20)/2 = 40, bulbWidth = 20.
	want := []curve.Point{
		{X: -20, Y: -50},
		{X: -5, Y: -10},
		{X: -5, Y: 10},
		{X: -20, Y: 50},
		{X: 20, Y: 50},
		{X: 5, Y: 10},
		{X: 5, Y: -10},
		{X: 20, Y: -50},
	}
	for _, w := range want {
		found := false
		for _, p := range outline {
			if math32.Abs(p.X-w.X) < 1e-3 && math32.Abs(p.Y-w.Y) < 1e-3 {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("corner %v missing from straight-style outline", w)
		}
	}
}

func TestWallOffsetWidensNarrowNeck(t *testing.T) {
	b := Builder{
		TotalHeight: 200,
		Bulb:        DefaultBulb(),
		Neck:        StraightNeck{Width: 4, Height: 8},
	}

	// Without an offset the neck keeps its configured width.
	plain := b.Outline()
	// With offset 5 the neck must widen to 2*5+2 = 12 so inset walls
	// cannot cross.
	offset := b.OutlineWithWallOffset(5)

	narrowest := func(outline []curve.Point) float32 {
		min := float32(math32.MaxFloat32)
		for _, p := range outline {
			if math32.Abs(p.Y) < 4.01 {
				if x := math32.Abs(p.X); x < min {
					min = x
				}
			}
		}
		return min
	}

	if w := narrowest(plain); math32.Abs(w-2) > 1e-3 {
		t.Errorf("plain neck half width %.4f, want 2", w)
	}
	if w := narrowest(offset); math32.Abs(w-6) > 1e-3 {
		t.Errorf("offset neck half width %.4f, want 6", w)
	}
}

func TestNilStylesFallBackToDefaults(t *testing.T) {
	var b Builder
	b.TotalHeight = 200
	withNil := b.Outline()

	b.Bulb = DefaultBulb()
	b.Neck = DefaultNeck()
	withDefaults := b.Outline()

	if len(withNil) != len(withDefaults) {
		t.Fatalf("nil styles produced %d points, defaults %d", len(withNil), len(withDefaults))
	}
	for i := range withNil {
		if math32.Abs(withNil[i].X-withDefaults[i].X) > 1e-4 ||
			math32.Abs(withNil[i].Y-withDefaults[i].Y) > 1e-4 {
			t.Fatalf("point %d differs: %v vs %v", i, withNil[i], withDefaults[i])
		}
	}
}

func TestNeckWidthFloor(t *testing.T) {
	if w := NeckWidth(StraightNeck{Width: 0.5, Height: 8}); w != 3 {
		t.Errorf("NeckWidth = %.4f, want floor of 3", w)
	}
	if w := NeckWidth(CurvedNeck{Width: 40, Height: 8}); w != 40 {
		t.Errorf("NeckWidth = %.4f, want 40", w)
	}
}

func TestNeckWidthWithWallOffset(t *testing.T) {
	neck := StraightNeck{Width: 12, Height: 8}
	if w := NeckWidthWithWallOffset(neck, 0); w != 12 {
		t.Errorf("offset 0: width %.4f, want 12", w)
	}
	if w := NeckWidthWithWallOffset(neck, 4); w != 12 {
		t.Errorf("offset 4: width %.4f, want 12 (2*4+2 = 10 < 12)", w)
	}
	if w := NeckWidthWithWallOffset(neck, 8); w != 18 {
		t.Errorf("offset 8: width %.4f, want 18", w)
	}
}
