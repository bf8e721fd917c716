package curve

import (
	"testing"

	"github.com/chewxy/math32"
)

const eps = 1e-4

func near(a, b float32) bool {
	return math32.Abs(a-b) < eps
}

func pointNear(a, b Point) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func TestArcPointsZeroResolution(t *testing.T) {
	arc := NewArc(Point{X: 1, Y: 2}, 5, 0, math32.Pi/2, false)
	pts := arc.Points(0)
	if len(pts) != 2 {
		t.Fatalf("expected 2 points, got %d", len(pts))
	}
	if !pointNear(pts[0], arc.Start()) {
		t.Errorf("first point %v does not match start %v", pts[0], arc.Start())
	}
	if !pointNear(pts[1], arc.End()) {
		t.Errorf("last point %v does not match end %v", pts[1], arc.End())
	}
}

func TestArcEndpoints(t *testing.T) {
	cases := []struct {
		name string
		arc  *Arc
	}{
		{"ccw quarter", NewArc(Point{}, 1, 0, math32.Pi/2, false)},
		{"ccw wrap", NewArc(Point{}, 1, 3*math32.Pi/2, math32.Pi/2, false)},
		{"cw quarter", NewArc(Point{}, 1, math32.Pi/2, 0, true)},
		{"cw wrap", NewArc(Point{}, 1, math32.Pi/2, math32.Pi, true)},
		{"offset center", NewArc(Point{X: 3, Y: -2}, 2.5, math32.Pi/4, math32.Pi, false)},
	}
	for _, tc := range cases {
		for _, res := range []int{1, 2, 7, 20} {
			pts := tc.arc.Points(res)
			if len(pts) != res+1 {
				t.Fatalf("%s: resolution %d produced %d points, want %d", tc.name, res, len(pts), res+1)
			}
			if !pointNear(pts[0], tc.arc.Start()) {
				t.Errorf("%s: first point %v, want start %v", tc.name, pts[0], tc.arc.Start())
			}
			if !pointNear(pts[len(pts)-1], tc.arc.End()) {
				t.Errorf("%s: last point %v, want end %v", tc.name, pts[len(pts)-1], tc.arc.End())
			}
		}
	}
}

func TestArcPointsOnCircle(t *testing.T) {
	arc := NewArc(Point{X: 2, Y: 1}, 3, 0, math32.Pi, false)
	for i, p := range arc.Points(16) {
		dx := p.X - arc.Center.X
		dy := p.Y - arc.Center.Y
		r := math32.Sqrt(dx*dx + dy*dy)
		if !near(r, arc.Radius) {
			t.Errorf("point %d at radius %f, want %f", i, r, arc.Radius)
		}
	}
}

func TestQuarterArcQuadrants(t *testing.T) {
	cases := []struct {
		q          Quadrant
		start, end Point
	}{
		{QuadrantTopRight, Point{X: 1, Y: 0}, Point{X: 0, Y: 1}},
		{QuadrantTopLeft, Point{X: 0, Y: 1}, Point{X: -1, Y: 0}},
		{QuadrantBottomLeft, Point{X: -1, Y: 0}, Point{X: 0, Y: -1}},
		{QuadrantBottomRight, Point{X: 0, Y: -1}, Point{X: 1, Y: 0}},
	}
	for _, tc := range cases {
		arc := QuarterArc(Point{}, 1, tc.q)
		if !pointNear(arc.Start(), tc.start) {
			t.Errorf("quadrant %d: start %v, want %v", tc.q, arc.Start(), tc.start)
		}
		if !pointNear(arc.End(), tc.end) {
			t.Errorf("quadrant %d: end %v, want %v", tc.q, arc.End(), tc.end)
		}
	}
}

func TestArcWinding(t *testing.T) {
	// A clockwise arc from the top of the circle to the right should
	// pass through the first quadrant, not the other three.
	arc := NewArc(Point{}, 1, math32.Pi/2, 0, true)
	for i, p := range arc.Points(8) {
		if p.X < -eps || p.Y < -eps {
			t.Errorf("point %d %v left the first quadrant", i, p)
		}
	}
}

func TestTransitionPointsZeroResolution(t *testing.T) {
	tr := NewTransition(Point{X: -3, Y: 7}, Point{X: 12, Y: -2}, 1.5, DirectionOutward)
	pts := tr.Points(0)
	if len(pts) != 2 {
		t.Fatalf("expected 2 points, got %d", len(pts))
	}
	if pts[0] != tr.Start() {
		t.Errorf("first point %v does not match start %v", pts[0], tr.Start())
	}
	if pts[1] != tr.End() {
		t.Errorf("last point %v does not match end %v", pts[1], tr.End())
	}
}

func TestTransitionStraight(t *testing.T) {
	tr := Line(Point{X: 0, Y: 0}, Point{X: 10, Y: 0})
	pts := tr.Points(4)
	if len(pts) != 5 {
		t.Fatalf("expected 5 points, got %d", len(pts))
	}
	for i, p := range pts {
		want := Point{X: float32(i) * 2.5, Y: 0}
		if !pointNear(p, want) {
			t.Errorf("point %d = %v, want %v", i, p, want)
		}
	}
}

func TestTransitionMidpointOffset(t *testing.T) {
	from := Point{X: 0, Y: 0}
	to := Point{X: 10, Y: 0}

	// Offset magnitude at the midpoint is curvature * sin(π/2) * length * 0.1.
	out := NewTransition(from, to, 1, DirectionOutward)
	pts := out.Points(2)
	if !pointNear(pts[1], Point{X: 5, Y: 1}) {
		t.Errorf("outward midpoint = %v, want (5, 1)", pts[1])
	}

	in := NewTransition(from, to, 1, DirectionInward)
	pts = in.Points(2)
	if !pointNear(pts[1], Point{X: 5, Y: -1}) {
		t.Errorf("inward midpoint = %v, want (5, -1)", pts[1])
	}
}

func TestTransitionEndpointsUnaffected(t *testing.T) {
	from := Point{X: -3, Y: 7}
	to := Point{X: 12, Y: -2}
	tr := NewTransition(from, to, 2.5, DirectionOutward)
	pts := tr.Points(9)
	if !pointNear(pts[0], from) {
		t.Errorf("first point %v, want %v", pts[0], from)
	}
	if !pointNear(pts[len(pts)-1], to) {
		t.Errorf("last point %v, want %v", pts[len(pts)-1], to)
	}
}

func TestTransitionNegativeCurvatureFloored(t *testing.T) {
	tr := NewTransition(Point{}, Point{X: 10}, -3, DirectionOutward)
	if tr.Curvature != 0 {
		t.Fatalf("curvature = %f, want 0", tr.Curvature)
	}
	pts := tr.Points(4)
	for i, p := range pts {
		if !near(p.Y, 0) {
			t.Errorf("point %d has y = %f, want straight line", i, p.Y)
		}
	}
}

func TestTransitionZeroLength(t *testing.T) {
	p := Point{X: 4, Y: 4}
	tr := NewTransition(p, p, 1, DirectionOutward)
	for i, got := range tr.Points(3) {
		if !pointNear(got, p) {
			t.Errorf("point %d = %v, want %v", i, got, p)
		}
	}
}
