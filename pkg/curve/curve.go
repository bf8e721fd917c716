// Package curve provides the composable 2D curve generators used to
// build hourglass outlines. All geometry lives in a body-centered
// frame where y=0 is the vertical center of the neck.
package curve

// Point is a 2D point in the body-centered frame.
type Point struct {
	X, Y float32
}

// Generator produces an ordered sequence of points along a parametrized
// curve. Start and End are O(1) and agree with the first and last entries
// of Points for any resolution >= 1, so generators can be chained without
// drift. Points(0) returns exactly [Start, End].
type Generator interface {
	Points(resolution int) []Point
	Start() Point
	End() Point
}

// Direction controls which way a transition curve bends relative to
// the straight line between its endpoints.
type Direction int

const (
	// DirectionNone applies no perpendicular offset.
	DirectionNone Direction = iota
	// DirectionInward bends toward the negative perpendicular.
	DirectionInward
	// DirectionOutward bends toward the positive perpendicular.
	DirectionOutward
)
