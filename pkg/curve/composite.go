package curve

// Composite chains multiple curve segments into one continuous
// polyline. Consecutive segments are expected to share an endpoint;
// the shared point is emitted only once.
type Composite struct {
	segments []Generator
}

// NewComposite creates an empty composite curve.
func NewComposite() *Composite {
	return &Composite{}
}

// Add appends a segment and returns the composite for chaining.
func (c *Composite) Add(seg Generator) *Composite {
	c.segments = append(c.segments, seg)
	return c
}

// Len returns the number of segments.
func (c *Composite) Len() int {
	return len(c.segments)
}

// Points samples all segments and concatenates them, dropping the
// leading point of every segment after the first to avoid duplicate
// vertices.
//
// The total resolution is divided evenly across segments using integer
// division; the remainder is dropped, slightly under-tessellating
// composites whose segment count does not divide the resolution. This
// matches the upstream behavior and is kept for visual parity.
func (c *Composite) Points(resolution int) []Point {
	if len(c.segments) == 0 {
		return nil
	}

	perSegment := resolution / len(c.segments)
	var all []Point
	for i, seg := range c.segments {
		pts := seg.Points(perSegment)
		if i > 0 && len(pts) > 0 {
			pts = pts[1:]
		}
		all = append(all, pts...)
	}
	return all
}

// Start returns the start of the first segment, or the zero point for
// an empty composite.
func (c *Composite) Start() Point {
	if len(c.segments) == 0 {
		return Point{}
	}
	return c.segments[0].Start()
}

// End returns the end of the last segment, or the zero point for an
// empty composite.
func (c *Composite) End() Point {
	if len(c.segments) == 0 {
		return Point{}
	}
	return c.segments[len(c.segments)-1].End()
}
