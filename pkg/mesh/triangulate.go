package mesh

import (
	"errors"
	"fmt"

	"github.com/rclancey/earcut"

	"github.com/chazu/hourglass/pkg/curve"
)

// ErrTriangulation wraps failures from the triangulator backend.
// Callers are expected to render nothing for the affected part; the
// fill fraction changes on the next update and typically self-corrects.
var ErrTriangulation = errors.New("triangulation failed")

// Triangulator converts a flattened coordinate array describing one
// simple closed polygon (no holes, counterclockwise winding) into a
// triangle index list.
type Triangulator interface {
	Triangulate(coords []float32) ([]uint32, error)
}

// Compile-time interface check.
var _ Triangulator = (*EarClip)(nil)

// EarClip implements Triangulator using the earcut ear-clipping
// algorithm.
type EarClip struct{}

// NewEarClip returns a new ear-clipping triangulator.
func NewEarClip() *EarClip {
	return &EarClip{}
}

// Triangulate runs earcut over the coordinate array. Degenerate or
// self-intersecting input surfaces as an ErrTriangulation-wrapped
// error.
func (e *EarClip) Triangulate(coords []float32) ([]uint32, error) {
	flat := make([]float64, len(coords))
	for i, c := range coords {
		flat[i] = float64(c)
	}

	indices, err := earcut.Earcut(flat, nil, 2)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTriangulation, err)
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("%w: %d indices not divisible by 3", ErrTriangulation, len(indices))
	}

	out := make([]uint32, len(indices))
	for i, idx := range indices {
		out[i] = uint32(idx)
	}
	return out, nil
}

// FromOutline triangulates a polygon outline into a renderable mesh on
// the z=0 plane, with all normals facing +z. An empty outline produces
// an empty mesh and no error: there is nothing to render, which is not
// a failure.
func FromOutline(points []curve.Point, tri Triangulator) (*Mesh, error) {
	if len(points) == 0 {
		return &Mesh{}, nil
	}

	coords := make([]float32, 0, len(points)*2)
	for _, p := range points {
		coords = append(coords, p.X, p.Y)
	}

	indices, err := tri.Triangulate(coords)
	if err != nil {
		return nil, err
	}

	vertices := make([]float32, 0, len(points)*3)
	normals := make([]float32, 0, len(points)*3)
	uvs := make([]float32, 0, len(points)*2)
	for _, p := range points {
		vertices = append(vertices, p.X, p.Y, 0)
		normals = append(normals, 0, 0, 1)
		uvs = append(uvs, 0, 0)
	}

	return &Mesh{
		Vertices: vertices,
		Normals:  normals,
		UVs:      uvs,
		Indices:  indices,
	}, nil
}
