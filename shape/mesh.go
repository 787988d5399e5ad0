// Package shape procedurally generates the sample geometry the quotient
// engine chews on. Every builder is pure: the same shape and resolution
// always produce the same mesh, and no state is shared between calls. The
// engine itself only ever reads vertex directions out of a mesh; triangles
// and normals exist for the renderer.
package shape

import (
	"fmt"

	"github.com/MacMayo1993/SEAM-VIZ/geom"
)

// Mesh is an indexed triangle mesh. It is immutable once built: the engine
// never writes to a mesh, only derives directions from it.
type Mesh struct {
	Vertices  []geom.Vec3
	Normals   []geom.Vec3 // may be nil; parallel to Vertices when present
	Triangles [][3]int
}

// VertexDirections maps every vertex to its normalized direction from the
// origin. This is the sole bridge between mesh data and the quotient engine:
// cone membership and weights are computed against these directions, never
// against raw vertex positions.
func VertexDirections(m Mesh) []geom.Vec3 {
	dirs := make([]geom.Vec3, len(m.Vertices))
	for i, v := range m.Vertices {
		dirs[i] = v.Normalize()
	}
	return dirs
}

// ID names one of the built-in shapes.
type ID string

const (
	ShapeSphere   ID = "sphere"
	ShapeCube     ID = "cube"
	ShapePyramid  ID = "pyramid"
	ShapeTorus    ID = "torus"
	ShapeCircle   ID = "circle"
	ShapeDisk     ID = "disk"
	ShapeTriangle ID = "triangle"
	ShapeSquare   ID = "square"
)

// Build constructs the named shape at the given angular resolution.
// Resolution is ignored by shapes without curved surfaces. Unknown ids get
// an error, not a panic: shape names arrive from user input.
func Build(id ID, resolution int) (Mesh, error) {
	switch id {
	case ShapeSphere:
		return Sphere(resolution), nil
	case ShapeCube:
		return Cube(), nil
	case ShapePyramid:
		return Pyramid(), nil
	case ShapeTorus:
		return Torus(1, 0.35, resolution), nil
	case ShapeCircle:
		return PlanarCircle(resolution), nil
	case ShapeDisk:
		return PlanarDisk(resolution), nil
	case ShapeTriangle:
		return PlanarTriangle(), nil
	case ShapeSquare:
		return PlanarSquare(), nil
	}
	return Mesh{}, fmt.Errorf("unknown shape %q", id)
}
