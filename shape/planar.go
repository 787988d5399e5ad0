package shape

import (
	"math"

	"github.com/MacMayo1993/SEAM-VIZ/geom"
)

// PlanarHalfThickness is the half-thickness given to "flat" shapes. A truly
// flat shape would have a single face and vanish edge-on; the slab gives it
// two visible faces without reading as a solid.
const PlanarHalfThickness = 0.02

// Extrude turns a simple outline in the xy plane into a thin slab: the
// outline duplicated at z = ±PlanarHalfThickness, fan-triangulated front and
// back, with quads stitched around the rim. The outline must wind
// counterclockwise and be convex or star-shaped about its first point, which
// every built-in outline is.
func Extrude(outline []geom.Vec3) Mesh {
	n := len(outline)
	var m Mesh
	for _, p := range outline {
		m.Vertices = append(m.Vertices, geom.Vec3{X: p.X, Y: p.Y, Z: PlanarHalfThickness})
	}
	for _, p := range outline {
		m.Vertices = append(m.Vertices, geom.Vec3{X: p.X, Y: p.Y, Z: -PlanarHalfThickness})
	}

	// Front and back faces, fanned from vertex 0.
	for i := 1; i < n-1; i++ {
		m.Triangles = append(m.Triangles, [3]int{0, i, i + 1})
		m.Triangles = append(m.Triangles, [3]int{n, n + i + 1, n + i})
	}
	// Rim.
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		m.Triangles = append(m.Triangles,
			[3]int{i, j, n + j},
			[3]int{i, n + j, n + i},
		)
	}
	return m
}

// circleOutline samples a unit circle in the xy plane.
func circleOutline(segments int) []geom.Vec3 {
	if segments < 3 {
		segments = 3
	}
	outline := make([]geom.Vec3, segments)
	for i := range outline {
		a := 2 * math.Pi * float64(i) / float64(segments)
		outline[i] = geom.Vec3{X: math.Cos(a), Y: math.Sin(a)}
	}
	return outline
}

// PlanarCircle is a thin circular slab of unit radius.
func PlanarCircle(segments int) Mesh {
	return Extrude(circleOutline(segments))
}

// PlanarDisk is a thin annulus: a circle with a concentric inner hole of
// half the radius. The rim stitching of Extrude handles only one outline, so
// the disk is built directly as an extruded ring strip.
func PlanarDisk(segments int) Mesh {
	if segments < 3 {
		segments = 3
	}
	const inner = 0.5

	var m Mesh
	for _, z := range []float64{PlanarHalfThickness, -PlanarHalfThickness} {
		for i := 0; i < segments; i++ {
			a := 2 * math.Pi * float64(i) / float64(segments)
			c, s := math.Cos(a), math.Sin(a)
			m.Vertices = append(m.Vertices,
				geom.Vec3{X: c, Y: s, Z: z},
				geom.Vec3{X: inner * c, Y: inner * s, Z: z},
			)
		}
	}

	// Per ring segment: outer/inner pairs at i and i+1, front then back.
	front := 0
	back := 2 * segments
	for i := 0; i < segments; i++ {
		j := (i + 1) % segments
		fo, fi := front+2*i, front+2*i+1
		fo2, fi2 := front+2*j, front+2*j+1
		bo, bi := back+2*i, back+2*i+1
		bo2, bi2 := back+2*j, back+2*j+1
		m.Triangles = append(m.Triangles,
			[3]int{fo, fo2, fi}, [3]int{fi, fo2, fi2}, // front face
			[3]int{bo, bi, bo2}, [3]int{bi, bi2, bo2}, // back face
			[3]int{fo, bo, fo2}, [3]int{fo2, bo, bo2}, // outer rim
			[3]int{fi, fi2, bi}, [3]int{fi2, bi2, bi}, // inner rim
		)
	}
	return m
}

// PlanarTriangle is a thin equilateral triangle slab inscribed in the unit
// circle.
func PlanarTriangle() Mesh {
	outline := make([]geom.Vec3, 3)
	for i := range outline {
		a := math.Pi/2 + 2*math.Pi*float64(i)/3
		outline[i] = geom.Vec3{X: math.Cos(a), Y: math.Sin(a)}
	}
	return Extrude(outline)
}

// PlanarSquare is a thin unit-half-extent square slab.
func PlanarSquare() Mesh {
	return Extrude([]geom.Vec3{
		{X: 1, Y: 1},
		{X: -1, Y: 1},
		{X: -1, Y: -1},
		{X: 1, Y: -1},
	})
}
