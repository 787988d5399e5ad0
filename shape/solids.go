package shape

import (
	"math"

	"github.com/MacMayo1993/SEAM-VIZ/geom"
)

// Sphere builds a UV-tessellated unit sphere. resolution is the number of
// latitude bands; longitude gets twice as many. Resolutions below 3 are
// raised to 3, the smallest tessellation that still encloses volume.
func Sphere(resolution int) Mesh {
	if resolution < 3 {
		resolution = 3
	}
	rows := resolution
	cols := resolution * 2

	var m Mesh
	for r := 0; r <= rows; r++ {
		phi := math.Pi * float64(r) / float64(rows)
		for c := 0; c <= cols; c++ {
			theta := 2 * math.Pi * float64(c) / float64(cols)
			v := geom.Vec3{
				X: math.Sin(phi) * math.Cos(theta),
				Y: math.Cos(phi),
				Z: math.Sin(phi) * math.Sin(theta),
			}
			m.Vertices = append(m.Vertices, v)
			// A unit sphere's normals are its positions.
			m.Normals = append(m.Normals, v)
		}
	}

	stride := cols + 1
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := r*stride + c
			m.Triangles = append(m.Triangles,
				[3]int{i, i + stride, i + 1},
				[3]int{i + 1, i + stride, i + stride + 1},
			)
		}
	}
	return m
}

// Cube builds an axis-aligned cube of half-extent 1.
func Cube() Mesh {
	var m Mesh
	for _, x := range []float64{-1, 1} {
		for _, y := range []float64{-1, 1} {
			for _, z := range []float64{-1, 1} {
				m.Vertices = append(m.Vertices, geom.Vec3{X: x, Y: y, Z: z})
			}
		}
	}
	// Vertex order from the loops above: index bit 2 = x, bit 1 = y, bit 0 = z.
	m.Triangles = [][3]int{
		{0, 1, 3}, {0, 3, 2}, // x = -1
		{4, 7, 5}, {4, 6, 7}, // x = +1
		{0, 4, 5}, {0, 5, 1}, // y = -1
		{2, 3, 7}, {2, 7, 6}, // y = +1
		{0, 2, 6}, {0, 6, 4}, // z = -1
		{1, 5, 7}, {1, 7, 3}, // z = +1
	}
	return m
}

// Pyramid builds a square pyramid: unit-half-extent base on the y = -1 plane,
// apex at (0, 1, 0).
func Pyramid() Mesh {
	return Mesh{
		Vertices: []geom.Vec3{
			{X: -1, Y: -1, Z: -1},
			{X: 1, Y: -1, Z: -1},
			{X: 1, Y: -1, Z: 1},
			{X: -1, Y: -1, Z: 1},
			{X: 0, Y: 1, Z: 0},
		},
		Triangles: [][3]int{
			{0, 2, 1}, {0, 3, 2}, // base
			{0, 1, 4}, {1, 2, 4}, {2, 3, 4}, {3, 0, 4},
		},
	}
}

// Torus builds a torus around the y axis: major is the center-circle radius,
// minor the tube radius, resolution the segment count around the tube (the
// major circle gets twice as many).
func Torus(major, minor float64, resolution int) Mesh {
	if resolution < 3 {
		resolution = 3
	}
	around := resolution * 2
	tube := resolution

	var m Mesh
	for a := 0; a <= around; a++ {
		theta := 2 * math.Pi * float64(a) / float64(around)
		ct, st := math.Cos(theta), math.Sin(theta)
		for b := 0; b <= tube; b++ {
			phi := 2 * math.Pi * float64(b) / float64(tube)
			cp, sp := math.Cos(phi), math.Sin(phi)
			m.Vertices = append(m.Vertices, geom.Vec3{
				X: (major + minor*cp) * ct,
				Y: minor * sp,
				Z: (major + minor*cp) * st,
			})
			m.Normals = append(m.Normals, geom.Vec3{X: cp * ct, Y: sp, Z: cp * st})
		}
	}

	stride := tube + 1
	for a := 0; a < around; a++ {
		for b := 0; b < tube; b++ {
			i := a*stride + b
			m.Triangles = append(m.Triangles,
				[3]int{i, i + stride, i + 1},
				[3]int{i + 1, i + stride, i + stride + 1},
			)
		}
	}
	return m
}
