package geom

import "math"

// Ray is an origin plus a unit direction.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// ScreenToRay maps a screen coordinate to a picking ray from the camera
// toward the scene. This is a simplified mapping, not a true perspective
// unprojection: the screen point is converted to normalized device
// coordinates and offset against the camera's right/up basis with a fixed
// field-of-view scale. It is accurate enough for picking a unit sphere that
// fills most of the viewport, which is the only thing it is used for.
func ScreenToRay(screenX, screenY, width, height float64, camera OrbitState) Ray {
	// NDC in [-1, 1], y up.
	nx := (2*screenX/width - 1)
	ny := (1 - 2*screenY/height)
	aspect := width / height

	origin := camera.Position()
	forward := camera.Target.Sub(origin).Normalize()
	right := forward.Cross(Vec3{0, 1, 0}).Normalize()
	up := right.Cross(forward).Normalize()

	const fovScale = 0.5
	dir := forward.
		Add(right.Scale(nx * aspect * fovScale)).
		Add(up.Scale(ny * fovScale)).
		Normalize()
	return Ray{Origin: origin, Direction: dir}
}

// RaySphereIntersection intersects a ray with a sphere and returns the
// normalized direction of the nearer hit point from the sphere's center. The
// second result is false when the ray misses (negative discriminant) or when
// both roots are behind the origin.
func RaySphereIntersection(ray Ray, center Vec3, radius float64) (Vec3, bool) {
	oc := ray.Origin.Sub(center)
	// |o + t·d - c|² = r² with unit d: t² + 2(oc·d)t + |oc|² - r² = 0
	b := 2 * oc.Dot(ray.Direction)
	c := oc.NormSq() - radius*radius
	disc := b*b - 4*c
	if disc < 0 {
		return Vec3{}, false
	}

	sq := math.Sqrt(disc)
	t := (-b - sq) / 2
	if t < 0 {
		t = (-b + sq) / 2
	}
	if t < 0 {
		return Vec3{}, false
	}

	hit := ray.Origin.Add(ray.Direction.Scale(t))
	return hit.Sub(center).Normalize(), true
}
