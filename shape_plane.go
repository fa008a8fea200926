package raytracer

import "github.com/mravens/whitted-raytracer/internal/prim"

// intersectPlaneLocal intersects the object-space y=0 plane (spec.md
// §4.2). The guard is |D.y| > 0, matching the spec's default exactly;
// substituting `> EPSILON` would reject near-parallel grazing rays (and
// the very large t values they produce) but is documented, not applied,
// per spec.md's "implementers may substitute ... and must document the
// choice."
func intersectPlaneLocal(localRay Ray, shapeIdx int, xs *Intersections) {
	if abs32(localRay.Direction.Y) <= 0 {
		return
	}
	t := -localRay.Origin.Y / localRay.Direction.Y
	xs.Add(t, shapeIdx)
}

// normalPlaneLocal is a constant +y everywhere on the plane.
func normalPlaneLocal(objectPoint prim.Vec4) prim.Vec4 {
	return prim.NewVector(0, 1, 0)
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
