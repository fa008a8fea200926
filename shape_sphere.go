package raytracer

import (
	"math"

	"github.com/mravens/whitted-raytracer/internal/prim"
)

// intersectSphereLocal solves |O + tD|^2 = 1 for the unit sphere centered
// at the object-space origin (spec.md §4.2).
func intersectSphereLocal(localRay Ray, shapeIdx int, xs *Intersections) {
	originToCenter := localRay.Origin.Sub(prim.NewPoint(0, 0, 0))

	a := localRay.Direction.Dot(localRay.Direction)
	b := 2 * localRay.Direction.Dot(originToCenter)
	c := originToCenter.Dot(originToCenter) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return
	}

	sqrtDisc := float32(math.Sqrt(float64(discriminant)))
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)
	xs.Add(t1, shapeIdx)
	xs.Add(t2, shapeIdx)
}

// normalSphereLocal returns the object-space normal: the vector from the
// origin to the surface point.
func normalSphereLocal(objectPoint prim.Vec4) prim.Vec4 {
	return objectPoint.Sub(prim.NewPoint(0, 0, 0))
}
