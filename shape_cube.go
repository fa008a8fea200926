package raytracer

import "github.com/mravens/whitted-raytracer/internal/prim"

// largeMagnitude stands in for infinity when a ray direction component is
// (near) zero, emulating the fast-math substitution spec.md §4.2 calls
// for on the cube's axis-aligned slab test.
const largeMagnitude = 1e38

// intersectCubeLocal intersects the object-space axis-aligned cube
// [-1,1]^3 using the slab method (spec.md §4.2).
func intersectCubeLocal(localRay Ray, shapeIdx int, xs *Intersections) {
	xtmin, xtmax := cubeAxisRange(localRay.Origin.X, localRay.Direction.X)
	ytmin, ytmax := cubeAxisRange(localRay.Origin.Y, localRay.Direction.Y)
	ztmin, ztmax := cubeAxisRange(localRay.Origin.Z, localRay.Direction.Z)

	tmin := max32(xtmin, ytmin, ztmin)
	tmax := min32(xtmax, ytmax, ztmax)

	if tmin > tmax {
		return
	}
	xs.Add(tmin, shapeIdx)
	xs.Add(tmax, shapeIdx)
}

func cubeAxisRange(origin, direction float32) (tmin, tmax float32) {
	var tminNumerator, tmaxNumerator float32 = -1 - origin, 1 - origin

	if abs32(direction) >= EPSILON {
		tmin = tminNumerator / direction
		tmax = tmaxNumerator / direction
	} else {
		tmin = tminNumerator * largeMagnitude
		tmax = tmaxNumerator * largeMagnitude
	}
	if tmin > tmax {
		tmin, tmax = tmax, tmin
	}
	return tmin, tmax
}

// normalCubeLocal returns the axis-aligned face normal of the largest
// magnitude component, breaking ties by axis order x < y < z.
func normalCubeLocal(objectPoint prim.Vec4) prim.Vec4 {
	absX, absY, absZ := abs32(objectPoint.X), abs32(objectPoint.Y), abs32(objectPoint.Z)
	maxc := max32(absX, absY, absZ)

	switch {
	case maxc == absX:
		return prim.NewVector(objectPoint.X, 0, 0)
	case maxc == absY:
		return prim.NewVector(0, objectPoint.Y, 0)
	default:
		return prim.NewVector(0, 0, objectPoint.Z)
	}
}

func max32(values ...float32) float32 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func min32(values ...float32) float32 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
