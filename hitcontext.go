package raytracer

import "github.com/mravens/whitted-raytracer/internal/prim"

// HitContext is the precomputed shading geometry for a chosen
// intersection (spec.md §4.5): the hit point, the vectors Material.Lighting
// needs, and the two refractive indices either side of the surface.
type HitContext struct {
	T        float32
	ShapeIdx int
	Material *Material

	Point       prim.Vec4
	ObjectPoint prim.Vec4 // Point mapped through the hit shape's TransformInverse, for pattern evaluation
	Eye         prim.Vec4
	Normal      prim.Vec4
	Inside      bool
	Over        prim.Vec4 // origin for shadow/reflection rays
	Under       prim.Vec4 // origin for refraction rays
	Reflect     prim.Vec4

	N1, N2 float32
}

// prepareComputations builds the HitContext for hit, given the ray that
// produced it and the full ordered intersection list xs (needed for the
// refractive-index stack walk).
func prepareComputations(hit Intersection, ray Ray, xs *Intersections, shapes []Shape) HitContext {
	shape := &shapes[hit.ShapeIdx]

	point := ray.Position(hit.T)
	objectPoint := shape.TransformInverse.MulVec4(point)
	eye := ray.Direction.Neg()
	normal := shape.NormalAt(point)

	inside := false
	if normal.Dot(eye) < 0 {
		inside = true
		normal = normal.Neg()
	}

	over := point.Add(normal.Scale(EPSILON))
	under := point.Sub(normal.Scale(EPSILON))
	reflect := ray.Direction.Reflect(normal)

	n1, n2 := refractiveIndices(hit, xs, shapes)

	return HitContext{
		T:           hit.T,
		ShapeIdx:    hit.ShapeIdx,
		Material:    &shape.Material,
		Point:       point,
		ObjectPoint: objectPoint,
		Eye:         eye,
		Normal:      normal,
		Inside:      inside,
		Over:        over,
		Under:       under,
		Reflect:     reflect,
		N1:          n1,
		N2:          n2,
	}
}

// refractiveIndices walks xs in its existing t-sorted order, maintaining a
// scratch "container" list of shapes the ray is currently considered
// inside of, and returns the refractive indices either side of hit
// (spec.md §4.6).
//
// n1/n2 are read from container.Last().ShapeIdx, the highest-t entry of
// the container list (not of xs). Shapes join the container in ascending
// t order and are only ever removed, never reordered, so that entry is
// always the most recently pushed shape still in the container: the top
// of the container stack.
func refractiveIndices(hit Intersection, xs *Intersections, shapes []Shape) (n1, n2 float32) {
	var container Intersections

	for i := range xs.Count() {
		check := xs.At(i)
		isHit := check.T == hit.T && check.ShapeIdx == hit.ShapeIdx

		if isHit {
			if container.IsEmpty() {
				n1 = 1.0
			} else {
				n1 = shapes[container.Last().ShapeIdx].Material.RefractiveIndex
			}
		}

		if idx := container.IndexOf(check.ShapeIdx); idx >= 0 {
			container.Remove(idx)
		} else {
			container.Add(check.T, check.ShapeIdx)
		}

		if isHit {
			if container.IsEmpty() {
				n2 = 1.0
			} else {
				n2 = shapes[container.Last().ShapeIdx].Material.RefractiveIndex
			}
			return n1, n2
		}
	}
	return n1, n2
}
