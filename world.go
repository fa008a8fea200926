package raytracer

import (
	"math"

	"github.com/mravens/whitted-raytracer/internal/prim"
)

// World is the immutable, read-only-during-render scene the tracer walks:
// a dense shape array (Shape.Index must match its position) and a light
// array. The tracer never mutates either (spec.md §5).
type World struct {
	Shapes []Shape
	Lights []PointLight
}

// NewWorld returns an empty World ready for AddShape/AddLight calls.
func NewWorld() *World {
	return &World{}
}

// AddShape appends shape to the world, assigning it the next dense index,
// and returns that index.
func (w *World) AddShape(shape Shape) int {
	shape.Index = len(w.Shapes)
	w.Shapes = append(w.Shapes, shape)
	return shape.Index
}

// AddLight appends a point light to the world.
func (w *World) AddLight(light PointLight) {
	w.Lights = append(w.Lights, light)
}

// Intersect appends every intersection of ray against every shape in the
// world into xs.
func (w *World) Intersect(ray Ray, xs *Intersections) {
	for i := range w.Shapes {
		w.Shapes[i].Intersect(ray, xs)
	}
}

// IsShadowed reports whether point is in shadow of light: a ray from point
// toward the light that hits some shape strictly between point and the
// light (spec.md §4.7). Transparent shapes are treated as opaque for
// shadow purposes — the shadow ray test does not look at material
// transparency at all.
func (w *World) IsShadowed(light *PointLight, point prim.Vec4) bool {
	toLight := light.Position.Sub(point)
	distance := toLight.Length()
	direction := toLight.Normalize()

	shadowRay := Ray{Origin: point, Direction: direction}

	var xs Intersections
	w.Intersect(shadowRay, &xs)

	hit, ok := xs.GetHit()
	if !ok {
		return false
	}
	return hit.T*hit.T < distance*distance
}

// ShadeHit sums, over every light in the world, the Phong contribution at
// ctx.Over with the shadow flag computed per-light (spec.md §4.7). It
// returns only the direct-illumination term; World.ColourAt is
// responsible for folding in reflection and refraction.
func (w *World) ShadeHit(ctx *HitContext) prim.Vec4 {
	var total prim.Vec4
	for i := range w.Lights {
		light := &w.Lights[i]
		inShadow := w.IsShadowed(light, ctx.Over)
		total = total.Add(ctx.Material.Lighting(light, ctx.Over, ctx.ObjectPoint, ctx.Eye, ctx.Normal, inShadow))
	}
	return total
}

// ColourAt is the iterative reflection/refraction driver (spec.md §4.7):
// it replaces recursive color_at with a bounded work queue so the same
// logic can run as a GPU fragment stage. Up to MAX_REFLECT_REFRACT rays
// total (primary plus every spawned secondary) are traced; each
// contributes its shaded color scaled by its accumulated weight,
// regardless of traversal order.
func (w *World) ColourAt(ray Ray) prim.Vec4 {
	return w.ColourAtDepth(ray, MAX_REFLECT_REFRACT)
}

// ColourAtDepth is ColourAt with the bounce cap overridden by maxBounces,
// the hook a host driver (internal/config's recursion cap override) uses to
// trade render quality for speed without touching the core's compiled-in
// default. The core itself always calls ColourAt.
func (w *World) ColourAtDepth(ray Ray, maxBounces int) prim.Vec4 {
	var accum prim.Vec4
	var queue RayQueue
	queue.Push(ray, 1.0)

	var xs Intersections
	for bounce := 0; bounce < maxBounces && !queue.IsEmpty(); bounce++ {
		r, weight := queue.Pop()

		xs.Clear()
		w.Intersect(r, &xs)

		hit, ok := xs.GetHit()
		if !ok {
			continue
		}

		ctx := prepareComputations(hit, r, &xs, w.Shapes)
		accum = accum.Add(w.ShadeHit(&ctx).Scale(weight))

		reflectWeight := weight * ctx.Material.Reflective
		if reflectWeight > EPSILON {
			queue.Push(Ray{Origin: ctx.Over, Direction: ctx.Reflect}, reflectWeight)
		}

		transparentWeight := weight * ctx.Material.Transparency
		if transparentWeight > EPSILON {
			if dir, ok := refractedDirection(&ctx); ok {
				queue.Push(Ray{Origin: ctx.Under, Direction: dir}, transparentWeight)
			}
		}
	}
	return accum
}

// refractedDirection applies Snell's law at ctx, returning the refracted
// direction and true, or the zero vector and false under total internal
// reflection (spec.md §4.7).
func refractedDirection(ctx *HitContext) (prim.Vec4, bool) {
	n := ctx.N1 / ctx.N2
	cosI := ctx.Eye.Dot(ctx.Normal)
	sin2T := n * n * (1 - cosI*cosI)
	if sin2T >= 1 {
		return prim.Vec4{}, false
	}
	cosT := float32(math.Sqrt(float64(1 - sin2T)))
	dir := ctx.Normal.Scale(n*cosI - cosT).Sub(ctx.Eye.Scale(n))
	return dir, true
}
