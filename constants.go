// Package raytracer implements a Whitted-style recursive ray tracer: camera
// ray generation, ray/primitive intersection, Phong shading with shadows,
// and an iterative (non-recursive) reflection/refraction driver bounded by
// a fixed-size work queue so the same algorithm runs unchanged on a GPU
// fragment stage.
package raytracer

// EPSILON offsets hit points along their surface normal to avoid
// shadow acne and self-intersection, and is reused as the near-parallel
// threshold documented (but not used by default) in the plane intersect.
const EPSILON = 0.01

// MAX_HITS bounds the number of intersections recorded per ray. Excess
// intersections (by largest t) are silently dropped.
const MAX_HITS = 100

// MAX_RAY_QUEUE is the nominal capacity of the pending-ray queue. Its push
// guard is `count > MAX_RAY_QUEUE`, so the queue holds up to
// MAX_RAY_QUEUE+1 rays; a push beyond that is silently dropped.
const MAX_RAY_QUEUE = 5

// MAX_REFLECT_REFRACT caps the total number of rays traced per pixel
// (primary plus every reflection/refraction generation combined), not the
// depth of any single path.
const MAX_REFLECT_REFRACT = 10
