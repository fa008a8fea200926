package raytracer

import "github.com/mravens/whitted-raytracer/internal/prim"

// ShapeKind tags which local-intersect/normal rule a Shape uses. A plain
// enum plus shared fields (rather than an interface per shape type) keeps
// every Shape trivially copyable into a flat buffer for a GPU upload, and
// keeps dispatch a switch rather than a vtable call — spec.md §9's
// "tagged-variant shapes" design note.
type ShapeKind int

const (
	ShapeSphere ShapeKind = iota
	ShapePlane
	ShapeCube
)

// Shape is an analytic primitive: a unit-sized object-space surface (unit
// sphere at the origin, y=0 plane, or [-1,1]^3 cube) plus the inverse of
// its object-to-world transform, a material, and its own dense index into
// the owning World's shape slice. Index is assigned once at scene build
// and never changes; Shape is immutable for the duration of a render.
type Shape struct {
	Kind             ShapeKind
	TransformInverse prim.Mat4
	Material         Material
	Index            int
}

// NewSphere returns a unit sphere shape with transformInverse and the
// given material; Index is assigned by World.AddShape.
func NewSphere(transformInverse prim.Mat4, material Material) Shape {
	return Shape{Kind: ShapeSphere, TransformInverse: transformInverse, Material: material}
}

// NewPlane returns a unit (y=0) plane shape.
func NewPlane(transformInverse prim.Mat4, material Material) Shape {
	return Shape{Kind: ShapePlane, TransformInverse: transformInverse, Material: material}
}

// NewCube returns a unit ([-1,1]^3) cube shape.
func NewCube(transformInverse prim.Mat4, material Material) Shape {
	return Shape{Kind: ShapeCube, TransformInverse: transformInverse, Material: material}
}

// Intersect transforms worldRay into object space and appends every local
// intersection (as t, Shape.Index pairs) onto xs (spec.md §4.2).
func (s *Shape) Intersect(worldRay Ray, xs *Intersections) {
	localRay := worldRay.Transform(s.TransformInverse)
	switch s.Kind {
	case ShapeSphere:
		intersectSphereLocal(localRay, s.Index, xs)
	case ShapePlane:
		intersectPlaneLocal(localRay, s.Index, xs)
	case ShapeCube:
		intersectCubeLocal(localRay, s.Index, xs)
	}
}

// NormalAt computes the world-space surface normal at worldPoint, which
// must lie on the shape's surface (spec.md §4.2).
func (s *Shape) NormalAt(worldPoint prim.Vec4) prim.Vec4 {
	objectPoint := s.TransformInverse.MulVec4(worldPoint)

	var objectNormal prim.Vec4
	switch s.Kind {
	case ShapeSphere:
		objectNormal = normalSphereLocal(objectPoint)
	case ShapePlane:
		objectNormal = normalPlaneLocal(objectPoint)
	case ShapeCube:
		objectNormal = normalCubeLocal(objectPoint)
	}

	worldNormal := s.TransformInverse.Transpose().MulVec4(objectNormal)
	worldNormal.W = 0
	return worldNormal.Normalize()
}
