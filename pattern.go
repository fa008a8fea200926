package raytracer

import (
	"math"

	"github.com/mravens/whitted-raytracer/internal/prim"
)

// PatternKind tags which procedural rule Pattern.colorAt applies. Kept as
// an explicit enum (rather than an interface) for the same reason Shape
// is: it keeps the struct trivially copyable into a flat buffer.
type PatternKind int

const (
	PatternSolid PatternKind = iota
	PatternStripes
	PatternGradient
	PatternRing
	PatternChecker
)

// Pattern computes a surface color as a function of a point in pattern
// space (spec.md §4.4). A and B are the two colors every variant besides
// Solid alternates or blends between; Solid ignores B.
type Pattern struct {
	Kind             PatternKind
	A, B             prim.Vec4
	TransformInverse prim.Mat4
}

// NewSolidPattern returns a pattern that always evaluates to color a.
func NewSolidPattern(a prim.Vec4) *Pattern {
	return &Pattern{Kind: PatternSolid, A: a, TransformInverse: prim.Identity4()}
}

// NewStripesPattern alternates between a and b along whole units of x.
func NewStripesPattern(a, b prim.Vec4) *Pattern {
	return &Pattern{Kind: PatternStripes, A: a, B: b, TransformInverse: prim.Identity4()}
}

// NewGradientPattern linearly interpolates from a to b across each unit of x.
func NewGradientPattern(a, b prim.Vec4) *Pattern {
	return &Pattern{Kind: PatternGradient, A: a, B: b, TransformInverse: prim.Identity4()}
}

// NewRingPattern alternates between a and b in concentric rings around the
// y axis, based on distance in the x/z plane.
func NewRingPattern(a, b prim.Vec4) *Pattern {
	return &Pattern{Kind: PatternRing, A: a, B: b, TransformInverse: prim.Identity4()}
}

// NewCheckerPattern alternates between a and b in a 3D checkerboard.
func NewCheckerPattern(a, b prim.Vec4) *Pattern {
	return &Pattern{Kind: PatternChecker, A: a, B: b, TransformInverse: prim.Identity4()}
}

// colorAt evaluates the pattern at shapeSpacePoint, a world-space hit point
// the caller (Material.Lighting) has already mapped into the owning
// shape's object space via Shape.TransformInverse; this function applies
// the pattern's own transform inverse on top of that, per spec.md §4.4.
func (p *Pattern) colorAt(shapeSpacePoint prim.Vec4) prim.Vec4 {
	pp := p.TransformInverse.MulVec4(shapeSpacePoint)
	switch p.Kind {
	case PatternStripes:
		if evenFloor(pp.X) {
			return p.A
		}
		return p.B
	case PatternGradient:
		t := pp.X - floorf(pp.X)
		return prim.Lerp(p.A, p.B, t)
	case PatternRing:
		d := math.Sqrt(float64(pp.X*pp.X + pp.Z*pp.Z))
		if evenFloor(float32(d)) {
			return p.A
		}
		return p.B
	case PatternChecker:
		sum := floorf(pp.X) + floorf(pp.Y) + floorf(pp.Z)
		if evenFloor(sum) {
			return p.A
		}
		return p.B
	default: // PatternSolid
		return p.A
	}
}

func floorf(x float32) float32 {
	return float32(math.Floor(float64(x)))
}

// evenFloor reports whether floor(x) is an even integer.
func evenFloor(x float32) bool {
	return int64(floorf(x))%2 == 0
}
