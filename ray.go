package raytracer

import (
	"fmt"

	"github.com/mravens/whitted-raytracer/internal/prim"
)

// Ray is a half-line with an origin point and a direction. Direction may
// be non-unit for object-space rays produced by a non-uniform transform;
// world-space rays are always unit-direction.
type Ray struct {
	Origin    prim.Vec4
	Direction prim.Vec4
}

func (r Ray) String() string {
	return fmt.Sprintf("Ray(Origin: %v, Direction: %v)", r.Origin, r.Direction)
}

// Position returns the point at distance t along the ray.
func (r Ray) Position(t float32) prim.Vec4 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Transform applies m to both the origin and direction of r, producing the
// ray in the coordinate space m maps into.
func (r Ray) Transform(m prim.Mat4) Ray {
	return Ray{
		Origin:    m.MulVec4(r.Origin),
		Direction: m.MulVec4(r.Direction),
	}
}
