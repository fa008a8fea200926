package raytracer

import (
	"fmt"

	"github.com/mravens/whitted-raytracer/internal/prim"
)

// PointLight is a point source with no size or falloff, characterized by
// its world-space position and an RGB intensity.
type PointLight struct {
	Position  prim.Vec4
	Intensity prim.Vec4
}

func (l PointLight) String() string {
	return fmt.Sprintf("PointLight(Position: %v, Intensity: %v)", l.Position, l.Intensity)
}
