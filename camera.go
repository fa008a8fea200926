package raytracer

import (
	"math"

	"github.com/mravens/whitted-raytracer/internal/prim"
)

// Camera maps pixel coordinates to world-space rays (spec.md §4.1).
type Camera struct {
	HSize, VSize     int
	FieldOfView      float32
	TransformInverse prim.Mat4

	PixelSize             float32
	HalfWidth, HalfHeight float32
}

// NewCamera builds a Camera from pixel dimensions, a field of view
// (radians) spanning the longer of the two canvas dimensions, and a
// world-to-camera view transform (its inverse is what RayForPixel
// actually needs).
func NewCamera(hsize, vsize int, fieldOfView float32, viewTransform prim.Mat4) Camera {
	halfView := float32(math.Tan(float64(fieldOfView) / 2))
	aspect := float32(hsize) / float32(vsize)

	var halfWidth, halfHeight float32
	if aspect >= 1 {
		halfWidth = halfView
		halfHeight = halfView / aspect
	} else {
		halfWidth = halfView * aspect
		halfHeight = halfView
	}

	return Camera{
		HSize:            hsize,
		VSize:            vsize,
		FieldOfView:      fieldOfView,
		TransformInverse: viewTransform.Inverse(),
		PixelSize:        (halfWidth * 2) / float32(hsize),
		HalfWidth:        halfWidth,
		HalfHeight:       halfHeight,
	}
}

// RayForPixel returns the world-space ray through the center of pixel
// (x, y), where x and y are canvas-space pixel coordinates. The +0.5
// pixel-center offset is added here, so callers such as TracePixel pass
// the integer pixel coordinate unchanged.
func (c *Camera) RayForPixel(x, y float32) Ray {
	objectX := c.HalfWidth - (x+0.5)*c.PixelSize
	objectY := c.HalfHeight - (y+0.5)*c.PixelSize

	pixel := c.TransformInverse.MulVec4(prim.NewPoint(objectX, objectY, -1))
	origin := c.TransformInverse.MulVec4(prim.NewPoint(0, 0, 0))
	direction := pixel.Sub(origin).Normalize()

	return Ray{Origin: origin, Direction: direction}
}
