package raytracer

import (
	"encoding/binary"
	"math"

	"github.com/mravens/whitted-raytracer/internal/prim"
)

// TracePixel is the per-pixel entry point (spec.md §4.8): it asks camera
// for the ray through pixel (x, y) and returns world's shaded color for
// it. x and y are raw integer pixel coordinates — RayForPixel applies the
// +0.5 pixel-center offset internally (spec.md §4.1's formula), so callers
// must not pre-offset them; doing so here and in RayForPixel both would
// double the offset, a confusion spec.md's own wording invites but which
// this implementation resolves by offsetting in exactly one place.
func TracePixel(x, y int, camera *Camera, world *World) prim.Vec4 {
	ray := camera.RayForPixel(float32(x), float32(y))
	return world.ColourAt(ray)
}

// TracePixelRGBA is TracePixel with the color clamped to [0,1] and an
// alpha of 1.0 appended, for callers producing an RGBA image.
func TracePixelRGBA(x, y int, camera *Camera, world *World) (r, g, b, a float32) {
	color := TracePixel(x, y, camera, world)
	return clamp32(0, 1, color.X), clamp32(0, 1, color.Y), clamp32(0, 1, color.Z), 1.0
}

// ShaderInputs is the stable CPU/GPU boundary struct (spec.md §6): a
// Camera's parameters followed by the shape and light counts describing
// how many Shape/PointLight records follow it in a device buffer. Field
// order here is the layout contract: Camera, then shape_count, then
// light_count, all fixed-width, so it can be reinterpreted identically on
// either side of a CPU<->GPU upload.
type ShaderInputs struct {
	Camera     Camera
	ShapeCount uint32
	LightCount uint32
}

// NewShaderInputs packs a World's counts alongside camera, as the host
// would before a buffer upload.
func NewShaderInputs(camera Camera, world *World) ShaderInputs {
	return ShaderInputs{
		Camera:     camera,
		ShapeCount: uint32(len(world.Shapes)),
		LightCount: uint32(len(world.Lights)),
	}
}

// MarshalCameraBlock packs ShaderInputs (the camera scalars, two padding
// floats, the 16 floats of the camera's TransformInverse in row-major
// order, and the two trailing counts) into a 104-byte little-endian
// buffer suitable for a GPU uniform upload, in the
// style of a GPU-facing Marshal method: fixed field order, explicit byte
// offsets, no reflection.
func (s *ShaderInputs) MarshalCameraBlock() []byte {
	buf := make([]byte, 4*4+4*4+16*4+4+4)
	offset := 0
	putFloat32 := func(v float32) {
		binary.LittleEndian.PutUint32(buf[offset:offset+4], math.Float32bits(v))
		offset += 4
	}
	putUint32 := func(v uint32) {
		binary.LittleEndian.PutUint32(buf[offset:offset+4], v)
		offset += 4
	}

	putFloat32(float32(s.Camera.HSize))
	putFloat32(float32(s.Camera.VSize))
	putFloat32(s.Camera.FieldOfView)
	putFloat32(s.Camera.PixelSize)

	putFloat32(s.Camera.HalfWidth)
	putFloat32(s.Camera.HalfHeight)
	putFloat32(0) // pad to 16 bytes
	putFloat32(0)

	for r := range 4 {
		for c := range 4 {
			putFloat32(s.Camera.TransformInverse.Rows[r][c])
		}
	}

	putUint32(s.ShapeCount)
	putUint32(s.LightCount)

	return buf
}
