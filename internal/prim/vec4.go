package prim

import (
	"fmt"
	"math"
)

// Vec4 is a 4-wide homogeneous coordinate: a point when W == 1, a
// direction vector when W == 0. Single-precision to match the
// CPU/GPU struct layout described alongside ShaderInputs.
type Vec4 struct {
	X, Y, Z, W float32
}

// NewPoint builds a Vec4 with W = 1.
func NewPoint(x, y, z float32) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: 1}
}

// NewVector builds a Vec4 with W = 0.
func NewVector(x, y, z float32) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: 0}
}

func (v Vec4) String() string {
	return fmt.Sprintf("Vec4(%.4f, %.4f, %.4f, %.1f)", v.X, v.Y, v.Z, v.W)
}

// IsPoint reports whether v was constructed with W == 1.
func (v Vec4) IsPoint() bool { return v.W == 1 }

// IsVector reports whether v was constructed with W == 0.
func (v Vec4) IsVector() bool { return v.W == 0 }

func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

func (v Vec4) Neg() Vec4 {
	return Vec4{-v.X, -v.Y, -v.Z, -v.W}
}

func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Dot is the 4-wide dot product. Callers intersecting rays and computing
// normals always pass vectors (W == 0) so the W term contributes nothing.
func (v Vec4) Dot(other Vec4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

func (v Vec4) Length() float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

// Normalize returns a unit vector with W forced to 0, per spec.md §3's
// invariant that normals and directions are renormalized as vectors.
func (v Vec4) Normalize() Vec4 {
	length := v.Length()
	if length == 0 {
		return Vec4{}
	}
	return Vec4{v.X / length, v.Y / length, v.Z / length, 0}
}

// Reflect reflects v around the unit normal n: r = v - n*2*(v.n).
func (v Vec4) Reflect(n Vec4) Vec4 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Lerp linearly interpolates between a and b by t in [0, 1].
func Lerp(a, b Vec4, t float32) Vec4 {
	return a.Add(b.Sub(a).Scale(t))
}
