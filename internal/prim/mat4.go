package prim

import (
	"fmt"
	"math"
)

// Mat4 is a row-major 4x4 matrix: Rows[row][col].
type Mat4 struct {
	Rows [4][4]float32
}

func (m Mat4) String() string {
	return fmt.Sprintf("Mat4%v", m.Rows)
}

// Identity4 is the 4x4 identity matrix.
func Identity4() Mat4 {
	var m Mat4
	for i := range 4 {
		m.Rows[i][i] = 1
	}
	return m
}

// Mul computes m * other.
func (m Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	for r := range 4 {
		for c := range 4 {
			var sum float32
			for k := range 4 {
				sum += m.Rows[r][k] * other.Rows[k][c]
			}
			out.Rows[r][c] = sum
		}
	}
	return out
}

// MulVec4 computes m * v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	components := [4]float32{v.X, v.Y, v.Z, v.W}
	var result [4]float32
	for r := range 4 {
		var sum float32
		for c := range 4 {
			sum += m.Rows[r][c] * components[c]
		}
		result[r] = sum
	}
	return Vec4{result[0], result[1], result[2], result[3]}
}

// Transpose returns the transpose of m.
func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for r := range 4 {
		for c := range 4 {
			out.Rows[c][r] = m.Rows[r][c]
		}
	}
	return out
}

// Inverse computes the matrix inverse via Gauss-Jordan elimination with
// partial pivoting on an augmented [M | I] matrix. Camera and shape
// transforms are required (spec.md §3) to be invertible; a non-invertible
// transform is a programmer error (spec.md §7) and this function is not
// required to detect it gracefully — callers must not rely on its
// behavior for a singular matrix.
func (m Mat4) Inverse() Mat4 {
	var aug [4][8]float32
	for r := range 4 {
		for c := range 4 {
			aug[r][c] = m.Rows[r][c]
		}
		aug[r][4+r] = 1
	}

	for col := range 4 {
		pivot := col
		best := float32(math.Abs(float64(aug[col][col])))
		for r := col + 1; r < 4; r++ {
			if v := float32(math.Abs(float64(aug[r][col]))); v > best {
				best = v
				pivot = r
			}
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]

		pivotVal := aug[col][col]
		for c := range 8 {
			aug[col][c] /= pivotVal
		}
		for r := range 4 {
			if r == col {
				continue
			}
			factor := aug[r][col]
			if factor == 0 {
				continue
			}
			for c := range 8 {
				aug[r][c] -= factor * aug[col][c]
			}
		}
	}

	var out Mat4
	for r := range 4 {
		for c := range 4 {
			out.Rows[r][c] = aug[r][4+c]
		}
	}
	return out
}

// Translation builds a translation matrix.
func Translation(x, y, z float32) Mat4 {
	m := Identity4()
	m.Rows[0][3] = x
	m.Rows[1][3] = y
	m.Rows[2][3] = z
	return m
}

// Scaling builds a scaling matrix.
func Scaling(x, y, z float32) Mat4 {
	var m Mat4
	m.Rows[0][0] = x
	m.Rows[1][1] = y
	m.Rows[2][2] = z
	m.Rows[3][3] = 1
	return m
}

// UniformScaling builds a uniform scaling matrix (the GML `uscale` op).
func UniformScaling(s float32) Mat4 {
	return Scaling(s, s, s)
}

// RotationX builds a rotation matrix around the X axis, radians.
func RotationX(r float32) Mat4 {
	m := Identity4()
	cos, sin := float32(math.Cos(float64(r))), float32(math.Sin(float64(r)))
	m.Rows[1][1], m.Rows[1][2] = cos, -sin
	m.Rows[2][1], m.Rows[2][2] = sin, cos
	return m
}

// RotationY builds a rotation matrix around the Y axis, radians.
func RotationY(r float32) Mat4 {
	m := Identity4()
	cos, sin := float32(math.Cos(float64(r))), float32(math.Sin(float64(r)))
	m.Rows[0][0], m.Rows[0][2] = cos, sin
	m.Rows[2][0], m.Rows[2][2] = -sin, cos
	return m
}

// RotationZ builds a rotation matrix around the Z axis, radians.
func RotationZ(r float32) Mat4 {
	m := Identity4()
	cos, sin := float32(math.Cos(float64(r))), float32(math.Sin(float64(r)))
	m.Rows[0][0], m.Rows[0][1] = cos, -sin
	m.Rows[1][0], m.Rows[1][1] = sin, cos
	return m
}

// ViewTransform builds the world-to-camera matrix for a camera at `from`,
// looking toward `to`, with the given `up` direction. Its inverse maps
// camera-space pixel rays back into world space (spec.md §4.1).
func ViewTransform(from, to, up Vec4) Mat4 {
	forward := to.Sub(from).Normalize()
	upn := up.Normalize()
	left := forward.Cross(upn)
	trueUp := left.Cross(forward)

	orientation := Mat4{Rows: [4][4]float32{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}}
	return orientation.Mul(Translation(-from.X, -from.Y, -from.Z))
}

// Cross computes the 3D cross product of two vectors (W is ignored and
// the result has W == 0).
func (v Vec4) Cross(other Vec4) Vec4 {
	return NewVector(
		v.Y*other.Z-v.Z*other.Y,
		v.Z*other.X-v.X*other.Z,
		v.X*other.Y-v.Y*other.X,
	)
}
