package raytracer

import (
	"math"

	"github.com/mravens/whitted-raytracer/internal/prim"
)

// Material holds the Phong coefficients plus reflective/refractive
// weights used by World.ColourAt's iterative driver.
type Material struct {
	Color   prim.Vec4 // RGB stored in X, Y, Z; W unused
	Pattern *Pattern  // optional; overrides Color when non-nil

	Ambient, Diffuse, Specular float32
	Shininess                  float32

	Reflective      float32 // 0 (no reflection) .. 1 (perfect mirror)
	Transparency    float32 // 0 (opaque) .. 1 (fully transparent)
	RefractiveIndex float32 // 1.0 == air/vacuum
}

// DefaultMaterial returns a matte white surface with no reflection,
// transparency, or pattern — the book's standard baseline material.
func DefaultMaterial() Material {
	return Material{
		Color:           prim.NewVector(1, 1, 1),
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200.0,
		RefractiveIndex: 1.0,
	}
}

func clamp32(lo, hi, x float32) float32 {
	return float32(math.Min(float64(hi), math.Max(float64(lo), float64(x))))
}

// Lighting implements the Phong reflection model (spec.md §4.4): ambient +
// diffuse + specular, with an optional pattern-supplied surface color and
// an in-shadow short-circuit that returns only the ambient term. point is
// world space (used for the light direction); objectPoint is point mapped
// through the owning shape's TransformInverse, which Pattern.colorAt maps
// through its own transform inverse in turn — the two-stage world-to-
// object-to-pattern chain spec.md §4.4 requires.
func (m *Material) Lighting(light *PointLight, point, objectPoint, eye, normal prim.Vec4, inShadow bool) prim.Vec4 {
	surface := m.Color
	if m.Pattern != nil {
		surface = m.Pattern.colorAt(objectPoint)
	}

	effective := mulElemColor(surface, light.Intensity)
	ambient := surface.Scale(m.Ambient)

	if inShadow {
		return ambient
	}

	lightDir := light.Position.Sub(point).Normalize()
	cosLN := lightDir.Dot(normal)

	var diffuse, specular prim.Vec4
	if cosLN >= 0 {
		diffuse = effective.Scale(m.Diffuse * cosLN)

		reflectDir := lightDir.Neg().Reflect(normal)
		cosRE := reflectDir.Dot(eye)
		if cosRE >= 0 {
			factor := float32(math.Pow(float64(cosRE), float64(m.Shininess)))
			specular = light.Intensity.Scale(m.Specular * factor)
		}
	}

	return ambient.Add(diffuse).Add(specular)
}

// mulElemColor multiplies two color vectors component-wise (Hadamard
// product), treating X/Y/Z as R/G/B.
func mulElemColor(a, b prim.Vec4) prim.Vec4 {
	return prim.Vec4{X: a.X * b.X, Y: a.Y * b.Y, Z: a.Z * b.Z}
}
