package raytracer

import "github.com/mravens/whitted-raytracer/internal/prim"

// DefaultWorld builds the fixed two-sphere-and-light scene used throughout
// spec.md §8's worked test vectors: a unit sphere with a colorful matte
// material, a second sphere scaled to radius 0.5, and one white light at
// (-10, 10, -10).
func DefaultWorld() *World {
	w := NewWorld()

	outer := DefaultMaterial()
	outer.Color = prim.NewVector(0.8, 1.0, 0.6)
	outer.Diffuse = 0.7
	outer.Specular = 0.2
	w.AddShape(NewSphere(prim.Identity4(), outer))

	inner := DefaultMaterial()
	w.AddShape(NewSphere(prim.Scaling(0.5, 0.5, 0.5).Inverse(), inner))

	w.AddLight(PointLight{
		Position:  prim.NewPoint(-10, 10, -10),
		Intensity: prim.NewVector(1, 1, 1),
	})
	return w
}

// ExampleCannedScene returns a demo scene exercising every shape kind and
// every material feature (reflection, refraction, patterns), grounded on
// the teacher's ExampleScene1 but extended with a plane floor, a cube, and
// checkered/striped patterns.
func ExampleCannedScene(widthPx, heightPx int) (*Camera, *World) {
	w := NewWorld()

	floorMaterial := DefaultMaterial()
	floorMaterial.Pattern = NewCheckerPattern(prim.NewVector(1, 1, 1), prim.NewVector(0.1, 0.1, 0.1))
	floorMaterial.Specular = 0
	w.AddShape(NewPlane(prim.Identity4(), floorMaterial))

	glass := DefaultMaterial()
	glass.Color = prim.NewVector(0.1, 0.1, 0.15)
	glass.Reflective = 0.9
	glass.Transparency = 0.9
	glass.RefractiveIndex = 1.5
	w.AddShape(NewSphere(prim.Translation(0, 1, -0.5).Inverse(), glass))

	stripedTransform := prim.Translation(2.5, 0.5, -1).Mul(prim.Scaling(0.5, 0.5, 0.5))
	striped := DefaultMaterial()
	striped.Pattern = NewStripesPattern(prim.NewVector(0.8, 0.2, 0.2), prim.NewVector(0.2, 0.2, 0.8))
	w.AddShape(NewSphere(stripedTransform.Inverse(), striped))

	cubeTransform := prim.Translation(-1.5, 0.5, -0.75).
		Mul(prim.RotationY(0.4)).
		Mul(prim.Scaling(0.5, 0.5, 0.5))
	cubeMaterial := DefaultMaterial()
	cubeMaterial.Color = prim.NewVector(0.2, 0.8, 0.2)
	cubeMaterial.Reflective = 0.3
	w.AddShape(NewCube(cubeTransform.Inverse(), cubeMaterial))

	w.AddLight(PointLight{
		Position:  prim.NewPoint(-10, 10, -10),
		Intensity: prim.NewVector(1, 1, 1),
	})

	from := prim.NewPoint(0, 1.5, -5)
	to := prim.NewPoint(0, 1, 0)
	up := prim.NewVector(0, 1, 0)
	camera := NewCamera(widthPx, heightPx, 1.0472, prim.ViewTransform(from, to, up))

	return &camera, w
}
