package raytracer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/mravens/whitted-raytracer/internal/prim"
)

var approxOpts = cmpopts.EquateApprox(1e-4, 0.0)

func TestSphereIntersectTangent(t *testing.T) {
	s := NewSphere(prim.Identity4(), DefaultMaterial())
	ray := Ray{Origin: prim.NewPoint(0, 1, -5), Direction: prim.NewVector(0, 0, 1)}

	var xs Intersections
	s.Intersect(ray, &xs)
	if xs.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", xs.Count())
	}
	if xs.At(0).T != 5 || xs.At(1).T != 5 {
		t.Errorf("tangent hits = {%v, %v}, want {5, 5}", xs.At(0).T, xs.At(1).T)
	}
}

func TestSphereIntersectMiss(t *testing.T) {
	s := NewSphere(prim.Identity4(), DefaultMaterial())
	ray := Ray{Origin: prim.NewPoint(0, 2, -5), Direction: prim.NewVector(0, 0, 1)}

	var xs Intersections
	s.Intersect(ray, &xs)
	if xs.Count() != 0 {
		t.Fatalf("Count() = %d, want 0", xs.Count())
	}
}

func TestSphereNormalIsUnitAndOutward(t *testing.T) {
	s := NewSphere(prim.Translation(0, 1, 0).Inverse(), DefaultMaterial())
	n := s.NormalAt(prim.NewPoint(0, 1.70711, -0.70711))
	if diff := cmp.Diff(n.Length(), float32(1.0), approxOpts); diff != "" {
		t.Errorf("normal length mismatch (-got +want):\n%s", diff)
	}
	want := prim.NewVector(0, 0.70711, -0.70711)
	if diff := cmp.Diff(n, want, approxOpts); diff != "" {
		t.Errorf("normal mismatch (-got +want):\n%s", diff)
	}
}

func TestPlaneIntersectParallelMisses(t *testing.T) {
	p := NewPlane(prim.Identity4(), DefaultMaterial())
	ray := Ray{Origin: prim.NewPoint(0, 10, 0), Direction: prim.NewVector(0, 0, 1)}
	var xs Intersections
	p.Intersect(ray, &xs)
	if xs.Count() != 0 {
		t.Fatalf("Count() = %d, want 0 for a ray parallel to the plane", xs.Count())
	}
}

func TestPlaneIntersectFromAbove(t *testing.T) {
	p := NewPlane(prim.Identity4(), DefaultMaterial())
	ray := Ray{Origin: prim.NewPoint(0, 1, 0), Direction: prim.NewVector(0, -1, 0)}
	var xs Intersections
	p.Intersect(ray, &xs)
	if xs.Count() != 1 || xs.At(0).T != 1 {
		t.Fatalf("Intersect() = %+v, want one hit at t=1", xs)
	}
}

func TestPlaneNormalIsConstant(t *testing.T) {
	p := NewPlane(prim.Identity4(), DefaultMaterial())
	for _, pt := range []prim.Vec4{
		prim.NewPoint(0, 0, 0),
		prim.NewPoint(10, 0, -10),
		prim.NewPoint(-5, 0, 150),
	} {
		if diff := cmp.Diff(p.NormalAt(pt), prim.NewVector(0, 1, 0), approxOpts); diff != "" {
			t.Errorf("NormalAt(%v) mismatch (-got +want):\n%s", pt, diff)
		}
	}
}

func TestCubeIntersectFromOutsideEachFace(t *testing.T) {
	c := NewCube(prim.Identity4(), DefaultMaterial())
	tests := []struct {
		name           string
		origin, dir    prim.Vec4
		t1, t2         float32
	}{
		{"+x", prim.NewPoint(5, 0.5, 0), prim.NewVector(-1, 0, 0), 4, 6},
		{"-x", prim.NewPoint(-5, 0.5, 0), prim.NewVector(1, 0, 0), 4, 6},
		{"+y", prim.NewPoint(0.5, 5, 0), prim.NewVector(0, -1, 0), 4, 6},
		{"+z", prim.NewPoint(0.5, 0, 5), prim.NewVector(0, 0, -1), 4, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var xs Intersections
			c.Intersect(Ray{Origin: tt.origin, Direction: tt.dir}, &xs)
			if xs.Count() != 2 {
				t.Fatalf("Count() = %d, want 2", xs.Count())
			}
			if xs.At(0).T != tt.t1 || xs.At(1).T != tt.t2 {
				t.Errorf("hits = {%v, %v}, want {%v, %v}", xs.At(0).T, xs.At(1).T, tt.t1, tt.t2)
			}
		})
	}
}

func TestCubeIntersectFromInside(t *testing.T) {
	c := NewCube(prim.Identity4(), DefaultMaterial())
	var xs Intersections
	c.Intersect(Ray{Origin: prim.NewPoint(0, 0, 0), Direction: prim.NewVector(0, 0, 1)}, &xs)
	if xs.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", xs.Count())
	}
	if xs.At(0).T != -1 || xs.At(1).T != 1 {
		t.Errorf("hits = {%v, %v}, want {-1, 1}", xs.At(0).T, xs.At(1).T)
	}
}

func TestCubeNormalPicksLargestAxisTiesToX(t *testing.T) {
	c := NewCube(prim.Identity4(), DefaultMaterial())
	tests := []struct {
		point prim.Vec4
		want  prim.Vec4
	}{
		{prim.NewPoint(1, 0.5, -0.8), prim.NewVector(1, 0, 0)},
		{prim.NewPoint(-1, -0.2, 0.9), prim.NewVector(-1, 0, 0)},
		{prim.NewPoint(-0.4, 1, -0.1), prim.NewVector(0, 1, 0)},
		{prim.NewPoint(0.3, 0.6, 1), prim.NewVector(0, 0, 1)},
		{prim.NewPoint(1, 1, 1), prim.NewVector(1, 0, 0)}, // tie broken by axis order x<y<z
	}
	for _, tt := range tests {
		if diff := cmp.Diff(c.NormalAt(tt.point), tt.want, approxOpts); diff != "" {
			t.Errorf("NormalAt(%v) mismatch (-got +want):\n%s", tt.point, diff)
		}
	}
}
