package raytracer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mravens/whitted-raytracer/internal/prim"
)

var black = prim.NewVector(0, 0, 0)
var white = prim.NewVector(1, 1, 1)

func TestStripesAlternateOnlyInX(t *testing.T) {
	p := NewStripesPattern(white, black)
	tests := []struct {
		point prim.Vec4
		want  prim.Vec4
	}{
		{prim.NewPoint(0, 0, 0), white},
		{prim.NewPoint(0, 1, 0), white},
		{prim.NewPoint(0, 2, 0), white},
		{prim.NewPoint(0, 0, 1), white},
		{prim.NewPoint(0, 0, 2), white},
		{prim.NewPoint(0.9, 0, 0), white},
		{prim.NewPoint(1, 0, 0), black},
		{prim.NewPoint(-0.1, 0, 0), black},
		{prim.NewPoint(-1, 0, 0), black},
		{prim.NewPoint(-1.1, 0, 0), white},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(p.colorAt(tt.point), tt.want, approxOpts); diff != "" {
			t.Errorf("colorAt(%v) mismatch (-got +want):\n%s", tt.point, diff)
		}
	}
}

func TestGradientLerpsAcrossX(t *testing.T) {
	p := NewGradientPattern(white, black)
	want := prim.NewVector(0.75, 0.75, 0.75)
	if diff := cmp.Diff(p.colorAt(prim.NewPoint(0.25, 0, 0)), want, approxOpts); diff != "" {
		t.Errorf("colorAt() mismatch (-got +want):\n%s", diff)
	}
}

func TestRingExtendsInXAndZ(t *testing.T) {
	p := NewRingPattern(white, black)
	tests := []struct {
		point prim.Vec4
		want  prim.Vec4
	}{
		{prim.NewPoint(0, 0, 0), white},
		{prim.NewPoint(1, 0, 0), black},
		{prim.NewPoint(0, 0, 1), black},
		{prim.NewPoint(0.708, 0, 0.708), black},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(p.colorAt(tt.point), tt.want, approxOpts); diff != "" {
			t.Errorf("colorAt(%v) mismatch (-got +want):\n%s", tt.point, diff)
		}
	}
}

func TestCheckerRepeatsInAllThreeDimensions(t *testing.T) {
	p := NewCheckerPattern(white, black)
	tests := []struct {
		point prim.Vec4
		want  prim.Vec4
	}{
		{prim.NewPoint(0, 0, 0), white},
		{prim.NewPoint(0.99, 0, 0), white},
		{prim.NewPoint(1.01, 0, 0), black},
		{prim.NewPoint(0, 0.99, 0), white},
		{prim.NewPoint(0, 1.01, 0), black},
		{prim.NewPoint(0, 0, 0.99), white},
		{prim.NewPoint(0, 0, 1.01), black},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(p.colorAt(tt.point), tt.want, approxOpts); diff != "" {
			t.Errorf("colorAt(%v) mismatch (-got +want):\n%s", tt.point, diff)
		}
	}
}
