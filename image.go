package raytracer

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/mravens/whitted-raytracer/internal/prim"
)

// RenderToImage traces every pixel of camera against world and returns an
// RGBA image, following the teacher's img.Set-per-pixel pattern.
func RenderToImage(camera *Camera, world *World) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, camera.HSize, camera.VSize))
	for y := 0; y < camera.VSize; y++ {
		for x := 0; x < camera.HSize; x++ {
			r, g, b, a := TracePixelRGBA(x, y, camera, world)
			img.Set(x, y, color.RGBA{
				R: uint8(r * 255),
				G: uint8(g * 255),
				B: uint8(b * 255),
				A: uint8(a * 255),
			})
		}
	}
	return img
}

// RenderToImageAA is RenderToImage with samples jittered rays averaged per
// pixel, the host-driver-side antialiasing pass (internal/config.Options.Samples)
// that spec.md's core deliberately has no knowledge of — grounded on the
// teacher's Render, which jitters du/dv across numSamples per pixel and
// averages the accumulated color. samples <= 1 is equivalent to
// RenderToImage. maxBounces overrides the core's default reflection/
// refraction depth (World.ColourAtDepth) when positive; 0 keeps the core
// default.
func RenderToImageAA(camera *Camera, world *World, samples, maxBounces int) *image.RGBA {
	if samples <= 1 && maxBounces <= 0 {
		return RenderToImage(camera, world)
	}
	colourAt := world.ColourAt
	if maxBounces > 0 {
		colourAt = func(ray Ray) prim.Vec4 { return world.ColourAtDepth(ray, maxBounces) }
	}
	if samples < 1 {
		samples = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, camera.HSize, camera.VSize))
	for y := 0; y < camera.VSize; y++ {
		for x := 0; x < camera.HSize; x++ {
			var rSum, gSum, bSum float32
			for range samples {
				dx, dy := float32(0), float32(0)
				if samples > 1 {
					dx = rand.Float32() - 0.5
					dy = rand.Float32() - 0.5
				}
				ray := camera.RayForPixel(float32(x)+dx, float32(y)+dy)
				c := colourAt(ray)
				rSum += clamp32(0, 1, c.X)
				gSum += clamp32(0, 1, c.Y)
				bSum += clamp32(0, 1, c.Z)
			}
			n := float32(samples)
			img.Set(x, y, color.RGBA{
				R: uint8(rSum / n * 255),
				G: uint8(gSum / n * 255),
				B: uint8(bSum / n * 255),
				A: 255,
			})
		}
	}
	return img
}
