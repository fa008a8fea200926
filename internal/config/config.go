// Package config assembles the host driver's render options from CLI
// flags, the way the teacher's cmd/example built a Scene from flags
// before calling Render.
package config

import "flag"

// Options holds the parameters a render driver (cmd/example) needs beyond
// the scene itself: which scene to render, where to write it, and how the
// driver should sample each pixel. None of these are read by the core
// render path (Camera/World/TracePixel never loop over samples).
type Options struct {
	GMLFile string
	OutFile string
	Width   int
	Height  int

	// Samples is the number of jittered rays averaged per pixel by the
	// host driver. 1 disables antialiasing.
	Samples int

	// MaxBounces overrides the core's compiled-in MAX_REFLECT_REFRACT cap
	// for this render, via World.ColourAtDepth. 0 means "use the core
	// default."
	MaxBounces int
}

// Parse registers the render flags on flag.CommandLine, parses argv, and
// returns the assembled Options.
func Parse() *Options {
	opts := &Options{}
	flag.StringVar(&opts.GMLFile, "gml_file", "", "gml filename to run")
	flag.StringVar(&opts.OutFile, "out_file", "", "png filename to write")
	flag.IntVar(&opts.Width, "width", 1900, "canned scene width in pixels")
	flag.IntVar(&opts.Height, "height", 1200, "canned scene height in pixels")
	flag.IntVar(&opts.Samples, "samples", 1, "antialiasing samples per pixel (host driver only)")
	flag.IntVar(&opts.MaxBounces, "max_bounces", 0, "override the reflection/refraction bounce cap (0 = core default)")
	flag.Parse()
	return opts
}
