package main

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	rt "github.com/mravens/whitted-raytracer"
	"github.com/mravens/whitted-raytracer/internal/config"
)

func writeImage(img image.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func renderCannedScene(opts *config.Options) image.Image {
	camera, world := rt.ExampleCannedScene(opts.Width, opts.Height)
	return rt.RenderToImageAA(camera, world, opts.Samples, opts.MaxBounces)
}

func renderFromGMLFile(filename string, opts *config.Options) (image.Image, error) {
	prog, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	img, _, err := rt.RenderGMLToImageAA(string(prog), opts.Samples, opts.MaxBounces)
	return img, err
}

func main() {
	opts := config.Parse()
	if len(opts.OutFile) == 0 {
		log.Fatal("--out_file is required")
	}

	var img image.Image
	var err error
	if len(opts.GMLFile) == 0 {
		log.Print("--gml_file not specified, using canned scene.")
		img = renderCannedScene(opts)
	} else {
		img, err = renderFromGMLFile(opts.GMLFile, opts)
		if err != nil {
			log.Fatal(err)
		}
	}
	if err = writeImage(img, opts.OutFile); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s\n", opts.OutFile)
}
