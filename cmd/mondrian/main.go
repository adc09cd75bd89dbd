package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"mondrian/pkg/images"
	"mondrian/pkg/layout"
	"mondrian/pkg/render"
)

func main() {
	width := flag.Float64("w", 1024, "sheet width in pixels")
	rowHeight := flag.Float64("row", 200, "target row height in pixels")
	fill := flag.Float64("fill", 0.8, "minimum fill factor before a trailing row is scaled")
	spacing := flag.Float64("spacing", 4, "gap between cells and rows in pixels")
	output := flag.String("o", "sheet.png", "output PNG file path")
	outline := flag.Bool("outline", false, "stroke a border around each cell")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mondrian [flags] <image-dir>\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	dir := flag.Arg(0)

	lib := images.NewLibrary()
	gallery, err := images.Scan(lib, dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning %s: %v\n", dir, err)
		os.Exit(1)
	}
	if gallery.Len() == 0 {
		fmt.Fprintf(os.Stderr, "No images found in %s\n", dir)
		os.Exit(1)
	}

	packer, err := layout.NewJustifiedPacker(*rowHeight, *fill, *spacing)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Packing %d images into %.0fpx rows...\n", gallery.Len(), *width)
	sheet := packer.Pack(gallery.AspectRatio, gallery.Len(), *width)

	height := int(math.Ceil(sheet.ScrollExtent()))
	if height < 1 {
		height = 1
	}
	fmt.Fprintf(os.Stderr, "Rendering %dx%d...\n", int(*width), height)
	r := render.NewRenderer(int(*width), height, render.Options{
		Library: lib,
		PathFor: gallery.Path,
		Outline: *outline,
	})
	r.RenderLayout(sheet)

	if err := r.SavePNG(*output); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving PNG: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Saved %d rows to %s\n", len(sheet.Lines), *output)
}
