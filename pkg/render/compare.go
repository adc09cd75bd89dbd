package render

import (
	"fmt"
	"image"
)

// CompareResult summarizes a pixel comparison.
type CompareResult struct {
	Match           bool
	DifferentPixels int
	TotalPixels     int
	MaxDifference   int // largest per-channel delta found
}

// CompareImages compares two images pixel-by-pixel, allowing per-channel
// deltas up to tolerance (0 for exact match). It errors when the
// dimensions differ.
func CompareImages(actual, expected image.Image, tolerance int) (*CompareResult, error) {
	ab, eb := actual.Bounds(), expected.Bounds()
	if ab.Dx() != eb.Dx() || ab.Dy() != eb.Dy() {
		return nil, fmt.Errorf("render: image dimensions differ: %dx%d vs %dx%d",
			ab.Dx(), ab.Dy(), eb.Dx(), eb.Dy())
	}

	res := &CompareResult{Match: true, TotalPixels: ab.Dx() * ab.Dy()}
	for y := 0; y < ab.Dy(); y++ {
		for x := 0; x < ab.Dx(); x++ {
			ar, ag, abl, aa := actual.At(ab.Min.X+x, ab.Min.Y+y).RGBA()
			er, eg, ebl, ea := expected.At(eb.Min.X+x, eb.Min.Y+y).RGBA()
			d := maxInt(
				absInt(int(ar>>8)-int(er>>8)),
				absInt(int(ag>>8)-int(eg>>8)),
				absInt(int(abl>>8)-int(ebl>>8)),
				absInt(int(aa>>8)-int(ea>>8)),
			)
			if d > res.MaxDifference {
				res.MaxDifference = d
			}
			if d > tolerance {
				res.DifferentPixels++
			}
		}
	}
	res.Match = res.DifferentPixels == 0
	return res, nil
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func maxInt(vals ...int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
