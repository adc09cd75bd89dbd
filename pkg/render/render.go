// Package render rasterizes computed layouts to images. It draws the
// geometry the layout engine produced and nothing else; it never measures
// or reflows.
package render

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"

	"mondrian/pkg/images"
	"mondrian/pkg/layout"
	"mondrian/pkg/window"
)

// palette is the deterministic cell fill cycle used when no image source is
// configured. Item i always gets palette[i % len(palette)].
var palette = []string{
	"#4e79a7", "#f28e2b", "#e15759", "#76b7b5",
	"#59a14f", "#edc948", "#b07aa1", "#ff9da7",
}

// Options configures a Renderer.
type Options struct {
	// Background is the canvas clear color as a hex string. Defaults to
	// white.
	Background string

	// Library and PathFor together enable image fills: cell i is painted
	// with the image at PathFor(i), scaled to the cell. When either is nil
	// cells are filled from the palette.
	Library *images.Library
	PathFor func(i int) string

	// Outline strokes a 1px border around each cell when true.
	Outline bool
}

// Renderer draws layouts onto a fixed-size canvas.
type Renderer struct {
	ctx  *gg.Context
	opts Options
}

// NewRenderer returns a renderer over a width-by-height canvas.
func NewRenderer(width, height int, opts Options) *Renderer {
	if opts.Background == "" {
		opts.Background = "#ffffff"
	}
	return &Renderer{ctx: gg.NewContext(width, height), opts: opts}
}

// Clear fills the canvas with the background color.
func (r *Renderer) Clear() {
	r.ctx.SetHexColor(r.opts.Background)
	r.ctx.Clear()
}

// RenderLayout draws a full layout with a horizontal main axis: item x from
// its main offset, item y from its line's cross offset.
func (r *Renderer) RenderLayout(l *layout.Layout) {
	r.Clear()
	for _, line := range l.Lines {
		for _, it := range line.Items {
			r.cell(it.Index, it.MainOffset, line.CrossOffset+it.CrossOffset,
				it.MainExtent, it.CrossExtent)
		}
	}
}

// RenderRows draws windowed rows shifted so the band starting at
// scrollOffset lands at the top of the canvas.
func (r *Renderer) RenderRows(rows []window.Row, scrollOffset float64) {
	r.Clear()
	for _, row := range rows {
		for _, it := range row.Line.Items {
			r.cell(it.Index, it.MainOffset,
				row.Offset-scrollOffset+it.CrossOffset,
				it.MainExtent, it.CrossExtent)
		}
	}
}

func (r *Renderer) cell(index int, x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	if !r.drawImageCell(index, x, y, w, h) {
		r.ctx.SetHexColor(palette[((index%len(palette))+len(palette))%len(palette)])
		r.ctx.DrawRectangle(x, y, w, h)
		r.ctx.Fill()
	}
	if r.opts.Outline {
		r.ctx.SetHexColor("#202020")
		r.ctx.SetLineWidth(1)
		r.ctx.DrawRectangle(x, y, w, h)
		r.ctx.Stroke()
	}
}

// drawImageCell paints the cell with its source image scaled to fit. It
// reports whether an image was drawn; on any failure the caller falls back
// to the palette.
func (r *Renderer) drawImageCell(index int, x, y, w, h float64) bool {
	if r.opts.Library == nil || r.opts.PathFor == nil {
		return false
	}
	img, err := r.opts.Library.Load(r.opts.PathFor(index))
	if err != nil {
		return false
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return false
	}
	r.ctx.Push()
	r.ctx.DrawRectangle(x, y, w, h)
	r.ctx.Clip()
	r.ctx.Translate(x, y)
	r.ctx.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	r.ctx.DrawImage(img, 0, 0)
	r.ctx.Pop()
	return true
}

// Image returns the canvas.
func (r *Renderer) Image() image.Image {
	return r.ctx.Image()
}

// SavePNG writes the canvas to a PNG file.
func (r *Renderer) SavePNG(filename string) error {
	if err := r.ctx.SavePNG(filename); err != nil {
		return fmt.Errorf("render: saving %s: %w", filename, err)
	}
	return nil
}
