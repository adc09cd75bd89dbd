package main

import (
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"mondrian/pkg/images"
	"mondrian/pkg/layout"
	"mondrian/pkg/render"
	"mondrian/pkg/window"
)

const scrollStep = 120

// viewer owns the scroll position and repaints the visible band on demand.
type viewer struct {
	mu      sync.Mutex
	session *window.Session
	gallery *images.Gallery
	lib     *images.Library

	width, height int
	offset        float64

	img    *canvas.Image
	status *widget.Label
}

func (v *viewer) repaint() {
	v.mu.Lock()
	defer v.mu.Unlock()

	extent, exact := v.session.ScrollExtent()
	if max := extent - float64(v.height); exact && v.offset > max {
		v.offset = max
	}
	if v.offset < 0 {
		v.offset = 0
	}

	rows := v.session.Rows(v.offset, float64(v.height))
	r := render.NewRenderer(v.width, v.height, render.Options{
		Library: v.lib,
		PathFor: v.gallery.Path,
	})
	r.RenderRows(rows, v.offset)

	// Feed exact ratios from the decoded images back in; header probes and
	// pixel data occasionally disagree.
	for _, row := range rows {
		for _, it := range row.Line.Items {
			if img, err := v.lib.Load(v.gallery.Path(it.Index)); err == nil {
				b := img.Bounds()
				if b.Dy() > 0 {
					v.session.Record(it.Index, float64(b.Dx())/float64(b.Dy()))
				}
			}
		}
	}
	releasable := v.session.Sweep(window.Collector{Margin: float64(v.height)}, v.offset, float64(v.height))

	v.img.Image = r.Image()
	v.img.Refresh()
	mark := "~"
	if exact {
		mark = ""
	}
	v.status.SetText(fmt.Sprintf("%d images, extent %s%.0fpx, offset %.0fpx, %d releasable",
		v.gallery.Len(), mark, extent, v.offset, len(releasable)))
}

func (v *viewer) scrollBy(delta float64) {
	v.mu.Lock()
	v.offset += delta
	v.mu.Unlock()
	v.repaint()
}

func (v *viewer) setWidth(w int) {
	if w < 100 {
		w = 100
	}
	v.mu.Lock()
	v.width = w
	v.mu.Unlock()
	v.session.SetViewportWidth(float64(w))
	v.repaint()
}

func main() {
	rowHeight := flag.Float64("row", 200, "target row height in pixels")
	fill := flag.Float64("fill", 0.8, "minimum fill factor before a trailing row is scaled")
	spacing := flag.Float64("spacing", 4, "gap between cells and rows in pixels")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mondrianview [flags] <image-dir>\n\nFlags:\n")
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

	v := &viewer{
		gallery: gallery,
		lib:     lib,
		width:   1024,
		height:  700,
		img:     canvas.NewImageFromImage(nil),
		status:  widget.NewLabel("Loading..."),
	}
	v.img.FillMode = canvas.ImageFillOriginal

	cfg := window.Config{
		Strategy:                   window.JustifiedStrategy{Packer: packer},
		RowSpacing:                 *spacing,
		AspectRatioChangeThreshold: 0.01,
		CrossExtentChangeThreshold: 8,
		DebounceDuration:           50 * time.Millisecond,
	}
	v.session, err = window.NewSession(cfg, gallery, float64(v.width), func() {
		go v.repaint()
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer v.session.Dispose()

	a := app.New()
	w := a.NewWindow("mondrian — " + dir)
	w.Resize(fyne.NewSize(1024, 768))

	w.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyDown, fyne.KeyJ:
			v.scrollBy(scrollStep)
		case fyne.KeyUp, fyne.KeyK:
			v.scrollBy(-scrollStep)
		case fyne.KeyPageDown, fyne.KeySpace:
			v.scrollBy(float64(v.height))
		case fyne.KeyPageUp:
			v.scrollBy(-float64(v.height))
		case fyne.KeyHome:
			v.scrollBy(-v.offset)
		case fyne.KeyLeftBracket:
			v.setWidth(v.width - 128)
		case fyne.KeyRightBracket:
			v.setWidth(v.width + 128)
		case fyne.KeyEscape, fyne.KeyQ:
			a.Quit()
		}
	})

	w.SetContent(container.NewBorder(nil, v.status, nil, nil, v.img))
	v.repaint()
	w.ShowAndRun()
}
