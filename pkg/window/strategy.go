package window

import (
	"fmt"
	"math"

	"mondrian/pkg/layout"
)

// RowStrategy builds one row of items at a time. The set of strategies is
// closed; a strategy is selected once per session, not swapped mid-layout.
//
// NextRow builds the row starting at item first under the given row width.
// It returns the row's line geometry and the index of the first item after
// the row; ok is false when the source has no item at first.
type RowStrategy interface {
	NextRow(src Source, first int, width float64) (line layout.Line, next int, ok bool)
	Validate() error
}

// JustifiedStrategy packs aspect-ratio rows with the photo-gallery packer.
type JustifiedStrategy struct {
	Packer *layout.JustifiedPacker
}

func (s JustifiedStrategy) Validate() error {
	if s.Packer == nil {
		return fmt.Errorf("window: justified strategy needs a packer")
	}
	return s.Packer.Validate()
}

func (s JustifiedStrategy) NextRow(src Source, first int, width float64) (layout.Line, int, bool) {
	count := src.Len()
	if count >= 0 && first >= count {
		return layout.Line{}, first, false
	}
	line, next := s.Packer.NextRow(src.AspectRatio, first, count, width)
	return line, next, next > first
}

// FixedCountStrategy lays a fixed number of equal-width columns per row.
// Each item's height follows its aspect ratio; the row's cross extent is
// the tallest item's.
type FixedCountStrategy struct {
	Columns            int
	Spacing            float64
	DefaultAspectRatio float64
}

func (s FixedCountStrategy) Validate() error {
	if s.Columns < 1 {
		return fmt.Errorf("window: fixed-count strategy needs at least one column, got %d", s.Columns)
	}
	if s.Spacing < 0 {
		return fmt.Errorf("window: negative spacing %v", s.Spacing)
	}
	if s.DefaultAspectRatio < 0 {
		return fmt.Errorf("window: negative default aspect ratio %v", s.DefaultAspectRatio)
	}
	return nil
}

func (s FixedCountStrategy) NextRow(src Source, first int, width float64) (layout.Line, int, bool) {
	return gridRow(src, first, s.Columns, width, s.Spacing, s.DefaultAspectRatio)
}

// MaxExtentStrategy lays as many equal-width columns as fit while keeping
// each column at or under MaxItemExtent.
type MaxExtentStrategy struct {
	MaxItemExtent      float64
	Spacing            float64
	DefaultAspectRatio float64
}

func (s MaxExtentStrategy) Validate() error {
	if s.MaxItemExtent <= 0 {
		return fmt.Errorf("window: non-positive max item extent %v", s.MaxItemExtent)
	}
	if s.Spacing < 0 {
		return fmt.Errorf("window: negative spacing %v", s.Spacing)
	}
	if s.DefaultAspectRatio < 0 {
		return fmt.Errorf("window: negative default aspect ratio %v", s.DefaultAspectRatio)
	}
	return nil
}

func (s MaxExtentStrategy) NextRow(src Source, first int, width float64) (layout.Line, int, bool) {
	cols := int(math.Ceil((width + s.Spacing) / (s.MaxItemExtent + s.Spacing)))
	if cols < 1 {
		cols = 1
	}
	return gridRow(src, first, cols, width, s.Spacing, s.DefaultAspectRatio)
}

// gridRow fills up to cols equal-width cells starting at first.
func gridRow(src Source, first, cols int, width, spacing, defaultRatio float64) (layout.Line, int, bool) {
	count := src.Len()
	if count >= 0 && first >= count {
		return layout.Line{}, first, false
	}
	if defaultRatio == 0 {
		defaultRatio = 1
	}

	cell := (width - spacing*float64(cols-1)) / float64(cols)
	if cell < 0 {
		cell = 0
	}

	line := layout.Line{FirstIndex: first}
	pos := 0.0
	i := first
	for ; i < first+cols && (count < 0 || i < count); i++ {
		ratio, ok := src.AspectRatio(i)
		if !ok || ratio <= 0 {
			ratio = defaultRatio
		}
		h := cell / ratio
		if h > line.CrossExtent {
			line.CrossExtent = h
		}
		line.Items = append(line.Items, layout.ResolvedItem{
			Index:       i,
			MainExtent:  cell,
			CrossExtent: h,
			MainOffset:  pos,
		})
		pos += cell + spacing
	}
	line.LastIndex = i - 1
	line.MainExtent = cell*float64(len(line.Items)) + spacing*float64(len(line.Items)-1)
	return line, i, true
}

// ExtentStrategy builds rows from caller-measured extents, greedily filling
// each row the way the flex line breaker does. Items keep their natural
// widths; nothing is scaled.
type ExtentStrategy struct {
	Measure layout.MeasureFunc
	Spacing float64
}

func (s ExtentStrategy) Validate() error {
	if s.Measure == nil {
		return fmt.Errorf("window: extent strategy needs a measure func")
	}
	if s.Spacing < 0 {
		return fmt.Errorf("window: negative spacing %v", s.Spacing)
	}
	return nil
}

func (s ExtentStrategy) NextRow(src Source, first int, width float64) (layout.Line, int, bool) {
	count := src.Len()
	if count >= 0 && first >= count {
		return layout.Line{}, first, false
	}

	line := layout.Line{FirstIndex: first}
	pos := 0.0
	i := first
	for count < 0 || i < count {
		main, cross := s.Measure(i, width)
		if len(line.Items) > 0 && line.MainExtent+s.Spacing+main > width {
			break
		}
		if len(line.Items) > 0 {
			line.MainExtent += s.Spacing
			pos += s.Spacing
		}
		line.Items = append(line.Items, layout.ResolvedItem{
			Index:       i,
			MainExtent:  main,
			CrossExtent: cross,
			MainOffset:  pos,
		})
		line.MainExtent += main
		pos += main
		if cross > line.CrossExtent {
			line.CrossExtent = cross
		}
		i++
	}
	line.LastIndex = i - 1
	return line, i, true
}
