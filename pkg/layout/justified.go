package layout

import "fmt"

// RatioFunc reports the aspect ratio (width / height) of the item at the
// given index. ok is false while the ratio is not yet known, in which case
// the packer substitutes its configured default.
type RatioFunc func(index int) (ratio float64, ok bool)

// JustifiedPacker packs aspect-ratio-only items into uniformly scaled rows,
// the photo-gallery layout. Flex factors are ignored entirely; scaling is
// purely geometric.
type JustifiedPacker struct {
	// TargetRowHeight is the height rows are built at before scaling.
	TargetRowHeight float64

	// MinRowFillFactor controls the trailing row: a last row whose unscaled
	// fill ratio is below this threshold keeps TargetRowHeight and natural
	// widths instead of being blown up to fill the container.
	MinRowFillFactor float64

	// Spacing is the gap between items in a row. The same value is the
	// inter-row gap in Pack output.
	Spacing float64

	// DefaultAspectRatio stands in for items whose ratio is not yet known.
	DefaultAspectRatio float64
}

// NewJustifiedPacker validates the configuration and returns a packer.
func NewJustifiedPacker(targetRowHeight, minRowFillFactor, spacing float64) (*JustifiedPacker, error) {
	p := &JustifiedPacker{
		TargetRowHeight:    targetRowHeight,
		MinRowFillFactor:   minRowFillFactor,
		Spacing:            spacing,
		DefaultAspectRatio: 1,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate rejects contract violations at construction time.
func (p *JustifiedPacker) Validate() error {
	if p.TargetRowHeight <= 0 {
		return fmt.Errorf("layout: non-positive target row height %v", p.TargetRowHeight)
	}
	if p.MinRowFillFactor <= 0 || p.MinRowFillFactor > 1 {
		return fmt.Errorf("layout: min row fill factor %v outside (0,1]", p.MinRowFillFactor)
	}
	if p.Spacing < 0 {
		return fmt.Errorf("layout: negative spacing %v", p.Spacing)
	}
	if p.DefaultAspectRatio <= 0 {
		return fmt.Errorf("layout: non-positive default aspect ratio %v", p.DefaultAspectRatio)
	}
	return nil
}

func (p *JustifiedPacker) ratioAt(ratios RatioFunc, i int) float64 {
	if r, ok := ratios(i); ok && r > 0 {
		return r
	}
	return p.DefaultAspectRatio
}

// NextRow packs one row starting at item first out of count items in total
// (count < 0 means the sequence is unbounded and no row is ever trailing).
// It returns the packed row and the index of the first item after it.
//
// A row closes when the next item's width at TargetRowHeight plus spacing
// would exceed width. Closed rows are uniformly scaled so the widths plus
// interior spacing fill width exactly; the trailing row is scaled only when
// it meets MinRowFillFactor.
func (p *JustifiedPacker) NextRow(ratios RatioFunc, first, count int, width float64) (Line, int) {
	line := Line{FirstIndex: first, LastIndex: first - 1}

	raw := 0.0 // widths without spacing
	i := first
	for count < 0 || i < count {
		w := p.TargetRowHeight * p.ratioAt(ratios, i)
		if len(line.Items) > 0 && raw+p.Spacing*float64(len(line.Items))+w > width {
			break
		}
		line.Items = append(line.Items, ResolvedItem{
			Index:       i,
			MainExtent:  w,
			CrossExtent: p.TargetRowHeight,
		})
		raw += w
		i++
	}
	if len(line.Items) == 0 {
		return line, first
	}
	line.LastIndex = i - 1

	interior := p.Spacing * float64(len(line.Items)-1)
	trailing := count >= 0 && i >= count
	fill := (raw + interior) / width

	scale := 1.0
	if !trailing || fill >= p.MinRowFillFactor {
		scale = (width - interior) / raw
	}

	height := p.TargetRowHeight * scale
	pos := 0.0
	sum := 0.0
	for j := range line.Items {
		it := &line.Items[j]
		it.MainExtent *= scale
		it.CrossExtent = height
		it.MainOffset = pos
		// The last item absorbs the residual so scaled rows close exactly
		// on the container width.
		if scale != 1 && j == len(line.Items)-1 {
			it.MainExtent = width - interior - sum
		}
		sum += it.MainExtent
		pos += it.MainExtent + p.Spacing
	}

	line.MainExtent = sum + interior
	line.CrossExtent = height
	return line, i
}

// Pack lays out all count items into rows of the given width, stacking rows
// with the packer's spacing. Zero items yield an empty layout with a zero
// scroll extent.
func (p *JustifiedPacker) Pack(ratios RatioFunc, count int, width float64) *Layout {
	out := &Layout{MainExtent: width}
	if count <= 0 || width <= 0 {
		return out
	}

	cross := 0.0
	for first := 0; first < count; {
		line, next := p.NextRow(ratios, first, count, width)
		if next == first {
			break
		}
		if len(out.Lines) > 0 {
			cross += p.Spacing
		}
		line.CrossOffset = cross
		cross += line.CrossExtent
		out.Lines = append(out.Lines, line)
		first = next
	}
	out.CrossExtent = cross
	return out
}
