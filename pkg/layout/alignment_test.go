package layout

import (
	"math"
	"testing"
)

func TestJustifyLine(t *testing.T) {
	tests := []struct {
		name    string
		justify Justify
		want    []float64 // main offsets for two 100-wide items, limit 400
	}{
		{"start", JustifyStart, []float64{0, 100}},
		{"end", JustifyEnd, []float64{200, 300}},
		{"center", JustifyCenter, []float64{100, 200}},
		{"space between", JustifySpaceBetween, []float64{0, 300}},
		{"space around", JustifySpaceAround, []float64{50, 250}},
		{"space evenly", JustifySpaceEvenly, []float64{200.0 / 3, 200.0/3 + 100 + 200.0/3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := uniformItems(2)
			lp := makeLine(items, []float64{100, 100}, 0)
			justifyLine(lp, NewConstraints(400, 0), Config{Justify: tt.justify})

			for i, want := range tt.want {
				got := lp.line.Items[i].MainOffset
				if math.Abs(got-want) > 1e-6 {
					t.Errorf("item %d offset: got %v, want %v", i, got, want)
				}
			}
		})
	}
}

func TestJustifyLineReversedDirection(t *testing.T) {
	items := uniformItems(2)
	lp := makeLine(items, []float64{100, 50}, 0)
	justifyLine(lp, NewConstraints(400, 0), Config{Direction: RowReverse, Justify: JustifyStart})

	// Start-packed row-reverse places the first item flush right.
	if got := lp.line.Items[0].MainOffset; !almostEqual(got, 300) {
		t.Errorf("item 0 offset: got %v, want 300", got)
	}
	if got := lp.line.Items[1].MainOffset; !almostEqual(got, 250) {
		t.Errorf("item 1 offset: got %v, want 250", got)
	}
}

func TestJustifyClampedLeftover(t *testing.T) {
	// An overflowing line has no leftover to distribute; offsets pack from
	// the start regardless of the justify mode.
	items := uniformItems(2)
	lp := makeLine(items, []float64{300, 300}, 0)
	justifyLine(lp, NewConstraints(400, 0), Config{Justify: JustifyCenter})
	if got := lp.line.Items[0].MainOffset; !almostEqual(got, 0) {
		t.Errorf("item 0 offset: got %v, want 0", got)
	}
}

func TestAlignItemsModes(t *testing.T) {
	tests := []struct {
		name       string
		align      AlignItem
		wantOffset float64
		wantExtent float64
	}{
		{"start", AlignItemStart, 0, 40},
		{"end", AlignItemEnd, 60, 40},
		{"center", AlignItemCenter, 30, 40},
		{"stretch", AlignItemStretch, 0, 100},
		{"baseline", AlignItemBaseline, 60, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := uniformItems(2)
			lp := makeLine(items, []float64{100, 100}, 0)
			lp.line.Items[0].CrossExtent = 40
			lp.line.Items[1].CrossExtent = 100
			lp.line.CrossExtent = 100

			alignItems(lp, Config{}, tt.align)

			if got := lp.line.Items[0].CrossOffset; !almostEqual(got, tt.wantOffset) {
				t.Errorf("offset: got %v, want %v", got, tt.wantOffset)
			}
			if got := lp.line.Items[0].CrossExtent; !almostEqual(got, tt.wantExtent) {
				t.Errorf("extent: got %v, want %v", got, tt.wantExtent)
			}
		})
	}
}

func TestAlignSelfOverridesContainer(t *testing.T) {
	items := uniformItems(2)
	items[0].AlignSelf = AlignItemEnd
	lp := makeLine(items, []float64{100, 100}, 0)
	lp.line.Items[0].CrossExtent = 40
	lp.line.CrossExtent = 100

	alignItems(lp, Config{}, AlignItemStart)

	if got := lp.line.Items[0].CrossOffset; !almostEqual(got, 60) {
		t.Errorf("align-self end: got offset %v, want 60", got)
	}
	if got := lp.line.Items[1].CrossOffset; !almostEqual(got, 0) {
		t.Errorf("container-aligned item: got offset %v, want 0", got)
	}
}

func TestAlignItemsStretchRespectsMaxCross(t *testing.T) {
	items := uniformItems(1)
	items[0].MaxCross = 70
	lp := makeLine(items, []float64{100}, 0)
	lp.line.Items[0].CrossExtent = 40
	lp.line.CrossExtent = 100

	alignItems(lp, Config{}, AlignItemStretch)

	if got := lp.line.Items[0].CrossExtent; !almostEqual(got, 70) {
		t.Errorf("stretched past max cross: got %v, want 70", got)
	}
}

func TestAlignBaselineVerticalIsNoop(t *testing.T) {
	items := uniformItems(1)
	lp := makeLine(items, []float64{100}, 0)
	lp.line.Items[0].CrossExtent = 40
	lp.line.CrossExtent = 100

	alignItems(lp, Config{Direction: Column}, AlignItemBaseline)

	if got := lp.line.Items[0].CrossOffset; !almostEqual(got, 0) {
		t.Errorf("vertical baseline: got offset %v, want 0", got)
	}
}

func TestAlignContentModes(t *testing.T) {
	build := func() []linePass {
		a := makeLine(uniformItems(1), []float64{100}, 0)
		a.line.CrossExtent = 100
		b := makeLine(uniformItems(1), []float64{100}, 0)
		b.line.CrossExtent = 100
		return []linePass{a, b}
	}

	tests := []struct {
		name        string
		align       AlignContent
		wantOffsets []float64
	}{
		{"start", AlignContentStart, []float64{0, 100}},
		{"end", AlignContentEnd, []float64{200, 300}},
		{"center", AlignContentCenter, []float64{100, 200}},
		{"space between", AlignContentSpaceBetween, []float64{0, 300}},
		{"space around", AlignContentSpaceAround, []float64{50, 250}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			passes := build()
			alignContent(passes, NewConstraints(500, 400), Config{AlignContent: tt.align})
			for i, want := range tt.wantOffsets {
				if got := passes[i].line.CrossOffset; !almostEqual(got, want) {
					t.Errorf("line %d offset: got %v, want %v", i, got, want)
				}
			}
		})
	}
}

func TestAlignContentStretchProportional(t *testing.T) {
	a := makeLine(uniformItems(1), []float64{100}, 0)
	a.line.CrossExtent = 100
	b := makeLine(uniformItems(1), []float64{100}, 0)
	b.line.CrossExtent = 300
	passes := []linePass{a, b}

	total := alignContent(passes, NewConstraints(500, 600), Config{AlignContent: AlignContentStretch})

	// 200 of leftover split 1:3 across the lines.
	if got := a.line.CrossExtent; !almostEqual(got, 150) {
		t.Errorf("line 0 extent: got %v, want 150", got)
	}
	if got := b.line.CrossExtent; !almostEqual(got, 450) {
		t.Errorf("line 1 extent: got %v, want 450", got)
	}
	if !almostEqual(total, 600) {
		t.Errorf("total cross: got %v, want 600", total)
	}
}

func TestAlignContentWrapReverse(t *testing.T) {
	a := makeLine(uniformItems(1), []float64{100}, 0)
	a.line.CrossExtent = 100
	b := makeLine(uniformItems(1), []float64{100}, 0)
	b.line.CrossExtent = 200
	passes := []linePass{a, b}

	alignContent(passes, NewConstraints(500, 0), Config{Wrap: WrapReverse})

	if got := b.line.CrossOffset; !almostEqual(got, 0) {
		t.Errorf("last line should stack first: got offset %v", got)
	}
	if got := a.line.CrossOffset; !almostEqual(got, 200) {
		t.Errorf("first line should stack last: got offset %v", got)
	}
}
