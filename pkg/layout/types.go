package layout

import "math"

// Item is the per-item input to a layout pass. It is owned by the caller and
// never retained by the engine beyond the call that consumed it.
type Item struct {
	// Index is the item's position in the caller's sequence. Line geometry
	// refers back to items by this index.
	Index int

	// AspectRatio is main extent / cross extent. Used by ratio-driven
	// strategies; ignored when an explicit measure is supplied.
	AspectRatio float64

	// FlexGrow and FlexShrink are the CSS flex factors. Zero means the item
	// does not participate in grow/shrink distribution.
	FlexGrow   float64
	FlexShrink float64

	// Order reorders items before line breaking. Ties keep the original
	// sequence position (stable sort).
	Order int

	// MinMain and MaxMain clamp the item's main-axis extent. A MaxMain of
	// zero or less means "no maximum". MinCross/MaxCross behave the same on
	// the cross axis.
	MinMain, MaxMain   float64
	MinCross, MaxCross float64

	// AlignSelf overrides the container's AlignItems for this item.
	// AlignItemAuto defers to the container.
	AlignSelf AlignItem

	// WrapBefore forces this item onto a new line when the current line is
	// non-empty and wrapping is enabled.
	WrapBefore bool
}

// ResolvedItem is the per-item output of a layout pass. Recomputed every
// pass; never persisted by the engine.
type ResolvedItem struct {
	Index       int
	MainExtent  float64
	CrossExtent float64
	MainOffset  float64
	CrossOffset float64

	// Frozen records that the item hit a min/max clamp during grow/shrink
	// distribution and was excluded from further redistribution.
	Frozen bool
}

// Line is one run of items sharing a cross-axis band.
type Line struct {
	FirstIndex int
	LastIndex  int

	// MainExtent is the sum of the items' main extents plus interior
	// spacing. After distribution it equals the main-axis limit exactly
	// whenever the limit is finite and the line's flex totals permit.
	MainExtent float64

	// CrossExtent is the max of the items' cross extents, or the shared
	// stretched extent under AlignItemStretch.
	CrossExtent float64

	// CrossOffset is the line's offset inside the container, set by the
	// cross-axis aligner.
	CrossOffset float64

	TotalFlexGrow   float64
	TotalFlexShrink float64

	Items []ResolvedItem
}

// Layout is the output of a full layout pass. Owned by the caller; the
// engine retains no references into it.
type Layout struct {
	Lines []Line

	// MainExtent is the container's resolved main-axis extent.
	MainExtent float64

	// CrossExtent is the total cross-axis extent of all lines including
	// inter-line spacing. For a vertically scrolling row container this is
	// the scroll extent.
	CrossExtent float64
}

// ScrollExtent returns the extent of the layout along its scrolling axis,
// which for line-based layouts is the cross axis. Zero items yield zero.
func (l *Layout) ScrollExtent() float64 {
	return l.CrossExtent
}

// ItemCount returns the number of items placed across all lines.
func (l *Layout) ItemCount() int {
	n := 0
	for i := range l.Lines {
		n += len(l.Lines[i].Items)
	}
	return n
}

// Axis is a layout axis.
type Axis uint8

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// Direction is the direction in which items are laid out on the main axis.
type Direction uint8

const (
	Row Direction = iota
	RowReverse
	Column
	ColumnReverse
)

// MainAxis returns the axis items flow along for this direction.
func (d Direction) MainAxis() Axis {
	if d == Column || d == ColumnReverse {
		return AxisVertical
	}
	return AxisHorizontal
}

// Reversed reports whether main-axis placement runs end-to-start.
func (d Direction) Reversed() bool {
	return d == RowReverse || d == ColumnReverse
}

// FlexWrap controls whether the container is single- or multi-line, and the
// cross-axis order of the lines.
type FlexWrap uint8

const (
	NoWrap FlexWrap = iota
	Wrap
	WrapReverse
)

// Justify aligns items along the main axis within their line.
type Justify uint8

const (
	JustifyStart Justify = iota
	JustifyEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// AlignItem aligns items along the cross axis within their line. It is the
// container-wide policy when used as AlignItems, and the per-item override
// when used as Item.AlignSelf.
type AlignItem uint8

const (
	AlignItemAuto AlignItem = iota
	AlignItemStart
	AlignItemEnd
	AlignItemCenter
	AlignItemBaseline
	AlignItemStretch
)

// AlignContent aligns the lines themselves when the container has leftover
// cross-axis space and more than one line.
type AlignContent uint8

const (
	AlignContentStart AlignContent = iota
	AlignContentEnd
	AlignContentCenter
	AlignContentSpaceBetween
	AlignContentSpaceAround
	AlignContentStretch
)

// MeasureFunc measures the item at the given index under a main-axis limit.
// The limit may be +Inf for an unconstrained measure.
type MeasureFunc func(index int, mainLimit float64) (main, cross float64)

// maxMainOf returns the effective main-axis maximum for an item, mapping the
// "unset" zero value to +Inf.
func maxMainOf(it *Item) float64 {
	if it.MaxMain <= 0 {
		return math.Inf(1)
	}
	return it.MaxMain
}

// clampMain clamps a main extent to the item's min/max.
func clampMain(it *Item, v float64) float64 {
	if v < it.MinMain {
		v = it.MinMain
	}
	if max := maxMainOf(it); v > max {
		v = max
	}
	if v < 0 {
		v = 0
	}
	return v
}

// clampCross clamps a cross extent to the item's min/max. A MaxCross of zero
// or less means "no maximum".
func clampCross(it *Item, v float64) float64 {
	if v < it.MinCross {
		v = it.MinCross
	}
	if it.MaxCross > 0 && v > it.MaxCross {
		v = it.MaxCross
	}
	if v < 0 {
		v = 0
	}
	return v
}
