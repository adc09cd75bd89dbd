package window

import (
	"sort"

	"mondrian/pkg/layout"
)

// Row is one materialized row: its line geometry plus its offset along the
// scroll axis.
type Row struct {
	Line   layout.Line
	Offset float64
}

// End returns the scroll offset just past the row.
func (r Row) End() float64 {
	return r.Offset + r.Line.CrossExtent
}

// Contains reports whether the row holds the item at index i.
func (r Row) Contains(i int) bool {
	return i >= r.Line.FirstIndex && i <= r.Line.LastIndex
}

// Geometry is the placement of a single item as seen by the host renderer.
// The main axis here is the scroll axis; the cross axis runs across the
// viewport.
type Geometry struct {
	ScrollOffset float64
	CrossOffset  float64
	MainExtent   float64
	CrossExtent  float64
}

// Index maps scroll offsets to item indices and back without materializing
// geometry beyond what queries have touched. Rows are built lazily forward
// from the last known boundary and cached; a cached row is never rebuilt
// unless explicitly invalidated.
//
// Index is not safe for concurrent use; Session serializes access to it.
type Index struct {
	strategy RowStrategy
	src      Source
	width    float64
	spacing  float64

	rows   []Row
	next   int     // first item not covered by a cached row
	extent float64 // scroll extent of cached rows including spacing
	done   bool    // source end reached; extent is exact
}

// NewIndex returns an index over src using the given row strategy, viewport
// width and inter-row spacing.
func NewIndex(strategy RowStrategy, src Source, width, rowSpacing float64) *Index {
	return &Index{strategy: strategy, src: src, width: width, spacing: rowSpacing}
}

// extend materializes one more row. It reports whether a row was added.
func (x *Index) extend() bool {
	if x.done {
		return false
	}
	line, next, ok := x.strategy.NextRow(x.src, x.next, x.width)
	if !ok || next == x.next {
		x.done = true
		return false
	}
	offset := x.extent
	if len(x.rows) > 0 {
		offset += x.spacing
	}
	x.rows = append(x.rows, Row{Line: line, Offset: offset})
	x.extent = offset + line.CrossExtent
	x.next = next
	if n := x.src.Len(); n >= 0 && x.next >= n {
		x.done = true
	}
	return true
}

// materializeTo extends the cache until it covers the given scroll offset
// or the source ends.
func (x *Index) materializeTo(offset float64) {
	for x.extent <= offset && x.extend() {
	}
}

// materializeIndex extends the cache until item i is covered or the source
// ends.
func (x *Index) materializeIndex(i int) {
	for x.next <= i && x.extend() {
	}
}

// rowAt returns the position of the cached row covering the given offset,
// or the last cached row when the offset lies past the materialized end.
func (x *Index) rowAt(offset float64) int {
	// First row whose end lies beyond the offset.
	r := sort.Search(len(x.rows), func(i int) bool {
		return x.rows[i].End() > offset
	})
	if r == len(x.rows) {
		r--
	}
	return r
}

// IndexAtOffset returns the index of the first item in the row occupying
// the given scroll offset. Offsets past the end clamp to the last item's
// row; negative offsets clamp to the first.
func (x *Index) IndexAtOffset(offset float64) int {
	if offset < 0 {
		offset = 0
	}
	x.materializeTo(offset)
	if len(x.rows) == 0 {
		return 0
	}
	return x.rows[x.rowAt(offset)].Line.FirstIndex
}

// OffsetOfIndex returns the scroll offset of the row containing item i.
// Indices past the source end report the total extent.
func (x *Index) OffsetOfIndex(i int) float64 {
	if i < 0 {
		return 0
	}
	x.materializeIndex(i)
	r := sort.Search(len(x.rows), func(k int) bool {
		return x.rows[k].Line.LastIndex >= i
	})
	if r == len(x.rows) {
		return x.extent
	}
	return x.rows[r].Offset
}

// GeometryOf returns the placement of item i. ok is false when the source
// has no such item.
func (x *Index) GeometryOf(i int) (Geometry, bool) {
	if i < 0 {
		return Geometry{}, false
	}
	x.materializeIndex(i)
	r := sort.Search(len(x.rows), func(k int) bool {
		return x.rows[k].Line.LastIndex >= i
	})
	if r == len(x.rows) {
		return Geometry{}, false
	}
	row := x.rows[r]
	for _, it := range row.Line.Items {
		if it.Index == i {
			return Geometry{
				ScrollOffset: row.Offset + it.CrossOffset,
				CrossOffset:  it.MainOffset,
				MainExtent:   it.CrossExtent,
				CrossExtent:  it.MainExtent,
			}, true
		}
	}
	return Geometry{}, false
}

// ScrollExtent returns the container's total scroll extent. exact is true
// once the source end has been reached; before that the value is an
// estimate extrapolated from the average per-item extent seen so far and
// may move in either direction as more rows materialize. For an unbounded
// source the estimate is the materialized extent.
func (x *Index) ScrollExtent() (extent float64, exact bool) {
	if x.done {
		return x.extent, true
	}
	n := x.src.Len()
	if n < 0 || x.next == 0 {
		return x.extent, false
	}
	perItem := x.extent / float64(x.next)
	return x.extent + perItem*float64(n-x.next), false
}

// Rows returns the cached rows. The slice is shared; callers must treat it
// as read-only.
func (x *Index) Rows() []Row {
	return x.rows
}

// InvalidateFrom evicts the row containing item i and every row after it;
// their geometry depends on the evicted row's packing. Earlier rows and
// their offsets are untouched.
func (x *Index) InvalidateFrom(i int) {
	if i <= 0 {
		x.InvalidateAll()
		return
	}
	r := sort.Search(len(x.rows), func(k int) bool {
		return x.rows[k].Line.LastIndex >= i
	})
	if r == len(x.rows) {
		return // not materialized, nothing cached to evict
	}
	x.rows = x.rows[:r]
	x.done = false
	if r == 0 {
		x.next = 0
		x.extent = 0
		return
	}
	last := x.rows[r-1]
	x.next = last.Line.LastIndex + 1
	x.extent = last.End()
}

// InvalidateAll drops every cached row.
func (x *Index) InvalidateAll() {
	x.rows = nil
	x.next = 0
	x.extent = 0
	x.done = false
}

// SetWidth changes the viewport width. Every row's geometry is
// width-dependent, so the whole cache is dropped.
func (x *Index) SetWidth(w float64) {
	x.width = w
	x.InvalidateAll()
}

// Width returns the current viewport width.
func (x *Index) Width() float64 {
	return x.width
}
