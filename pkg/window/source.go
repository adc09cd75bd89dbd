// Package window provides windowed (virtualized) layout over a potentially
// unbounded item sequence: rows are materialized lazily as the viewport
// reaches them, cached, and invalidated in bounded regions when an item's
// measured shape changes after the fact.
package window

// Source supplies items to a windowed layout. The engine polls it through
// this contract and keeps no references to the host's item objects.
type Source interface {
	// Len returns the number of items, or a negative value while the
	// sequence is unbounded or its length is not yet known.
	Len() int

	// AspectRatio reports the aspect ratio (width / height) of the item at
	// index. ok is false while the ratio is not yet known; strategies then
	// substitute their configured default.
	AspectRatio(index int) (ratio float64, ok bool)
}

// SliceSource adapts a fixed ratio slice as a Source. Zero entries read as
// "not yet known".
type SliceSource []float64

func (s SliceSource) Len() int { return len(s) }

func (s SliceSource) AspectRatio(i int) (float64, bool) {
	if i < 0 || i >= len(s) || s[i] <= 0 {
		return 0, false
	}
	return s[i], true
}

// FuncSource adapts a pair of closures as a Source, for hosts whose items
// live behind callbacks.
type FuncSource struct {
	LenFunc   func() int
	RatioFunc func(index int) (float64, bool)
}

func (f FuncSource) Len() int {
	if f.LenFunc == nil {
		return -1
	}
	return f.LenFunc()
}

func (f FuncSource) AspectRatio(i int) (float64, bool) {
	if f.RatioFunc == nil {
		return 0, false
	}
	return f.RatioFunc(i)
}
