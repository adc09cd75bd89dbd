package layout

import (
	"math"
	"testing"
)

const tol = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tol
}

// makeLine builds a linePass with the given raw main extents and spacing.
func makeLine(items []Item, mains []float64, spacing float64) linePass {
	lp := linePass{line: &Line{FirstIndex: 0, LastIndex: len(items) - 1}}
	for i := range items {
		it := &items[i]
		if i > 0 {
			lp.line.MainExtent += spacing
		}
		lp.line.MainExtent += mains[i]
		lp.line.TotalFlexGrow += it.FlexGrow
		lp.line.TotalFlexShrink += it.FlexShrink
		lp.line.Items = append(lp.line.Items, ResolvedItem{Index: it.Index, MainExtent: mains[i], CrossExtent: 50})
		lp.items = append(lp.items, it)
	}
	return lp
}

func mainExtents(lp linePass) []float64 {
	out := make([]float64, len(lp.line.Items))
	for i := range lp.line.Items {
		out[i] = lp.line.Items[i].MainExtent
	}
	return out
}

func TestDistributeGrow(t *testing.T) {
	items := []Item{
		{Index: 0, FlexGrow: 1},
		{Index: 1, FlexGrow: 3},
	}
	lp := makeLine(items, []float64{50, 50}, 0)
	distribute(lp, 260)

	got := mainExtents(lp)
	want := []float64{90, 170}
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Errorf("item %d: got %v, want %v", i, got[i], want[i])
		}
	}
	if !almostEqual(lp.line.MainExtent, 260) {
		t.Errorf("line extent %v, want 260", lp.line.MainExtent)
	}
}

func TestDistributeShrink(t *testing.T) {
	items := []Item{
		{Index: 0, FlexShrink: 1},
		{Index: 1, FlexShrink: 1},
	}
	lp := makeLine(items, []float64{200, 200}, 0)
	distribute(lp, 300)

	got := mainExtents(lp)
	for i, w := range []float64{150, 150} {
		if !almostEqual(got[i], w) {
			t.Errorf("item %d: got %v, want %v", i, got[i], w)
		}
	}
	if !almostEqual(lp.line.MainExtent, 300) {
		t.Errorf("line extent %v, want 300", lp.line.MainExtent)
	}
}

func TestDistributeGrowFreezesAtMax(t *testing.T) {
	items := []Item{
		{Index: 0, FlexGrow: 1, MaxMain: 60},
		{Index: 1, FlexGrow: 1},
	}
	lp := makeLine(items, []float64{50, 50}, 0)
	distribute(lp, 300)

	got := mainExtents(lp)
	if !almostEqual(got[0], 60) {
		t.Errorf("clamped item: got %v, want 60", got[0])
	}
	if !almostEqual(got[1], 240) {
		t.Errorf("unfrozen item: got %v, want 240", got[1])
	}
	if !lp.line.Items[0].Frozen {
		t.Error("item 0 should be frozen at its max")
	}
	if lp.line.Items[1].Frozen {
		t.Error("item 1 should not be frozen")
	}
	if !almostEqual(lp.line.MainExtent, 300) {
		t.Errorf("line extent %v, want 300", lp.line.MainExtent)
	}
}

func TestDistributeShrinkFreezesAtMin(t *testing.T) {
	items := []Item{
		{Index: 0, FlexShrink: 1, MinMain: 180},
		{Index: 1, FlexShrink: 1},
	}
	lp := makeLine(items, []float64{200, 200}, 0)
	distribute(lp, 250)

	got := mainExtents(lp)
	if !almostEqual(got[0], 180) {
		t.Errorf("clamped item: got %v, want 180", got[0])
	}
	if !almostEqual(got[1], 70) {
		t.Errorf("unfrozen item: got %v, want 70", got[1])
	}
	if !almostEqual(lp.line.MainExtent, 250) {
		t.Errorf("line extent %v, want 250", lp.line.MainExtent)
	}
}

func TestDistributeShrinkImplicitZeroFloor(t *testing.T) {
	items := []Item{
		{Index: 0, FlexShrink: 10},
		{Index: 1, FlexShrink: 1},
	}
	lp := makeLine(items, []float64{100, 100}, 0)
	distribute(lp, 60)

	got := mainExtents(lp)
	if got[0] < 0 || got[1] < 0 {
		t.Errorf("negative extents: %v", got)
	}
	if !almostEqual(got[0]+got[1], 60) {
		t.Errorf("sum %v, want 60", got[0]+got[1])
	}
}

func TestDistributeNoFactorsLeavesOverflow(t *testing.T) {
	items := []Item{{Index: 0}, {Index: 1}}
	lp := makeLine(items, []float64{200, 200}, 0)
	distribute(lp, 100)

	if !almostEqual(lp.line.MainExtent, 400) {
		t.Errorf("overflowing line was resized to %v", lp.line.MainExtent)
	}

	lp2 := makeLine(items, []float64{20, 20}, 0)
	distribute(lp2, 100)
	if !almostEqual(lp2.line.MainExtent, 40) {
		t.Errorf("underflowing line was resized to %v", lp2.line.MainExtent)
	}
}

func TestDistributeInfiniteLimitIsNoop(t *testing.T) {
	items := []Item{{Index: 0, FlexGrow: 1}}
	lp := makeLine(items, []float64{50}, 0)
	distribute(lp, math.Inf(1))
	if !almostEqual(lp.line.Items[0].MainExtent, 50) {
		t.Errorf("item grew under infinite limit: %v", lp.line.Items[0].MainExtent)
	}
}

// Rounding must never accumulate: the line sums exactly to the limit even
// when the weighted shares are irrational fractions of the free space.
func TestDistributeExactSumWithRounding(t *testing.T) {
	items := []Item{
		{Index: 0, FlexGrow: 1},
		{Index: 1, FlexGrow: 1},
		{Index: 2, FlexGrow: 1},
	}
	lp := makeLine(items, []float64{10, 10, 10}, 5)
	distribute(lp, 141)

	sum := 5.0 * 2 // interior spacing
	for _, it := range lp.line.Items {
		sum += it.MainExtent
	}
	if sum != 141 {
		t.Errorf("sum %v, want exactly 141", sum)
	}
	if lp.line.MainExtent != 141 {
		t.Errorf("line extent %v, want exactly 141", lp.line.MainExtent)
	}
	// Non-terminal shares land on whole units.
	for i := 0; i < 2; i++ {
		w := lp.line.Items[i].MainExtent
		if w != math.Trunc(w) {
			t.Errorf("item %d extent %v not rounded to a unit", i, w)
		}
	}
}

// Monotonicity: raising one item's grow factor never decreases its extent.
func TestDistributeGrowMonotonic(t *testing.T) {
	prev := -1.0
	for _, g := range []float64{0.5, 1, 2, 4, 8} {
		items := []Item{
			{Index: 0, FlexGrow: g},
			{Index: 1, FlexGrow: 2},
		}
		lp := makeLine(items, []float64{50, 50}, 0)
		distribute(lp, 500)
		got := lp.line.Items[0].MainExtent
		if got < prev {
			t.Errorf("grow=%v: extent %v decreased from %v", g, got, prev)
		}
		prev = got
	}
}

// Freeze correctness across random-ish configurations: no resolved extent
// may violate its clamps.
func TestDistributeRespectsClamps(t *testing.T) {
	items := []Item{
		{Index: 0, FlexGrow: 1, FlexShrink: 1, MinMain: 40, MaxMain: 80},
		{Index: 1, FlexGrow: 2, FlexShrink: 3, MinMain: 10, MaxMain: 400},
		{Index: 2, FlexGrow: 5, FlexShrink: 1, MaxMain: 120},
	}
	for _, limit := range []float64{60, 150, 240, 500, 900} {
		lp := makeLine(items, []float64{60, 60, 60}, 10)
		distribute(lp, limit)
		for i, ri := range lp.line.Items {
			it := lp.items[i]
			if ri.MainExtent < it.MinMain-tol {
				t.Errorf("limit %v item %d: extent %v below min %v", limit, i, ri.MainExtent, it.MinMain)
			}
			if max := maxMainOf(it); ri.MainExtent > max+tol {
				t.Errorf("limit %v item %d: extent %v above max %v", limit, i, ri.MainExtent, max)
			}
		}
	}
}
