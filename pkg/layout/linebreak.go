package layout

import "sort"

// linePass pairs a Line under construction with the items that produced it,
// so the distributor and aligner can reach min/max and flex factors without
// re-resolving indices. Pass-scoped; never escapes the engine.
type linePass struct {
	line  *Line
	items []*Item
}

// sortByOrder returns the items sorted by Order, ties broken by original
// sequence position. The input slice is not modified.
func sortByOrder(items []Item) []*Item {
	sorted := make([]*Item, len(items))
	for i := range items {
		sorted[i] = &items[i]
	}
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].Order < sorted[b].Order
	})
	return sorted
}

// breakLines partitions the ordered items into lines under the main-axis
// limit and wrap policy.
//
// Each item is measured at its unconstrained size, then clamped to its
// min/max to form the hypothetical main size used both for wrapping and as
// the starting point for grow/shrink distribution. A single item wider than
// the limit still gets its own line; shrinking it is the distributor's job.
//
// Once cfg.MaxLines lines exist, remaining items are appended to the last
// line and allowed to overflow rather than being dropped.
func breakLines(sorted []*Item, measure MeasureFunc, cons Constraints, cfg Config) []linePass {
	if len(sorted) == 0 {
		return nil
	}

	spacing := cfg.MainAxisSpacing
	wrapping := cfg.Wrap != NoWrap && cons.HasMainLimit()

	var passes []linePass
	var cur linePass

	flush := func() {
		if len(cur.items) == 0 {
			return
		}
		// Order may have shuffled items away from their original sequence,
		// so the index range is the min/max over the line, not its ends.
		cur.line.FirstIndex = cur.items[0].Index
		cur.line.LastIndex = cur.items[0].Index
		for _, it := range cur.items[1:] {
			if it.Index < cur.line.FirstIndex {
				cur.line.FirstIndex = it.Index
			}
			if it.Index > cur.line.LastIndex {
				cur.line.LastIndex = it.Index
			}
		}
		passes = append(passes, cur)
		cur = linePass{}
	}

	for _, it := range sorted {
		main, cross := measure(it.Index, cons.MainLimit)
		main = clampMain(it, main)
		cross = clampCross(it, cross)

		if cur.line != nil && wrapping {
			atCapacity := cfg.MaxLines > 0 && len(passes) == cfg.MaxLines-1
			if !atCapacity {
				overflows := cur.line.MainExtent+spacing+main > cons.MainLimit
				if it.WrapBefore || overflows {
					flush()
				}
			}
		}

		if cur.line == nil {
			cur.line = &Line{}
		}
		if len(cur.items) > 0 {
			cur.line.MainExtent += spacing
		}
		cur.line.MainExtent += main
		if cross > cur.line.CrossExtent {
			cur.line.CrossExtent = cross
		}
		cur.line.TotalFlexGrow += it.FlexGrow
		cur.line.TotalFlexShrink += it.FlexShrink
		cur.line.Items = append(cur.line.Items, ResolvedItem{
			Index:       it.Index,
			MainExtent:  main,
			CrossExtent: cross,
		})
		cur.items = append(cur.items, it)
	}
	flush()

	// WrapReverse is handled by the cross-axis aligner when line offsets are
	// assigned; line order stays ascending so index ranges remain contiguous.
	return passes
}
