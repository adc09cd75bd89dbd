package layout

import "math"

// distribute makes a line's content exactly fill (grow) or exactly fit
// (shrink) the main-axis limit, honoring per-item min/max via a
// freeze-and-retry loop.
//
// When neither case applies (zero grow total with free space, zero shrink
// total with overflow) the raw sizes stand and the line over- or underflows
// the container. That mirrors CSS flexbox and is not an error.
func distribute(lp linePass, limit float64) {
	if math.IsInf(limit, 1) {
		return
	}
	line := lp.line
	switch {
	case line.MainExtent < limit && line.TotalFlexGrow > 0:
		distributeFree(lp, limit, true)
	case line.MainExtent > limit && line.TotalFlexShrink > 0:
		distributeFree(lp, limit, false)
	}
}

// distributeFree runs the iterative distribution. Each pass either finishes
// or freezes at least one item at its clamp, so the loop is bounded by the
// number of items in the line.
//
// Grow shares are rounded to the nearest integer unit per item, with the
// rounding remainder carried onto the next unfrozen item and the terminal
// carry absorbed by the last, so the line sums to the limit exactly.
func distributeFree(lp linePass, limit float64, grow bool) {
	line := lp.line
	res := line.Items

	// Distribution starts from the hypothetical sizes computed by the line
	// breaker. base holds the current size of every item.
	base := make([]float64, len(res))
	frozen := make([]bool, len(res))
	for i := range res {
		base[i] = res[i].MainExtent
	}

	factor := func(i int) float64 {
		if grow {
			return lp.items[i].FlexGrow
		}
		return lp.items[i].FlexShrink
	}

	// Items with a zero factor never move.
	for i := range res {
		if factor(i) == 0 {
			frozen[i] = true
		}
	}

	spacing := line.MainExtent
	for i := range res {
		spacing -= base[i]
	}

	for {
		var totalFactor, fixed float64
		last := -1
		for i := range res {
			if frozen[i] {
				fixed += base[i]
				continue
			}
			totalFactor += factor(i)
			last = i
		}
		if last < 0 || totalFactor == 0 {
			break
		}

		free := limit - spacing - fixed
		for i := range res {
			if !frozen[i] {
				free -= base[i]
			}
		}
		if (grow && free <= 0) || (!grow && free >= 0) {
			break
		}

		// Ideal target per unfrozen item, rounded to the nearest unit with
		// the remainder carried forward; the last unfrozen item takes
		// whatever exactly closes the line.
		targets := make([]float64, len(res))
		var carry, used float64
		for i := range res {
			if frozen[i] {
				continue
			}
			if i == last {
				targets[i] = base[i] + (free - used)
				continue
			}
			exact := base[i] + free*(factor(i)/totalFactor) + carry
			rounded := math.Round(exact)
			carry = exact - rounded
			targets[i] = rounded
			used += rounded - base[i]
		}

		// Clamp violations freeze the item at its bound and restart the
		// distribution over the remaining unfrozen items.
		violated := false
		for i := range res {
			if frozen[i] {
				continue
			}
			it := lp.items[i]
			clamped := clampMain(it, targets[i])
			if clamped != targets[i] {
				base[i] = clamped
				frozen[i] = true
				violated = true
			}
		}
		if violated {
			continue
		}

		for i := range res {
			if !frozen[i] {
				base[i] = targets[i]
			}
		}
		break
	}

	total := spacing
	for i := range res {
		res[i].MainExtent = base[i]
		res[i].Frozen = frozen[i] && factor(i) != 0
		total += base[i]
	}
	line.MainExtent = total
}
