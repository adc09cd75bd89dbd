package layout

import "math"

// justifyLine assigns main-axis offsets to a line's items from the line's
// leftover space (limit minus content, clamped at zero). Offsets are
// container-relative along the main axis.
func justifyLine(lp linePass, cons Constraints, cfg Config) {
	line := lp.line
	n := len(line.Items)
	if n == 0 {
		return
	}

	free := 0.0
	containerMain := line.MainExtent
	if cons.HasMainLimit() {
		containerMain = cons.MainLimit
		if f := cons.MainLimit - line.MainExtent; f > 0 {
			free = f
		}
	}

	var offset, between float64
	switch cfg.Justify {
	case JustifyStart:
	case JustifyEnd:
		offset = free
	case JustifyCenter:
		offset = free / 2
	case JustifySpaceBetween:
		if n > 1 {
			between = free / float64(n-1)
		}
	case JustifySpaceAround:
		between = free / float64(n)
		offset = between / 2
	case JustifySpaceEvenly:
		between = free / float64(n+1)
		offset = between
	}

	pos := offset
	for i := range line.Items {
		line.Items[i].MainOffset = pos
		pos += line.Items[i].MainExtent + between + cfg.MainAxisSpacing
	}

	// Reverse directions mirror each item's offset across the container.
	if cfg.Direction.Reversed() {
		for i := range line.Items {
			it := &line.Items[i]
			it.MainOffset = containerMain - it.MainOffset - it.MainExtent
		}
	}
}

// alignContent sizes and positions the lines inside the container's cross
// extent. Under AlignContentStretch every line's cross extent grows
// proportionally to fill the leftover space. WrapReverse stacks the lines
// end-to-start.
//
// An infinite cross limit short-circuits everything to plain stacking.
func alignContent(passes []linePass, cons Constraints, cfg Config) float64 {
	n := len(passes)
	if n == 0 {
		return 0
	}

	spacing := cfg.CrossAxisSpacing
	total := spacing * float64(n-1)
	for _, lp := range passes {
		total += lp.line.CrossExtent
	}

	free := 0.0
	if cons.HasCrossLimit() {
		if f := cons.CrossLimit - total; f > 0 {
			free = f
		}
	}

	var offset, between float64
	switch cfg.AlignContent {
	case AlignContentStart:
	case AlignContentEnd:
		offset = free
	case AlignContentCenter:
		offset = free / 2
	case AlignContentSpaceBetween:
		if n > 1 {
			between = free / float64(n-1)
		}
	case AlignContentSpaceAround:
		between = free / float64(n)
		offset = between / 2
	case AlignContentStretch:
		if free > 0 && total > 0 {
			content := total - spacing*float64(n-1)
			for _, lp := range passes {
				lp.line.CrossExtent += free * (lp.line.CrossExtent / content)
			}
			total += free
			free = 0
		}
	}

	order := passes
	if cfg.Wrap == WrapReverse {
		order = make([]linePass, n)
		for i := range passes {
			order[n-1-i] = passes[i]
		}
	}

	pos := offset
	for _, lp := range order {
		lp.line.CrossOffset = pos
		pos += lp.line.CrossExtent + between + spacing
	}
	return total
}

// alignItems assigns each item's cross offset inside its line, honoring a
// per-item AlignSelf override. Offsets are line-relative; an item's absolute
// cross position is line.CrossOffset + item.CrossOffset.
//
// Baseline alignment applies only when the main axis is horizontal and falls
// back to start placement otherwise.
func alignItems(lp linePass, cfg Config, containerAlign AlignItem) {
	line := lp.line

	// The line's max cross extent doubles as its baseline: items expose no
	// intrinsic baseline, so the bottom edge serves as one.
	baseline := 0.0
	for i := range line.Items {
		if b := line.Items[i].CrossExtent; b > baseline {
			baseline = b
		}
	}

	for i := range line.Items {
		it := lp.items[i]
		res := &line.Items[i]

		align := it.AlignSelf
		if align == AlignItemAuto {
			align = containerAlign
		}

		switch align {
		case AlignItemStart:
			res.CrossOffset = 0
		case AlignItemEnd:
			res.CrossOffset = line.CrossExtent - res.CrossExtent
		case AlignItemCenter:
			res.CrossOffset = (line.CrossExtent - res.CrossExtent) / 2
		case AlignItemStretch:
			res.CrossOffset = 0
			if !math.IsInf(line.CrossExtent, 1) {
				res.CrossExtent = clampCross(it, line.CrossExtent)
			}
		case AlignItemBaseline:
			if cfg.Direction.MainAxis() == AxisHorizontal {
				res.CrossOffset = baseline - res.CrossExtent
			} else {
				res.CrossOffset = 0
			}
		default:
			res.CrossOffset = 0
		}
	}
}
