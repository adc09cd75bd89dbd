package layout

import "fmt"

// Config is the container-level configuration for the flex pipeline. The
// zero value is a usable row container: no wrapping, start-packed, items
// stretched to the line.
type Config struct {
	Direction    Direction
	Wrap         FlexWrap
	Justify      Justify
	AlignItems   AlignItem
	AlignContent AlignContent

	// MainAxisSpacing and CrossAxisSpacing are the fixed gaps between items
	// in a line and between lines.
	MainAxisSpacing  float64
	CrossAxisSpacing float64

	// MaxLines caps how many lines the breaker produces; zero means
	// unlimited. Items past the cap run over onto the last line instead of
	// being dropped.
	MaxLines int
}

func (c Config) validate() error {
	if c.MainAxisSpacing < 0 {
		return fmt.Errorf("layout: negative main-axis spacing %v", c.MainAxisSpacing)
	}
	if c.CrossAxisSpacing < 0 {
		return fmt.Errorf("layout: negative cross-axis spacing %v", c.CrossAxisSpacing)
	}
	if c.MaxLines < 0 {
		return fmt.Errorf("layout: negative max lines %d", c.MaxLines)
	}
	return nil
}

// Engine runs the full flex pipeline: line breaking, main-axis distribution
// and cross-axis alignment. One layout pass is synchronous and runs to
// completion; the engine holds no state between passes.
type Engine struct {
	cfg Config
}

// NewEngine validates the configuration and returns an engine. A bad
// configuration is rejected here so it can never produce a partially
// computed layout.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Layout computes the geometry of items under the given constraints.
// measure supplies each item's unconstrained size and must be non-nil;
// ratio-only callers use the JustifiedPacker instead.
//
// Calling Layout twice with identical inputs yields identical geometry.
func (e *Engine) Layout(items []Item, measure MeasureFunc, cons Constraints) *Layout {
	if len(items) == 0 {
		return &Layout{}
	}

	passes := breakLines(sortByOrder(items), measure, cons, e.cfg)

	for _, lp := range passes {
		distribute(lp, cons.MainLimit)
	}

	// Container-wide AlignItemAuto means stretch, as in CSS.
	containerAlign := e.cfg.AlignItems
	if containerAlign == AlignItemAuto {
		containerAlign = AlignItemStretch
	}

	totalCross := alignContent(passes, cons, e.cfg)
	for _, lp := range passes {
		justifyLine(lp, cons, e.cfg)
		alignItems(lp, e.cfg, containerAlign)
	}

	out := &Layout{
		Lines:       make([]Line, len(passes)),
		CrossExtent: totalCross,
	}
	for i, lp := range passes {
		out.Lines[i] = *lp.line
		if lp.line.MainExtent > out.MainExtent {
			out.MainExtent = lp.line.MainExtent
		}
	}
	if cons.HasMainLimit() && cons.MainLimit > out.MainExtent {
		out.MainExtent = cons.MainLimit
	}
	return out
}
