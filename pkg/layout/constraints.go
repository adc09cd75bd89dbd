package layout

import "math"

// Constraints packages the container limits for a layout pass.
// IMMUTABLE - create modified copies using the With* helpers instead of
// mutating, so a retry iteration never sees stale limits.
type Constraints struct {
	// MainLimit is the main-axis limit. +Inf means unconstrained, in which
	// case lines never wrap on overflow and grow/shrink is skipped.
	MainLimit float64

	// CrossLimit is the cross-axis limit. +Inf short-circuits stretch-based
	// sizing to "no constraint".
	CrossLimit float64
}

// Unconstrained returns constraints with no limit on either axis.
func Unconstrained() Constraints {
	return Constraints{MainLimit: math.Inf(1), CrossLimit: math.Inf(1)}
}

// NewConstraints returns constraints with the given limits. Values of zero
// or less are treated as unconstrained.
func NewConstraints(mainLimit, crossLimit float64) Constraints {
	c := Constraints{MainLimit: mainLimit, CrossLimit: crossLimit}
	if c.MainLimit <= 0 {
		c.MainLimit = math.Inf(1)
	}
	if c.CrossLimit <= 0 {
		c.CrossLimit = math.Inf(1)
	}
	return c
}

// HasMainLimit reports whether the main axis is finitely constrained.
func (c Constraints) HasMainLimit() bool {
	return !math.IsInf(c.MainLimit, 1)
}

// HasCrossLimit reports whether the cross axis is finitely constrained.
func (c Constraints) HasCrossLimit() bool {
	return !math.IsInf(c.CrossLimit, 1)
}

// WithMainLimit returns a copy with a different main-axis limit.
func (c Constraints) WithMainLimit(limit float64) Constraints {
	c.MainLimit = limit
	return c
}

// WithCrossLimit returns a copy with a different cross-axis limit.
func (c Constraints) WithCrossLimit(limit float64) Constraints {
	c.CrossLimit = limit
	return c
}
