package window

// Collector is the child lifecycle policy: it decides which off-window
// items the host may release. The engine never owns host children, so
// "release" is purely advisory.
type Collector struct {
	// Margin widens the viewport by this much scroll distance on each side
	// before anything is considered releasable.
	Margin float64
}

// sweep walks the materialized rows and collects the indices of items in
// rows lying entirely outside [offset-Margin, offset+extent+Margin].
// Items never materialized are not reported; the host holds nothing for
// them yet.
func (c Collector) sweep(x *Index, offset, extent float64) []int {
	lo := offset - c.Margin
	hi := offset + extent + c.Margin

	var out []int
	for _, r := range x.Rows() {
		if r.End() > lo && r.Offset < hi {
			continue
		}
		for i := r.Line.FirstIndex; i <= r.Line.LastIndex; i++ {
			out = append(out, i)
		}
	}
	return out
}
