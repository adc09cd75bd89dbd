package window

import (
	"math"
	"time"
)

// newTimer starts the debounce. The timer goroutine takes the session lock,
// so a Stop that loses the race is harmless: the flush sees an empty
// pending set and does nothing.
func (s *Session) newTimer() *time.Timer {
	return time.AfterFunc(s.cfg.DebounceDuration, func() {
		s.mu.Lock()
		if s.disposed {
			s.mu.Unlock()
			return
		}
		relayout := s.flushLocked()
		s.mu.Unlock()
		if relayout != nil {
			relayout()
		}
	})
}

// Record feeds a (re-)measured aspect ratio for item i into the session.
//
// The new ratio is compared against the last accepted one (falling back to
// whatever the source reported, which is what any cached row was built
// from). A drift at or below the threshold withdraws any pending change for
// the index and otherwise leaves all state unchanged.
// Beyond it the index joins the pending dirty set and the debounce restarts;
// when the debounce elapses with no further changes the whole batch is
// applied atomically: ratios are accepted, every row containing a dirty
// index is evicted, and a single relayout is requested.
func (s *Session) Record(i int, ratio float64) {
	if i < 0 || ratio <= 0 {
		return
	}
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}

	baseline, known := s.accepted[i]
	if !known {
		baseline, known = s.src.AspectRatio(i)
	}
	if known && math.Abs(ratio-baseline) <= s.cfg.AspectRatioChangeThreshold {
		// Last write wins: a measurement that reverted to the baseline
		// withdraws any pending change for the index. An empty batch has
		// nothing left to debounce.
		delete(s.pending, i)
		if len(s.pending) == 0 && s.timer != nil {
			s.timer.Stop()
			s.timer = nil
		}
		s.mu.Unlock()
		return
	}

	s.pending[i] = ratio
	if s.cfg.DebounceDuration == 0 {
		relayout := s.flushLocked()
		s.mu.Unlock()
		if relayout != nil {
			relayout()
		}
		return
	}

	// A newer pending change supersedes the running debounce: last write
	// wins, nothing queues behind it.
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = s.newTimer()
	s.mu.Unlock()
}

// flushLocked applies the pending batch. It returns the relayout callback
// to invoke once the lock has been released, or nil when there was nothing
// to do. Caller must hold s.mu.
func (s *Session) flushLocked() func() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if len(s.pending) == 0 {
		return nil
	}

	first := -1
	for i, r := range s.pending {
		s.accepted[i] = r
		if first < 0 || i < first {
			first = i
		}
	}
	s.pending = make(map[int]float64)

	// Evicting from the earliest dirty row keeps every earlier row and its
	// offsets intact.
	s.index.InvalidateFrom(first)
	return s.relayout
}

// SetViewportWidth reports a viewport cross-axis extent change. A change
// beyond the configured threshold bypasses debouncing entirely: every row's
// geometry is width-dependent, so the whole cache is cleared and a relayout
// requested immediately. Any pending per-item batch is folded in on the
// way.
func (s *Session) SetViewportWidth(width float64) {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	if math.Abs(width-s.index.Width()) <= s.cfg.CrossExtentChangeThreshold {
		s.mu.Unlock()
		return
	}

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	for i, r := range s.pending {
		s.accepted[i] = r
	}
	s.pending = make(map[int]float64)

	s.index.SetWidth(width)
	relayout := s.relayout
	s.mu.Unlock()
	if relayout != nil {
		relayout()
	}
}

// Flush applies any pending batch immediately, without waiting for the
// debounce. Hosts call it on teardown-adjacent paths where waiting makes no
// sense.
func (s *Session) Flush() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	relayout := s.flushLocked()
	s.mu.Unlock()
	if relayout != nil {
		relayout()
	}
}
