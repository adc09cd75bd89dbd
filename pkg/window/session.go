package window

import (
	"fmt"
	"sync"
	"time"
)

// Config is the configuration surface of a windowed layout session. Only
// Strategy is required.
type Config struct {
	// Strategy builds rows; selected once for the session's lifetime.
	Strategy RowStrategy

	// RowSpacing is the gap between rows along the scroll axis.
	RowSpacing float64

	// AspectRatioChangeThreshold is the drift a re-measured ratio must
	// exceed before the change is applied. Zero applies every change.
	AspectRatioChangeThreshold float64

	// CrossExtentChangeThreshold is the viewport width drift that triggers
	// a full cache clear. Width changes at or below it are ignored.
	CrossExtentChangeThreshold float64

	// DebounceDuration is how long accepted ratio changes are batched
	// before a single relayout is requested. Zero flushes immediately.
	DebounceDuration time.Duration
}

func (c Config) validate() error {
	if c.Strategy == nil {
		return fmt.Errorf("window: config needs a row strategy")
	}
	if err := c.Strategy.Validate(); err != nil {
		return err
	}
	if c.RowSpacing < 0 {
		return fmt.Errorf("window: negative row spacing %v", c.RowSpacing)
	}
	if c.AspectRatioChangeThreshold < 0 {
		return fmt.Errorf("window: negative aspect ratio threshold %v", c.AspectRatioChangeThreshold)
	}
	if c.CrossExtentChangeThreshold < 0 {
		return fmt.Errorf("window: negative cross extent threshold %v", c.CrossExtentChangeThreshold)
	}
	if c.DebounceDuration < 0 {
		return fmt.Errorf("window: negative debounce duration %v", c.DebounceDuration)
	}
	return nil
}

// Session is a windowed layout owned by the host. It serializes all access
// to the index and measurement state: the debounce timer fires on its own
// goroutine, so unlike one pass of the core pipeline the session is safe
// for concurrent use.
//
// Dispose cancels any pending debounce; a session holds no other resources.
type Session struct {
	mu  sync.Mutex
	cfg Config
	src Source

	index    *Index
	relayout func()

	// accepted is the per-index aspect ratio cache: entries appear on first
	// accepted measurement and are overwritten only when a change beats the
	// drift threshold and the debounce has elapsed.
	accepted map[int]float64
	pending  map[int]float64
	timer    *time.Timer
	disposed bool
}

// NewSession validates cfg and returns a session over src at the given
// viewport width. onRelayout is invoked (possibly from a timer goroutine)
// whenever cached geometry has been invalidated and the host must re-query;
// it may be nil.
func NewSession(cfg Config, src Source, width float64, onRelayout func()) (*Session, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("window: nil source")
	}
	s := &Session{
		cfg:      cfg,
		src:      src,
		relayout: onRelayout,
		accepted: make(map[int]float64),
		pending:  make(map[int]float64),
	}
	s.index = NewIndex(cfg.Strategy, sessionSource{s}, width, cfg.RowSpacing)
	return s, nil
}

// sessionSource overlays the session's accepted ratio cache on the host
// source. Only ever read under the session lock.
type sessionSource struct{ s *Session }

func (ss sessionSource) Len() int { return ss.s.src.Len() }

func (ss sessionSource) AspectRatio(i int) (float64, bool) {
	if r, ok := ss.s.accepted[i]; ok {
		return r, true
	}
	return ss.s.src.AspectRatio(i)
}

// IndexAtOffset answers "which item is at scroll offset".
func (s *Session) IndexAtOffset(offset float64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.IndexAtOffset(offset)
}

// OffsetOfIndex answers "what is the scroll offset of item i".
func (s *Session) OffsetOfIndex(i int) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.OffsetOfIndex(i)
}

// GeometryOf returns item i's placement.
func (s *Session) GeometryOf(i int) (Geometry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.GeometryOf(i)
}

// ScrollExtent returns the total scroll extent and whether it is exact yet.
func (s *Session) ScrollExtent() (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.ScrollExtent()
}

// Rows materializes rows covering the scroll band [offset, offset+extent]
// and returns copies of them, ready for the host to paint.
func (s *Session) Rows(offset, extent float64) []Row {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index.materializeTo(offset + extent)
	var out []Row
	for _, r := range s.index.Rows() {
		if r.End() <= offset {
			continue
		}
		if r.Offset >= offset+extent {
			break
		}
		out = append(out, r)
	}
	return out
}

// Sweep reports which materialized items fall entirely outside the viewport
// widened by the collector's margin, so the host may release them.
func (s *Session) Sweep(c Collector, offset, extent float64) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.sweep(s.index, offset, extent)
}

// Dispose cancels any pending debounce and discards pending dirty state.
// Queries after Dispose see the last materialized geometry but no further
// relayouts are requested.
func (s *Session) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disposed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.pending = nil
}

// AcceptedRatio returns the last accepted ratio for item i, if any. Useful
// to hosts implementing their own retry policy.
func (s *Session) AcceptedRatio(i int) (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.accepted[i]
	return r, ok
}
