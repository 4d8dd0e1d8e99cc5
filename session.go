package cartomorph

import (
	"errors"
	"fmt"
	"time"
)

// FrameScheduler abstracts the host's frame-presentation primitive. The
// session requests at most one pending callback at a time; Cancel must
// guarantee that a previously requested callback never fires.
type FrameScheduler interface {
	Request(fn func())
	Cancel()
}

// SessionConfig carries everything a session needs. Features, Population,
// Width, and Surface are required; the rest default sensibly.
type SessionConfig struct {
	Width      int
	Features   []RawCountyFeature
	Population PopulationTable
	Surface    Surface

	// Scheduler drives the frame loop. Nil disables self-scheduling; the
	// host then calls Frame directly (one clock sample + one render pass).
	Scheduler FrameScheduler

	// Forward is the forward morph duration; zero means the default.
	Forward time.Duration

	// MaxRadius is the circle radius of the most populous county; zero
	// means DefaultMaxRadius.
	MaxRadius float64

	// Now is the clock's time source; nil means time.Now. Tests inject a
	// manual source for deterministic t sequences.
	Now func() time.Time
}

// Session owns one animation run: projection and viewport state, the
// prepared-county set, and the clock. Sessions are independent values;
// nothing in the package is shared between them.
type Session struct {
	cfg      SessionConfig
	proj     *Projection
	counties []*PreparedCounty
	clock    *Clock
	renderer Renderer
}

// NewSession builds the projection, prepares every county synchronously,
// and creates the clock in its stopped state. Call Start to begin
// animating.
func NewSession(cfg SessionConfig) (*Session, error) {
	if cfg.Width <= 0 {
		return nil, fmt.Errorf("session: invalid width %d", cfg.Width)
	}
	if len(cfg.Features) == 0 {
		return nil, errors.New("session: no features")
	}
	if cfg.Surface == nil {
		return nil, errors.New("session: nil surface")
	}
	s := &Session{cfg: cfg}
	s.rebuild(cfg.Width)
	return s, nil
}

// rebuild constructs projection, prepared set, and a fresh clock for the
// given viewport width. Any previous prepared state is discarded whole.
func (s *Session) rebuild(width int) {
	s.proj = NewProjection(width)
	s.counties = Prepare(s.cfg.Features, s.cfg.Population, s.proj, s.cfg.MaxRadius)
	s.clock = NewClock(s.cfg.Forward, s.cfg.Now)
	Logger().Debug("session prepared",
		"width", width, "height", s.proj.Height(), "counties", len(s.counties))
}

// Width returns the current viewport width.
func (s *Session) Width() int { return s.proj.Width() }

// Height returns the current viewport height (width times the fixed
// aspect ratio).
func (s *Session) Height() int { return s.proj.Height() }

// Counties returns the prepared-county set, ordered population descending.
// The slice and its records are read-only.
func (s *Session) Counties() []*PreparedCounty { return s.counties }

// T returns the clock's current animation value.
func (s *Session) T() float64 { return s.clock.T() }

// Start begins the clock and, when a scheduler is configured, arms the
// frame loop.
func (s *Session) Start() {
	s.clock.Start()
	if s.cfg.Scheduler != nil {
		s.cfg.Scheduler.Request(s.frameLoop)
	}
}

// frameLoop renders one frame and re-arms itself. The next callback is
// requested only after the render pass completes, so frames never overlap.
func (s *Session) frameLoop() {
	if !s.clock.Running() {
		return
	}
	if err := s.Frame(); err != nil {
		Logger().Warn("frame render failed", "err", err)
	}
	s.cfg.Scheduler.Request(s.frameLoop)
}

// Frame performs one render pass at the clock's current value.
func (s *Session) Frame() error {
	return s.renderer.Draw(s.cfg.Surface, s.counties, s.clock.T())
}

// Resize reacts to a host viewport change: it cancels any pending frame,
// discards the prepared set and clock state, rebuilds synchronously for
// the new width, then restarts the clock and re-arms scheduling. The
// optional surface replaces the current one (hosts typically recreate
// their drawing context at the new size).
func (s *Session) Resize(width int, surface Surface) error {
	if width <= 0 {
		return fmt.Errorf("session: invalid width %d", width)
	}
	if s.cfg.Scheduler != nil {
		s.cfg.Scheduler.Cancel()
	}
	s.clock.Cancel()
	if surface != nil {
		s.cfg.Surface = surface
	}
	s.cfg.Width = width
	s.rebuild(width)
	s.Start()
	return nil
}

// Close tears the session down: the pending frame is cancelled and the
// clock stopped. The prepared set is released with the session value.
func (s *Session) Close() {
	if s.cfg.Scheduler != nil {
		s.cfg.Scheduler.Cancel()
	}
	s.clock.Cancel()
}
