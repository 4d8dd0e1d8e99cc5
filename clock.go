package cartomorph

import "time"

// defaultForward is the forward morph duration used when a session does
// not specify one.
const defaultForward = 5 * time.Second

// Clock produces an oscillating animation value t in [0,1] over wall-clock
// time: an initial delay of half the forward duration, then an eased
// progression 0 to 1 over the forward duration, then the reverse leg back
// to 0, repeating indefinitely.
//
// Clock is independent of rendering; callers sample T whenever they need
// the current value. Start and Cancel reset all state, so a cancelled and
// restarted clock begins again from the initial delay.
type Clock struct {
	forward time.Duration
	ease    CubicBezier
	now     func() time.Time

	running bool
	started time.Time
}

// NewClock creates a clock with the given forward duration. A non-positive
// duration falls back to the default. The now function is the time source;
// nil means time.Now. Injecting a manual time source makes frame sequences
// deterministic in tests.
func NewClock(forward time.Duration, now func() time.Time) *Clock {
	if forward <= 0 {
		forward = defaultForward
	}
	if now == nil {
		now = time.Now
	}
	return &Clock{
		forward: forward,
		ease:    EaseInOut,
		now:     now,
	}
}

// Start begins (or restarts) the cycle from the initial delayed state.
func (c *Clock) Start() {
	c.started = c.now()
	c.running = true
}

// Cancel stops the clock deterministically. A cancelled clock reports 0
// until started again.
func (c *Clock) Cancel() {
	c.running = false
}

// Running reports whether the clock has been started and not cancelled.
func (c *Clock) Running() bool { return c.running }

// T returns the current animation value in [0,1].
func (c *Clock) T() float64 {
	if !c.running {
		return 0
	}
	elapsed := c.now().Sub(c.started)
	delay := c.forward / 2
	if elapsed < delay {
		return 0
	}
	elapsed -= delay
	cycle := elapsed % (2 * c.forward)
	if cycle < c.forward {
		return c.ease.Ease(float64(cycle) / float64(c.forward))
	}
	return c.ease.Ease(1 - float64(cycle-c.forward)/float64(c.forward))
}
