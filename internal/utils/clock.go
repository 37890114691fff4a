package utils

import "time"

// FrameClock measures elapsed wall time in whole milliseconds and reports the
// frame rate through an injected probe. It can be paused.
// Not safe for concurrent use: ebiten calls Update and Draw from one goroutine.
type FrameClock struct {
	now         func() time.Time
	rate        func() float64
	nominal     float64
	start       time.Time
	pausedAt    time.Time
	pausedTotal time.Duration
	paused      bool
}

// NewFrameClock creates a clock that starts now. rate is typically ebiten.ActualTPS;
// nominal is returned while the measured rate is not positive.
func NewFrameClock(rate func() float64, nominal float64) *FrameClock {
	return newFrameClock(time.Now, rate, nominal)
}

func newFrameClock(now func() time.Time, rate func() float64, nominal float64) *FrameClock {
	return &FrameClock{
		now:     now,
		rate:    rate,
		nominal: nominal,
		start:   now(),
	}
}

func (c *FrameClock) ElapsedMillis() float64 {
	ref := c.now()
	if c.paused {
		ref = c.pausedAt
	}
	return float64((ref.Sub(c.start) - c.pausedTotal).Milliseconds())
}

func (c *FrameClock) FrameRate() float64 {
	if c.rate == nil {
		return c.nominal
	}
	if r := c.rate(); r > 0 {
		return r
	}
	return c.nominal
}

// Pause freezes ElapsedMillis until Resume.
func (c *FrameClock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = c.now()
}

func (c *FrameClock) Resume() {
	if !c.paused {
		return
	}
	c.pausedTotal += c.now().Sub(c.pausedAt)
	c.paused = false
}

func (c *FrameClock) Paused() bool {
	return c.paused
}

// ManualClock is advanced explicitly. Used for deterministic simulation runs.
type ManualClock struct {
	Millis float64
	Rate   float64
}

func NewManualClock(rate float64) *ManualClock {
	return &ManualClock{Rate: rate}
}

func (c *ManualClock) ElapsedMillis() float64 { return c.Millis }
func (c *ManualClock) FrameRate() float64     { return c.Rate }

// Advance moves the clock forward by ms milliseconds.
func (c *ManualClock) Advance(ms float64) {
	c.Millis += ms
}

// Set moves the clock to an absolute time.
func (c *ManualClock) Set(ms float64) {
	c.Millis = ms
}

// Delta returns the frame delta 1/FrameRate in seconds.
func (c *ManualClock) Delta() float64 {
	return 1.0 / c.Rate
}
