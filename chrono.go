package kestrel

import (
	"fmt"
	"math"
	"time"
)

// MaxTimeSeconds is the largest value a Time can hold.
const MaxTimeSeconds = 255*3600 + 59*60 + 59 + 0.999

// Time is a clock reading used by Timer objects.
type Time struct {
	Hours        uint8
	Minutes      uint8  // 0-59
	Seconds      uint8  // 0-59
	Milliseconds uint16 // 0-999
}

// TimeFromSeconds converts elapsed seconds to a Time, clamped to
// [0, MaxTimeSeconds] and rounded to the nearest millisecond.
func TimeFromSeconds(sec float64) Time {
	if math.IsNaN(sec) || sec <= 0 {
		return Time{}
	}
	sec = math.Min(sec, MaxTimeSeconds)
	ms := int64(math.Round(sec * 1000))
	return Time{
		Hours:        uint8(ms / 3_600_000),
		Minutes:      uint8(ms / 60_000 % 60),
		Seconds:      uint8(ms / 1000 % 60),
		Milliseconds: uint16(ms % 1000),
	}
}

// InSeconds converts t back to elapsed seconds.
func (t Time) InSeconds() float64 {
	return float64(t.Hours)*3600 + float64(t.Minutes)*60 + float64(t.Seconds) + float64(t.Milliseconds)/1000
}

// Duration converts t to a time.Duration.
func (t Time) Duration() time.Duration {
	return time.Duration(t.Hours)*time.Hour +
		time.Duration(t.Minutes)*time.Minute +
		time.Duration(t.Seconds)*time.Second +
		time.Duration(t.Milliseconds)*time.Millisecond
}

// String formats t as HH:MM:SS.mmm.
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d.%03d", t.Hours, t.Minutes, t.Seconds, t.Milliseconds)
}

// Short formats t as MM:SS.mmm when there are no hours.
func (t Time) Short() string {
	if t.Hours > 0 {
		return t.String()
	}
	return fmt.Sprintf("%02d:%02d.%03d", t.Minutes, t.Seconds, t.Milliseconds)
}

// LerpTime interpolates each clock component independently. Components are
// rounded and kept inside their ranges.
func LerpTime(from, to Time, blend float64, easing Easing) Time {
	comp := func(a, b float64, hi float64) float64 {
		return Clamp(math.Round(Lerp(a, b, blend, easing)), 0, hi)
	}
	return Time{
		Hours:        uint8(comp(float64(from.Hours), float64(to.Hours), 255)),
		Minutes:      uint8(comp(float64(from.Minutes), float64(to.Minutes), 59)),
		Seconds:      uint8(comp(float64(from.Seconds), float64(to.Seconds), 59)),
		Milliseconds: uint16(comp(float64(from.Milliseconds), float64(to.Milliseconds), 999)),
	}
}

// Chrono accumulates elapsed time one scheduler step per tick, counting up
// or down. It is independent of timelines and has no easing.
type Chrono struct {
	// Countdown makes the chrono count toward zero and stop there.
	Countdown bool
	// PauseSensitive chronos do not advance while the engine is paused.
	PauseSensitive bool
	// OnExpire runs once when a countdown reaches zero.
	OnExpire func()

	elapsed time.Duration
	running bool
}

// NewChrono returns a stopped, pause-sensitive chrono starting at start.
func NewChrono(start Time, countdown bool) *Chrono {
	return &Chrono{
		Countdown:      countdown,
		PauseSensitive: true,
		elapsed:        start.Duration(),
	}
}

// Start lets the chrono advance.
func (c *Chrono) Start() { c.running = true }

// Stop freezes the chrono.
func (c *Chrono) Stop() { c.running = false }

// Running reports whether the chrono advances on tick.
func (c *Chrono) Running() bool { return c.running }

// Set replaces the current reading.
func (c *Chrono) Set(t Time) { c.elapsed = t.Duration() }

// Time returns the current reading.
func (c *Chrono) Time() Time { return TimeFromSeconds(c.elapsed.Seconds()) }

// Tick advances the chrono by step unless stopped or held by the global pause.
func (c *Chrono) Tick(step time.Duration, globalPaused bool) {
	if !c.running || (c.PauseSensitive && globalPaused) {
		return
	}
	if !c.Countdown {
		c.elapsed = min(c.elapsed+step, time.Duration(MaxTimeSeconds*float64(time.Second)))
		return
	}
	c.elapsed -= step
	if c.elapsed <= 0 {
		c.elapsed = 0
		c.running = false
		if c.OnExpire != nil {
			c.OnExpire()
		}
	}
}
