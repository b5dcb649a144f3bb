package kestrel

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"go.uber.org/zap"
)

// LoopForever makes a timeline restart after every completion until stopped.
const LoopForever = -1

// DefaultStep is the fixed scheduler step for a 60 TPS game loop.
const DefaultStep = time.Second / 60

// TimelineConfig describes a new timeline.
type TimelineConfig struct {
	// Duration of one pass, rounded to the nearest whole tick. Zero
	// completes on the first tick.
	Duration time.Duration
	Easing   Easing
	// OnUpdate receives the eased blend in [0, 1] every tick. It receives
	// exactly 1.0 on the tick a pass completes.
	OnUpdate func(blend float64)
	// OnComplete runs after the final OnUpdate of every pass.
	OnComplete func()
	// Loops is the number of passes; 0 and 1 both mean a single pass.
	Loops int
	// PauseSensitive timelines also stop advancing while the scheduler's
	// global pause is set.
	PauseSensitive bool
}

// Timeline is a handle to one interpolation task owned by a Scheduler.
type Timeline struct {
	sched *Scheduler

	tick     int
	ticks    int
	duration time.Duration
	loops    int
	loop     int

	easing     Easing
	tween      *gween.Tween
	onUpdate   func(float64)
	onComplete func()

	pauseSensitive bool
	paused         bool
	done           bool
	completing     bool
}

// Scheduler is the registry of active timelines. It advances every timeline
// once per Tick by a fixed step, in insertion order.
type Scheduler struct {
	timelines []*Timeline
	step      time.Duration
	paused    bool
	ticking   bool
	frame     uint64
	log       *zap.Logger
}

// NewScheduler creates a Scheduler advancing by step per tick. A nil logger
// is replaced with a no-op logger.
func NewScheduler(step time.Duration, logger *zap.Logger) *Scheduler {
	if step <= 0 {
		panic("kestrel: scheduler step must be positive")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{step: step, log: logger}
}

// Step returns the fixed per-tick time step.
func (s *Scheduler) Step() time.Duration { return s.step }

// Frame returns the number of ticks processed so far.
func (s *Scheduler) Frame() uint64 { return s.frame }

// NewTimeline registers a timeline. It first advances on the next Tick, even
// when created from inside another timeline's callback during a Tick.
func (s *Scheduler) NewTimeline(cfg TimelineConfig) *Timeline {
	if cfg.Duration < 0 {
		cfg.Duration = 0
	}
	t := &Timeline{
		sched:          s,
		duration:       cfg.Duration,
		ticks:          s.ticksFor(cfg.Duration),
		loops:          cfg.Loops,
		easing:         cfg.Easing,
		tween:          gween.New(0, 1, 1, cfg.Easing.Func()),
		onUpdate:       cfg.OnUpdate,
		onComplete:     cfg.OnComplete,
		pauseSensitive: cfg.PauseSensitive,
	}
	s.timelines = append(s.timelines, t)
	if len(s.timelines) == debugMaxTimelines {
		s.log.Warn("timeline registry is large; timelines may be leaking",
			zap.Int("active", len(s.timelines)))
	}
	return t
}

// ticksFor converts d to a whole number of steps, rounded to the nearest
// step. Any positive duration takes at least one tick.
func (s *Scheduler) ticksFor(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return max(1, RoundInt(float64(d)/float64(s.step)))
}

// Delay registers a timeline with no update callback that calls onComplete
// once d has elapsed.
func (s *Scheduler) Delay(d time.Duration, onComplete func(), pauseSensitive bool) *Timeline {
	return s.NewTimeline(TimelineConfig{
		Duration:       d,
		OnComplete:     onComplete,
		PauseSensitive: pauseSensitive,
	})
}

// Tick advances every runnable timeline by one step. Timelines registered
// during the pass wait for the next Tick. Finished and stopped timelines are
// removed from the registry after the pass.
func (s *Scheduler) Tick() {
	s.frame++
	s.ticking = true
	n := len(s.timelines)
	for i := 0; i < n; i++ {
		t := s.timelines[i]
		if t.done || t.paused || (t.pauseSensitive && s.paused) {
			continue
		}
		t.advance()
	}
	s.ticking = false
	s.compact()
}

// Pause sets the global pause flag seen by pause-sensitive timelines.
func (s *Scheduler) Pause() { s.paused = true }

// Resume clears the global pause flag.
func (s *Scheduler) Resume() { s.paused = false }

// TogglePause flips the global pause flag.
func (s *Scheduler) TogglePause() { s.paused = !s.paused }

// Paused reports the global pause flag.
func (s *Scheduler) Paused() bool { return s.paused }

// Len returns the number of registered timelines.
func (s *Scheduler) Len() int {
	n := 0
	for _, t := range s.timelines {
		if !t.done {
			n++
		}
	}
	return n
}

// Contains reports whether t is still registered.
func (s *Scheduler) Contains(t *Timeline) bool {
	if t == nil || t.done {
		return false
	}
	for _, c := range s.timelines {
		if c == t {
			return true
		}
	}
	return false
}

// StopAll stops every registered timeline.
func (s *Scheduler) StopAll(callCompleted bool) {
	for _, t := range append([]*Timeline(nil), s.timelines...) {
		t.Stop(callCompleted)
	}
}

// compact drops finished timelines, preserving insertion order.
func (s *Scheduler) compact() {
	if s.ticking {
		return
	}
	live := s.timelines[:0]
	for _, t := range s.timelines {
		if !t.done {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.timelines); i++ {
		s.timelines[i] = nil
	}
	s.timelines = live
}

func (t *Timeline) advance() {
	t.tick++
	if t.tick >= t.ticks {
		t.complete()
		return
	}
	if t.onUpdate != nil {
		t.onUpdate(t.Blend())
	}
}

// complete finishes one pass and either loops or retires the timeline.
func (t *Timeline) complete() {
	t.tick = t.ticks
	t.completing = true
	if t.onUpdate != nil {
		t.onUpdate(1)
	}
	if t.onComplete != nil {
		t.onComplete()
	}
	t.completing = false
	if t.done {
		// Stopped from inside a callback.
		return
	}
	if t.loops == LoopForever || t.loop+1 < t.loops {
		t.loop++
		t.tick = 0
		t.tween.Reset()
		return
	}
	t.done = true
}

// Progress returns the linear progress of the current pass in [0, 1].
func (t *Timeline) Progress() float64 {
	if t.ticks <= 0 {
		if t.tick > 0 {
			return 1
		}
		return 0
	}
	return math.Min(float64(t.tick)/float64(t.ticks), 1)
}

// Blend returns the eased progress of the current pass.
func (t *Timeline) Blend() float64 {
	p := t.Progress()
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	v, _ := t.tween.Set(float32(p))
	if math.IsNaN(float64(v)) {
		return 0
	}
	return float64(v)
}

// Loop returns the zero-based index of the current pass.
func (t *Timeline) Loop() int { return t.loop }

// Duration returns the length of one pass.
func (t *Timeline) Duration() time.Duration { return t.duration }

// Easing returns the easing selector.
func (t *Timeline) Easing() Easing { return t.easing }

// Pause stops this timeline from advancing until Resume.
func (t *Timeline) Pause() { t.paused = true }

// Resume lets a paused timeline advance again.
func (t *Timeline) Resume() { t.paused = false }

// TogglePause flips the paused state.
func (t *Timeline) TogglePause() { t.paused = !t.paused }

// Paused reports whether Pause was called without a matching Resume.
func (t *Timeline) Paused() bool { return t.paused }

// PauseSensitive reports whether the global pause also holds this timeline.
func (t *Timeline) PauseSensitive() bool { return t.pauseSensitive }

// Reset rewinds to the start of the first pass. The paused state is kept.
func (t *Timeline) Reset() {
	t.tick = 0
	t.loop = 0
	t.tween.Reset()
}

// Done reports whether the timeline finished or was stopped.
func (t *Timeline) Done() bool { return t.done }

// Stop removes the timeline from its scheduler. With callCompleted the
// update callback first receives 1.0 and the completion callback runs.
// Stop is safe to call from the timeline's own callbacks and is a no-op on
// a timeline that is already done.
func (t *Timeline) Stop(callCompleted bool) {
	if t == nil || t.done {
		return
	}
	t.done = true
	if callCompleted && !t.completing {
		t.tick = t.ticks
		if t.onUpdate != nil {
			t.onUpdate(1)
		}
		if t.onComplete != nil {
			t.onComplete()
		}
	}
	t.sched.compact()
}
