package kestrel

import "time"

// Anim parameterizes an animated setter.
type Anim struct {
	Duration       time.Duration
	Easing         Easing
	OnComplete     func()
	PauseSensitive bool
}

// TweenFloat animates a float from -> to, writing each value through set.
// The easing is applied once, by the timeline.
func (s *Scheduler) TweenFloat(from, to float64, set func(float64), a Anim) *Timeline {
	return s.NewTimeline(TimelineConfig{
		Duration: a.Duration,
		Easing:   a.Easing,
		OnUpdate: func(blend float64) {
			set(Lerp(from, to, blend, Linear))
		},
		OnComplete:     a.OnComplete,
		PauseSensitive: a.PauseSensitive,
	})
}

// TweenVec animates both components of a vector.
func (s *Scheduler) TweenVec(from, to Vec2, set func(Vec2), a Anim) *Timeline {
	return s.NewTimeline(TimelineConfig{
		Duration: a.Duration,
		Easing:   a.Easing,
		OnUpdate: func(blend float64) {
			set(Vec2{Lerp(from.X, to.X, blend, Linear), Lerp(from.Y, to.Y, blend, Linear)})
		},
		OnComplete:     a.OnComplete,
		PauseSensitive: a.PauseSensitive,
	})
}

// TweenColor animates each RGBA component independently.
func (s *Scheduler) TweenColor(from, to Color, set func(Color), a Anim) *Timeline {
	return s.NewTimeline(TimelineConfig{
		Duration: a.Duration,
		Easing:   a.Easing,
		OnUpdate: func(blend float64) {
			set(LerpColor(from, to, blend, Linear))
		},
		OnComplete:     a.OnComplete,
		PauseSensitive: a.PauseSensitive,
	})
}

// TweenTime animates each clock component independently.
func (s *Scheduler) TweenTime(from, to Time, set func(Time), a Anim) *Timeline {
	return s.NewTimeline(TimelineConfig{
		Duration: a.Duration,
		Easing:   a.Easing,
		OnUpdate: func(blend float64) {
			set(LerpTime(from, to, blend, Linear))
		},
		OnComplete:     a.OnComplete,
		PauseSensitive: a.PauseSensitive,
	})
}
