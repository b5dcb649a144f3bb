package kestrel

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// NewFPSCounter creates an absolute text object showing the current FPS
// and TPS, refreshed every half second. It is placed at t in interface
// units and drawn above everything else.
func (e *Engine) NewFPSCounter(t Transform) *Object {
	o := e.NewObject(ObjectText, "fps_counter", t)
	o.Absolute = true
	o.Z = 1 << 30
	o.Text.Size = 0.8
	refresh := func(float64) {
		o.SetText(fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	refresh(0)
	o.track(e.sched.NewTimeline(TimelineConfig{
		Duration: 500 * time.Millisecond,
		Loops:    LoopForever,
		OnComplete: func() {
			refresh(1)
		},
	}))
	return o
}
