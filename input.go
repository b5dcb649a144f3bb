package kestrel

import (
	"cmp"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// pointerState tracks the single mouse pointer across frames.
type pointerState struct {
	down    bool
	hover   *Object // button under the pointer
	pressed *Object // button the current press started on
	last    Vec2
}

// ebitenPointer reads the cursor position and left mouse button.
func ebitenPointer() (Vec2, bool) {
	x, y := ebiten.CursorPosition()
	return Vec2{float64(x), float64(y)}, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// processInput is called from Engine.Update. A queued synthetic event
// replaces real pointer input for the frame.
func (e *Engine) processInput() {
	if e.processInjectedInput() {
		return
	}
	if e.readPointer == nil {
		return
	}
	p, pressed := e.readPointer()
	e.processPointer(p, pressed)
}

// processPointer runs the button state machine for one pointer sample in
// viewport pixels.
func (e *Engine) processPointer(p Vec2, pressed bool) {
	ps := &e.pointer
	if ps.hover != nil && ps.hover.destroyed {
		ps.hover = nil
	}
	if ps.pressed != nil && ps.pressed.destroyed {
		ps.pressed = nil
	}

	target := e.hitTest(p)
	if target != ps.hover {
		if ps.hover != nil {
			ps.hover.Button.Hovered = false
		}
		if target != nil {
			target.Button.Hovered = true
		}
		ps.hover = target
	}
	ps.last = p

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.pressed = target
		if target != nil {
			target.Button.Pressed = true
		}
	case !pressed && ps.down:
		ps.down = false
		b := ps.pressed
		ps.pressed = nil
		if b == nil {
			return
		}
		b.Button.Pressed = false
		if b == target {
			e.fireClick(b)
		}
	}
}

// hitTest returns the topmost enabled, visible button under pixel p. Higher
// Z wins; among equal Z the later object wins.
func (e *Engine) hitTest(p Vec2) *Object {
	var hit *Object
	for _, o := range e.objects {
		if o.Kind != ObjectButton || o.Button.Disabled || !o.Visible() {
			continue
		}
		if !e.objectContainsPixel(o, p) {
			continue
		}
		if hit == nil || cmp.Compare(o.Z, hit.Z) >= 0 {
			hit = o
		}
	}
	return hit
}

// objectContainsPixel tests p against the object's rect in its own space.
// Rotation is accounted for by rotating p into the unrotated frame.
func (e *Engine) objectContainsPixel(o *Object, p Vec2) bool {
	var q Vec2
	if o.Absolute {
		q = e.cam.PixelToInterface(p)
	} else {
		q = e.cam.PixelToWorld(p)
	}
	t := &o.Transform
	if t.Rotation != 0 {
		q = q.Rotate(t.Translate.Add(t.Pivot), t.Rotation)
	}
	return o.Rect().ContainsPoint(q)
}

func (e *Engine) fireClick(o *Object) {
	if o.Button.OnClick != nil {
		o.Button.OnClick(o)
	}
	if e.events != nil {
		e.events.EmitClick(ClickEvent{Frame: e.sched.Frame(), ObjectID: o.ID, Name: o.Name})
	}
}

// Buttons returns the live button objects ordered topmost first.
func (e *Engine) Buttons() []*Object {
	var out []*Object
	for _, o := range e.objects {
		if o.Kind == ObjectButton && !o.destroyed {
			out = append(out, o)
		}
	}
	slices.Reverse(out)
	slices.SortStableFunc(out, func(a, b *Object) int { return cmp.Compare(b.Z, a.Z) })
	return out
}
