package kestrel

// TextAlign positions text horizontally inside its object's rect.
type TextAlign uint8

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// TextState holds the content of text and timer objects.
type TextState struct {
	Content string
	// Size is the glyph height as a fraction of the object height.
	Size  float64
	Align TextAlign
	Color Color
}

// BarState drives a progress bar. The surface named Fill is scaled to the
// fraction (Value-Min)/(Max-Min) and anchored at the From edge.
type BarState struct {
	Value, Min, Max float64
	Fill            string
	From            Face
}

// Fraction returns the filled fraction in [0, 1].
func (b *BarState) Fraction() float64 {
	span := b.Max - b.Min
	if span <= 0 {
		return 0
	}
	return Clamp((b.Value-b.Min)/span, 0, 1)
}

// ButtonState tracks pointer interaction with a button object. The surface
// named Base is tinted with Idle, Hover or Press.
type ButtonState struct {
	Hovered bool
	Pressed bool
	// Disabled buttons ignore input.
	Disabled bool

	OnClick func(*Object)

	Idle, Hover, Press Color
	Base               string
}

func (b *ButtonState) color() Color {
	switch {
	case b.Pressed:
		return b.Press
	case b.Hovered:
		return b.Hover
	}
	return b.Idle
}

// SetValue sets a bar's value, clamped to its range. Panics if o is not a bar.
func (o *Object) SetValue(v float64) {
	b := o.mustBar("SetValue")
	b.Value = Clamp(v, b.Min, max(b.Min, b.Max))
	o.refresh()
}

// AnimateValue animates a bar's value.
func (o *Object) AnimateValue(v float64, a Anim) *Timeline {
	b := o.mustBar("AnimateValue")
	return o.track(o.sched.TweenFloat(b.Value, v, o.SetValue, a))
}

// SetText sets the content of a text object. Panics if o has no text.
func (o *Object) SetText(s string) {
	if o.Text == nil {
		panic("kestrel: SetText on object " + o.Name + " without text")
	}
	o.Text.Content = s
}

func (o *Object) mustBar(op string) *BarState {
	if o.Bar == nil {
		panic("kestrel: " + op + " on non-bar object " + o.Name)
	}
	return o.Bar
}

// refresh applies kind-specific state to surfaces before rendering.
func (o *Object) refresh() {
	switch o.Kind {
	case ObjectBar:
		o.refreshBar()
	case ObjectButton:
		if s, ok := o.surfaces[o.Button.Base]; ok {
			s.Color = o.Button.color()
		}
	case ObjectTimer:
		o.Text.Content = o.Chrono.Time().Short()
	}
}

func (o *Object) refreshBar() {
	s, ok := o.surfaces[o.Bar.Fill]
	if !ok {
		return
	}
	f := o.Bar.Fraction()
	t := &s.Transform
	scale, translate := t.DefaultScale(), t.DefaultTranslate()
	switch o.Bar.From {
	case FaceLeft, FaceRight:
		shift := scale.X * (1 - f) / 2
		if o.Bar.From == FaceRight {
			shift = -shift
		}
		translate.X -= shift
		scale.X *= f
	case FaceTop, FaceBottom:
		shift := scale.Y * (1 - f) / 2
		if o.Bar.From == FaceTop {
			shift = -shift
		}
		translate.Y -= shift
		scale.Y *= f
	}
	t.SetScale(scale)
	t.SetTranslate(translate)
	s.Hidden = f <= 0
}
