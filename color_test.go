package kestrel

import "testing"

func TestRGBA(t *testing.T) {
	c := RGBA(255, 0, 51, 255)
	assertNear(t, "R", c.R, 1)
	assertNear(t, "G", c.G, 0)
	assertNear(t, "B", c.B, 0.2)
	assertNear(t, "A", c.A, 1)
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#ff0000", "#ff0000ff"},
		{"#00ff0080", "#00ff0080"},
		{"#123456", "#123456ff"},
	}
	for _, tt := range tests {
		c, err := ParseHexColor(tt.in)
		if err != nil {
			t.Errorf("ParseHexColor(%q): %v", tt.in, err)
			continue
		}
		if got := c.Hex(); got != tt.want {
			t.Errorf("ParseHexColor(%q).Hex() = %q, want %q", tt.in, got, tt.want)
		}
	}
	for _, bad := range []string{"red", "#12", "#gg0000"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Errorf("ParseHexColor(%q) expected error", bad)
		}
	}
}

func TestColorUnmarshalText(t *testing.T) {
	var c Color
	if err := c.UnmarshalText([]byte("#ffffff")); err != nil {
		t.Fatal(err)
	}
	if c != ColorWhite {
		t.Errorf("got %+v, want white", c)
	}
}

func TestColorWithAlpha(t *testing.T) {
	c := Color{1, 1, 1, 0.5}.WithAlpha(0.5)
	assertNear(t, "A", c.A, 0.25)
}

func TestLerpColor(t *testing.T) {
	from := Color{0, 0, 0, 1}
	to := Color{1, 0.5, 0, 0}
	if got := LerpColor(from, to, 0, Linear); got != from {
		t.Errorf("blend 0 = %+v", got)
	}
	if got := LerpColor(from, to, 1, OutBounce); got != to {
		t.Errorf("blend 1 = %+v", got)
	}
	mid := LerpColor(from, to, 0.5, Linear)
	assertNear(t, "mid R", mid.R, 0.5)
	assertNear(t, "mid G", mid.G, 0.25)
	assertNear(t, "mid A", mid.A, 0.5)
}

func TestAdjustHSV(t *testing.T) {
	red := Color{1, 0, 0, 0.4}

	cyan := red.AdjustHSV(Hue, OpAdd, 180)
	if !approxEqual(cyan.R, 0, 1e-6) || !approxEqual(cyan.G, 1, 1e-6) || !approxEqual(cyan.B, 1, 1e-6) {
		t.Errorf("hue +180 = %+v, want cyan", cyan)
	}
	assertNear(t, "alpha kept", cyan.A, 0.4)

	wrapped := red.AdjustHSV(Hue, OpSubtract, 120)
	if !approxEqual(wrapped.B, 1, 1e-6) || !approxEqual(wrapped.R, 0, 1e-6) {
		t.Errorf("hue -120 = %+v, want blue", wrapped)
	}

	grey := red.AdjustHSV(Saturation, OpMultiply, 0)
	if !approxEqual(grey.R, grey.G, 1e-6) || !approxEqual(grey.G, grey.B, 1e-6) {
		t.Errorf("saturation *0 = %+v, want grey", grey)
	}

	bright := Color{0.5, 0.5, 0.5, 1}.AdjustHSV(Value, OpAdd, 5)
	if !approxEqual(bright.R, 1, 1e-6) {
		t.Errorf("value is clamped to 1, got %+v", bright)
	}

	same := red.AdjustHSV(Value, OpDivide, 0)
	if !approxEqual(same.R, 1, 1e-6) {
		t.Errorf("divide by zero should leave the channel unchanged, got %+v", same)
	}
}
