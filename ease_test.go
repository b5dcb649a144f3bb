package kestrel

import (
	"math"
	"testing"
)

func TestEasingBoundaries(t *testing.T) {
	for _, e := range Easings() {
		t.Run(e.String(), func(t *testing.T) {
			if got := e.Apply(0); got != 0 {
				t.Errorf("Apply(0) = %v, want exactly 0", got)
			}
			if got := e.Apply(1); got != 1 {
				t.Errorf("Apply(1) = %v, want exactly 1", got)
			}
			if got := e.Apply(-0.5); got != 0 {
				t.Errorf("Apply(-0.5) = %v, want 0", got)
			}
			if got := e.Apply(1.5); got != 1 {
				t.Errorf("Apply(1.5) = %v, want 1", got)
			}
			if got := e.Apply(math.NaN()); got != 0 {
				t.Errorf("Apply(NaN) = %v, want 0", got)
			}
		})
	}
}

func TestEasingLinearMidpoint(t *testing.T) {
	if !approxEqual(Linear.Apply(0.25), 0.25, 1e-6) {
		t.Errorf("Linear.Apply(0.25) = %v", Linear.Apply(0.25))
	}
	if !approxEqual(InQuad.Apply(0.5), 0.25, 1e-6) {
		t.Errorf("InQuad.Apply(0.5) = %v, want 0.25", InQuad.Apply(0.5))
	}
	if !approxEqual(OutQuad.Apply(0.5), 0.75, 1e-6) {
		t.Errorf("OutQuad.Apply(0.5) = %v, want 0.75", OutQuad.Apply(0.5))
	}
}

func TestEasingsComplete(t *testing.T) {
	all := Easings()
	if len(all) != int(easingCount) {
		t.Fatalf("Easings() returned %d, want %d", len(all), easingCount)
	}
	for _, e := range all {
		if e.Func() == nil {
			t.Errorf("%v has no easing func", e)
		}
	}
}

func TestParseEasing(t *testing.T) {
	tests := []struct {
		name string
		want Easing
	}{
		{"linear", Linear},
		{"out_bounce", OutBounce},
		{"in_out_sine", InOutSine},
		{"InOutSine", InOutSine},
		{"in-back", InBack},
		{" OUT_ELASTIC ", OutElastic},
	}
	for _, tt := range tests {
		got, err := ParseEasing(tt.name)
		if err != nil {
			t.Errorf("ParseEasing(%q) error: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseEasing(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
	if _, err := ParseEasing("wobble"); err == nil {
		t.Error("expected error for unknown easing")
	}
}

func TestEasingTextRoundTrip(t *testing.T) {
	for _, e := range Easings() {
		text, err := e.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Easing
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != e {
			t.Errorf("round trip %v -> %q -> %v", e, text, back)
		}
	}
}
