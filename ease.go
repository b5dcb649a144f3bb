package kestrel

import (
	"fmt"
	"math"
	"strings"

	"github.com/tanema/gween/ease"
)

// Easing selects the shape used to map linear progress to a blend value.
type Easing uint8

const (
	Linear Easing = iota
	InQuad
	OutQuad
	InOutQuad
	InCubic
	OutCubic
	InOutCubic
	InSine
	OutSine
	InOutSine
	InExpo
	OutExpo
	InOutExpo
	InBack
	OutBack
	InOutBack
	InElastic
	OutElastic
	InOutElastic
	InBounce
	OutBounce
	InOutBounce
	easingCount
)

var easingFuncs = [easingCount]ease.TweenFunc{
	Linear:       ease.Linear,
	InQuad:       ease.InQuad,
	OutQuad:      ease.OutQuad,
	InOutQuad:    ease.InOutQuad,
	InCubic:      ease.InCubic,
	OutCubic:     ease.OutCubic,
	InOutCubic:   ease.InOutCubic,
	InSine:       ease.InSine,
	OutSine:      ease.OutSine,
	InOutSine:    ease.InOutSine,
	InExpo:       ease.InExpo,
	OutExpo:      ease.OutExpo,
	InOutExpo:    ease.InOutExpo,
	InBack:       ease.InBack,
	OutBack:      ease.OutBack,
	InOutBack:    ease.InOutBack,
	InElastic:    ease.InElastic,
	OutElastic:   ease.OutElastic,
	InOutElastic: ease.InOutElastic,
	InBounce:     ease.InBounce,
	OutBounce:    ease.OutBounce,
	InOutBounce:  ease.InOutBounce,
}

var easingNames = [easingCount]string{
	"linear",
	"in_quad", "out_quad", "in_out_quad",
	"in_cubic", "out_cubic", "in_out_cubic",
	"in_sine", "out_sine", "in_out_sine",
	"in_expo", "out_expo", "in_out_expo",
	"in_back", "out_back", "in_out_back",
	"in_elastic", "out_elastic", "in_out_elastic",
	"in_bounce", "out_bounce", "in_out_bounce",
}

// Easings lists every supported easing selector.
func Easings() []Easing {
	out := make([]Easing, easingCount)
	for i := range out {
		out[i] = Easing(i)
	}
	return out
}

// Func returns the underlying gween easing function. Unknown selectors fall
// back to linear.
func (e Easing) Func() ease.TweenFunc {
	if e >= easingCount {
		return ease.Linear
	}
	return easingFuncs[e]
}

// Apply maps linear progress t in [0, 1] to an eased blend. The boundaries
// are exact: Apply(0) == 0 and Apply(1) == 1 for every easing. NaN maps to 0.
func (e Easing) Apply(t float64) float64 {
	switch {
	case math.IsNaN(t) || t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	v := float64(e.Func()(float32(t), 0, 1, 1))
	if math.IsNaN(v) {
		return 0
	}
	return v
}

func (e Easing) String() string {
	if e >= easingCount {
		return fmt.Sprintf("easing(%d)", uint8(e))
	}
	return easingNames[e]
}

// ParseEasing resolves a config name such as "out_bounce" or "InOutSine".
func ParseEasing(name string) (Easing, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "-", "_"))
	for i, n := range easingNames {
		if key == n || key == strings.ReplaceAll(n, "_", "") {
			return Easing(i), nil
		}
	}
	return Linear, fmt.Errorf("unknown easing %q", name)
}

// UnmarshalText lets Easing be decoded from config files.
func (e *Easing) UnmarshalText(text []byte) error {
	v, err := ParseEasing(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// MarshalText encodes the easing name.
func (e Easing) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}
