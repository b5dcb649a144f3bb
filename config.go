package kestrel

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Config validation error.
var ErrInvalidConfig = errors.New("kestrel: invalid config")

// Config holds engine settings. Zero fields are filled from DefaultConfig
// by LoadConfig.
type Config struct {
	Title        string `yaml:"title"`
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`

	// GameWidth is the number of world units across the viewport.
	GameWidth float64 `yaml:"game_width"`
	// InterfaceWidth is the number of interface units across the viewport.
	InterfaceWidth float64 `yaml:"interface_width"`
	// InterfaceOrigin names the viewport edge or corner used as the
	// interface origin: "center", "top", "bottom_left", ...
	InterfaceOrigin string `yaml:"interface_origin"`

	// TPS is the fixed update rate. The scheduler step is 1/TPS.
	TPS int `yaml:"tps"`

	CameraSmoothing float64 `yaml:"camera_smoothing"`
	ClearColor      Color   `yaml:"clear_color"`

	// Debug enables development logging and frame stats.
	Debug bool `yaml:"debug"`
	// ShowHitboxes draws every visible hitbox on top of the frame.
	ShowHitboxes bool `yaml:"show_hitboxes"`
	// ScreenshotDir is where Engine.Screenshot writes PNG files.
	ScreenshotDir string `yaml:"screenshot_dir"`
	// LegacyFlipUnion composes flips with OR instead of XOR, so flipping
	// twice never restores the original orientation.
	LegacyFlipUnion bool `yaml:"legacy_flip_union"`
}

// DefaultConfig returns the settings used for unset fields.
func DefaultConfig() Config {
	return Config{
		Title:           "kestrel",
		WindowWidth:     1280,
		WindowHeight:    720,
		GameWidth:       20,
		InterfaceWidth:  100,
		InterfaceOrigin: "center",
		TPS:             60,
		ClearColor:      Color{A: 1},
		ScreenshotDir:   "screenshots",
	}
}

// Step returns the scheduler step for the configured TPS.
func (c Config) Step() time.Duration {
	if c.TPS <= 0 {
		return DefaultStep
	}
	return time.Second / time.Duration(c.TPS)
}

// Validate reports every invalid setting, each wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	var all error
	add := func(format string, args ...any) {
		all = errors.Join(all, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		add("window size %dx%d must be positive", c.WindowWidth, c.WindowHeight)
	}
	if c.GameWidth <= 0 {
		add("game_width %v must be positive", c.GameWidth)
	}
	if c.InterfaceWidth <= 0 {
		add("interface_width %v must be positive", c.InterfaceWidth)
	}
	if c.TPS <= 0 {
		add("tps %d must be positive", c.TPS)
	}
	if c.CameraSmoothing < 0 || c.CameraSmoothing >= 1 {
		add("camera_smoothing %v must be in [0, 1)", c.CameraSmoothing)
	}
	if _, err := ParseOrigin(c.InterfaceOrigin); err != nil {
		add("%v", err)
	}
	return all
}

// LoadConfig decodes YAML over DefaultConfig and validates the result.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("kestrel: decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads and decodes a YAML config file.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("kestrel: load config %s: %w", path, err)
	}
	cfg, err := LoadConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("kestrel: load config %s: %w", path, err)
	}
	return cfg, nil
}

var origins = map[string]Face{
	"":             FaceNone,
	"center":       FaceNone,
	"top":          FaceTop,
	"bottom":       FaceBottom,
	"left":         FaceLeft,
	"right":        FaceRight,
	"top_left":     FaceTop | FaceLeft,
	"top_right":    FaceTop | FaceRight,
	"bottom_left":  FaceBottom | FaceLeft,
	"bottom_right": FaceBottom | FaceRight,
}

// ParseOrigin maps an interface origin name to its face mask.
func ParseOrigin(name string) (Face, error) {
	f, ok := origins[name]
	if !ok {
		return FaceNone, fmt.Errorf("unknown interface origin %q", name)
	}
	return f, nil
}
