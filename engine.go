package kestrel

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"
)

// Option configures an Engine at construction.
type Option func(*Engine)

// WithLogger sets the engine logger. The default is a no-op logger, or a
// development logger when Config.Debug is set.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithTextures sets the texture source. The default is an empty
// TextureStore.
func WithTextures(src TextureSource) Option {
	return func(e *Engine) { e.textures = src }
}

// WithEventSink forwards collision and click events to sink.
func WithEventSink(sink EventSink) Option {
	return func(e *Engine) { e.events = sink }
}

// WithFontFace sets the face used by text and timer objects.
func WithFontFace(face text.Face) Option {
	return func(e *Engine) { e.face = face }
}

// Engine owns the object list, the camera, the timeline scheduler and the
// draw backend. It implements ebiten.Game.
type Engine struct {
	// OnUpdate runs once per update after timelines, chronos and the camera
	// have advanced and before the collision pass.
	OnUpdate func(*Engine) error

	cfg          Config
	log          *zap.Logger
	debug        bool
	showHitboxes bool

	sched    *Scheduler
	cam      *Camera
	pipe     *Pipeline
	textures TextureSource
	events   EventSink
	face     text.Face

	objects []*Object
	seq     int
	nextID  uint32
	buffers []SurfaceBuffer

	// Input state
	injectQueue []syntheticPointerEvent
	pointer     pointerState
	readPointer func() (Vec2, bool)

	// Draw state
	whitePixel *ebiten.Image
	missing    map[string]struct{}

	// Automation
	testRunner      *TestRunner
	screenshotQueue []string
}

// NewEngine validates cfg and builds an engine. Configuration errors are
// returned and no engine is created.
func NewEngine(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	origin, _ := ParseOrigin(cfg.InterfaceOrigin)

	e := &Engine{
		cfg:          cfg,
		debug:        cfg.Debug,
		showHitboxes: cfg.ShowHitboxes,
		missing:      make(map[string]struct{}),
		readPointer:  ebitenPointer,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = zap.NewNop()
		if cfg.Debug {
			if l, err := zap.NewDevelopment(); err == nil {
				e.log = l
			}
		}
	}
	if e.textures == nil {
		e.textures = NewTextureStore()
	}
	if e.face == nil {
		e.face = text.NewGoXFace(basicfont.Face7x13)
	}

	e.sched = NewScheduler(cfg.Step(), e.log)
	e.cam = newCamera(PixelSize{cfg.WindowWidth, cfg.WindowHeight}, cfg.GameWidth, cfg.InterfaceWidth, e.sched)
	e.cam.Origin = origin
	e.cam.Smoothing = cfg.CameraSmoothing
	e.pipe = NewPipeline(e.cam)

	e.log.Debug("engine created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.WindowWidth),
		zap.Int("height", cfg.WindowHeight),
		zap.Duration("step", e.sched.Step()),
		zap.Bool("legacyFlipUnion", cfg.LegacyFlipUnion))
	return e, nil
}

// Run opens a window and runs the engine until the window closes or Update
// returns an error.
func Run(e *Engine) error {
	ebiten.SetWindowTitle(e.cfg.Title)
	ebiten.SetWindowSize(e.cfg.WindowWidth, e.cfg.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(e.cfg.TPS)
	return ebiten.RunGame(e)
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Logger returns the engine logger.
func (e *Engine) Logger() *zap.Logger { return e.log }

// Camera returns the engine's camera.
func (e *Engine) Camera() *Camera { return e.cam }

// Scheduler returns the engine's timeline scheduler.
func (e *Engine) Scheduler() *Scheduler { return e.sched }

// Pipeline returns the render transform pipeline.
func (e *Engine) Pipeline() *Pipeline { return e.pipe }

// Textures returns the texture source.
func (e *Engine) Textures() TextureSource { return e.textures }

// Pause sets the global pause. Pause-sensitive timelines and chronos stop
// advancing; input still runs.
func (e *Engine) Pause() { e.sched.Pause() }

// Resume clears the global pause.
func (e *Engine) Resume() { e.sched.Resume() }

// TogglePause flips the global pause.
func (e *Engine) TogglePause() { e.sched.TogglePause() }

// Paused reports the global pause.
func (e *Engine) Paused() bool { return e.sched.Paused() }

// SetDebugMode toggles frame stats logging.
func (e *Engine) SetDebugMode(enabled bool) { e.debug = enabled }

// SetShowHitboxes toggles hitbox drawing.
func (e *Engine) SetShowHitboxes(enabled bool) { e.showHitboxes = enabled }

// NewObject creates an object of the given kind and adds it to the engine.
func (e *Engine) NewObject(kind ObjectKind, name string, t Transform) *Object {
	o := newObject(kind, name, t, e.sched)
	o.flipUnion = e.cfg.LegacyFlipUnion
	o.seq = e.seq
	e.seq++
	e.nextID++
	o.ID = e.nextID
	e.objects = append(e.objects, o)
	if e.debug {
		e.debugCheckObjectCount()
	}
	return o
}

// Destroy destroys o. It is removed from the object list on the next update.
func (e *Engine) Destroy(o *Object) {
	o.Destroy()
	if e.cam.follow == o {
		e.cam.Unfollow()
	}
}

// Objects returns the live objects in creation order. The returned slice
// must not be mutated.
func (e *Engine) Objects() []*Object {
	e.compactObjects()
	return e.objects
}

func (e *Engine) compactObjects() {
	live := e.objects[:0]
	for _, o := range e.objects {
		if !o.destroyed {
			live = append(live, o)
		}
	}
	clear(e.objects[len(live):])
	e.objects = live
}

// Update advances one fixed step: timelines, chronos, camera, the OnUpdate
// hook, the collision pass and pointer input, in that order.
func (e *Engine) Update() error {
	e.compactObjects()
	e.sched.Tick()

	paused := e.sched.Paused()
	for _, o := range e.objects {
		if o.Chrono != nil && !o.destroyed {
			o.Chrono.Tick(e.sched.Step(), paused)
		}
	}

	e.cam.update()

	if e.OnUpdate != nil {
		if err := e.OnUpdate(e); err != nil {
			return err
		}
	}

	e.collide()
	if e.testRunner != nil {
		e.testRunner.step(e)
	}
	e.processInput()
	return nil
}

// Layout tracks the outside size as the viewport.
func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.cam.Viewport = PixelSize{outsideWidth, outsideHeight}
	return outsideWidth, outsideHeight
}

// SurfaceBuffers resolves every visible surface of every visible object,
// culls against the camera and sorts by object Z, surface Z and insertion
// order. Hitbox buffers follow when hitboxes are shown. The returned slice
// is reused by the next call.
func (e *Engine) SurfaceBuffers() []SurfaceBuffer {
	bufs, _ := e.buildBuffers()
	return bufs
}

func (e *Engine) buildBuffers() ([]SurfaceBuffer, debugStats) {
	var stats debugStats
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}

	e.buffers = e.buffers[:0]
	order := 0
	emit := func(b SurfaceBuffer) {
		if !e.pipe.Visible(&b) {
			stats.skipped++
			return
		}
		b.order = order
		order++
		e.buffers = append(e.buffers, b)
	}
	for _, o := range e.objects {
		if !o.Visible() {
			continue
		}
		o.refresh()
		for _, s := range o.surfaceOrder {
			if s.Visible() {
				emit(e.pipe.SurfaceGeometry(o, s))
			}
		}
		if o.Text != nil && o.Text.Content != "" {
			emit(e.pipe.TextGeometry(o))
		}
	}

	if e.debug {
		stats.buildTime = time.Since(t0)
		t0 = time.Now()
	}
	sortBuffers(e.buffers)
	if e.debug {
		stats.sortTime = time.Since(t0)
	}

	if e.showHitboxes {
		for _, o := range e.objects {
			if o.destroyed || o.Hidden {
				continue
			}
			for _, h := range o.hitboxOrder {
				if h.Visible {
					e.buffers = append(e.buffers, e.pipe.HitboxGeometry(o, h))
				}
			}
		}
	}
	stats.bufferCount = len(e.buffers)
	return e.buffers, stats
}
