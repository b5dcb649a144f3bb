// platformer is a small side-scroller built on kestrel's collision
// helpers. The player carries two hitboxes: a broad red box that lands on
// platforms and a narrower blue box that detects running into walls. The
// camera follows with a padded dead zone. Collect the coins; press H to
// toggle hitbox drawing and Escape to pause.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/kestrel"
	"go.uber.org/zap"
)

const (
	runSpeed  = 0.12
	jumpSpeed = 0.32
	gravity   = 0.015
	maxFall   = 0.5

	coinGroup = 1
)

type platform struct {
	x, y, w, h float64
}

var level = []platform{
	{0, -5, 40, 1},
	{-12, -2, 6, 1},
	{-4, 0.5, 5, 1},
	{5, -2.5, 4, 1},
	{13, 1, 6, 1},
	{21, -1, 1, 8},
	{28, -3, 10, 1},
}

var coins = []kestrel.Vec2{
	{X: -12, Y: -0.5}, {X: -4, Y: 2}, {X: 5, Y: -1}, {X: 13, Y: 2.5}, {X: 28, Y: -1.5},
}

type game struct {
	player    *kestrel.Object
	solids    []*kestrel.Object
	vx, vy    float64
	grounded  bool
	collected int
	hitboxes  bool
	score     *kestrel.Object
	log       *zap.Logger
}

func (g *game) update(e *kestrel.Engine) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		e.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hitboxes = !g.hitboxes
		e.SetShowHitboxes(g.hitboxes)
	}
	if e.Paused() {
		return nil
	}

	g.vx = 0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		g.vx = -runSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		g.vx = runSpeed
	}
	facingLeft := g.player.Transform.Flipped().Has(kestrel.FlipX)
	if (g.vx < 0 && !facingLeft) || (g.vx > 0 && facingLeft) {
		g.player.Flip(kestrel.FlipX)
	}
	if g.grounded && inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.vy = jumpSpeed
	}
	g.vy = max(g.vy-gravity, -maxFall)

	// Horizontal move, undone on a wall hit.
	prev := g.player.Transform.Translate
	g.player.SetTranslate(prev.Add(kestrel.Vec2{X: g.vx}))
	for _, s := range g.solids {
		if _, hit := kestrel.ResolveSolid(g.player, "red", "blue", s, kestrel.GravityDown, g.vy); hit {
			g.player.SetTranslate(prev)
			break
		}
	}

	// Vertical move, snapped onto ground.
	g.grounded = false
	g.player.SetTranslate(g.player.Transform.Translate.Add(kestrel.Vec2{Y: g.vy}))
	for _, s := range g.solids {
		face, _ := kestrel.ResolveSolid(g.player, "red", "", s, kestrel.GravityDown, g.vy)
		switch {
		case kestrel.SnapEligible(face, kestrel.GravityDown, g.vy):
			g.grounded = true
			g.vy = 0
		case face == kestrel.FaceTop && g.vy > 0:
			g.vy = 0
		}
	}

	if g.player.Transform.Translate.Y < -20 {
		g.log.Info("fell out of the level; respawning")
		g.player.SetTranslate(g.player.Transform.DefaultTranslate())
		g.vy = 0
	}
	return nil
}

func (g *game) collect(c kestrel.Contact) {
	if c.Other != g.player || c.Self.CollisionGroup == 0 {
		return
	}
	g.collected++
	g.score.SetText(scoreText(g.collected))
	coin := c.Self
	coin.CollisionGroup = 0
	coin.AnimateScale(kestrel.Vec2{}, kestrel.Anim{
		Duration:   200 * time.Millisecond,
		Easing:     kestrel.InBack,
		OnComplete: coin.Destroy,
	})
}

func scoreText(n int) string {
	return fmt.Sprintf("coins: %d/%d", n, len(coins))
}

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	cfg := kestrel.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = kestrel.LoadConfigFile(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	cfg.Title = "Kestrel — Platformer Demo"
	cfg.InterfaceOrigin = "top_left"
	cfg.CameraSmoothing = 0.85
	cfg.ClearColor = kestrel.RGBA(24, 28, 40, 255)

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	eng, err := kestrel.NewEngine(cfg, kestrel.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}

	g := &game{log: logger, hitboxes: cfg.ShowHitboxes}
	for i, p := range level {
		s := eng.NewObject(kestrel.ObjectBasic, "platform", kestrel.Sized(p.x, p.y, p.w, p.h))
		s.AddSurface(kestrel.NewColorSurface("fill", kestrel.RGBA(70, 90, 110, 255), kestrel.Identity()))
		s.AddSurface(kestrel.NewBorderSurface("edge", kestrel.RGBA(120, 150, 170, 255), 0.08, kestrel.BorderInside, kestrel.Identity()))
		s.AddHitbox(kestrel.NewHitbox("solid", kestrel.Identity())).Color = kestrel.Color{G: 1, A: 0.3}
		s.UserData = i
		g.solids = append(g.solids, s)
	}

	g.player = eng.NewObject(kestrel.ObjectBasic, "player", kestrel.Sized(-15, 0, 0.8, 1.2))
	g.player.Z = 10
	g.player.CollisionGroup = coinGroup
	g.player.AddSurface(kestrel.NewColorSurface("body", kestrel.RGBA(230, 180, 80, 255), kestrel.Identity()))
	g.player.AddSurface(kestrel.NewColorSurface("eye", kestrel.RGBA(20, 20, 20, 255), kestrel.Sized(0.25, 0.25, 0.15, 0.1)))
	red := g.player.AddHitbox(kestrel.NewHitbox("red", kestrel.Identity()))
	red.Color = kestrel.Color{R: 1, A: 0.35}
	blue := g.player.AddHitbox(kestrel.NewHitbox("blue", kestrel.Sized(0, 0.1, 1.05, 0.6)))
	blue.Color = kestrel.Color{B: 1, A: 0.5}

	for _, p := range coins {
		c := eng.NewObject(kestrel.ObjectBasic, "coin", kestrel.Sized(p.X, p.Y, 0.5, 0.5))
		c.CollisionGroup = coinGroup
		c.AddSurface(kestrel.NewColorSurface("fill", kestrel.RGBA(250, 210, 60, 255), kestrel.Identity()))
		spin := c.AddSurface(kestrel.NewBorderSurface("shine", kestrel.ColorWhite, 0.05, kestrel.BorderInside, kestrel.Identity()))
		c.AddHitbox(kestrel.NewHitbox("pickup", kestrel.Identity())).OnCollide = g.collect
		c.SetRotation(45)
		spin.AnimateScale(kestrel.Vec2{X: 0.6, Y: 0.6}, kestrel.Anim{Duration: 700 * time.Millisecond, Easing: kestrel.InOutSine, PauseSensitive: true})
	}

	g.score = eng.NewObject(kestrel.ObjectText, "score", kestrel.Sized(15, -5, 28, 6))
	g.score.Absolute = true
	g.score.SetText(scoreText(0))

	clock := eng.NewObject(kestrel.ObjectTimer, "clock", kestrel.Sized(85, -5, 28, 6))
	clock.Absolute = true
	clock.Text.Align = kestrel.AlignRight
	clock.Chrono.Start()

	eng.Camera().Follow(g.player, kestrel.Padding{Top: 3, Right: 6, Bottom: 2, Left: 6})
	eng.Camera().SetBounds(kestrel.WorldRect{X: 8, Y: 0, W: 60, H: 30})
	eng.OnUpdate = g.update

	if err := kestrel.Run(eng); err != nil {
		log.Fatal(err)
	}
}
