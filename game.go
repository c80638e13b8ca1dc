package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/hop/assets"
	"github.com/milk9111/hop/controls"
	"github.com/milk9111/hop/ecs"
	"github.com/milk9111/hop/ecs/component"
	"github.com/milk9111/hop/ecs/entity"
	"github.com/milk9111/hop/ecs/system"
	"github.com/milk9111/hop/loop"
	"github.com/milk9111/hop/prefabs"
	"github.com/milk9111/hop/viewport"
	"github.com/rs/zerolog/log"
)

// Options are the command line settings the game is built from.
type Options struct {
	Debug           bool
	TuningPath      string
	SpritePath      string
	Script          string
	Touch           viewport.TouchMode
	Joystick        bool
	OrientationLock bool
	Mobile          bool
}

type Game struct {
	opts Options
	spec prefabs.PlayerSpec

	world  *ecs.World
	player ecs.Entity
	step   *ecs.Scheduler
	input  *system.InputSystem
	script *system.ScriptSystem
	render *system.RenderSystem

	ticks  *loop.TickScheduler
	driver *loop.Driver
	gate   *loop.Gate

	loader   *assets.SheetLoader
	detector *viewport.Detector
	pointers *system.EbitenPointers

	watcher    *prefabs.Watcher
	tuningFile string

	pauseUI  *ebitenui.UI
	rotateUI *ebitenui.UI

	outsideW, outsideH float64
	dpr                float64
	resized            bool
	quit               bool
}

func NewGame(opts Options) (*Game, error) {
	spec, err := prefabs.LoadPlayerSpec(opts.TuningPath)
	if err != nil {
		if opts.TuningPath != "" {
			return nil, err
		}
		log.Warn().Err(err).Str("component", "game").Msg("using default tuning")
	}
	if opts.SpritePath != "" {
		spec.Sprite.Path = opts.SpritePath
	}

	bindings, err := system.ParseBindings(spec.Keys)
	if err != nil {
		return nil, fmt.Errorf("game: key bindings: %w", err)
	}

	g := &Game{
		opts:     opts,
		spec:     spec,
		world:    ecs.NewWorld(),
		render:   system.NewRenderSystem(),
		ticks:    loop.NewTickScheduler(),
		detector: &viewport.Detector{Mode: opts.Touch, Mobile: opts.Mobile},
		dpr:      1,
	}

	if err := g.spawn(); err != nil {
		return nil, err
	}

	var pad *controls.Pad
	if opts.Touch != viewport.TouchOff {
		pad = controls.NewPad(spec.Controls.Layout(), opts.Joystick)
	}
	g.pointers = &system.EbitenPointers{
		DPR:      func() float64 { return g.dpr },
		OnTouch:  g.detector.ObserveTouch,
		OnCursor: g.detector.ObserveCursor,
	}
	g.input = system.NewInputSystem(system.EbitenKeys{}, bindings, padPointers{g}, pad)

	if opts.Script != "" {
		src, err := prefabs.LoadScript(opts.Script)
		if err != nil {
			return nil, fmt.Errorf("game: load script %s: %w", opts.Script, err)
		}
		g.script, err = system.NewScriptSystem(opts.Script, src)
		if err != nil {
			return nil, err
		}
	}

	// script, when present, runs before physics so its intents apply this step
	g.step = ecs.NewScheduler()
	if g.script != nil {
		g.step.Add(g.script)
	}
	g.step.Add(system.NewPhysicsSystem())
	g.step.Add(system.NewAnimationSystem())

	g.driver = loop.NewDriver(g.ticks, g.frame)
	g.gate = loop.NewGate(g.driver, loop.HoldLoading)

	g.pauseUI = NewPauseUI(g.resume, func() { g.quit = true })
	g.rotateUI = NewRotateUI()

	w, h := ebiten.WindowSize()
	g.applyViewport(float64(w), float64(h), deviceScale())

	g.loader = assets.LoadSheetAsync(os.DirFS("."), spec.Sprite.Path, entity.SheetLayout(spec.Sprite))
	g.watchTuning()

	return g, nil
}

func (g *Game) spawn() error {
	if _, err := entity.NewStage(g.world, g.spec.Viewport.Config()); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	player, err := entity.NewPlayer(g.world, g.spec)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	g.player = player
	return nil
}

func (g *Game) watchTuning() {
	path := g.opts.TuningPath
	if path == "" {
		path = filepath.Join(prefabs.Dir, prefabs.PlayerFile)
	}
	if _, err := os.Stat(path); err != nil {
		log.Debug().Str("component", "game").Str("path", path).Msg("no tuning file on disk, hot reload off")
		return
	}
	w, err := prefabs.NewWatcher(path)
	if err != nil {
		log.Warn().Err(err).Str("component", "game").Msg("hot reload unavailable")
		return
	}
	g.watcher = w
	g.tuningFile = path
}

// frame is one loop step: script, physics and animation. Drawing happens in
// Draw from whatever state the last step left.
func (g *Game) frame() {
	g.step.Update(g.world)
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	// device input is polled every tick so releases during a pause are not lost
	g.input.Update(g.world)
	g.ticks.Run()

	if g.resized {
		g.resized = false
		g.applyViewport(g.outsideW, g.outsideH, g.dpr)
	}
	g.updateOrientation()
	g.checkLoaded()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.setPaused(!g.gate.Held(loop.HoldPaused))
	}
	if g.gate.Held(loop.HoldPaused) {
		g.pauseUI.Update()
	}

	g.reloadTuning()
	return nil
}

func (g *Game) applyViewport(width, height, dpr float64) {
	m, ok := system.ApplyViewport(g.world, width, height, dpr)
	if !ok {
		return
	}
	g.dpr = m.DPR
	g.input.Pad().Relayout(m.Width, m.Height)
	log.Debug().Str("component", "game").
		Float64("width", m.Width).Float64("height", m.Height).Float64("dpr", m.DPR).
		Float64("character", m.CharacterSize).Msg("viewport applied")
}

func (g *Game) metrics() viewport.Metrics {
	if stage, ok := system.Stage(g.world); ok {
		return stage.Metrics
	}
	return viewport.Metrics{}
}

func (g *Game) updateOrientation() {
	lock := g.opts.OrientationLock && viewport.ShouldLock(g.detector.Traits(), g.metrics())
	g.gate.Set(loop.HoldOrientation, lock)
}

func (g *Game) checkLoaded() {
	if !g.gate.Held(loop.HoldLoading) {
		return
	}
	sheet, err := g.loader.Sheet()
	if errors.Is(err, assets.ErrNotLoaded) {
		return
	}
	if sprite, ok := ecs.Get(g.world, g.player, component.SpriteComponent); ok {
		sprite.Sheet = sheet
	}
	g.gate.Set(loop.HoldLoading, false)
}

func (g *Game) setPaused(paused bool) {
	g.gate.Set(loop.HoldPaused, paused)
}

func (g *Game) resume() {
	g.setPaused(false)
}

func (g *Game) reloadTuning() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		log.Warn().Err(err).Str("component", "game").Msg("tuning watcher error")
	default:
	}
	if _, ok := g.watcher.Poll(); !ok {
		return
	}

	spec, err := prefabs.LoadPlayerSpec(g.tuningFile)
	if err != nil {
		log.Warn().Err(err).Str("component", "game").Str("path", g.tuningFile).Msg("tuning reload rejected")
		return
	}
	bindings, err := system.ParseBindings(spec.Keys)
	if err != nil {
		log.Warn().Err(err).Str("component", "game").Msg("tuning reload rejected")
		return
	}

	g.input.SetBindings(bindings)
	pad := g.input.Pad()
	pad.SetLayout(spec.Controls.Layout())
	m, _ := system.Retune(g.world, spec.Viewport.Config())
	pad.Relayout(m.Width, m.Height)

	if anim, ok := ecs.Get(g.world, g.player, component.AnimationComponent); ok {
		anim.Layout = entity.SheetLayout(spec.Sprite)
		anim.Frame = anim.Frame % max(anim.Layout.FrameCount, 1)
	}
	// the sheet itself is not reloaded; the path is only read at startup
	spec.Sprite.Path = g.spec.Sprite.Path
	g.spec = spec
	log.Info().Str("component", "game").Str("path", g.tuningFile).Msg("tuning reloaded")
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	g.drawControls(screen)

	switch {
	case g.gate.Held(loop.HoldOrientation):
		g.rotateUI.Draw(screen)
	case g.gate.Held(loop.HoldPaused):
		g.pauseUI.Draw(screen)
	}

	if g.opts.Debug {
		g.drawDebug(screen)
	}
}

// LayoutF reports a surface of outside size times the device scale. A change
// in either is recorded and applied at the start of the next Update.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	dpr := deviceScale()
	m := g.metrics()
	if m.Changed(outsideWidth, outsideHeight, dpr) {
		g.outsideW, g.outsideH, g.dpr = outsideWidth, outsideHeight, dpr
		g.resized = true
	}
	return outsideWidth * dpr, outsideHeight * dpr
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func deviceScale() float64 {
	if m := ebiten.Monitor(); m != nil {
		if s := m.DeviceScaleFactor(); s > 0 {
			return s
		}
	}
	return 1
}

// padPointers hides pointers from the on-screen pad unless the device is
// touch-primary, while still letting the detector see every touch.
type padPointers struct {
	g *Game
}

func (p padPointers) Pointers() []controls.Pointer {
	ps := p.g.pointers.Pointers()
	if !p.g.showControls() {
		return nil
	}
	return ps
}

func (g *Game) showControls() bool {
	return g.opts.Touch != viewport.TouchOff && g.detector.Traits().TouchPrimary()
}
