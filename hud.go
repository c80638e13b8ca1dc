package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/hop/controls"
	"github.com/milk9111/hop/ecs"
	"github.com/milk9111/hop/ecs/component"
	"golang.org/x/image/colornames"
)

var (
	controlIdle = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x40}
	controlHeld = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x90}
	controlEdge = colornames.Whitesmoke
)

// drawControls draws the touch pad in logical pixels scaled by the DPR.
func (g *Game) drawControls(screen *ebiten.Image) {
	if !g.showControls() {
		return
	}
	pad := g.input.Pad()
	if pad == nil {
		return
	}
	s := float32(g.dpr)

	for _, b := range []*controls.Button{pad.Left, pad.Right, pad.Jump} {
		if b == nil {
			continue
		}
		fill := controlIdle
		if b.Held() {
			fill = controlHeld
		}
		r := b.Bounds
		vector.DrawFilledRect(screen, float32(r.X)*s, float32(r.Y)*s, float32(r.W)*s, float32(r.H)*s, fill, false)
		vector.StrokeRect(screen, float32(r.X)*s, float32(r.Y)*s, float32(r.W)*s, float32(r.H)*s, 2*s, controlEdge, false)
	}

	if st := pad.Stick; st != nil && st.Active() {
		ox, oy := st.Origin()
		vector.StrokeCircle(screen, float32(ox)*s, float32(oy)*s, float32(st.ThumbClamp*2)*s, 2*s, controlEdge, false)
		vector.DrawFilledCircle(screen, float32(ox+st.Thumb())*s, float32(oy)*s, float32(st.ThumbClamp)*s, controlHeld, false)
	}
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.2f  TPS: %.2f\n", ebiten.ActualFPS(), ebiten.ActualTPS())
	fmt.Fprintf(&b, "loop: %s  frames: %d  holds: %v\n", g.driver.State(), g.driver.Frames(), g.gate.Holds())

	m := g.metrics()
	fmt.Fprintf(&b, "viewport: %.0fx%.0f @%.2f  surface: %dx%d\n", m.Width, m.Height, m.DPR, m.SurfaceWidth, m.SurfaceHeight)

	t, okT := ecs.Get(g.world, g.player, component.TransformComponent)
	body, okB := ecs.Get(g.world, g.player, component.BodyComponent)
	anim, okA := ecs.Get(g.world, g.player, component.AnimationComponent)
	if okT && okB && okA {
		fmt.Fprintf(&b, "pos: (%.1f, %.1f)  vy: %.2f  grounded: %v\n", t.Position.X, t.Position.Y, body.Velocity.Y, body.Grounded)
		fmt.Fprintf(&b, "frame: %d  hold: %d  facing left: %v\n", anim.Frame, anim.Hold, body.FacingLeft)
	}
	if in, ok := ecs.Get(g.world, g.player, component.IntentComponent); ok {
		fmt.Fprintf(&b, "intent: left=%v right=%v jump=%v\n", in.Left, in.Right, in.Jump)
	}
	if g.loader.Placeholder() {
		fmt.Fprintf(&b, "sprite: placeholder (%v)\n", g.loader.Err())
	}
	if g.script != nil {
		fmt.Fprintf(&b, "script: %s disabled=%v\n", g.opts.Script, g.script.Disabled())
	}
	ebitenutil.DebugPrint(screen, b.String())
}
