package system

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/hop/common"
	"github.com/milk9111/hop/ecs"
	"github.com/milk9111/hop/ecs/component"
)

// Placement is where one sprite cell lands on screen, in whole logical
// pixels.
type Placement struct {
	Src  image.Rectangle
	X, Y int
	W, H int
	Flip bool
}

// Place rounds the body to whole pixels so pixel art stays crisp.
func Place(t component.Transform, b component.Body, anim component.Animation) Placement {
	return Placement{
		Src:  anim.Layout.Cell(anim.Frame),
		X:    common.RoundHalfUp(t.Position.X),
		Y:    common.RoundHalfUp(t.Position.Y),
		W:    common.RoundHalfUp(b.Width),
		H:    common.RoundHalfUp(b.Height),
		Flip: b.FacingLeft,
	}
}

// SpriteGeoM maps the source cell onto the placement, mirrored around the
// placement's vertical axis when flipped, then scales to device pixels.
func SpriteGeoM(p Placement, dpr float64) ebiten.GeoM {
	var g ebiten.GeoM
	if p.Src.Dx() == 0 || p.Src.Dy() == 0 {
		return g
	}
	sx := float64(p.W) / float64(p.Src.Dx())
	sy := float64(p.H) / float64(p.Src.Dy())
	if p.Flip {
		g.Scale(-sx, sy)
		g.Translate(float64(p.X+p.W), float64(p.Y))
	} else {
		g.Scale(sx, sy)
		g.Translate(float64(p.X), float64(p.Y))
	}
	if dpr > 0 {
		g.Scale(dpr, dpr)
	}
	return g
}

type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Draw clears the screen and blits every sprite. It reads the world only.
func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	screen.Clear()

	dpr := 1.0
	if stage, ok := Stage(w); ok {
		dpr = stage.Metrics.DPR
	}

	for _, e := range w.Query(component.SpriteComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(), component.AnimationComponent.Kind()) {
		sprite, _ := ecs.Get(w, e, component.SpriteComponent)
		if sprite.Sheet == nil {
			continue
		}
		t, _ := ecs.Get(w, e, component.TransformComponent)
		b, _ := ecs.Get(w, e, component.BodyComponent)
		anim, _ := ecs.Get(w, e, component.AnimationComponent)

		p := Place(*t, *b, *anim)
		cell, ok := sprite.Sheet.SubImage(p.Src).(*ebiten.Image)
		if !ok {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM = SpriteGeoM(p, dpr)
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(cell, op)
	}
}
