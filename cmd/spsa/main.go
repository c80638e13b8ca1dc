package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/hop/assets"
	"github.com/milk9111/hop/ecs/component"
	"github.com/milk9111/hop/ecs/system"
	"github.com/milk9111/hop/prefabs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const previewSize = 512

type previewGame struct {
	sheet  *ebiten.Image
	anim   component.Animation
	moving bool
	flip   bool
	scale  float64
}

func (g *previewGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.moving = !g.moving
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.flip = !g.flip
	}
	system.Advance(&g.anim, g.moving)
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x20, 0x20, 0x28, 0xff})

	l := g.anim.Layout
	w := int(float64(l.FrameW) * g.scale)
	h := int(float64(l.FrameH) * g.scale)
	p := system.Placement{
		Src:  l.Cell(g.anim.Frame),
		X:    (previewSize - w) / 2,
		Y:    (previewSize - h) / 2,
		W:    w,
		H:    h,
		Flip: g.flip,
	}
	if cell, ok := g.sheet.SubImage(p.Src).(*ebiten.Image); ok {
		op := &ebiten.DrawImageOptions{}
		op.GeoM = system.SpriteGeoM(p, 1)
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(cell, op)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("frame %d/%d  hold %d/%d  moving %v  flip %v\nspace: toggle moving  f: flip",
		g.anim.Frame, l.FrameCount, g.anim.Hold, l.FrameDelay, g.moving, g.flip))
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return previewSize, previewSize
}

func main() {
	def := prefabs.DefaultPlayerSpec().Sprite
	path := flag.String("sheet", def.Path, "sprite sheet PNG")
	frameW := flag.Int("fw", def.FrameW, "frame width")
	frameH := flag.Int("fh", def.FrameH, "frame height")
	count := flag.Int("frames", def.FrameCount, "frame count")
	cols := flag.Int("cols", def.Columns, "columns per row")
	delay := flag.Int("delay", def.FrameDelay, "ticks held per frame")
	scale := flag.Float64("scale", 4, "preview scale")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).With().Timestamp().Logger()

	layout := component.SheetLayout{FrameW: *frameW, FrameH: *frameH, FrameCount: *count, Columns: *cols, FrameDelay: *delay}

	img, err := assets.DecodeImage(os.DirFS("."), *path)
	if err != nil {
		log.Warn().Err(err).Msg("previewing placeholder sheet")
		img = assets.Placeholder(layout)
	}

	g := &previewGame{
		sheet: ebiten.NewImageFromImage(img),
		anim:  component.Animation{Layout: layout},
		scale: *scale,
	}
	ebiten.SetWindowSize(previewSize, previewSize)
	ebiten.SetWindowTitle("Sprite Sheet Preview")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal().Err(err).Msg("preview exited")
	}
}
