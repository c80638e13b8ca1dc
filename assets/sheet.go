package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/hop/ecs/component"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/colornames"
)

var ErrNotLoaded = errors.New("assets: sheet not loaded")

// SheetLoader decodes a sprite sheet in the background. Done is closed once
// an image is available, either the decoded file or a generated placeholder.
type SheetLoader struct {
	path   string
	layout component.SheetLayout
	done   chan struct{}

	img         image.Image
	err         error
	placeholder bool

	sheet *ebiten.Image
}

// LoadSheetAsync starts decoding path from fsys. A sheet that cannot be read
// or decoded is replaced by Placeholder(layout); the cause stays available
// from Err.
func LoadSheetAsync(fsys fs.FS, path string, layout component.SheetLayout) *SheetLoader {
	l := &SheetLoader{
		path:   path,
		layout: layout,
		done:   make(chan struct{}),
	}
	go l.load(fsys)
	return l
}

func (l *SheetLoader) load(fsys fs.FS) {
	defer close(l.done)

	img, err := DecodeImage(fsys, l.path)
	if err != nil {
		log.Warn().Err(err).Str("component", "assets").Str("path", l.path).Msg("sprite sheet unavailable, using placeholder")
		l.err = err
		l.img = Placeholder(l.layout)
		l.placeholder = true
		return
	}
	log.Debug().Str("component", "assets").Str("path", l.path).Stringer("size", img.Bounds().Size()).Msg("sprite sheet decoded")
	l.img = img
}

// Done is closed when the sheet is ready.
func (l *SheetLoader) Done() <-chan struct{} {
	return l.done
}

func (l *SheetLoader) ready() bool {
	select {
	case <-l.done:
		return true
	default:
		return false
	}
}

// Image returns the decoded (or placeholder) image.
func (l *SheetLoader) Image() (image.Image, error) {
	if !l.ready() {
		return nil, ErrNotLoaded
	}
	return l.img, nil
}

// Sheet returns the GPU image for the sheet. It must be called from the game
// goroutine.
func (l *SheetLoader) Sheet() (*ebiten.Image, error) {
	if l.sheet != nil {
		return l.sheet, nil
	}
	img, err := l.Image()
	if err != nil {
		return nil, err
	}
	l.sheet = ebiten.NewImageFromImage(img)
	return l.sheet, nil
}

// Placeholder reports whether the file failed and a generated sheet is used.
func (l *SheetLoader) Placeholder() bool {
	return l.ready() && l.placeholder
}

// Err is the read or decode error, if any.
func (l *SheetLoader) Err() error {
	if !l.ready() {
		return nil
	}
	return l.err
}

// DecodeImage reads and decodes one image from fsys.
func DecodeImage(fsys fs.FS, path string) (image.Image, error) {
	clean := cleanAssetPath(path)
	f, err := fsys.Open(clean)
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", clean, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", clean, err)
	}
	return img, nil
}

var placeholderTints = []color.RGBA{
	colornames.Tomato,
	colornames.Gold,
	colornames.Mediumseagreen,
	colornames.Cornflowerblue,
	colornames.Orchid,
	colornames.Sandybrown,
}

// Placeholder draws a sheet with the given layout: one tinted figure per
// frame, legs alternating so the walk cycle is visible.
func Placeholder(layout component.SheetLayout) *image.RGBA {
	bounds := layout.Bounds()
	if bounds.Empty() {
		bounds = image.Rect(0, 0, 1, 1)
	}
	img := image.NewRGBA(bounds)

	for i := 0; i < layout.FrameCount; i++ {
		cell := layout.Cell(i)
		w, h := cell.Dx(), cell.Dy()
		tint := placeholderTints[i%len(placeholderTints)]

		body := image.Rect(w/4, h/4, w-w/4, h-h/4).Add(cell.Min)
		draw.Draw(img, body, image.NewUniform(tint), image.Point{}, draw.Src)

		head := image.Rect(w/3, h/16, w-w/3, h/4).Add(cell.Min)
		draw.Draw(img, head, image.NewUniform(colornames.Peachpuff), image.Point{}, draw.Src)

		// facing marker on the right so flips are visible
		eye := image.Rect(w-w/3-w/8, h/8, w-w/3, h/8+h/16).Add(cell.Min)
		draw.Draw(img, eye, image.NewUniform(colornames.Black), image.Point{}, draw.Src)

		stride := (i % 2) * (w / 8)
		legW := w / 8
		left := image.Rect(w/4+stride, h-h/4, w/4+stride+legW, h).Add(cell.Min)
		right := image.Rect(w-w/4-legW-stride, h-h/4, w-w/4-stride, h).Add(cell.Min)
		draw.Draw(img, left, image.NewUniform(colornames.Dimgray), image.Point{}, draw.Src)
		draw.Draw(img, right, image.NewUniform(colornames.Dimgray), image.Point{}, draw.Src)
	}
	return img
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(filepath.Clean(path))
	s = strings.TrimPrefix(s, "./")
	return strings.TrimPrefix(s, "/")
}
