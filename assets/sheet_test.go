package assets

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"testing"
	"testing/fstest"
	"time"

	"github.com/milk9111/hop/ecs/component"
)

var testLayout = component.SheetLayout{FrameW: 64, FrameH: 64, FrameCount: 5, Columns: 2, FrameDelay: 10}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(3, 4, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func wait(t *testing.T, l *SheetLoader) {
	t.Helper()
	select {
	case <-l.Done():
	case <-time.After(2 * time.Second):
		t.Fatalf("loader did not finish")
	}
}

func TestLoadSheetAsync(t *testing.T) {
	fsys := fstest.MapFS{
		"img/personagem.png": &fstest.MapFile{Data: encodePNG(t, 128, 192)},
		"img/broken.png":     &fstest.MapFile{Data: []byte("not a png")},
	}

	cases := []struct {
		name            string
		path            string
		wantPlaceholder bool
		wantErr         error
	}{
		{"decoded", "img/personagem.png", false, nil},
		{"dot_prefix", "./img/personagem.png", false, nil},
		{"missing", "img/missing.png", true, fs.ErrNotExist},
		{"corrupt", "img/broken.png", true, image.ErrFormat},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := LoadSheetAsync(fsys, c.path, testLayout)
			wait(t, l)

			img, err := l.Image()
			if err != nil {
				t.Fatalf("image: %v", err)
			}
			if got := img.Bounds().Size(); got != image.Pt(128, 192) {
				t.Fatalf("size = %v, want 128x192", got)
			}
			if l.Placeholder() != c.wantPlaceholder {
				t.Fatalf("placeholder = %v", l.Placeholder())
			}
			if c.wantErr == nil && l.Err() != nil {
				t.Fatalf("unexpected err: %v", l.Err())
			}
			if c.wantErr != nil && !errors.Is(l.Err(), c.wantErr) {
				t.Fatalf("err = %v, want %v", l.Err(), c.wantErr)
			}
		})
	}
}

func TestSheetNotLoaded(t *testing.T) {
	l := &SheetLoader{done: make(chan struct{})}
	if _, err := l.Image(); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("err = %v, want ErrNotLoaded", err)
	}
	if _, err := l.Sheet(); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("err = %v, want ErrNotLoaded", err)
	}
	if l.Placeholder() || l.Err() != nil {
		t.Fatalf("pending loader should report nothing yet")
	}
}

func TestPlaceholderCells(t *testing.T) {
	img := Placeholder(testLayout)
	if img.Bounds() != testLayout.Bounds() {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	for i := 0; i < testLayout.FrameCount; i++ {
		c := testLayout.Cell(i)
		mid := img.RGBAAt(c.Min.X+c.Dx()/2, c.Min.Y+c.Dy()/2)
		if mid.A == 0 {
			t.Fatalf("frame %d has an empty center", i)
		}
		if corner := img.RGBAAt(c.Min.X, c.Min.Y); corner.A != 0 {
			t.Fatalf("frame %d corner should be transparent", i)
		}
	}
	// unused sixth cell stays empty
	spare := testLayout.Cell(5)
	if px := img.RGBAAt(spare.Min.X+32, spare.Min.Y+32); px.A != 0 {
		t.Fatalf("spare cell drawn: %v", px)
	}
}

func TestCleanAssetPath(t *testing.T) {
	cases := map[string]string{
		"":                   "",
		"img/personagem.png": "img/personagem.png",
		"./img/a.png":        "img/a.png",
		"/img/a.png":         "img/a.png",
		"img//a.png":         "img/a.png",
	}
	for in, want := range cases {
		if got := cleanAssetPath(in); got != want {
			t.Fatalf("cleanAssetPath(%q) = %q, want %q", in, got, want)
		}
	}
}
