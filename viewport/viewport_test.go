package viewport

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCompute(t *testing.T) {
	cases := []struct {
		name          string
		width, height float64
		dpr           float64
		wantSurfaceW  int
		wantSurfaceH  int
		wantSize      float64
		wantGravity   float64
		wantJump      float64
		wantSpeed     float64
		wantDPR       float64
	}{
		{"desktop_1x", 1000, 500, 1, 1000, 500, 100, 0.25, -12.5, 2, 1},
		{"retina_2x", 800, 600, 2, 1600, 1200, 120, 0.3, -15, 1.6, 2},
		{"missing_dpr_defaults_to_1", 640, 400, 0, 640, 400, 80, 0.2, -10, 1.28, 1},
		{"fractional_dpr_truncates_surface", 333, 200, 1.5, 499, 300, 40, 0.1, -5, 0.666, 1.5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := Compute(c.width, c.height, c.dpr, DefaultConfig())
			if m.SurfaceWidth != c.wantSurfaceW || m.SurfaceHeight != c.wantSurfaceH {
				t.Fatalf("surface = %dx%d, want %dx%d", m.SurfaceWidth, m.SurfaceHeight, c.wantSurfaceW, c.wantSurfaceH)
			}
			if !almostEqual(m.CharacterSize, c.wantSize) {
				t.Fatalf("character size = %v, want %v", m.CharacterSize, c.wantSize)
			}
			if !almostEqual(m.Gravity, c.wantGravity) {
				t.Fatalf("gravity = %v, want %v", m.Gravity, c.wantGravity)
			}
			if !almostEqual(m.JumpImpulse, c.wantJump) {
				t.Fatalf("jump impulse = %v, want %v", m.JumpImpulse, c.wantJump)
			}
			if !almostEqual(m.Speed, c.wantSpeed) {
				t.Fatalf("speed = %v, want %v", m.Speed, c.wantSpeed)
			}
			if m.DPR != c.wantDPR {
				t.Fatalf("dpr = %v, want %v", m.DPR, c.wantDPR)
			}
		})
	}
}

func TestComputeIsIdempotent(t *testing.T) {
	a := Compute(1280, 720, 2, DefaultConfig())
	b := Compute(1280, 720, 2, DefaultConfig())
	if a != b {
		t.Fatalf("expected identical metrics, got %+v and %+v", a, b)
	}
}

func TestGroundLevelAndClamp(t *testing.T) {
	m := Compute(1000, 500, 1, DefaultConfig())
	if m.GroundLevel() != 400 {
		t.Fatalf("ground level = %v, want 400", m.GroundLevel())
	}

	cases := []struct {
		name string
		x    float64
		want float64
	}{
		{"inside", 450, 450},
		{"left_of_zero", -3, 0},
		{"past_right_edge", 950, 900},
		{"exact_right_edge", 900, 900},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := m.ClampX(c.x); got != c.want {
				t.Fatalf("ClampX(%v) = %v, want %v", c.x, got, c.want)
			}
		})
	}
}

func TestClampXWhenCharacterWiderThanViewport(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CharacterFraction = 0.3
	m := Compute(100, 1000, 1, cfg)
	if got := m.ClampX(10); got != -200 {
		t.Fatalf("ClampX = %v, want right edge -200", got)
	}
}

func TestShouldLock(t *testing.T) {
	touch := DeviceTraits{CoarsePointer: true, NoHover: true}
	mouse := DeviceTraits{}
	hybrid := DeviceTraits{CoarsePointer: true}

	portrait := Compute(400, 800, 1, DefaultConfig())
	landscape := Compute(800, 400, 1, DefaultConfig())
	square := Compute(500, 500, 1, DefaultConfig())

	cases := []struct {
		name   string
		traits DeviceTraits
		m      Metrics
		want   bool
	}{
		{"touch_portrait", touch, portrait, true},
		{"touch_landscape", touch, landscape, false},
		{"touch_square", touch, square, false},
		{"mouse_portrait", mouse, portrait, false},
		{"hybrid_portrait", hybrid, portrait, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ShouldLock(c.traits, c.m); got != c.want {
				t.Fatalf("ShouldLock = %v, want %v", got, c.want)
			}
		})
	}
}

func TestDetector(t *testing.T) {
	t.Run("forced_on", func(t *testing.T) {
		d := Detector{Mode: TouchOn}
		if !d.Traits().TouchPrimary() {
			t.Fatalf("expected touch-primary")
		}
	})
	t.Run("forced_off_ignores_touches", func(t *testing.T) {
		d := Detector{Mode: TouchOff}
		d.ObserveTouch()
		if d.Traits().TouchPrimary() {
			t.Fatalf("expected not touch-primary")
		}
	})
	t.Run("auto_mobile", func(t *testing.T) {
		d := Detector{Mode: TouchAuto, Mobile: true}
		if !d.Traits().TouchPrimary() {
			t.Fatalf("expected mobile to be touch-primary")
		}
	})
	t.Run("auto_touch_without_hover", func(t *testing.T) {
		d := Detector{Mode: TouchAuto}
		if d.Traits().TouchPrimary() {
			t.Fatalf("no touch seen yet")
		}
		d.ObserveCursor(0, 0)
		d.ObserveTouch()
		d.ObserveCursor(10, 10)
		if !d.Traits().TouchPrimary() {
			t.Fatalf("expected touch-primary after touch")
		}
	})
	t.Run("auto_mouse_moved_first", func(t *testing.T) {
		d := Detector{Mode: TouchAuto}
		d.ObserveCursor(0, 0)
		d.ObserveCursor(5, 0)
		d.ObserveTouch()
		if d.Traits().TouchPrimary() {
			t.Fatalf("hovering pointer should not be touch-primary")
		}
	})
}

func TestParseTouchMode(t *testing.T) {
	for in, want := range map[string]TouchMode{"on": TouchOn, "off": TouchOff, "auto": TouchAuto, "": TouchAuto, "bogus": TouchAuto} {
		if got := ParseTouchMode(in); got != want {
			t.Fatalf("ParseTouchMode(%q) = %q, want %q", in, got, want)
		}
	}
}
