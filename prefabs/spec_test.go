package prefabs

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedPlayerSpecMatchesDefaults(t *testing.T) {
	data, err := PrefabsFS.ReadFile(PlayerFile)
	if err != nil {
		t.Fatalf("read embedded spec: %v", err)
	}
	spec, err := ParsePlayerSpec(data)
	if err != nil {
		t.Fatalf("parse embedded spec: %v", err)
	}
	if !reflect.DeepEqual(spec, DefaultPlayerSpec()) {
		t.Fatalf("embedded spec diverged from defaults:\n got %+v\nwant %+v", spec, DefaultPlayerSpec())
	}
}

func TestParsePlayerSpec(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantErr error
		check   func(t *testing.T, s PlayerSpec)
	}{
		{
			name: "partial_override_keeps_defaults",
			yaml: "viewport:\n  character_fraction: 0.1\n",
			check: func(t *testing.T, s PlayerSpec) {
				if s.Viewport.CharacterFraction != 0.1 {
					t.Fatalf("character fraction = %v", s.Viewport.CharacterFraction)
				}
				if s.Viewport.GravityFraction != 0.0005 || s.Sprite.FrameCount != 5 {
					t.Fatalf("defaults lost: %+v", s)
				}
			},
		},
		{
			name: "keys_replace_not_append",
			yaml: "keys:\n  jump: [K]\n",
			check: func(t *testing.T, s PlayerSpec) {
				if !reflect.DeepEqual(s.Keys.Jump, []string{"K"}) {
					t.Fatalf("jump keys = %v", s.Keys.Jump)
				}
			},
		},
		{name: "zero_character_fraction", yaml: "viewport:\n  character_fraction: 0\n", wantErr: ErrInvalidSpec},
		{name: "negative_gravity", yaml: "viewport:\n  gravity_fraction: -1\n", wantErr: ErrInvalidSpec},
		{name: "zero_columns", yaml: "sprite:\n  columns: 0\n", wantErr: ErrInvalidSpec},
		{name: "zero_delay", yaml: "sprite:\n  frame_delay: 0\n", wantErr: ErrInvalidSpec},
		{name: "negative_dead_zone", yaml: "controls:\n  dead_zone: -2\n", wantErr: ErrInvalidSpec},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec, err := ParsePlayerSpec([]byte(c.yaml))
			if c.wantErr != nil {
				if !errors.Is(err, c.wantErr) {
					t.Fatalf("err = %v, want %v", err, c.wantErr)
				}
				if !reflect.DeepEqual(spec, DefaultPlayerSpec()) {
					t.Fatalf("invalid spec should fall back to defaults")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			c.check(t, spec)
		})
	}
}

func TestParsePlayerSpecSyntaxError(t *testing.T) {
	if _, err := ParsePlayerSpec([]byte("viewport: [")); err == nil || !strings.Contains(err.Error(), "unmarshal") {
		t.Fatalf("expected unmarshal error, got %v", err)
	}
}

func TestLoadPlayerSpecFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("start:\n  x: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	spec, err := LoadPlayerSpec(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.Start.X != 7 {
		t.Fatalf("start x = %v", spec.Start.X)
	}

	if _, err := LoadPlayerSpec(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestSpecConversions(t *testing.T) {
	s := DefaultPlayerSpec()
	cfg := s.Viewport.Config()
	if cfg.CharacterFraction != 0.20 || cfg.JumpFraction != 0.025 {
		t.Fatalf("viewport config = %+v", cfg)
	}
	layout := s.Controls.Layout()
	if layout.DeadZone != 15 || layout.ThumbClamp != 30 {
		t.Fatalf("control layout = %+v", layout)
	}
}

func TestCleanScriptPath(t *testing.T) {
	cases := map[string]string{
		"autopilot":                       "scripts/autopilot.tengo",
		"autopilot.tengo":                 "scripts/autopilot.tengo",
		"scripts/autopilot.tengo":         "scripts/autopilot.tengo",
		"prefabs/scripts/autopilot.tengo": "scripts/autopilot.tengo",
	}
	for in, want := range cases {
		if got := cleanScriptPath(in); got != want {
			t.Fatalf("cleanScriptPath(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := LoadScript("autopilot"); err != nil {
		t.Fatalf("load embedded script: %v", err)
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "player.yaml")
	other := filepath.Join(dir, "other.yaml")
	if err := os.WriteFile(path, []byte("name: a\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(other, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("name: b\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	want, _ := filepath.Abs(path)
	select {
	case got := <-w.Events:
		if got != want {
			t.Fatalf("event for %q, want %q", got, want)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no event for watched file")
	}
}
