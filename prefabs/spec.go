package prefabs

import (
	"errors"
	"fmt"
	"os"

	"github.com/milk9111/hop/controls"
	"github.com/milk9111/hop/viewport"
	"gopkg.in/yaml.v3"
)

// PlayerFile is the embedded tuning file name.
const PlayerFile = "player.yaml"

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ViewportSpec struct {
	CharacterFraction float64 `yaml:"character_fraction"`
	SpeedFraction     float64 `yaml:"speed_fraction"`
	GravityFraction   float64 `yaml:"gravity_fraction"`
	JumpFraction      float64 `yaml:"jump_fraction"`
}

// Config converts the fractions to viewport tuning.
func (v ViewportSpec) Config() viewport.Config {
	return viewport.Config{
		CharacterFraction: v.CharacterFraction,
		SpeedFraction:     v.SpeedFraction,
		GravityFraction:   v.GravityFraction,
		JumpFraction:      v.JumpFraction,
	}
}

type SpriteSpec struct {
	Path       string `yaml:"path"`
	FrameW     int    `yaml:"frame_w"`
	FrameH     int    `yaml:"frame_h"`
	FrameCount int    `yaml:"frame_count"`
	Columns    int    `yaml:"columns"`
	FrameDelay int    `yaml:"frame_delay"`
}

// KeysSpec lists key names per action, as understood by ebiten.Key.
type KeysSpec struct {
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Jump  []string `yaml:"jump"`
}

type ControlsSpec struct {
	ButtonFraction float64 `yaml:"button_fraction"`
	MarginFraction float64 `yaml:"margin_fraction"`
	DeadZone       float64 `yaml:"dead_zone"`
	ThumbClamp     float64 `yaml:"thumb_clamp"`
}

// Layout converts the spec to a control layout.
func (c ControlsSpec) Layout() controls.LayoutConfig {
	return controls.LayoutConfig{
		ButtonFraction: c.ButtonFraction,
		MarginFraction: c.MarginFraction,
		DeadZone:       c.DeadZone,
		ThumbClamp:     c.ThumbClamp,
	}
}

type PlayerSpec struct {
	Name     string       `yaml:"name"`
	Start    PointSpec    `yaml:"start"`
	Viewport ViewportSpec `yaml:"viewport"`
	Sprite   SpriteSpec   `yaml:"sprite"`
	Keys     KeysSpec     `yaml:"keys"`
	Controls ControlsSpec `yaml:"controls"`
}

// DefaultPlayerSpec mirrors the embedded player.yaml.
func DefaultPlayerSpec() PlayerSpec {
	return PlayerSpec{
		Name:  "player",
		Start: PointSpec{X: 50, Y: 0},
		Viewport: ViewportSpec{
			CharacterFraction: 0.20,
			SpeedFraction:     0.002,
			GravityFraction:   0.0005,
			JumpFraction:      0.025,
		},
		Sprite: SpriteSpec{
			Path:       "img/personagem.png",
			FrameW:     64,
			FrameH:     64,
			FrameCount: 5,
			Columns:    2,
			FrameDelay: 10,
		},
		Keys: KeysSpec{
			Left:  []string{"ArrowLeft", "A"},
			Right: []string{"ArrowRight", "D"},
			Jump:  []string{"ArrowUp", "W", "Space"},
		},
		Controls: ControlsSpec{
			ButtonFraction: 0.14,
			MarginFraction: 0.03,
			DeadZone:       15,
			ThumbClamp:     30,
		},
	}
}

// Validate rejects specs the game cannot run with.
func (s PlayerSpec) Validate() error {
	v := s.Viewport
	switch {
	case v.CharacterFraction <= 0 || v.CharacterFraction > 1:
		return fmt.Errorf("%w: character_fraction %v not in (0, 1]", ErrInvalidSpec, v.CharacterFraction)
	case v.SpeedFraction < 0 || v.GravityFraction < 0 || v.JumpFraction < 0:
		return fmt.Errorf("%w: physics fractions must not be negative", ErrInvalidSpec)
	}
	sp := s.Sprite
	switch {
	case sp.FrameW <= 0 || sp.FrameH <= 0:
		return fmt.Errorf("%w: frame size %dx%d", ErrInvalidSpec, sp.FrameW, sp.FrameH)
	case sp.FrameCount <= 0:
		return fmt.Errorf("%w: frame_count %d", ErrInvalidSpec, sp.FrameCount)
	case sp.Columns <= 0:
		return fmt.Errorf("%w: columns %d", ErrInvalidSpec, sp.Columns)
	case sp.FrameDelay <= 0:
		return fmt.Errorf("%w: frame_delay %d", ErrInvalidSpec, sp.FrameDelay)
	}
	if s.Controls.DeadZone < 0 || s.Controls.ThumbClamp < 0 {
		return fmt.Errorf("%w: joystick dead_zone and thumb_clamp must not be negative", ErrInvalidSpec)
	}
	return nil
}

// ParsePlayerSpec decodes YAML over the defaults and validates the result.
// Fields missing from data keep their default values.
func ParsePlayerSpec(data []byte) (PlayerSpec, error) {
	spec := DefaultPlayerSpec()
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return DefaultPlayerSpec(), fmt.Errorf("prefabs: unmarshal player spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return DefaultPlayerSpec(), err
	}
	return spec, nil
}

// LoadPlayerSpec reads the tuning from path, or from the prefab directory and
// embedded copy when path is empty.
func LoadPlayerSpec(path string) (PlayerSpec, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		path = PlayerFile
		data, err = Load(PlayerFile)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return DefaultPlayerSpec(), fmt.Errorf("prefabs: load %s: %w", path, err)
	}
	spec, err := ParsePlayerSpec(data)
	if err != nil {
		return spec, fmt.Errorf("prefabs: %s: %w", path, err)
	}
	return spec, nil
}
