package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Name      string        `yaml:"name"`
	MoveSpeed float64       `yaml:"move_speed"`
	JumpSpeed float64       `yaml:"jump_speed"`
	Width     float64       `yaml:"width"`
	Height    float64       `yaml:"height"`
	Color     *YAMLColor    `yaml:"color"`
	Animation AnimationSpec `yaml:"animation"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s PlayerSpec) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: player size %vx%v", ErrInvalidSpec, s.Width, s.Height)
	}
	if s.MoveSpeed < 0 || s.JumpSpeed < 0 {
		return fmt.Errorf("%w: negative player speed", ErrInvalidSpec)
	}
	return nil
}

// AnimationSpec describes the four player clips. Speed is in frames per tick,
// so 0.2 advances one frame every five ticks.
type AnimationSpec struct {
	Defs map[string]AnimationDefSpec `yaml:"defs"`
}

type AnimationDefSpec struct {
	FrameCount int     `yaml:"frame_count"`
	Speed      float64 `yaml:"speed"`
}

// Frame returns the frame index of clip after ticks ticks. Clips loop.
func (a AnimationSpec) Frame(clip string, ticks int) int {
	def, ok := a.Defs[clip]
	if !ok || def.FrameCount <= 0 || def.Speed <= 0 {
		return 0
	}
	return int(float64(ticks)*def.Speed) % def.FrameCount
}

type SceneSpec struct {
	Gravity    float64        `yaml:"gravity"`
	Parallax   float64        `yaml:"parallax"`
	FollowBand FollowBandSpec `yaml:"follow_band"`
	ViewWidth  int            `yaml:"view_width"`
	ViewHeight int            `yaml:"view_height"`
	Colors     SceneColors    `yaml:"colors"`
}

type FollowBandSpec struct {
	Left  float64 `yaml:"left"`
	Right float64 `yaml:"right"`
}

type SceneColors struct {
	Sky      *YAMLColor `yaml:"sky"`
	Hills    *YAMLColor `yaml:"hills"`
	Platform *YAMLColor `yaml:"platform"`
	Band     *YAMLColor `yaml:"band"`
}

func LoadSceneSpec() (*SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec]("scene.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s SceneSpec) Validate() error {
	if s.FollowBand.Right <= s.FollowBand.Left {
		return fmt.Errorf("%w: follow band %v..%v", ErrInvalidSpec, s.FollowBand.Left, s.FollowBand.Right)
	}
	if s.Gravity < 0 {
		return fmt.Errorf("%w: negative gravity", ErrInvalidSpec)
	}
	return nil
}

type YAMLColor struct {
	color.Color
}

// Or returns the color, or fallback when unset.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
