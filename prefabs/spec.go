package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

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

// HeroSpec tunes the player entity. Level data provides gravity, speed and
// the start position; everything else lives here.
type HeroSpec struct {
	Name         string        `yaml:"name"`
	JumpImpulse  float64       `yaml:"jump_impulse"`
	GravityScale float64       `yaml:"gravity_scale"`
	MaxFallSpeed float64       `yaml:"max_fall_speed"`
	Collider     ColliderSpec  `yaml:"collider"`
	Animation    AnimationSpec `yaml:"animation"`
	Audio        []AudioSpec   `yaml:"audio"`
	DebugColor   *YAMLColor    `yaml:"debug_color"`
}

func LoadHeroSpec() (*HeroSpec, error) {
	spec, err := LoadSpec[HeroSpec]("hero.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Collider.Width <= 0 || spec.Collider.Height <= 0 {
		return nil, fmt.Errorf("prefabs: hero.yaml: collider must have a positive size")
	}
	return &spec, nil
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type AnimationSpec struct {
	Sheet    string                      `yaml:"sheet"`
	Interval float64                     `yaml:"interval"`
	Defs     map[string]AnimationDefSpec `yaml:"defs"`
}

type AnimationDefSpec struct {
	Row    int `yaml:"row"`
	Frames int `yaml:"frames"`
	FrameW int `yaml:"frame_w"`
	FrameH int `yaml:"frame_h"`
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

type YAMLColor struct {
	color.Color
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
