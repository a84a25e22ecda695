package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrNoPlayers       = errors.New("prefabs: arena needs exactly two players")
	ErrInvalidGeometry = errors.New("prefabs: invalid geometry")
	ErrInvalidFacing   = errors.New("prefabs: facing must be left or right")
)

type ArenaSpec struct {
	Name       string         `yaml:"name"`
	Width      float64        `yaml:"width"`
	Height     float64        `yaml:"height"`
	Background *YAMLColor     `yaml:"background"`
	Physics    PhysicsSpec    `yaml:"physics"`
	Tuning     TuningSpec     `yaml:"tuning"`
	Players    []PlayerSpec   `yaml:"players"`
	Platforms  []PlatformSpec `yaml:"platforms"`
}

type PhysicsSpec struct {
	Gravity    float64 `yaml:"gravity"`
	Damping    float64 `yaml:"damping"`
	Iterations int     `yaml:"iterations"`
}

type TuningSpec struct {
	MoveSpeed     float64 `yaml:"move_speed"`
	JumpForce     float64 `yaml:"jump_force"`
	RestThreshold float64 `yaml:"rest_threshold"`
}

// PlayerSpec places a player box by its centre.
type PlayerSpec struct {
	Name     string     `yaml:"name"`
	X        float64    `yaml:"x"`
	Y        float64    `yaml:"y"`
	Width    float64    `yaml:"width"`
	Height   float64    `yaml:"height"`
	Color    *YAMLColor `yaml:"color"`
	Friction float64    `yaml:"friction"`
	Density  float64    `yaml:"density"`
	Facing   string     `yaml:"facing"`
}

// Mass is density times area.
func (p PlayerSpec) Mass() float64 {
	return p.Density * p.Width * p.Height
}

// PlatformSpec places a static box by its centre.
type PlatformSpec struct {
	Name     string     `yaml:"name"`
	X        float64    `yaml:"x"`
	Y        float64    `yaml:"y"`
	Width    float64    `yaml:"width"`
	Height   float64    `yaml:"height"`
	Color    *YAMLColor `yaml:"color"`
	Friction float64    `yaml:"friction"`
}

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

// DecodeSpec decodes prefab YAML that is already in memory.
func DecodeSpec[T any](data []byte) (T, error) {
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		var zero T
		return zero, fmt.Errorf("prefabs: unmarshal: %w", err)
	}
	return spec, nil
}

// LoadArena loads and validates an arena prefab.
func LoadArena(name string) (*ArenaSpec, error) {
	spec, err := LoadSpec[ArenaSpec](name)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: validate %s: %w", name, err)
	}
	return &spec, nil
}

// ParseArena decodes and validates arena YAML.
func ParseArena(data []byte) (*ArenaSpec, error) {
	spec, err := DecodeSpec[ArenaSpec](data)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate checks sizes and the player count.
func (a *ArenaSpec) Validate() error {
	if a.Width <= 0 || a.Height <= 0 {
		return fmt.Errorf("%w: arena %vx%v", ErrInvalidGeometry, a.Width, a.Height)
	}
	if len(a.Players) != 2 {
		return fmt.Errorf("%w: got %d", ErrNoPlayers, len(a.Players))
	}
	for i, p := range a.Players {
		if p.Width <= 0 || p.Height <= 0 {
			return fmt.Errorf("%w: player %d (%s) is %vx%v", ErrInvalidGeometry, i, p.Name, p.Width, p.Height)
		}
		if p.Facing != "" && p.Facing != "left" && p.Facing != "right" {
			return fmt.Errorf("%w: player %d has %q", ErrInvalidFacing, i, p.Facing)
		}
	}
	for i, p := range a.Platforms {
		if p.Width <= 0 || p.Height <= 0 {
			return fmt.Errorf("%w: platform %d (%s) is %vx%v", ErrInvalidGeometry, i, p.Name, p.Width, p.Height)
		}
	}
	return nil
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

	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return fmt.Errorf("invalid color %s: %w", value.Value, err)
		}
		rgba[i] = uint8(v)
	}

	c.Color = color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	return nil
}

// Or returns the parsed colour, or fallback when none was set.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
