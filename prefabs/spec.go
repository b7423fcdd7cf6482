package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const SolarSystemFile = "solar_system.yaml"

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

// Vec3Spec is written in YAML as a three element flow sequence.
type Vec3Spec [3]float64

type CameraSpec struct {
	FOV      float64  `yaml:"fov"`
	Near     float64  `yaml:"near"`
	Far      float64  `yaml:"far"`
	Position Vec3Spec `yaml:"position"`
	Target   Vec3Spec `yaml:"target"`
}

type ControlsSpec struct {
	RotateSpeed float64 `yaml:"rotate_speed"`
	ZoomSpeed   float64 `yaml:"zoom_speed"`
	PanSpeed    float64 `yaml:"pan_speed"`
	MinDistance float64 `yaml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance"`
}

type AmbientLightSpec struct {
	Color string `yaml:"color"`
}

type PointLightSpec struct {
	Color     string   `yaml:"color"`
	Intensity float64  `yaml:"intensity"`
	Range     float64  `yaml:"range"`
	Decay     float64  `yaml:"decay"`
	Position  Vec3Spec `yaml:"position"`
}

type StarfieldSpec struct {
	Count int     `yaml:"count"`
	Seed  int64   `yaml:"seed"`
	Size  float64 `yaml:"size"`
}

type SpeedsSpec struct {
	Rotation    float64 `yaml:"rotation"`
	Orbit       float64 `yaml:"orbit"`
	RotationMax float64 `yaml:"rotation_max"`
	OrbitMax    float64 `yaml:"orbit_max"`
	Steps       int     `yaml:"steps"`
}

type SegmentsSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Ring   int `yaml:"ring"`
}

type RingSpec struct {
	InnerRadius float64 `yaml:"inner_radius"`
	OuterRadius float64 `yaml:"outer_radius"`
	Texture     string  `yaml:"texture"`
	Color       string  `yaml:"color"`
}

type SunSpec struct {
	Name    string  `yaml:"name"`
	Radius  float64 `yaml:"radius"`
	Texture string  `yaml:"texture"`
	Color   string  `yaml:"color"`
	Spin    float64 `yaml:"spin"`
}

type BodySpec struct {
	Name     string    `yaml:"name"`
	Radius   float64   `yaml:"radius"`
	Texture  string    `yaml:"texture"`
	Color    string    `yaml:"color"`
	Position Vec3Spec  `yaml:"position"`
	Spin     *float64  `yaml:"spin"`
	Orbit    float64   `yaml:"orbit"`
	Ring     *RingSpec `yaml:"ring"`
	Focus    bool      `yaml:"focus"`
	// Script optionally replaces the spin or orbit increment.
	Script       string `yaml:"script"`
	ScriptTarget string `yaml:"script_target"`
}

type SolarSystemSpec struct {
	Name         string           `yaml:"name"`
	Camera       CameraSpec       `yaml:"camera"`
	Controls     ControlsSpec     `yaml:"controls"`
	AmbientLight AmbientLightSpec `yaml:"ambient_light"`
	PointLight   PointLightSpec   `yaml:"point_light"`
	Starfield    StarfieldSpec    `yaml:"starfield"`
	Speeds       SpeedsSpec       `yaml:"speeds"`
	Segments     SegmentsSpec     `yaml:"segments"`
	Sun          SunSpec          `yaml:"sun"`
	Bodies       []BodySpec       `yaml:"bodies"`
}

func LoadSolarSystemSpec() (*SolarSystemSpec, error) {
	return LoadSolarSystemSpecFile(SolarSystemFile)
}

func LoadSolarSystemSpecFile(name string) (*SolarSystemSpec, error) {
	spec, err := LoadSpec[SolarSystemSpec](name)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return &spec, nil
}

// ParseSolarSystemSpec decodes and validates a catalogue held in memory.
func ParseSolarSystemSpec(data []byte) (*SolarSystemSpec, error) {
	var spec SolarSystemSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal solar system: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate checks the invariants the scene factory relies on.
func (s *SolarSystemSpec) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil spec", ErrInvalidSpec)
	}
	if s.Sun.Radius <= 0 {
		return fmt.Errorf("%w: sun radius must be positive", ErrInvalidSpec)
	}
	if s.Camera.Near <= 0 || s.Camera.Far <= s.Camera.Near {
		return fmt.Errorf("%w: camera needs 0 < near < far", ErrInvalidSpec)
	}
	if s.Camera.FOV <= 0 || s.Camera.FOV >= 180 {
		return fmt.Errorf("%w: camera fov %v out of range", ErrInvalidSpec, s.Camera.FOV)
	}
	if s.Speeds.RotationMax <= 0 || s.Speeds.OrbitMax <= 0 || s.Speeds.Steps <= 0 {
		return fmt.Errorf("%w: slider ranges must be positive", ErrInvalidSpec)
	}
	if _, err := ParseColor(s.AmbientLight.Color); err != nil {
		return fmt.Errorf("%w: ambient light: %v", ErrInvalidSpec, err)
	}
	if _, err := ParseColor(s.PointLight.Color); err != nil {
		return fmt.Errorf("%w: point light: %v", ErrInvalidSpec, err)
	}

	seen := map[string]bool{s.Sun.Name: true}
	for i, b := range s.Bodies {
		if b.Name == "" {
			return fmt.Errorf("%w: body %d has no name", ErrInvalidSpec, i)
		}
		if seen[b.Name] {
			return fmt.Errorf("%w: duplicate body name %q", ErrInvalidSpec, b.Name)
		}
		seen[b.Name] = true
		if b.Radius <= 0 {
			return fmt.Errorf("%w: body %q radius must be positive", ErrInvalidSpec, b.Name)
		}
		if b.Ring != nil && (b.Ring.InnerRadius < 0 || b.Ring.OuterRadius <= b.Ring.InnerRadius) {
			return fmt.Errorf("%w: body %q ring needs 0 <= inner < outer", ErrInvalidSpec, b.Name)
		}
		switch b.ScriptTarget {
		case "", "spin", "orbit":
		default:
			return fmt.Errorf("%w: body %q script_target %q", ErrInvalidSpec, b.Name, b.ScriptTarget)
		}
		if b.Color != "" {
			if _, err := ParseColor(b.Color); err != nil {
				return fmt.Errorf("%w: body %q: %v", ErrInvalidSpec, b.Name, err)
			}
		}
	}
	return nil
}

// Body returns the body spec with the given name.
func (s *SolarSystemSpec) Body(name string) (BodySpec, bool) {
	for _, b := range s.Bodies {
		if b.Name == name {
			return b, true
		}
	}
	return BodySpec{}, false
}

// ParseColor accepts #rgb, #rrggbb and #rrggbbaa.
func ParseColor(s string) (color.NRGBA, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(raw) {
	case 3:
		raw = string([]byte{raw[0], raw[0], raw[1], raw[1], raw[2], raw[2]}) + "ff"
	case 6:
		raw += "ff"
	case 8:
	default:
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
