package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultScenario        = "isotopes"
	DefaultFrames          = 600
	DefaultFrameIntervalMs = 30
	DefaultNucleonRadius   = 12.0
	DefaultScale           = 1.0
	DefaultWallMargin      = 40.0
	DefaultHalfWidth       = 480.0
	DefaultHalfHeight      = 360.0
	DefaultOrbitRadius     = 100.0
)

type Config struct {
	Scenario        string       `yaml:"scenario"`
	Seed            int64        `yaml:"seed"`
	Frames          int          `yaml:"frames"`
	FrameIntervalMs int          `yaml:"frame_interval_ms"`
	NucleonRadius   float64      `yaml:"nucleon_radius"`
	Scale           float64      `yaml:"scale"`
	WallMargin      float64      `yaml:"wall_margin"`
	GateSeparating  bool         `yaml:"gate_separating"`
	Arena           ArenaConfig  `yaml:"arena"`
	Center          Point        `yaml:"center"`
	Atoms           []AtomConfig `yaml:"atoms"`
}

type ArenaConfig struct {
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`
}

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type AtomConfig struct {
	Name      string           `yaml:"name"`
	Protons   int              `yaml:"protons"`
	Neutrons  int              `yaml:"neutrons"`
	Color     string           `yaml:"color"`
	X         float64          `yaml:"x"`
	Y         float64          `yaml:"y"`
	VX        float64          `yaml:"vx"`
	VY        float64          `yaml:"vy"`
	Electrons []ElectronConfig `yaml:"electrons"`
}

type ElectronConfig struct {
	OrbitRadius float64 `yaml:"orbit_radius"`
	Angle       float64 `yaml:"angle"`
	Speed       float64 `yaml:"speed"`
	Color       string  `yaml:"color"`
}

// DefaultConfig returns the isotopes scenario with default run parameters.
func DefaultConfig() *Config {
	cfg := base()
	cfg.Scenario = DefaultScenario
	cfg.Atoms = isotopeAtoms()
	return cfg
}

func base() *Config {
	return &Config{
		Frames:          DefaultFrames,
		FrameIntervalMs: DefaultFrameIntervalMs,
		NucleonRadius:   DefaultNucleonRadius,
		Scale:           DefaultScale,
		WallMargin:      DefaultWallMargin,
		Arena: ArenaConfig{
			HalfWidth:  DefaultHalfWidth,
			HalfHeight: DefaultHalfHeight,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(cfg.Atoms) == 0 {
		preset := cfg.Scenario
		if preset == "" {
			preset = DefaultScenario
		}
		p := GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("config %s has no atoms and unknown scenario %q", path, preset)
		}
		cfg.Scenario = preset
		cfg.Atoms = p.Atoms
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", c.Frames)
	}
	if c.FrameIntervalMs <= 0 {
		return fmt.Errorf("frame_interval_ms must be positive, got %d", c.FrameIntervalMs)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %f", c.Scale)
	}
	if c.NucleonRadius <= 0 {
		return fmt.Errorf("nucleon_radius must be positive, got %f", c.NucleonRadius)
	}
	if c.WallMargin < 0 {
		return fmt.Errorf("wall_margin must not be negative, got %f", c.WallMargin)
	}
	if c.Arena.HalfWidth <= c.WallMargin || c.Arena.HalfHeight <= c.WallMargin {
		return fmt.Errorf("arena %.0fx%.0f too small for wall margin %.0f", c.Arena.HalfWidth, c.Arena.HalfHeight, c.WallMargin)
	}
	if len(c.Atoms) == 0 {
		return fmt.Errorf("no atoms configured")
	}
	for i, a := range c.Atoms {
		if a.Protons < 0 || a.Neutrons < 0 {
			return fmt.Errorf("atom %d (%s): negative nucleon count", i, a.Name)
		}
		for j, e := range a.Electrons {
			if e.OrbitRadius < 0 {
				return fmt.Errorf("atom %d (%s) electron %d: negative orbit radius", i, a.Name, j)
			}
		}
	}
	return nil
}

// ParseCenter reads an "x,y" coordinate pair. Empty input is the origin.
// Anything else that does not parse also yields the origin, with ok false.
func ParseCenter(s string) (Point, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Point{}, true
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Point{}, false
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Point{}, false
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Point{}, false
	}
	return Point{X: x, Y: y}, true
}
