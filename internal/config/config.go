package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/iburimskiy/blxck-backdrop/internal/content"
	"github.com/iburimskiy/blxck-backdrop/internal/particles"
	"github.com/iburimskiy/blxck-backdrop/internal/theme"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720

	// Particle field
	ParticleCount = 500
	RadiusMin     = 5.0
	RadiusMax     = 12.0

	// Per-frame motion
	RotationSpeed = 0.0002
	FollowGainX   = 1.5
	FollowGainY   = 1.2
	Smoothing     = 0.02

	// Camera
	CameraBaseZ     = 18.0
	ScrollFactor    = 0.003
	FieldOfView     = 60.0
	ParticleSize    = 0.15
	SphereRadius    = 0.1
	MaxScroll       = 4000.0
	ScrollWheelStep = 60.0

	// Snapshot
	SnapshotSize        = 1024
	SnapshotSupersample = 2
)

// Config holds the tunables of the scene. Zero values are filled by Resolve.
// ParticleCount and RotationSpeed are pointers so a file can ask for an
// empty or a still field with an explicit 0.
type Config struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	ParticleCount *int    `json:"particle_count,omitempty"`
	RadiusMin     float64 `json:"radius_min"`
	RadiusMax     float64 `json:"radius_max"`
	Radial        string  `json:"radial"`
	Seed          uint64  `json:"seed"`

	RotationSpeed *float64 `json:"rotation_speed,omitempty"`
	FollowGainX   float64 `json:"follow_gain_x"`
	FollowGainY   float64 `json:"follow_gain_y"`
	Smoothing     float64 `json:"smoothing"`

	CameraBaseZ  float64 `json:"camera_base_z"`
	ScrollFactor float64 `json:"scroll_factor"`
	FieldOfView  float64 `json:"field_of_view"`
	ParticleSize float64 `json:"particle_size"`
	MaxScroll    float64 `json:"max_scroll"`

	Language string `json:"language"`
	Theme    string `json:"theme"`
	Mute     bool   `json:"mute"`

	SnapshotSize        int `json:"snapshot_size"`
	SnapshotSupersample int `json:"snapshot_supersample"`
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Seed     uint64
	Count    int
	Radial   string
	Language string
	Theme    string
	Mute     bool
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Default returns a resolved config with no file and no flags.
func Default() Config {
	var cfg Config
	cfg.Resolve(Flags{})
	return cfg
}

// Resolve applies flag overrides and fills empty fields with defaults.
// RadiusMin may legitimately be 0, so it is only defaulted together with
// RadiusMax.
func (c *Config) Resolve(flags Flags) {
	if flags.Seed != 0 {
		c.Seed = flags.Seed
	}
	if flags.Count > 0 {
		c.ParticleCount = &flags.Count
	}
	if flags.Radial != "" {
		c.Radial = flags.Radial
	}
	if flags.Language != "" {
		c.Language = flags.Language
	}
	if flags.Theme != "" {
		c.Theme = flags.Theme
	}
	if flags.Mute {
		c.Mute = true
	}

	if c.Width <= 0 {
		c.Width = WindowWidth
	}
	if c.Height <= 0 {
		c.Height = WindowHeight
	}
	if c.ParticleCount == nil {
		n := ParticleCount
		c.ParticleCount = &n
	}
	if c.RadiusMin == 0 && c.RadiusMax == 0 {
		c.RadiusMin = RadiusMin
		c.RadiusMax = RadiusMax
	}
	if c.Radial == "" {
		c.Radial = particles.RadialLinear.String()
	}
	if c.RotationSpeed == nil {
		r := RotationSpeed
		c.RotationSpeed = &r
	}
	if c.FollowGainX == 0 {
		c.FollowGainX = FollowGainX
	}
	if c.FollowGainY == 0 {
		c.FollowGainY = FollowGainY
	}
	if c.Smoothing <= 0 {
		c.Smoothing = Smoothing
	}
	if c.CameraBaseZ <= 0 {
		c.CameraBaseZ = CameraBaseZ
	}
	if c.ScrollFactor == 0 {
		c.ScrollFactor = ScrollFactor
	}
	if c.FieldOfView <= 0 {
		c.FieldOfView = FieldOfView
	}
	if c.ParticleSize <= 0 {
		c.ParticleSize = ParticleSize
	}
	if c.MaxScroll <= 0 {
		c.MaxScroll = MaxScroll
	}
	if c.Language == "" {
		c.Language = string(content.Default)
	}
	if c.Theme == "" {
		c.Theme = theme.Dark.String()
	}
	if c.SnapshotSize <= 0 {
		c.SnapshotSize = SnapshotSize
	}
	if c.SnapshotSupersample <= 0 {
		c.SnapshotSupersample = SnapshotSupersample
	}
}

var (
	ErrRadius    = errors.New("config: radius range invalid")
	ErrSmoothing = errors.New("config: smoothing must be in (0, 1]")
	ErrFOV       = errors.New("config: field of view must be in (0, 180)")
)

// Validate checks a resolved config.
func (c Config) Validate() error {
	if c.RadiusMin < 0 || c.RadiusMax < c.RadiusMin {
		return fmt.Errorf("%w: min=%v max=%v", ErrRadius, c.RadiusMin, c.RadiusMax)
	}
	if c.Smoothing <= 0 || c.Smoothing > 1 {
		return fmt.Errorf("%w: %v", ErrSmoothing, c.Smoothing)
	}
	if c.FieldOfView <= 0 || c.FieldOfView >= 180 {
		return fmt.Errorf("%w: %v", ErrFOV, c.FieldOfView)
	}
	if _, ok := particles.ParseRadial(c.Radial); !ok {
		return fmt.Errorf("config: unknown radial mode %q", c.Radial)
	}
	if _, ok := content.Parse(c.Language); !ok {
		return fmt.Errorf("config: unknown language %q", c.Language)
	}
	if _, ok := theme.Parse(c.Theme); !ok {
		return fmt.Errorf("config: unknown theme %q", c.Theme)
	}
	return nil
}

// Count is the resolved particle count; 0 before Resolve.
func (c Config) Count() int {
	if c.ParticleCount == nil {
		return 0
	}
	return *c.ParticleCount
}

// Rotation is the resolved per-frame Y rotation; 0 before Resolve.
func (c Config) Rotation() float64 {
	if c.RotationSpeed == nil {
		return 0
	}
	return *c.RotationSpeed
}

// FieldParams converts the particle settings for the scene.
func (c Config) FieldParams() particles.Params {
	radial, _ := particles.ParseRadial(c.Radial)
	return particles.Params{
		Count:  c.Count(),
		RMin:   c.RadiusMin,
		RMax:   c.RadiusMax,
		Radial: radial,
		Seed:   c.Seed,
	}
}

func (c Config) LanguageTag() content.Language {
	l, _ := content.Parse(c.Language)
	return l
}

func (c Config) ThemeValue() theme.Theme {
	t, _ := theme.Parse(c.Theme)
	return t
}
