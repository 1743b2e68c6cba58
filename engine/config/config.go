// Package config loads viewer settings from YAML.
package config

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/Carmen-Shannon/oxy-cam/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Keys binds one key name per movement direction.
type Keys struct {
	Forward string `yaml:"forward"`
	Back    string `yaml:"back"`
	Left    string `yaml:"left"`
	Right   string `yaml:"right"`
	Up      string `yaml:"up"`
	Down    string `yaml:"down"`
}

// Camera configures the viewer camera.
type Camera struct {
	Kind     string     `yaml:"kind"` // "first_person" | "orbit"
	Position [3]float32 `yaml:"position,flow"`
	Pitch    float32    `yaml:"pitch"`
	Yaw      float32    `yaml:"yaw"`

	KeyboardTranslateRate float32 `yaml:"keyboard_translate_rate"`
	MouseRotateRate       float32 `yaml:"mouse_rotate_rate"`
	ZoomRate              float32 `yaml:"zoom_rate"`
	RepeatIntervalMs      int     `yaml:"repeat_interval_ms"`

	Keys Keys `yaml:"keys"`
}

// Lens configures the perspective projection.
type Lens struct {
	FovDegrees float32 `yaml:"fov_degrees"`
	Near       float32 `yaml:"near"`
	Far        float32 `yaml:"far"`
}

// Window configures the native window.
type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Config is the top-level viewer configuration file.
type Config struct {
	LogLevel string  `yaml:"log_level"`
	Camera   Camera  `yaml:"camera"`
	Lens     Lens    `yaml:"lens"`
	Window   Window  `yaml:"window"`
	TickRate float64 `yaml:"tick_rate"`
}

// Default returns the built-in configuration.
//
// Returns:
//   - *Config: the defaults
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Camera: Camera{
			Kind:                  string(camera.KindOrbit),
			Position:              [3]float32{0, 0, 5},
			Pitch:                 0,
			Yaw:                   270,
			KeyboardTranslateRate: camera.DefaultKeyboardTranslateRate,
			MouseRotateRate:       camera.DefaultMouseRotateRate,
			ZoomRate:              camera.DefaultZoomRate,
			RepeatIntervalMs:      int(camera.DefaultRepeatInterval / time.Millisecond),
			Keys: Keys{
				Forward: "w",
				Back:    "s",
				Left:    "a",
				Right:   "d",
				Up:      "r",
				Down:    "f",
			},
		},
		Lens: Lens{
			FovDegrees: 45,
			Near:       0.1,
			Far:        100,
		},
		Window: Window{
			Title:  "oxy-cam",
			Width:  1280,
			Height: 720,
		},
		TickRate: 60,
	}
}

// Load reads a YAML file on top of the defaults. Fields the file leaves out, or sets to zero where
// zero is meaningless, keep their default value.
//
// Parameters:
//   - path: the file to read
//
// Returns:
//   - *Config: the merged configuration
//   - error: error if the file cannot be read, parsed, or fails validation
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(b)
}

// Parse decodes YAML bytes on top of the defaults and validates the result.
//
// Parameters:
//   - b: the YAML document
//
// Returns:
//   - *Config: the merged configuration
//   - error: error if the document cannot be parsed or fails validation
func Parse(b []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}

// Save writes c as YAML.
//
// Parameters:
//   - path: the destination file
//   - c: the configuration to write
//
// Returns:
//   - error: error if encoding or writing fails
func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// applyDefaults restores defaults for fields explicitly set to zero.
func (c *Config) applyDefaults() {
	d := Default()
	c.LogLevel = common.Coalesce(c.LogLevel, d.LogLevel)
	c.TickRate = common.Coalesce(c.TickRate, d.TickRate)

	c.Camera.Kind = common.Coalesce(c.Camera.Kind, d.Camera.Kind)
	c.Camera.KeyboardTranslateRate = common.Coalesce(c.Camera.KeyboardTranslateRate, d.Camera.KeyboardTranslateRate)
	c.Camera.MouseRotateRate = common.Coalesce(c.Camera.MouseRotateRate, d.Camera.MouseRotateRate)
	c.Camera.ZoomRate = common.Coalesce(c.Camera.ZoomRate, d.Camera.ZoomRate)
	c.Camera.RepeatIntervalMs = common.Coalesce(c.Camera.RepeatIntervalMs, d.Camera.RepeatIntervalMs)

	c.Lens.FovDegrees = common.Coalesce(c.Lens.FovDegrees, d.Lens.FovDegrees)
	c.Lens.Near = common.Coalesce(c.Lens.Near, d.Lens.Near)
	c.Lens.Far = common.Coalesce(c.Lens.Far, d.Lens.Far)

	c.Window.Title = common.Coalesce(c.Window.Title, d.Window.Title)
	c.Window.Width = common.Coalesce(c.Window.Width, d.Window.Width)
	c.Window.Height = common.Coalesce(c.Window.Height, d.Window.Height)
}

// Validate checks that the configuration can build a camera and lens.
//
// Returns:
//   - error: the first problem found, or nil
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if _, err := camera.ParseKind(c.Camera.Kind); err != nil {
		return fmt.Errorf("camera.kind: %w", err)
	}
	if _, err := c.KeyMap(); err != nil {
		return fmt.Errorf("camera.keys: %w", err)
	}
	if c.Camera.RepeatIntervalMs < 0 {
		return fmt.Errorf("camera.repeat_interval_ms must not be negative, got %d", c.Camera.RepeatIntervalMs)
	}
	if c.Lens.Near <= 0 || c.Lens.Far <= 0 {
		return fmt.Errorf("lens planes must be positive, got near=%v far=%v", c.Lens.Near, c.Lens.Far)
	}
	if c.Lens.Far <= c.Lens.Near {
		return fmt.Errorf("lens.far (%v) must exceed lens.near (%v)", c.Lens.Far, c.Lens.Near)
	}
	if c.Lens.FovDegrees <= 0 || c.Lens.FovDegrees >= 180 {
		return fmt.Errorf("lens.fov_degrees must be in (0, 180), got %v", c.Lens.FovDegrees)
	}
	if c.TickRate < 0 {
		return fmt.Errorf("tick_rate must not be negative, got %v", c.TickRate)
	}
	return nil
}

// Level returns the configured log level, falling back to Info.
//
// Returns:
//   - zerolog.Level: the log level
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// KeyMap builds the camera key bindings.
//
// Returns:
//   - camera.KeyMap: the bindings
//   - error: error if a key is missing or bound twice
func (c *Config) KeyMap() (camera.KeyMap, error) {
	k := c.Camera.Keys
	return camera.NewKeyMap(k.Forward, k.Back, k.Left, k.Right, k.Up, k.Down)
}

// Kind returns the configured camera kind.
//
// Returns:
//   - camera.Kind: the camera kind
//   - error: error if the kind is unknown
func (c *Config) Kind() (camera.Kind, error) {
	return camera.ParseKind(c.Camera.Kind)
}

// CameraOptions converts the camera tuning into camera options.
// Collaborators (document, scheduler, logger) are left to the caller.
//
// Returns:
//   - []camera.CameraOption: the options
//   - error: error if the key bindings are invalid
func (c *Config) CameraOptions() ([]camera.CameraOption, error) {
	keys, err := c.KeyMap()
	if err != nil {
		return nil, err
	}
	return []camera.CameraOption{
		camera.WithKeyMap(keys),
		camera.WithKeyboardTranslateRate(c.Camera.KeyboardTranslateRate),
		camera.WithMouseRotateRate(c.Camera.MouseRotateRate),
		camera.WithZoomRate(c.Camera.ZoomRate),
		camera.WithRepeatInterval(time.Duration(c.Camera.RepeatIntervalMs) * time.Millisecond),
	}, nil
}

// NewCamera builds the configured camera.
//
// Parameters:
//   - extra: options applied after the configured ones (document, scheduler, logger)
//
// Returns:
//   - camera.Camera: the camera
//   - error: error if the kind or key bindings are invalid
func (c *Config) NewCamera(extra ...camera.CameraOption) (camera.Camera, error) {
	kind, err := c.Kind()
	if err != nil {
		return nil, err
	}
	options, err := c.CameraOptions()
	if err != nil {
		return nil, err
	}
	return camera.New(kind, mgl32.Vec3(c.Camera.Position), c.Camera.Pitch, c.Camera.Yaw, append(options, extra...)...)
}

// NewLens builds the configured lens for a surface of the given size.
//
// Parameters:
//   - width, height: the surface size in pixels
//
// Returns:
//   - *camera.Lens: the lens
func (c *Config) NewLens(width, height int) *camera.Lens {
	l := camera.NewLens(
		camera.WithFov(c.Lens.FovDegrees*math.Pi/180),
		camera.WithClip(c.Lens.Near, c.Lens.Far),
	)
	l.SetViewport(width, height)
	return l
}
