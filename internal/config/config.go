package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/san-kum/attractors/internal/dynamo"
	"github.com/san-kum/attractors/internal/logging"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth         = 1920
	DefaultHeight        = 1080
	DefaultFPS           = 45
	DefaultLineWidth     = 4.0
	DefaultDistance      = 5.0
	DefaultMagnification = 20.0
	DefaultOffsetX       = 100
	DefaultAngleStep     = 0.01
	DefaultHueMin        = 0.75
	DefaultHueMax        = 0.85
	DefaultHueDivisor    = 200.0
	DefaultInitMin       = 1.0
	DefaultInitMax       = 5.0
	DefaultLogLevel      = "info"
)

// Environment overrides read by Load.
const (
	EnvLogLevel = "ATTRACTORS_LOG_LEVEL"
	EnvSeed     = "ATTRACTORS_SEED"
)

type Config struct {
	Window   WindowConfig `yaml:"window"`
	Camera   CameraConfig `yaml:"camera"`
	Hue      HueConfig    `yaml:"hue"`
	Init     InitConfig   `yaml:"init"`
	Seed     int64        `yaml:"seed"` // 0 picks a time-based seed per run
	LogLevel string       `yaml:"log_level"`
}

type WindowConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	FPS       int     `yaml:"fps"`
	LineWidth float32 `yaml:"line_width"`
}

type CameraConfig struct {
	Distance      float64 `yaml:"distance"`
	Magnification float64 `yaml:"magnification"`
	OffsetX       int     `yaml:"offset_x"`
	AngleStep     float64 `yaml:"angle_step"`
}

type HueConfig struct {
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Divisor float64 `yaml:"divisor"`
}

// InitConfig is the half-open range [Min, Max) initial coordinates are
// drawn from.
type InitConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     DefaultWidth,
			Height:    DefaultHeight,
			FPS:       DefaultFPS,
			LineWidth: DefaultLineWidth,
		},
		Camera: CameraConfig{
			Distance:      DefaultDistance,
			Magnification: DefaultMagnification,
			OffsetX:       DefaultOffsetX,
			AngleStep:     DefaultAngleStep,
		},
		Hue: HueConfig{
			Min:     DefaultHueMin,
			Max:     DefaultHueMax,
			Divisor: DefaultHueDivisor,
		},
		Init: InitConfig{
			Min: DefaultInitMin,
			Max: DefaultInitMax,
		},
		LogLevel: DefaultLogLevel,
	}
}

// Load returns the defaults with environment overrides applied.
func Load() (*Config, error) {
	return LoadEnv(os.LookupEnv)
}

// LoadEnv is Load with a custom environment lookup.
func LoadEnv(lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s=%q: %w", EnvSeed, v, dynamo.ErrInvalidConfig)
		}
		cfg.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return invalid("window %dx%d", c.Window.Width, c.Window.Height)
	case c.Window.FPS <= 0:
		return invalid("fps %d", c.Window.FPS)
	case c.Window.LineWidth <= 0:
		return invalid("line width %g", c.Window.LineWidth)
	case c.Camera.Magnification <= 0:
		return invalid("magnification %g", c.Camera.Magnification)
	case c.Camera.Distance <= 0:
		return invalid("camera distance %g", c.Camera.Distance)
	case c.Hue.Min < 0 || c.Hue.Max > 1 || c.Hue.Min >= c.Hue.Max:
		return invalid("hue range [%g, %g]", c.Hue.Min, c.Hue.Max)
	case c.Hue.Divisor == 0:
		return invalid("hue divisor 0")
	case c.Init.Min >= c.Init.Max:
		return invalid("init range [%g, %g)", c.Init.Min, c.Init.Max)
	case !logging.KnownLevel(c.LogLevel):
		return invalid("log level %q", c.LogLevel)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), dynamo.ErrInvalidConfig)
}

// YAML renders the effective configuration.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
