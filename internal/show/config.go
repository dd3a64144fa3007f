package show

import (
	"errors"
	"fmt"
	"math"
)

// Viewport defaults.
const (
	ViewportWidth  = 1280
	ViewportHeight = 720
	TargetFPS      = 60
)

// Pinhole camera.
const (
	FieldOfView    = 500.0
	CameraDistance = 10.0

	SizeBase     = 4.0
	SizeFalloff  = 0.3
	MinSpriteSz  = 1.0
	GlowPeak     = 80.0 / 255.0
	GlowRange    = 10.0
	GlowSizeMul  = 2.0
	GlowAlphaDiv = 3.0
)

// Long-exposure trail: fraction of the background blended in per frame.
const FadeAlpha = 15.0 / 255.0

// Scene timing (seconds).
const (
	SceneDuration      = 15.0
	GrowthDuration     = 10.0
	TransitionDuration = 12.0
)

// Particle ceilings.
const (
	MaxAirplaneParticles = 600
	MaxTextParticles     = 400
	MaxFractalParticles  = 4000
	MaxSceneSprites      = 6000
	PaletteSize          = 4
)

// Fractal defaults.
const (
	FractalDecay      = 0.65
	FractalStraight   = 0.9
	FractalSpreadKeep = 0.85
	FractalMaxDepth   = 6
	FractalMinLength  = 2.0
	FractalStepLength = 1.5
	FractalMinSteps   = 2
)

// ErrConfig is the sentinel wrapped by every ConfigError.
var ErrConfig = errors.New("invalid configuration")

// ConfigError reports a rejected configuration value. It is fatal at startup.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrConfig }

func configErr(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Config gathers every tunable of a running show.
type Config struct {
	Width, Height int
	TPS           int

	Projection ProjectionConfig
	Fractal    FractalConfig

	SceneDuration float64
	FadeAlpha     float64
	MaxSprites    int
	Seed          uint64
}

// DefaultConfig returns the installation defaults.
func DefaultConfig() Config {
	return Config{
		Width:         ViewportWidth,
		Height:        ViewportHeight,
		TPS:           TargetFPS,
		Projection:    DefaultProjection(ViewportWidth, ViewportHeight),
		Fractal:       DefaultFractal(),
		SceneDuration: SceneDuration,
		FadeAlpha:     FadeAlpha,
		MaxSprites:    MaxSceneSprites,
		Seed:          1,
	}
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return configErr("viewport", "non-positive size %dx%d", c.Width, c.Height)
	}
	if c.TPS <= 0 {
		return configErr("tps", "must be positive, got %d", c.TPS)
	}
	if !(c.SceneDuration > 0) || math.IsInf(c.SceneDuration, 0) {
		return configErr("scene_duration", "must be positive and finite, got %v", c.SceneDuration)
	}
	if c.FadeAlpha < 0 || c.FadeAlpha > 1 {
		return configErr("fade_alpha", "must be within [0,1], got %v", c.FadeAlpha)
	}
	if c.MaxSprites <= 0 {
		return configErr("max_sprites", "must be positive, got %d", c.MaxSprites)
	}
	if err := c.Projection.Validate(); err != nil {
		return err
	}
	return c.Fractal.Validate()
}
