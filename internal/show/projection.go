package show

import "math"

// ProjectionConfig describes the single pinhole camera.
type ProjectionConfig struct {
	Width, Height  float64
	FieldOfView    float64
	CameraDistance float64

	// RenderSize = max(MinSize, SizeBase - depth*SizeFalloff)
	SizeBase    float64
	SizeFalloff float64
	MinSize     float64

	// GlowAlpha = max(0, GlowPeak * (1 - depth/GlowRange))
	GlowPeak  float64
	GlowRange float64
}

func DefaultProjection(width, height int) ProjectionConfig {
	return ProjectionConfig{
		Width:          float64(width),
		Height:         float64(height),
		FieldOfView:    FieldOfView,
		CameraDistance: CameraDistance,
		SizeBase:       SizeBase,
		SizeFalloff:    SizeFalloff,
		MinSize:        MinSpriteSz,
		GlowPeak:       GlowPeak,
		GlowRange:      GlowRange,
	}
}

func (c ProjectionConfig) Validate() error {
	switch {
	case !(c.CameraDistance > 0) || !finite(c.CameraDistance):
		return configErr("camera_distance", "must be positive, got %v", c.CameraDistance)
	case !(c.FieldOfView > 0) || !finite(c.FieldOfView):
		return configErr("field_of_view", "must be positive, got %v", c.FieldOfView)
	case !(c.Width > 0) || !(c.Height > 0):
		return configErr("viewport", "non-positive size %vx%v", c.Width, c.Height)
	case c.SizeFalloff < 0:
		return configErr("size_falloff", "negative falloff %v would grow distant particles", c.SizeFalloff)
	case c.MinSize < 1:
		return configErr("min_size", "must be at least 1, got %v", c.MinSize)
	case !(c.GlowRange > 0):
		return configErr("glow_range", "must be positive, got %v", c.GlowRange)
	case c.GlowPeak < 0:
		return configErr("glow_peak", "negative peak %v", c.GlowPeak)
	}
	return nil
}

// Projection is the screen-space result of projecting one point.
type Projection struct {
	X, Y  float64
	Depth float64
}

// Projector maps camera-space points to the viewport.
type Projector struct {
	cfg   ProjectionConfig
	halfW float64
	halfH float64
}

// NewProjector validates cfg once; per-frame projection never fails loudly.
func NewProjector(cfg ProjectionConfig) (*Projector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Projector{cfg: cfg, halfW: cfg.Width / 2, halfH: cfg.Height / 2}, nil
}

func (pr *Projector) Config() ProjectionConfig { return pr.cfg }

// Project returns false when the point sits at or behind the camera plane, or
// when the result is not finite.
func (pr *Projector) Project(p Point3) (Projection, bool) {
	z := p.Z + pr.cfg.CameraDistance
	if !(z > 0) {
		return Projection{}, false
	}
	out := Projection{
		X:     p.X*pr.cfg.FieldOfView/z + pr.halfW,
		Y:     p.Y*pr.cfg.FieldOfView/z + pr.halfH,
		Depth: z,
	}
	if !finite(out.X) || !finite(out.Y) || !finite(out.Depth) {
		return Projection{}, false
	}
	return out, true
}

// RenderSize shrinks with depth and never drops below MinSize.
func (pr *Projector) RenderSize(depth float64) float64 {
	return math.Max(pr.cfg.MinSize, pr.cfg.SizeBase-depth*pr.cfg.SizeFalloff)
}

// GlowAlpha fades with depth and is floored at 0.
func (pr *Projector) GlowAlpha(depth float64) float64 {
	return math.Max(0, pr.cfg.GlowPeak*(1-depth/pr.cfg.GlowRange))
}
