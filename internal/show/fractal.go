package show

import "math"

// FractalConfig tunes the branch generator. Decay must stay below 1 so branch
// length reaches MinLength in finite steps even if MaxDepth is large.
type FractalConfig struct {
	MinLength     float64
	Decay         float64
	StraightDecay float64 // extra decay of the straight child
	SpreadDecay   float64 // spread multiplier of the straight child
	MaxDepth      int
	MaxParticles  int
	StepLength    float64
	MinSteps      int
	Straight      bool

	BaseSize      float64
	SizePerLevel  float64
	BaseAlpha     float64
	AlphaPerLevel float64
}

func DefaultFractal() FractalConfig {
	return FractalConfig{
		MinLength:     FractalMinLength,
		Decay:         FractalDecay,
		StraightDecay: FractalStraight,
		SpreadDecay:   FractalSpreadKeep,
		MaxDepth:      FractalMaxDepth,
		MaxParticles:  MaxFractalParticles,
		StepLength:    FractalStepLength,
		MinSteps:      FractalMinSteps,
		Straight:      true,
		BaseSize:      3.5,
		SizePerLevel:  0.4,
		BaseAlpha:     120.0 / 255.0,
		AlphaPerLevel: 30.0 / 255.0,
	}
}

func (c FractalConfig) Validate() error {
	switch {
	case !(c.Decay > 0 && c.Decay < 1):
		return configErr("fractal.decay", "must be within (0,1), got %v", c.Decay)
	case c.Straight && !(c.StraightDecay > 0 && c.StraightDecay <= 1):
		return configErr("fractal.straight_decay", "must be within (0,1], got %v", c.StraightDecay)
	case c.SpreadDecay < 0:
		return configErr("fractal.spread_decay", "must not be negative, got %v", c.SpreadDecay)
	case c.MaxDepth < 0:
		return configErr("fractal.max_depth", "must not be negative, got %d", c.MaxDepth)
	case c.MaxParticles <= 0:
		return configErr("fractal.max_particles", "must be positive, got %d", c.MaxParticles)
	case !(c.MinLength > 0):
		return configErr("fractal.min_length", "must be positive, got %v", c.MinLength)
	case !(c.StepLength > 0):
		return configErr("fractal.step_length", "must be positive, got %v", c.StepLength)
	case c.MinSteps < 1:
		return configErr("fractal.min_steps", "must be at least 1, got %d", c.MinSteps)
	case c.SizePerLevel < 0:
		return configErr("fractal.size_per_level", "must not be negative, got %v", c.SizePerLevel)
	case c.AlphaPerLevel < 0:
		return configErr("fractal.alpha_per_level", "must not be negative, got %v", c.AlphaPerLevel)
	}
	return nil
}

// Branch is one pending unit of work: a segment still to be emitted along
// with its remaining depth budget. Angle is measured counter-clockwise from
// +X with screen Y pointing down, so Pi/2 grows upward.
type Branch struct {
	X, Y   float64
	Angle  float64
	Length float64
	Spread float64
	Depth  int
}

// End returns the tip of the segment.
func (b Branch) End() (float64, float64) {
	s, c := math.Sincos(b.Angle)
	return b.X + c*b.Length, b.Y - s*b.Length
}

// PathParticle is a 2D sample emitted along a branch.
type PathParticle struct {
	X, Y  float64
	Size  float64
	Color RGB
	Alpha float64
	Level int
}

func (p PathParticle) Sprite() Sprite {
	return Sprite{X: p.X, Y: p.Y, Size: p.Size, Color: p.Color, Alpha: p.Alpha, GlowAlpha: p.Alpha / GlowAlphaDiv}
}

// ColorBlend recolours samples from a structural hue toward a height-graded
// organic green as Transition goes from 0 to 1.
type ColorBlend struct {
	Structural RGB
	Height     float64 // viewport height; samples higher up are lighter
	Transition float64
}

// Organic returns the target hue for a sample at screen row y on the given
// recursion level (0 at the root).
func (cb ColorBlend) Organic(y float64, level int) RGB {
	hf := 1.0
	if cb.Height > 0 {
		hf = clampF(1-y/cb.Height, 0, 1)
	}
	base := math.Min(255, 30+float64(level)*20)
	g := base + (255-base)*hf
	return NewRGB(20, g, g/2+40)
}

func (cb ColorBlend) At(y float64, level int) RGB {
	return LerpRGB(cb.Structural, cb.Organic(y, level), cb.Transition)
}

// Fractal grows branch particle sets. The work list is reused between
// calls; a Fractal is not safe for concurrent use.
type Fractal struct {
	cfg  FractalConfig
	work []Branch
}

func NewFractal(cfg FractalConfig) (*Fractal, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Fractal{cfg: cfg, work: make([]Branch, 0, 256)}, nil
}

func (f *Fractal) Config() FractalConfig { return f.cfg }

// Grow appends the particles of the trees rooted at roots to dst and returns
// the extended slice. A branch emits nothing once its depth budget is spent
// or its length is below MinLength, and the call stops after MaxParticles
// samples. Branches are expanded a generation at a time, so a ceiling hit
// trims the finest tips of every tree evenly. Samples get finer and brighter
// toward the leaves.
func (f *Fractal) Grow(dst []PathParticle, tint ColorBlend, roots ...Branch) []PathParticle {
	cfg := f.cfg
	limit := len(dst) + cfg.MaxParticles
	f.work = f.work[:0]
	for _, r := range roots {
		r.Depth = min(r.Depth, cfg.MaxDepth)
		f.work = append(f.work, r)
	}

	for head := 0; head < len(f.work) && len(dst) < limit; head++ {
		b := f.work[head]
		if b.Depth <= 0 || b.Length < cfg.MinLength {
			continue
		}

		level := cfg.MaxDepth - b.Depth
		size := math.Max(MinSpriteSz, cfg.BaseSize-cfg.SizePerLevel*float64(level))
		alpha := clampF(cfg.BaseAlpha+cfg.AlphaPerLevel*float64(level)+tint.Transition*80.0/255.0, 0, 1)

		ex, ey := b.End()
		steps := max(cfg.MinSteps, int(b.Length/cfg.StepLength))
		for i := 0; i < steps && len(dst) < limit; i++ {
			t := float64(i) / float64(steps)
			y := lerp(b.Y, ey, t)
			dst = append(dst, PathParticle{
				X:     lerp(b.X, ex, t),
				Y:     y,
				Size:  size,
				Color: tint.At(y, level),
				Alpha: alpha,
				Level: level,
			})
		}

		n := b.Length * cfg.Decay
		f.work = append(f.work,
			Branch{X: ex, Y: ey, Angle: b.Angle - b.Spread, Length: n, Spread: b.Spread, Depth: b.Depth - 1},
			Branch{X: ex, Y: ey, Angle: b.Angle + b.Spread, Length: n, Spread: b.Spread, Depth: b.Depth - 1},
		)
		if cfg.Straight && b.Depth > 1 {
			f.work = append(f.work, Branch{X: ex, Y: ey, Angle: b.Angle, Length: n * cfg.StraightDecay, Spread: b.Spread * cfg.SpreadDecay, Depth: b.Depth - 1})
		}
	}
	f.work = f.work[:0]
	return dst
}

// Trunk appends a gently swaying vertical run of the given length rising from
// (x, y). Samples are 3 px apart and taper from size 5 to 3.
func (f *Fractal) Trunk(dst []PathParticle, x, y, length, t float64, tint ColorBlend) []PathParticle {
	const spacing = 3.0
	n := min(int(length/spacing), f.cfg.MaxParticles)
	alpha := clampF(200.0/255.0+tint.Transition*55.0/255.0, 0, 1)
	for i := 0; i < n; i++ {
		yy := y - float64(i)*spacing
		dst = append(dst, PathParticle{
			X:     x + math.Sin(t*0.3+float64(i)*0.05)*3,
			Y:     yy,
			Size:  5 - float64(i)/float64(n)*2,
			Color: tint.At(yy, 0),
			Alpha: alpha,
		})
	}
	return dst
}
