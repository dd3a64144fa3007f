package show

import (
	"cmp"
	"math"
	"slices"
)

// Particle is one drone of a 3D point cloud. Base, Variant and Phase are fixed
// at construction; everything else is rebuilt every frame.
type Particle struct {
	Base    Point3
	Pos     Point3
	Variant int
	Phase   float64

	ScreenX, ScreenY float64
	Depth            float64
	Size             float64
	Glow             float64
	Color            RGB
	Visible          bool
}

// Flicker is the per-particle brightness in [0.2, 1.0] used by the drone cloud.
func Flicker(t, phase float64) float64 {
	return 0.6 + 0.4*math.Sin(t*2+phase)
}

// Sprite converts a projected particle into the compositor tuple.
func (p *Particle) Sprite() Sprite {
	return Sprite{
		X: p.ScreenX, Y: p.ScreenY,
		Size:      p.Size,
		Color:     p.Color,
		Alpha:     1,
		GlowAlpha: p.Glow,
	}
}

// SampleConfig places a shape table into object space.
type SampleConfig struct {
	Scale  float64
	Offset Point3
	Max    int
}

// Cloud owns a bounded set of particles sampled from one shape table.
type Cloud struct {
	Max int
	P   []Particle
}

// NewCloud samples points with a uniform stride and tops up with random picks
// until exactly sc.Max particles exist.
func NewCloud(points []Point3, sc SampleConfig, r *Rand) (*Cloud, error) {
	if len(points) == 0 {
		return nil, configErr("shape", "empty shape table")
	}
	if sc.Max <= 0 {
		return nil, configErr("shape.max", "particle ceiling must be positive, got %d", sc.Max)
	}
	if r == nil {
		r = NewRand(1)
	}
	c := &Cloud{Max: sc.Max, P: make([]Particle, 0, sc.Max)}
	place := func(p Point3) Point3 { return p.Scale(sc.Scale).Add(sc.Offset) }

	step := max(1, len(points)/sc.Max)
	for i := 0; i < len(points) && len(c.P) < sc.Max; i += step {
		c.P = append(c.P, Particle{
			Base:    place(points[i]),
			Variant: i % PaletteSize,
			Phase:   r.RangeF(0, 2*math.Pi),
		})
	}
	for len(c.P) < sc.Max {
		c.P = append(c.P, Particle{
			Base:    place(points[r.Intn(len(points))]),
			Variant: r.Intn(PaletteSize),
			Phase:   r.RangeF(0, 2*math.Pi),
		})
	}
	return c, nil
}

// Step runs rotate, project and colour for every particle, appends the visible
// ones to dst and returns dst sorted far-to-near.
func (c *Cloud) Step(rot Rotation, proj *Projector, palette []RGB, t float64, dst []*Particle) []*Particle {
	for i := range c.P {
		p := &c.P[i]
		p.Pos = rot.Apply(p.Base)
		pr, ok := proj.Project(p.Pos)
		if !ok {
			p.Visible = false
			p.Depth = 0
			continue
		}
		p.ScreenX, p.ScreenY, p.Depth = pr.X, pr.Y, pr.Depth
		p.Size = proj.RenderSize(pr.Depth)
		p.Glow = proj.GlowAlpha(pr.Depth)
		if len(palette) > 0 {
			p.Color = palette[p.Variant%len(palette)].Scale(Flicker(t, p.Phase))
		}
		p.Visible = true
		dst = append(dst, p)
	}
	SortByDepth(dst)
	return dst
}

// SortByDepth orders particles by depth descending so the farthest is drawn
// first. Draw order is the only occlusion mechanism; ties are unordered.
func SortByDepth(ps []*Particle) {
	slices.SortFunc(ps, func(a, b *Particle) int {
		return cmp.Compare(b.Depth, a.Depth)
	})
}

// IsDepthSorted reports whether ps is non-increasing in depth.
func IsDepthSorted(ps []*Particle) bool {
	for i := 1; i < len(ps); i++ {
		if ps[i].Depth > ps[i-1].Depth {
			return false
		}
	}
	return true
}
