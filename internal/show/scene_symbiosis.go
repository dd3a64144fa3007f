package show

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// SymbiosisScene grows a fractal crown from a beacon tower and recolours it
// from structural blue to organic green, then lets green spores drift through
// a perlin flow field.
type SymbiosisScene struct {
	viewport
	fractal *Fractal
	noise   *perlin.Perlin
	seed    uint64
	Crowns  int
	Spores  int

	roots []Branch
	path  []PathParticle
}

func NewSymbiosisScene(cfg Config) (*SymbiosisScene, error) {
	fc := cfg.Fractal
	fc.StepLength = math.Max(fc.StepLength, 3)
	f, err := NewFractal(fc)
	if err != nil {
		return nil, err
	}
	return &SymbiosisScene{
		viewport: viewport{w: float64(cfg.Width), h: float64(cfg.Height)},
		fractal:  f,
		noise:    perlin.NewPerlin(2, 2, 3, int64(cfg.Seed)),
		seed:     cfg.Seed,
		Crowns:   8,
		Spores:   300,
	}, nil
}

func (s *SymbiosisScene) Name() string    { return "symbiosis" }
func (s *SymbiosisScene) Background() RGB { return Palette.BgNight }

// Tree returns the trunk and crown samples for scene time t.
func (s *SymbiosisScene) Tree(t float64) []PathParticle {
	transition := Progress(t, TransitionDuration)
	growth := Progress(t, GrowthDuration)
	tint := ColorBlend{Structural: Palette.RadarBlue, Height: s.h, Transition: transition}

	x, base := s.w/2, s.h*0.95
	height := s.h * 0.85 * growth
	trunk := height * 0.3

	s.path = s.fractal.Trunk(s.path[:0], x, base, trunk, t, tint)
	s.roots = s.roots[:0]
	for i := 0; i < s.Crowns; i++ {
		s.roots = append(s.roots, Branch{
			X: x, Y: base - trunk,
			Angle:  math.Pi/2 - 0.25 + float64(i)/float64(s.Crowns)*0.5,
			Length: height * (0.35 + unit(hash2D(s.seed, i, 0))*0.25),
			Spread: math.Pi / 5,
			Depth:  s.fractal.Config().MaxDepth,
		})
	}
	s.path = s.fractal.Grow(s.path, tint, s.roots...)
	return s.path
}

func (s *SymbiosisScene) Generate(clk SceneClock, _ Pointer, buf *SpriteBuffer) {
	t := clk.SceneTime
	for _, p := range s.Tree(t) {
		if !s.add2D(buf, p.Sprite()) {
			return
		}
	}

	transition := Progress(t, TransitionDuration)
	if transition <= 0.3 {
		return
	}
	n := int(float64(s.Spores) * transition)
	for i := 0; i < n; i++ {
		h := hash2D(s.seed^0x5EED, i, 1)
		x := s.w/2 + (unit(h)-0.5)*s.w*0.6
		y := s.h*0.3 + unit(splitmix64(h))*s.h*0.5
		x += s.noise.Noise2D(x*0.01, t*0.5) * 30
		y += s.noise.Noise2D(y*0.01+100, t*0.4) * 20
		g := 80 + unit(splitmix64(h^1))*120
		ok := s.add2D(buf, Sprite{
			X: x, Y: y,
			Size:  2 + unit(splitmix64(h^2))*2,
			Color: NewRGB(20, g, g/2+50),
			Alpha: 80.0 / 255.0 * transition,
		})
		if !ok {
			return
		}
	}
}
