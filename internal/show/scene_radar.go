package show

import "math"

// RadarScene sweeps radial scan rays over a faint route grid.
type RadarScene struct {
	viewport
	Rays int
}

func NewRadarScene(cfg Config) *RadarScene {
	return &RadarScene{viewport: viewport{w: float64(cfg.Width), h: float64(cfg.Height)}, Rays: 20}
}

func (s *RadarScene) Name() string    { return "radar" }
func (s *RadarScene) Background() RGB { return Palette.BgRadar }

func (s *RadarScene) Generate(clk SceneClock, _ Pointer, buf *SpriteBuffer) {
	reach := math.Floor(s.w / 2)
	for i := 0; i < s.Rays; i++ {
		sin, cos := math.Sincos(clk.SceneTime*0.5 + float64(i)*2*math.Pi/float64(s.Rays))
		for r := 50.0; r < reach; r += 30 {
			ok := s.add2D(buf, Sprite{
				X: s.w/2 + cos*r, Y: s.h/2 + sin*r,
				Size:  2,
				Color: Palette.RadarBlue,
				Alpha: 150.0 / 255.0 * (1 - r/reach),
			})
			if !ok {
				return
			}
		}
	}
	for gx := 0; gx < int(s.w); gx += 80 {
		for gy := 0; gy < int(s.h); gy += 60 {
			ok := s.add2D(buf, Sprite{
				X: float64(gx) + float64(gy%120)*0.3, Y: float64(gy),
				Size:  1,
				Color: Palette.MetalSilver,
				Alpha: 80.0 / 255.0,
			})
			if !ok {
				return
			}
		}
	}
}
