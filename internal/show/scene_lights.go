package show

import "math"

// WindowScene lights a façade grid of windows that breathe in warm and cool
// tones, with a few large soft blobs drifting around it.
type WindowScene struct {
	viewport
	seed       uint64
	Cols, Rows int
	Blobs      int
}

func NewWindowScene(cfg Config) *WindowScene {
	return &WindowScene{
		viewport: viewport{w: float64(cfg.Width), h: float64(cfg.Height)},
		seed:     cfg.Seed,
		Cols:     8,
		Rows:     5,
		Blobs:    20,
	}
}

func (s *WindowScene) Name() string    { return "windows" }
func (s *WindowScene) Background() RGB { return Palette.BgDarkWarm }

func (s *WindowScene) Generate(clk SceneClock, _ Pointer, buf *SpriteBuffer) {
	t := clk.SceneTime
	sx := s.w / float64(s.Cols+1)
	sy := s.h / float64(s.Rows+1)
	for row := 0; row < s.Rows; row++ {
		for col := 0; col < s.Cols; col++ {
			id := row*s.Cols + col
			pulse := 0.5 + 0.5*math.Sin(t*2+float64(id)*0.3)
			size := float64(8+(id%5)*3) * (0.7 + 0.3*pulse)
			c, a := Palette.WarmGold, (80+pulse*120)/255
			if id%2 == 1 {
				c, a = Palette.CoolCyan, (100+pulse*80)/255
			}
			ok := s.add2D(buf, Sprite{
				X: float64(col+1) * sx, Y: float64(row+1) * sy,
				Size: size, Color: c, Alpha: a,
			})
			if !ok {
				return
			}
		}
	}

	// Blobs hop to a new spot every half second.
	slot := int(t * 2)
	for i := 0; i < s.Blobs; i++ {
		h := hash2D(s.seed, i, slot)
		pulse := 0.5 + 0.5*math.Sin(t*1.2+float64(i)*0.4)
		c := Palette.WarmGold
		if h&1 == 1 {
			c = Palette.CoolCyan
		}
		ok := s.add2D(buf, Sprite{
			X:     unit(h) * s.w,
			Y:     unit(splitmix64(h)) * s.h,
			Size:  math.Max(MinSpriteSz, (15+unit(splitmix64(h^3))*20)*pulse),
			Color: c,
			Alpha: (40 + pulse*60) / 255,
		})
		if !ok {
			return
		}
	}
}
