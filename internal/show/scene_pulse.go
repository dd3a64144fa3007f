package show

import "math"

// PulseScene streams data columns down the screen over a breathing particle
// field. A present pointer draws a highlight ring and pulls nearby particles
// toward it.
type PulseScene struct {
	viewport
	r *Rand

	Streams      int
	StreamPoints int
	Field        int
	PullRadius   float64
	PullStrength float64
}

func NewPulseScene(cfg Config, r *Rand) *PulseScene {
	return &PulseScene{
		viewport:     viewport{w: float64(cfg.Width), h: float64(cfg.Height)},
		r:            r,
		Streams:      50,
		StreamPoints: 15,
		Field:        500,
		PullRadius:   180,
		PullStrength: 60,
	}
}

func (s *PulseScene) Name() string    { return "pulse" }
func (s *PulseScene) Background() RGB { return Palette.BgPulse }

// Attract pulls (x, y) toward (cx, cy) when it lies within radius. The pull
// fades linearly to zero at the edge and never overshoots the centre.
func Attract(x, y, cx, cy, radius, strength float64) (float64, float64) {
	dx, dy := cx-x, cy-y
	d2 := dx*dx + dy*dy
	if d2 > radius*radius || d2 < 0.01 {
		return x, y
	}
	d := math.Sqrt(d2)
	pull := math.Min(d, (1-d/radius)*strength)
	return x + dx/d*pull, y + dy/d*pull
}

func (s *PulseScene) pull(ptr Pointer, x, y float64) (float64, float64) {
	if !ptr.Present {
		return x, y
	}
	return Attract(x, y, ptr.X, ptr.Y, s.PullRadius, s.PullStrength)
}

func (s *PulseScene) Generate(clk SceneClock, ptr Pointer, buf *SpriteBuffer) {
	t := clk.SceneTime
	if !s.streams(t, ptr, buf) {
		return
	}
	if ptr.Present && !s.ring(t, ptr, buf) {
		return
	}
	s.field(t, ptr, buf)
}

func (s *PulseScene) streams(t float64, ptr Pointer, buf *SpriteBuffer) bool {
	n := float64(s.Streams)
	for i := 0; i < s.Streams; i++ {
		x := s.w/n*float64(i) + s.w/(n*2)
		speed := 1.5 + float64(i%5)*0.5
		head := math.Mod(t*speed*40, s.h+200) - 100
		base := DataPalette[(i+int(t*2))%len(DataPalette)]
		for j := 0; j < s.StreamPoints; j++ {
			y := head - float64(j)*30
			if y < -10 || y >= s.h+10 {
				continue
			}
			bright := 0.4 + 0.6*math.Sin(math.Mod(t*6+float64(i)*0.5+float64(j)*0.3, 2*math.Pi))
			px, py := s.pull(ptr, x+s.r.RangeF(-12.5, 12.5), y)
			ok := s.add2D(buf, Sprite{
				X: px, Y: py,
				Size:  2 + s.r.RangeF(0, 3),
				Color: base.Scale(math.Max(0, bright)),
				Alpha: 180.0 / 255.0 * bright,
			})
			if !ok {
				return false
			}
		}
	}
	return true
}

func (s *PulseScene) ring(t float64, ptr Pointer, buf *SpriteBuffer) bool {
	const n = 80
	for i := 0; i < n; i++ {
		a := float64(i) / n * 2 * math.Pi
		rad := 40 + s.r.RangeF(0, 80)
		pulse := math.Sin(t*4+a)*0.5 + 0.5
		ok := s.add2D(buf, Sprite{
			X: ptr.X + math.Cos(a)*rad, Y: ptr.Y + math.Sin(a)*rad,
			Size:      3 + pulse*5,
			Color:     Palette.DataPurple,
			Alpha:     220.0 / 255.0 * pulse,
			GlowAlpha: 220.0 / 255.0 * pulse / GlowAlphaDiv,
		})
		if !ok {
			return false
		}
	}
	return true
}

func (s *PulseScene) field(t float64, ptr Pointer, buf *SpriteBuffer) {
	for i := 0; i < s.Field; i++ {
		x, y := s.r.RangeF(0, s.w), s.r.RangeF(0, s.h)
		pulse := math.Sin(t*2.5+x*0.01+y*0.01)*0.5 + 0.5
		bright := 0.3 + 0.7*math.Sin(math.Mod(t*4+float64(i)*0.1, 2*math.Pi))
		base := DataPalette[(i+int(t))%len(DataPalette)]
		px, py := s.pull(ptr, x, y)
		ok := s.add2D(buf, Sprite{
			X: px, Y: py,
			Size:  1.5 + pulse*4,
			Color: base.Scale(math.Max(0, bright)),
			Alpha: 120.0 / 255.0 * bright * pulse,
		})
		if !ok {
			return
		}
	}
}
