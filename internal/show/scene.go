package show

// Pointer is the optional pointer-position hint, in viewport units.
type Pointer struct {
	X, Y    float64
	Present bool
}

// Input is polled once per frame by a backend.
type Input struct {
	Quit    bool
	Advance bool
	Pointer Pointer
}

// Scene produces one frame's sprites for the active time slot.
type Scene interface {
	Name() string
	Background() RGB
	Generate(clk SceneClock, ptr Pointer, buf *SpriteBuffer)
}

// viewport is embedded by the 2D scenes.
type viewport struct {
	w, h float64
}

// add2D drops sprites whose centre is off screen.
func (v viewport) add2D(buf *SpriteBuffer, s Sprite) bool {
	if !s.InViewport(v.w, v.h) {
		return !buf.Full()
	}
	return buf.Add(s)
}

// unit maps a hash to [0,1).
func unit(h uint64) float64 {
	return float64(h>>11) * (1.0 / (1 << 53))
}
