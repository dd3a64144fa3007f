package show

// RGB is an 8-bit per channel colour. Channels are clamped to [0,255] at every
// construction site that takes wider input.
type RGB struct {
	R, G, B uint8
}

func clampU8(v float64) uint8 {
	if v <= 0 || v != v {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// NewRGB builds a colour from float channels, clamping each to [0,255].
func NewRGB(r, g, b float64) RGB {
	return RGB{R: clampU8(r), G: clampU8(g), B: clampU8(b)}
}

// Scale multiplies every channel by f and clamps.
func (c RGB) Scale(f float64) RGB {
	return NewRGB(float64(c.R)*f, float64(c.G)*f, float64(c.B)*f)
}

// Floats returns the colour as [0,1] channels.
func (c RGB) Floats() (r, g, b float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

var Palette = struct {
	White       RGB
	Blue        RGB
	Pink        RGB
	Cyan        RGB
	RadarBlue   RGB
	MetalSilver RGB
	DataCyan    RGB
	DataBlue    RGB
	DataPurple  RGB
	WarmGold    RGB
	CoolCyan    RGB

	BgFlight   RGB
	BgRadar    RGB
	BgNight    RGB
	BgPulse    RGB
	BgDarkWarm RGB
}{
	White:       RGB{R: 255, G: 255, B: 255},
	Blue:        RGB{R: 150, G: 200, B: 255},
	Pink:        RGB{R: 255, G: 200, B: 255},
	Cyan:        RGB{R: 150, G: 255, B: 255},
	RadarBlue:   RGB{R: 0, G: 100, B: 200},
	MetalSilver: RGB{R: 180, G: 190, B: 200},
	DataCyan:    RGB{R: 0, G: 255, B: 255},
	DataBlue:    RGB{R: 100, G: 150, B: 255},
	DataPurple:  RGB{R: 200, G: 100, B: 255},
	WarmGold:    RGB{R: 170, G: 145, B: 120},
	CoolCyan:    RGB{R: 130, G: 170, B: 200},

	BgFlight:   RGB{R: 5, G: 10, B: 40},
	BgRadar:    RGB{R: 5, G: 10, B: 25},
	BgNight:    RGB{R: 10, G: 20, B: 15},
	BgPulse:    RGB{R: 5, G: 5, B: 15},
	BgDarkWarm: RGB{R: 20, G: 15, B: 10},
}

// DronePalette is indexed by Particle.Variant.
var DronePalette = [PaletteSize]RGB{Palette.White, Palette.Blue, Palette.Cyan, Palette.Pink}

// DataPalette cycles the pulse-scene stream colours.
var DataPalette = [3]RGB{Palette.DataCyan, Palette.DataBlue, Palette.DataPurple}
