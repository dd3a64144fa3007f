package show

// Sprite is the tuple the core hands to a renderer: a soft disc at a screen
// position. Alpha values are in [0,1]. A positive GlowAlpha asks for a larger
// halo of the same colour drawn before the core disc.
type Sprite struct {
	X, Y      float64
	Size      float64
	Color     RGB
	Alpha     float64
	GlowAlpha float64
}

// Frame is everything a renderer needs for one tick: the fade overlay first,
// then the sprites in order.
type Frame struct {
	Background RGB
	FadeAlpha  float64
	Sprites    []Sprite
}

// Renderer implements the compositing contract for one output surface.
type Renderer interface {
	Present(f Frame) error
}

// SpriteBuffer collects a frame's sprites under a hard ceiling.
type SpriteBuffer struct {
	Max int
	S   []Sprite
}

func NewSpriteBuffer(maxSprites int) *SpriteBuffer {
	if maxSprites <= 0 {
		maxSprites = MaxSceneSprites
	}
	return &SpriteBuffer{Max: maxSprites, S: make([]Sprite, 0, maxSprites)}
}

func (b *SpriteBuffer) Reset() { b.S = b.S[:0] }

// Full reports whether the ceiling has been reached.
func (b *SpriteBuffer) Full() bool { return len(b.S) >= b.Max }

func (b *SpriteBuffer) Len() int { return len(b.S) }

// Add appends s unless the buffer is full. Alpha values are clamped to [0,1].
func (b *SpriteBuffer) Add(s Sprite) bool {
	if len(b.S) >= b.Max {
		return false
	}
	s.Alpha = clampF(s.Alpha, 0, 1)
	s.GlowAlpha = clampF(s.GlowAlpha, 0, 1)
	b.S = append(b.S, s)
	return true
}

// InViewport reports whether the sprite centre lies on screen.
func (s Sprite) InViewport(w, h float64) bool {
	return s.X >= 0 && s.X < w && s.Y >= 0 && s.Y < h
}

// RenderData splits sprites into glow and core point-sprite buffers.
// Format: [x, y, size, r, g, b, a, 0] * N, RGB pre-multiplied by alpha for
// additive blending.
func RenderData(sprites []Sprite, glowBuf, coreBuf []float32) ([]float32, []float32) {
	glowBuf = glowBuf[:0]
	coreBuf = coreBuf[:0]
	for _, s := range sprites {
		r, g, b := s.Color.Floats()
		if s.GlowAlpha > 0 {
			ga := float32(s.GlowAlpha)
			glowBuf = append(glowBuf,
				float32(s.X), float32(s.Y), float32(s.Size*GlowSizeMul*2),
				r*ga, g*ga, b*ga, ga, 0)
		}
		if s.Alpha <= 0 {
			continue
		}
		a := float32(s.Alpha)
		coreBuf = append(coreBuf,
			float32(s.X), float32(s.Y), float32(s.Size*2),
			r*a, g*a, b*a, a, 0)
	}
	return glowBuf, coreBuf
}
