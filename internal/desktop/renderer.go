package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"lightshow/internal/show"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer composites frames into a persistent float accumulation texture so
// trails survive buffer swaps, then blits it to the window.
type Renderer struct {
	width, height int32
	maxSprites    int

	spriteVAO uint32
	spriteVBO uint32
	screenVAO uint32

	coreProg uint32
	glowProg uint32
	fadeProg uint32
	blitProg uint32

	uCoreProj  int32
	uGlowProj  int32
	uFadeColor int32
	uBlitTex   int32

	fbo   uint32
	accum uint32

	fbW, fbH int32

	// Reusable render buffers to avoid per-frame heap allocations.
	glowBuf []float32
	coreBuf []float32
}

func NewRenderer(width, height, maxSprites int) (*Renderer, error) {
	r := &Renderer{
		width:      int32(width),
		height:     int32(height),
		maxSprites: maxSprites,
		fbW:        int32(width),
		fbH:        int32(height),
		glowBuf:    make([]float32, 0, maxSprites*8),
		coreBuf:    make([]float32, 0, maxSprites*8),
	}
	progs := []struct {
		dst        *uint32
		name       string
		vert, frag string
	}{
		{&r.coreProg, "core", spriteVertSrc, coreFragSrc},
		{&r.glowProg, "glow", spriteVertSrc, glowFragSrc},
		{&r.fadeProg, "fade", screenVertSrc, fadeFragSrc},
		{&r.blitProg, "blit", screenVertSrc, blitFragSrc},
	}
	for _, p := range progs {
		id, err := linkProgram(p.vert, p.frag)
		if err != nil {
			r.Destroy()
			return nil, fmt.Errorf("%s program: %w", p.name, err)
		}
		*p.dst = id
	}

	// Sprite VAO/VBO: streaming buffer, 8 floats per sprite.
	gl.GenVertexArrays(1, &r.spriteVAO)
	gl.GenBuffers(1, &r.spriteVBO)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxSprites*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))

	// The fullscreen passes generate their vertices from gl_VertexID.
	gl.GenVertexArrays(1, &r.screenVAO)

	proj := mgl32.Ortho2D(0, float32(width), float32(height), 0)
	gl.UseProgram(r.coreProg)
	r.uCoreProj = gl.GetUniformLocation(r.coreProg, gl.Str("uProj\x00"))
	gl.UniformMatrix4fv(r.uCoreProj, 1, false, &proj[0])
	gl.UseProgram(r.glowProg)
	r.uGlowProj = gl.GetUniformLocation(r.glowProg, gl.Str("uProj\x00"))
	gl.UniformMatrix4fv(r.uGlowProj, 1, false, &proj[0])
	gl.UseProgram(r.fadeProg)
	r.uFadeColor = gl.GetUniformLocation(r.fadeProg, gl.Str("uColor\x00"))
	gl.UseProgram(r.blitProg)
	r.uBlitTex = gl.GetUniformLocation(r.blitProg, gl.Str("uTex\x00"))
	gl.Uniform1i(r.uBlitTex, 0)

	if err := r.initAccum(); err != nil {
		r.Destroy()
		return nil, err
	}
	gl.BindVertexArray(0)
	return r, nil
}

// initAccum creates the trail texture. It is half-float so a 15/255 fade
// still converges on the background colour.
func (r *Renderer) initAccum() error {
	gl.GenTextures(1, &r.accum)
	gl.BindTexture(gl.TEXTURE_2D, r.accum)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA16F, r.width, r.height, 0, gl.RGBA, gl.FLOAT, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.GenFramebuffers(1, &r.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, r.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, r.accum, 0)
	if st := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); st != gl.FRAMEBUFFER_COMPLETE {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		return fmt.Errorf("accumulation framebuffer incomplete: 0x%x", st)
	}
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return nil
}

// SetTarget records the window framebuffer size used by the final blit.
func (r *Renderer) SetTarget(fbW, fbH int) {
	r.fbW, r.fbH = int32(fbW), int32(fbH)
}

// Present runs the fade pass, the additive glow and core passes, then blits.
func (r *Renderer) Present(f show.Frame) error {
	gl.BindFramebuffer(gl.FRAMEBUFFER, r.fbo)
	gl.Viewport(0, 0, r.width, r.height)
	gl.Enable(gl.BLEND)

	gl.UseProgram(r.fadeProg)
	gl.BindVertexArray(r.screenVAO)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	br, bg, bb := f.Background.Floats()
	gl.Uniform4f(r.uFadeColor, br, bg, bb, float32(f.FadeAlpha))
	gl.DrawArrays(gl.TRIANGLES, 0, 3)

	r.glowBuf, r.coreBuf = show.RenderData(f.Sprites, r.glowBuf, r.coreBuf)
	gl.BlendFunc(gl.ONE, gl.ONE)
	r.drawPoints(r.glowProg, r.glowBuf)
	r.drawPoints(r.coreProg, r.coreBuf)
	gl.Disable(gl.BLEND)

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, r.fbW, r.fbH)
	gl.UseProgram(r.blitProg)
	gl.BindVertexArray(r.screenVAO)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.accum)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)

	if e := gl.GetError(); e != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%x", e)
	}
	return nil
}

// drawPoints renders buf ([x, y, size, r, g, b, a, pad] * N) as point sprites.
func (r *Renderer) drawPoints(prog uint32, buf []float32) {
	if len(buf) == 0 {
		return
	}
	count := min(len(buf)/8, r.maxSprites)
	gl.UseProgram(prog)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))
}

func (r *Renderer) Destroy() {
	if r.fbo != 0 {
		gl.DeleteFramebuffers(1, &r.fbo)
	}
	if r.accum != 0 {
		gl.DeleteTextures(1, &r.accum)
	}
	if r.spriteVBO != 0 {
		gl.DeleteBuffers(1, &r.spriteVBO)
	}
	for _, id := range []uint32{r.spriteVAO, r.screenVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.coreProg, r.glowProg, r.fadeProg, r.blitProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

var _ show.Renderer = (*Renderer)(nil)
