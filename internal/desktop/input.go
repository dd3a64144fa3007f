package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"lightshow/internal/show"
)

// Input turns GLFW key state into per-frame show input.
type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{prevKeys: make(map[glfw.Key]bool)}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// Poll reads quit, advance and the pointer hint. The pointer is reported in
// viewport units and only while the cursor is inside the window.
func (in *Input) Poll(window *glfw.Window, viewW, viewH float64) show.Input {
	var out show.Input
	out.Quit = window.ShouldClose() ||
		window.GetKey(glfw.KeyEscape) == glfw.Press ||
		window.GetKey(glfw.KeyQ) == glfw.Press
	out.Advance = in.JustPressed(window, glfw.KeySpace)

	if window.GetAttrib(glfw.Hovered) == glfw.True {
		cx, cy := window.GetCursorPos()
		winW, winH := window.GetSize()
		out.Pointer = cursorToViewport(cx, cy, winW, winH, viewW, viewH)
	}
	return out
}

// cursorToViewport rescales a window-space cursor position. Positions
// outside the window are dropped.
func cursorToViewport(cx, cy float64, winW, winH int, viewW, viewH float64) show.Pointer {
	if winW <= 0 || winH <= 0 || cx < 0 || cy < 0 || cx >= float64(winW) || cy >= float64(winH) {
		return show.Pointer{}
	}
	return show.Pointer{
		X:       cx * viewW / float64(winW),
		Y:       cy * viewH / float64(winH),
		Present: true,
	}
}
