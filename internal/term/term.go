// Package term previews a show in a terminal. Each cell packs two canvas
// pixels using the upper half block, foreground on top.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"lightshow/internal/show"
)

const halfBlock = '▀'

// Backend renders frames onto a tcell screen through the software compositor.
type Backend struct {
	screen       tcell.Screen
	canvas       *show.Canvas
	viewW, viewH float64
	rows         int // rows used by the picture; the last screen row holds status

	quit    bool
	advance bool
	pointer show.Pointer
	status  string
}

// New wraps an initialised screen.
func New(screen tcell.Screen, viewW, viewH int) *Backend {
	b := &Backend{screen: screen, viewW: float64(viewW), viewH: float64(viewH)}
	b.Resize()
	return b
}

// Resize rebuilds the canvas for the current screen size. Trails are lost.
func (b *Backend) Resize() {
	cols, rows := b.screen.Size()
	b.rows = max(1, rows-1)
	scale := math.Min(float64(cols)/b.viewW, float64(b.rows*2)/b.viewH)
	if scale <= 0 {
		scale = 1e-3
	}
	w := max(1, int(math.Ceil(b.viewW*scale)))
	h := max(1, int(math.Ceil(b.viewH*scale)))
	b.canvas = show.NewCanvas(w, h, scale)
	b.screen.Clear()
}

func (b *Backend) Canvas() *show.Canvas { return b.canvas }

// SetStatus sets the line drawn under the picture.
func (b *Backend) SetStatus(s string) { b.status = s }

func rgbColor(c show.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (b *Backend) Present(f show.Frame) error {
	if err := b.canvas.Present(f); err != nil {
		return err
	}
	for y := 0; y < b.rows && y*2 < b.canvas.H; y++ {
		for x := 0; x < b.canvas.W; x++ {
			top := b.canvas.At(x, y*2)
			bot := b.canvas.At(x, y*2+1)
			st := tcell.StyleDefault.Foreground(rgbColor(top)).Background(rgbColor(bot))
			b.screen.SetContent(x, y, halfBlock, nil, st)
		}
	}
	cols, _ := b.screen.Size()
	st := tcell.StyleDefault.Foreground(tcell.ColorGray)
	rs := []rune(b.status)
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(rs) {
			r = rs[x]
		}
		b.screen.SetContent(x, b.rows, r, nil, st)
	}
	b.screen.Show()
	return nil
}

// HandleEvent folds one tcell event into the pending input.
func (b *Backend) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			b.quit = true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				b.quit = true
			case ' ':
				b.advance = true
			}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		s := b.canvas.Scale
		b.pointer = show.Pointer{
			X:       (float64(x) + 0.5) / s,
			Y:       (float64(y)*2 + 1) / s,
			Present: y < b.rows,
		}
	case *tcell.EventResize:
		b.screen.Sync()
		b.Resize()
	}
}

// Input returns the pending input. Advance is edge-triggered and cleared.
func (b *Backend) Input() show.Input {
	in := show.Input{Quit: b.quit, Advance: b.advance, Pointer: b.pointer}
	b.advance = false
	return in
}

var _ show.Renderer = (*Backend)(nil)
