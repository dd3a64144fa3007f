package term

import (
	"io"
	"log"
	"testing"

	"github.com/gdamore/tcell/v2"

	"lightshow/internal/show"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(w, h)
	return screen
}

func TestBackend_PresentDrawsHalfBlocks(t *testing.T) {
	screen := newSimScreen(t, 40, 13)
	defer screen.Fini()
	b := New(screen, 1280, 720)

	if b.Canvas().W != 40 || b.Canvas().H != 23 {
		t.Fatalf("canvas %dx%d, want 40x23", b.Canvas().W, b.Canvas().H)
	}

	b.SetStatus("radar | scene 2/5")
	err := b.Present(show.Frame{
		FadeAlpha: 1,
		Sprites:   []show.Sprite{{X: 640, Y: 360, Size: 200, Color: show.Palette.White, Alpha: 1}},
	})
	if err != nil {
		t.Fatal(err)
	}

	mainc, _, style, _ := screen.GetContent(20, 5)
	if mainc != halfBlock {
		t.Fatalf("centre cell rune %q", mainc)
	}
	fg, bg, _ := style.Decompose()
	if r, _, _ := fg.RGB(); r < 200 {
		t.Errorf("centre top pixel not lit: %v", r)
	}
	if r, _, _ := bg.RGB(); r < 200 {
		t.Errorf("centre bottom pixel not lit: %v", r)
	}

	_, _, style, _ = screen.GetContent(0, 0)
	fg, _, _ = style.Decompose()
	if r, g, b := fg.RGB(); r != 0 || g != 0 || b != 0 {
		t.Errorf("corner lit: %d,%d,%d", r, g, b)
	}

	status := ""
	for x := 0; x < 5; x++ {
		r, _, _, _ := screen.GetContent(x, 12)
		status += string(r)
	}
	if status != "radar" {
		t.Errorf("status row = %q", status)
	}
}

func TestBackend_HandleEvent(t *testing.T) {
	screen := newSimScreen(t, 40, 13)
	defer screen.Fini()
	b := New(screen, 1280, 720)

	b.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if in := b.Input(); !in.Advance || in.Quit {
		t.Fatalf("space: %+v", in)
	}
	if in := b.Input(); in.Advance {
		t.Fatal("advance not cleared after read")
	}

	b.HandleEvent(tcell.NewEventMouse(20, 5, tcell.ButtonNone, tcell.ModNone))
	in := b.Input()
	if !in.Pointer.Present {
		t.Fatal("pointer missing")
	}
	if in.Pointer.X < 600 || in.Pointer.X > 700 || in.Pointer.Y < 320 || in.Pointer.Y > 400 {
		t.Errorf("pointer at %v,%v, want near the viewport centre", in.Pointer.X, in.Pointer.Y)
	}

	b.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	if !b.Input().Quit {
		t.Error("q did not quit")
	}
}

func TestBackend_EscapeQuits(t *testing.T) {
	screen := newSimScreen(t, 20, 8)
	defer screen.Fini()
	b := New(screen, 1280, 720)
	b.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if !b.Input().Quit {
		t.Error("escape did not quit")
	}
}

func TestLoop_RunsTicks(t *testing.T) {
	screen := newSimScreen(t, 60, 20)
	defer screen.Fini()

	cfg := show.DefaultConfig()
	cfg.TPS = 500
	sh, err := show.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	err = Loop(screen, sh, Options{Scene: 1, Ticks: 4, Logger: log.New(io.Discard, "", 0)})
	if err != nil {
		t.Fatalf("Loop: %v", err)
	}
	if sh.Clock().Index != 1 {
		t.Errorf("scene index %d, want 1", sh.Clock().Index)
	}
	if mainc, _, _, _ := screen.GetContent(0, 0); mainc != halfBlock {
		t.Errorf("nothing drawn: %q", mainc)
	}
}
