package desktop

import (
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"lightshow/internal/show"
)

// Options control a windowed run.
type Options struct {
	Title  string
	Scene  int
	Ticks  int // stop after this many frames; 0 runs until quit
	Logger *log.Logger
}

// Run opens a window and drives sh until the viewer quits.
func Run(sh *show.Show, opts Options) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	cfg := sh.Config()
	if opts.Title == "" {
		opts.Title = "lightshow"
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	window, err := initWindow(cfg.Width, cfg.Height, opts.Title)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	opts.Logger.Printf("opengl %s", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	r, err := NewRenderer(cfg.Width, cfg.Height, cfg.MaxSprites)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer r.Destroy()

	input := NewInput()
	start := glfw.GetTime()
	sh.Start(opts.Scene, 0)
	lastTitle := -1.0

	for frame := 0; opts.Ticks <= 0 || frame < opts.Ticks; frame++ {
		glfw.PollEvents()
		in := input.Poll(window, float64(cfg.Width), float64(cfg.Height))
		if in.Quit {
			break
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			// Minimised.
			time.Sleep(50 * time.Millisecond)
			continue
		}
		r.SetTarget(fbW, fbH)

		now := glfw.GetTime() - start
		f := sh.Step(now, in)
		if err := r.Present(f); err != nil {
			return fmt.Errorf("present: %w", err)
		}
		window.SwapBuffers()

		if now-lastTitle >= 0.5 {
			window.SetTitle(opts.Title + " | " + sh.Status())
			lastTitle = now
		}
	}
	return nil
}
