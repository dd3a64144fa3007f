package term

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"lightshow/internal/show"
)

// Options control a terminal run.
type Options struct {
	Scene  int
	Ticks  int // stop after this many frames; 0 runs until quit
	Logger *log.Logger
}

// Run takes over the terminal and drives sh at the configured tick rate.
func Run(sh *show.Show, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcell init: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	defer screen.Fini()

	return Loop(screen, sh, opts)
}

// Loop drives sh on an initialised screen until quit or opts.Ticks frames.
func Loop(screen tcell.Screen, sh *show.Show, opts Options) error {
	cfg := sh.Config()
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	b := New(screen, cfg.Width, cfg.Height)

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	tick := time.NewTicker(time.Second / time.Duration(cfg.TPS))
	defer tick.Stop()

	start := time.Now()
	sh.Start(opts.Scene, 0)
	for frame := 0; opts.Ticks <= 0 || frame < opts.Ticks; frame++ {
		select {
		case ev := <-events:
			b.HandleEvent(ev)
			frame--
			continue
		case <-tick.C:
		}

		in := b.Input()
		if in.Quit {
			break
		}
		f := sh.Step(time.Since(start).Seconds(), in)
		b.SetStatus(sh.Status())
		if err := b.Present(f); err != nil {
			return fmt.Errorf("present: %w", err)
		}
	}
	opts.Logger.Printf("terminal preview stopped: %s", sh.Status())
	return nil
}
