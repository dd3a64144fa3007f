package main

import (
	"fmt"
	"image/png"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lightshow/internal/show"
)

const headlessScale = 0.5

type headlessOptions struct {
	Scene    int
	Ticks    int
	Fast     bool // advance show time by 1/TPS per frame instead of sleeping
	Snapshot string
	Logger   *log.Logger
	Stop     chan os.Signal // defaults to SIGINT and SIGTERM
}

// runHeadless drives sh into a software canvas. Without Ticks it runs until
// SIGINT or SIGTERM.
func runHeadless(sh *show.Show, opts headlessOptions) error {
	cfg := sh.Config()
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	cv := show.NewCanvas(int(float64(cfg.Width)*headlessScale), int(float64(cfg.Height)*headlessScale), headlessScale)
	cv.Clear(sh.Scenes()[opts.Scene].Background())

	sig := opts.Stop
	if sig == nil {
		sig = make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sig)
	}

	frameDur := time.Second / time.Duration(cfg.TPS)
	tick := time.NewTicker(frameDur)
	defer tick.Stop()

	begin := time.Now()
	sh.Start(opts.Scene, 0)
	lastLog := 0.0
	for frame := 0; opts.Ticks <= 0 || frame < opts.Ticks; frame++ {
		now := float64(frame) / float64(cfg.TPS)
		if opts.Fast {
			select {
			case s := <-sig:
				opts.Logger.Printf("interrupted by %v", s)
				return writeSnapshot(cv, opts.Snapshot)
			default:
			}
		} else {
			select {
			case s := <-sig:
				opts.Logger.Printf("interrupted by %v", s)
				return writeSnapshot(cv, opts.Snapshot)
			case <-tick.C:
			}
			now = time.Since(begin).Seconds()
		}
		f := sh.Step(now, show.Input{})
		if err := cv.Present(f); err != nil {
			return fmt.Errorf("present: %w", err)
		}
		if now-lastLog >= 1 {
			opts.Logger.Print(sh.Status())
			lastLog = now
		}
	}
	opts.Logger.Printf("headless run done: %s", sh.Status())
	return writeSnapshot(cv, opts.Snapshot)
}

func writeSnapshot(cv *show.Canvas, path string) error {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := png.Encode(f, cv.Image(nil)); err != nil {
		f.Close()
		return fmt.Errorf("snapshot: %w", err)
	}
	return f.Close()
}
