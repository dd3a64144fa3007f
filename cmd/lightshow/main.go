// lightshow plays a procedural drone light show.
//
// Usage:
//
//	lightshow [options]
//
// Backends:
//
//	window     OpenGL window (default)
//	term       half-block preview in the terminal
//	headless   software canvas only, logging status once a second
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"time"

	"lightshow/internal/audio"
	"lightshow/internal/desktop"
	"lightshow/internal/show"
	"lightshow/internal/term"
)

var (
	backend   = flag.String("backend", "window", "Output: window, term or headless")
	ticks     = flag.Int("ticks", 0, "Stop after this many frames (0 runs until quit)")
	sceneDur  = flag.Float64("scene-duration", show.SceneDuration, "Seconds per scene")
	tps       = flag.Int("tps", show.TargetFPS, "Frames per second")
	seedFlag  = flag.Uint64("seed", 0, "Random seed (0 reads LIGHTSHOW_SEED, then the clock)")
	sceneName = flag.String("scene", "", "Scene to start on")
	mute      = flag.Bool("mute", false, "Disable sound")
	volume    = flag.Float64("volume", 0.6, "Master volume 0..1")
	snapshot  = flag.String("snapshot", "", "Headless: write the last frame to this PNG")
	fast      = flag.Bool("fast", false, "Headless: step show time without sleeping")
)

// GLFW must run on the main thread.
func init() { runtime.LockOSThread() }

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := log.New(os.Stderr, "lightshow: ", log.LstdFlags)
	if err := run(logger); err != nil {
		var ce *show.ConfigError
		if errors.As(err, &ce) {
			logger.Printf("invalid %s: %s", ce.Field, ce.Reason)
		} else {
			logger.Printf("error: %v", err)
		}
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	cfg := show.DefaultConfig()
	cfg.SceneDuration = *sceneDur
	cfg.TPS = *tps
	cfg.Seed = pickSeed(*seedFlag)

	sh, err := show.New(cfg)
	if err != nil {
		return err
	}
	logger.Printf("seed %d, %d scenes of %.1fs", cfg.Seed, len(sh.Scenes()), cfg.SceneDuration)

	start := 0
	if *sceneName != "" {
		i, ok := sh.SceneIndex(*sceneName)
		if !ok {
			return &show.ConfigError{Field: "scene", Reason: fmt.Sprintf("unknown scene %q", *sceneName)}
		}
		start = i
	}

	if !*mute && *backend != "headless" {
		eng, err := audio.Open(*volume)
		if err != nil {
			logger.Printf("audio init failed (continuing without sound): %v", err)
		} else {
			defer eng.Close()
			eng.Attach(sh.Events())
		}
	}

	switch *backend {
	case "window":
		return desktop.Run(sh, desktop.Options{Scene: start, Ticks: *ticks, Logger: logger})
	case "term":
		return term.Run(sh, term.Options{Scene: start, Ticks: *ticks, Logger: logger})
	case "headless":
		return runHeadless(sh, headlessOptions{
			Scene:    start,
			Ticks:    *ticks,
			Fast:     *fast,
			Snapshot: *snapshot,
			Logger:   logger,
		})
	}
	return &show.ConfigError{Field: "backend", Reason: fmt.Sprintf("unknown backend %q", *backend)}
}

// pickSeed prefers the flag, then LIGHTSHOW_SEED, then the clock.
func pickSeed(flagSeed uint64) uint64 {
	if flagSeed != 0 {
		return flagSeed
	}
	if s := os.Getenv("LIGHTSHOW_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			return v
		}
	}
	return uint64(time.Now().UnixNano())
}
