// Package audio scores the show: a drone bed per scene, crossfaded on every
// change, plus a chime or click on scene events. Synthesis is done with beep
// and played through an oto device.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"lightshow/internal/show"
)

const (
	ChannelCount = 2
	Crossfade    = 2 * time.Second
)

// Score reacts to show events by queueing sounds on a Stream. It does not
// touch any device and can be driven directly in tests.
type Score struct {
	out   *Stream
	mu    sync.Mutex
	drone *fader
	scene string
}

func NewScore(out *Stream) *Score {
	return &Score{out: out}
}

// Attach subscribes the score to the show's scene events.
func (sc *Score) Attach(bus *show.EventBus) {
	bus.Subscribe(show.EventSceneChanged, sc.Handle)
	bus.Subscribe(show.EventSceneSkipped, sc.Handle)
}

// Scene is the name of the scene whose drone is playing.
func (sc *Score) Scene() string {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.scene
}

func (sc *Score) Handle(ev show.Event) {
	switch ev.Type {
	case show.EventSceneSkipped:
		sc.out.Add(Click())
	case show.EventSceneChanged:
		v := VoiceFor(ev.Name)
		sc.mu.Lock()
		if old := sc.drone; old != nil {
			sc.out.Update(func() { old.FadeOut(Crossfade) })
		}
		d := newFader(v.Drone(), Crossfade)
		sc.drone = d
		sc.scene = ev.Name
		sc.mu.Unlock()
		sc.out.Add(d, Chime(v))
	}
}

// Engine owns the output device.
type Engine struct {
	*Score
	ctx    *oto.Context
	player oto.Player
}

// Open starts the audio device and begins playing silence. It waits for the
// device to come up.
func Open(volume float64) (*Engine, error) {
	ctx, ready, err := oto.NewContext(int(SampleRate), ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("audio context: %w", err)
	}
	<-ready

	st := NewStream(volume)
	p := ctx.NewPlayer(st)
	p.Play()
	return &Engine{Score: NewScore(st), ctx: ctx, player: p}, nil
}

func (e *Engine) Close() error {
	return e.player.Close()
}
