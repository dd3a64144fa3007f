package show

import "strings"

// Show ties the scene list, the sequencer and the sprite budget together.
// It is driven from a single goroutine, one Step per frame.
type Show struct {
	cfg    Config
	scenes []Scene
	seq    *Sequencer
	bus    *EventBus
	buf    *SpriteBuffer
	clk    SceneClock
}

// New validates cfg and builds the default scene cycle.
func New(cfg Config) (*Show, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := NewRand(cfg.Seed)
	flight, err := NewFlightScene(cfg, r)
	if err != nil {
		return nil, err
	}
	sym, err := NewSymbiosisScene(cfg)
	if err != nil {
		return nil, err
	}
	scenes := []Scene{
		flight,
		NewRadarScene(cfg),
		sym,
		NewPulseScene(cfg, NewRand(splitmix64(cfg.Seed))),
		NewWindowScene(cfg),
	}
	return NewWithScenes(cfg, scenes...)
}

// NewWithScenes runs a custom cycle.
func NewWithScenes(cfg Config, scenes ...Scene) (*Show, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seq, err := NewSequencer(len(scenes), cfg.SceneDuration)
	if err != nil {
		return nil, err
	}
	return &Show{
		cfg:    cfg,
		scenes: scenes,
		seq:    seq,
		bus:    NewEventBus(),
		buf:    NewSpriteBuffer(cfg.MaxSprites),
	}, nil
}

func (s *Show) Config() Config        { return s.cfg }
func (s *Show) Events() *EventBus     { return s.bus }
func (s *Show) Scenes() []Scene       { return s.scenes }
func (s *Show) Clock() SceneClock     { return s.clk }
func (s *Show) Scene() Scene          { return s.scenes[s.clk.Index] }
func (s *Show) Sequencer() *Sequencer { return s.seq }

// SceneIndex looks a scene up by name, case-insensitively.
func (s *Show) SceneIndex(name string) (int, bool) {
	for i, sc := range s.scenes {
		if strings.EqualFold(sc.Name(), name) {
			return i, true
		}
	}
	return 0, false
}

// Start pins the cycle to scene index at time now.
func (s *Show) Start(index int, now float64) {
	s.seq.Start(index, now)
	s.clk = SceneClock{Now: now, Index: s.seq.Index()}
	s.emitChanged()
}

func (s *Show) emitChanged() {
	s.bus.Emit(Event{Type: EventSceneChanged, Scene: s.clk.Index, Name: s.Scene().Name()})
}

// Step advances the clock to now, applies in and returns the frame to
// present. The returned sprite slice is reused by the next Step.
func (s *Show) Step(now float64, in Input) Frame {
	if in.Advance {
		s.clk = s.seq.Advance(now)
		s.bus.Emit(Event{Type: EventSceneSkipped, Scene: s.clk.Index, Name: s.Scene().Name()})
	} else {
		s.clk = s.seq.Update(now)
	}
	if s.clk.Changes > 0 {
		s.emitChanged()
	}

	sc := s.Scene()
	s.buf.Reset()
	sc.Generate(s.clk, in.Pointer, s.buf)
	return Frame{
		Background: sc.Background(),
		FadeAlpha:  s.cfg.FadeAlpha,
		Sprites:    s.buf.S,
	}
}

// Status describes the current frame for a title bar or log line.
func (s *Show) Status() string {
	return Status(s.Scene().Name(), s.clk, len(s.scenes), s.buf.Len())
}
