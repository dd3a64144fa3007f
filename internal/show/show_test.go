package show

import (
	"errors"
	"math"
	"testing"
)

func newTestShow(t *testing.T, mod func(*Config)) *Show {
	t.Helper()
	cfg := DefaultConfig()
	if mod != nil {
		mod(&cfg)
	}
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
	}{
		{"camera", func(c *Config) { c.Projection.CameraDistance = 0 }},
		{"decay", func(c *Config) { c.Fractal.Decay = 1 }},
		{"duration", func(c *Config) { c.SceneDuration = 0 }},
		{"fade", func(c *Config) { c.FadeAlpha = 2 }},
		{"sprites", func(c *Config) { c.MaxSprites = 0 }},
		{"viewport", func(c *Config) { c.Width = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mod(&cfg)
			if _, err := New(cfg); !errors.Is(err, ErrConfig) {
				t.Fatalf("New err = %v, want ErrConfig", err)
			}
		})
	}
}

func TestShow_EveryScenePresents(t *testing.T) {
	s := newTestShow(t, nil)
	s.Start(0, 0)
	cv := NewCanvas(160, 90, 0.125)
	for i, sc := range s.Scenes() {
		s.Start(i, 0)
		for _, now := range []float64{0.5, 6, 13} {
			f := s.Step(now, Input{Pointer: Pointer{X: 640, Y: 360, Present: true}})
			if len(f.Sprites) == 0 {
				t.Errorf("%s at %v: no sprites", sc.Name(), now)
			}
			if len(f.Sprites) > s.Config().MaxSprites {
				t.Errorf("%s: %d sprites over ceiling", sc.Name(), len(f.Sprites))
			}
			if f.Background != sc.Background() || f.FadeAlpha != FadeAlpha {
				t.Errorf("%s: frame header %+v", sc.Name(), f)
			}
			for _, sp := range f.Sprites {
				if sp.Size < MinSpriteSz || sp.Alpha < 0 || sp.Alpha > 1 || math.IsNaN(sp.X) || math.IsNaN(sp.Y) {
					t.Fatalf("%s: bad sprite %+v", sc.Name(), sp)
				}
			}
			if err := cv.Present(f); err != nil {
				t.Fatal(err)
			}
		}
	}
}

func TestShow_SpriteCeiling(t *testing.T) {
	s := newTestShow(t, func(c *Config) { c.MaxSprites = 25 })
	for i := range s.Scenes() {
		s.Start(i, 0)
		if f := s.Step(11, Input{}); len(f.Sprites) > 25 {
			t.Errorf("scene %d: %d sprites", i, len(f.Sprites))
		}
	}
}

func TestShow_ChangeEventOnWrap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SceneDuration = 4
	tests := []struct {
		name   string
		scenes []Scene
		now    float64
	}{
		{"single scene", []Scene{NewRadarScene(cfg)}, 4.5},
		{"full cycle in one tick", []Scene{NewRadarScene(cfg), NewWindowScene(cfg)}, 8.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewWithScenes(cfg, tt.scenes...)
			if err != nil {
				t.Fatal(err)
			}
			var changed []int
			s.Events().Subscribe(EventSceneChanged, func(e Event) { changed = append(changed, e.Scene) })
			s.Start(0, 0)
			s.Step(1, Input{})
			s.Step(tt.now, Input{})
			if s.Clock().Index != 0 {
				t.Fatalf("index = %d, want back at 0", s.Clock().Index)
			}
			if len(changed) != 2 {
				t.Errorf("changed = %v, want the start and one restart", changed)
			}
		})
	}
}

func TestShow_AdvanceAndEvents(t *testing.T) {
	s := newTestShow(t, func(c *Config) { c.SceneDuration = 4 })
	var changed, skipped []int
	s.Events().Subscribe(EventSceneChanged, func(e Event) { changed = append(changed, e.Scene) })
	s.Events().Subscribe(EventSceneSkipped, func(e Event) { skipped = append(skipped, e.Scene) })

	s.Start(0, 0)
	s.Step(1, Input{})
	s.Step(4.1, Input{})
	if s.Clock().Index != 1 || !near(s.Clock().SceneTime, 0.1, 1e-9) {
		t.Fatalf("clock %+v", s.Clock())
	}
	s.Step(5, Input{Advance: true})
	if s.Clock().Index != 2 || s.Clock().SceneTime != 0 {
		t.Fatalf("after advance %+v", s.Clock())
	}
	if len(changed) != 3 || changed[0] != 0 || changed[1] != 1 || changed[2] != 2 {
		t.Errorf("changed = %v", changed)
	}
	if len(skipped) != 1 || skipped[0] != 2 {
		t.Errorf("skipped = %v", skipped)
	}
	if s.Status() == "" {
		t.Error("empty status")
	}
}

func TestShow_SceneIndex(t *testing.T) {
	s := newTestShow(t, nil)
	i, ok := s.SceneIndex("Symbiosis")
	if !ok || s.Scenes()[i].Name() != "symbiosis" {
		t.Fatalf("SceneIndex(Symbiosis) = %d %v", i, ok)
	}
	if _, ok := s.SceneIndex("nope"); ok {
		t.Error("unknown scene found")
	}
}

func TestFlightScene_DrawListSorted(t *testing.T) {
	cfg := DefaultConfig()
	fs, err := NewFlightScene(cfg, NewRand(5))
	if err != nil {
		t.Fatal(err)
	}
	buf := NewSpriteBuffer(MaxSceneSprites)
	for ts := 0.0; ts < 15; ts += 0.7 {
		buf.Reset()
		fs.Generate(SceneClock{SceneTime: ts}, Pointer{}, buf)
		vis := fs.Visible()
		if len(vis) == 0 || len(vis) > MaxAirplaneParticles+MaxTextParticles {
			t.Fatalf("t=%v: %d visible", ts, len(vis))
		}
		if !IsDepthSorted(vis) {
			t.Fatalf("t=%v: draw list unsorted", ts)
		}
		if buf.Len() != len(vis) {
			t.Fatalf("t=%v: %d sprites for %d visible", ts, buf.Len(), len(vis))
		}
	}
}

func TestSymbiosisScene_GrowsOverTime(t *testing.T) {
	s, err := NewSymbiosisScene(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	early := len(s.Tree(0.5))
	late := len(s.Tree(9.5))
	if early == 0 || late <= early {
		t.Fatalf("tree did not grow: %d -> %d", early, late)
	}
	if n := len(s.Tree(30)); n > MaxFractalParticles+int(ViewportHeight) {
		t.Fatalf("tree holds %d samples", n)
	}
}

func TestAttract(t *testing.T) {
	x, y := Attract(100, 0, 0, 0, 50, 10)
	if x != 100 || y != 0 {
		t.Errorf("outside radius moved to %v,%v", x, y)
	}
	x, y = Attract(20, 0, 0, 0, 50, 10)
	if !near(x, 14, 1e-9) || y != 0 {
		t.Errorf("pull = %v,%v, want 14,0", x, y)
	}
	x, _ = Attract(1, 0, 0, 0, 50, 100)
	if x < 0 {
		t.Errorf("overshot centre: %v", x)
	}
}

func TestShapes_NonEmpty(t *testing.T) {
	if len(AirplanePoints()) == 0 {
		t.Fatal("airplane empty")
	}
	pts := TextPoints("LUOGANG", 0.2, 0.35, 0.25)
	if len(pts) == 0 {
		t.Fatal("text empty")
	}
	if got := len(TextPoints("L?", 0.2, 0.35, 0.25)); got != len(TextPoints("L", 0.2, 0.35, 0.25)) {
		t.Errorf("unknown rune emitted points: %d", got)
	}
}
