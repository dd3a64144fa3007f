package show

import "math"

// FlightScene is the rotating 3D drone formation: an airplane with the
// LUOGANG lettering floating above it.
type FlightScene struct {
	proj    *Projector
	clouds  []*Cloud
	visible []*Particle
}

func NewFlightScene(cfg Config, r *Rand) (*FlightScene, error) {
	proj, err := NewProjector(cfg.Projection)
	if err != nil {
		return nil, err
	}
	plane, err := NewCloud(AirplanePoints(), SampleConfig{
		Scale:  6,
		Offset: Point3{Y: 1.2},
		Max:    MaxAirplaneParticles,
	}, r)
	if err != nil {
		return nil, err
	}
	text, err := NewCloud(TextPoints("LUOGANG", 0.2, 0.35, 0.25), SampleConfig{
		Scale:  2.5,
		Offset: Point3{X: -3.9, Y: -2.6},
		Max:    MaxTextParticles,
	}, r)
	if err != nil {
		return nil, err
	}
	return &FlightScene{
		proj:    proj,
		clouds:  []*Cloud{plane, text},
		visible: make([]*Particle, 0, MaxAirplaneParticles+MaxTextParticles),
	}, nil
}

func (s *FlightScene) Name() string    { return "flight" }
func (s *FlightScene) Background() RGB { return Palette.BgFlight }

// Rotation returns the formation's orientation at scene time t.
func (s *FlightScene) Rotation(t float64) Rotation {
	return Rotation{X: math.Sin(t*0.3) * 0.3, Y: t * 0.5}
}

func (s *FlightScene) Generate(clk SceneClock, _ Pointer, buf *SpriteBuffer) {
	t := clk.SceneTime
	rot := s.Rotation(t)
	s.visible = s.visible[:0]
	for _, c := range s.clouds {
		s.visible = c.Step(rot, s.proj, DronePalette[:], t, s.visible)
	}
	for _, p := range s.visible {
		if !buf.Add(p.Sprite()) {
			return
		}
	}
}

// Visible is the depth-sorted draw list of the last Generate call.
func (s *FlightScene) Visible() []*Particle { return s.visible }
