package show

import (
	"errors"
	"math"
	"testing"
)

func TestNewCloud_FillsToMax(t *testing.T) {
	pts := []Point3{{X: 1}, {Y: 1}, {Z: 1}}
	c, err := NewCloud(pts, SampleConfig{Scale: 2, Offset: Point3{X: 10}, Max: 50}, NewRand(7))
	if err != nil {
		t.Fatal(err)
	}
	if len(c.P) != 50 {
		t.Fatalf("got %d particles, want 50", len(c.P))
	}
	for i, p := range c.P {
		if p.Variant < 0 || p.Variant >= PaletteSize {
			t.Errorf("particle %d: variant %d out of range", i, p.Variant)
		}
		if p.Phase < 0 || p.Phase >= 2*math.Pi {
			t.Errorf("particle %d: phase %v out of range", i, p.Phase)
		}
		if p.Base.X < 10 {
			t.Errorf("particle %d: offset not applied: %v", i, p.Base)
		}
	}
}

func TestNewCloud_StrideSamplesLargeTables(t *testing.T) {
	pts := make([]Point3, 1000)
	for i := range pts {
		pts[i] = Point3{X: float64(i)}
	}
	c, err := NewCloud(pts, SampleConfig{Scale: 1, Max: 100}, NewRand(1))
	if err != nil {
		t.Fatal(err)
	}
	if len(c.P) != 100 {
		t.Fatalf("got %d particles, want 100", len(c.P))
	}
	if c.P[1].Base.X != 10 || c.P[99].Base.X != 990 {
		t.Errorf("stride sampling: got %v .. %v", c.P[1].Base.X, c.P[99].Base.X)
	}
}

func TestNewCloud_RejectsEmptyTable(t *testing.T) {
	_, err := NewCloud(nil, SampleConfig{Scale: 1, Max: 10}, nil)
	if !errors.Is(err, ErrConfig) {
		t.Fatalf("err = %v, want ErrConfig", err)
	}
}

func TestCloud_StepSortsAndFilters(t *testing.T) {
	pr := testProjector(t, 5)
	pts := []Point3{{Z: -6}, {Z: 1}, {Z: -2}, {Z: 4}, {Z: -4.5}, {Z: 0}}
	c, err := NewCloud(pts, SampleConfig{Scale: 1, Max: len(pts)}, NewRand(3))
	if err != nil {
		t.Fatal(err)
	}
	vis := c.Step(Rotation{}, pr, DronePalette[:], 1.5, nil)
	if len(vis) != 5 {
		t.Fatalf("visible = %d, want 5 (one point behind camera)", len(vis))
	}
	if !IsDepthSorted(vis) {
		t.Fatalf("draw list not far-to-near")
	}
	if vis[0].Depth != 9 || vis[len(vis)-1].Depth != 0.5 {
		t.Errorf("depth range %v..%v, want 9..0.5", vis[0].Depth, vis[len(vis)-1].Depth)
	}
	for _, p := range c.P {
		if p.Base.Z == -6 && p.Visible {
			t.Error("particle behind camera marked visible")
		}
	}
}

func TestSortByDepth_RandomFrames(t *testing.T) {
	r := NewRand(99)
	for frame := 0; frame < 50; frame++ {
		ps := make([]*Particle, 200)
		for i := range ps {
			ps[i] = &Particle{Depth: r.RangeF(0.01, 30)}
		}
		SortByDepth(ps)
		if !IsDepthSorted(ps) {
			t.Fatalf("frame %d not sorted", frame)
		}
	}
}

func TestFlicker_Range(t *testing.T) {
	for ti := 0.0; ti < 10; ti += 0.05 {
		f := Flicker(ti, 1.3)
		if f < 0.2-1e-12 || f > 1+1e-12 {
			t.Fatalf("Flicker(%v) = %v", ti, f)
		}
	}
}
