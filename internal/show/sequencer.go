package show

import (
	"fmt"
	"math"
)

// SceneClock is the time state handed to every scene generator.
type SceneClock struct {
	Now       float64 // seconds since the show started
	SceneTime float64 // seconds since the active scene started
	Index     int
	Changes   int // scene transitions made by the call that returned this clock
}

// Sequencer cycles through Count scenes, each lasting Duration seconds.
type Sequencer struct {
	Duration float64
	Count    int

	index int
	start float64
}

func NewSequencer(count int, duration float64) (*Sequencer, error) {
	if count <= 0 {
		return nil, configErr("scenes", "need at least one scene, got %d", count)
	}
	if !(duration > 0) || math.IsInf(duration, 0) {
		return nil, configErr("scene_duration", "must be positive and finite, got %v", duration)
	}
	return &Sequencer{Duration: duration, Count: count}, nil
}

func (s *Sequencer) Index() int { return s.index }

// Start places the sequencer on scene index at time now.
func (s *Sequencer) Start(index int, now float64) {
	s.index = ((index % s.Count) + s.Count) % s.Count
	s.start = now
}

// Update advances one scene per full Duration elapsed. The remainder is kept,
// so a late tick does not stretch the next scene. A long gap is skipped in one
// step however many durations it spans.
func (s *Sequencer) Update(now float64) SceneClock {
	clk := SceneClock{Now: now, Index: s.index}
	if n := math.Floor((now - s.start) / s.Duration); n >= 1 {
		s.index = (s.index + int(math.Mod(n, float64(s.Count)))) % s.Count
		s.start += n * s.Duration
		clk.Index = s.index
		clk.Changes = int(math.Min(n, math.MaxInt32))
	}
	clk.SceneTime = math.Max(0, now-s.start)
	return clk
}

// Advance forces a transition to the next scene starting at now.
func (s *Sequencer) Advance(now float64) SceneClock {
	s.index = (s.index + 1) % s.Count
	s.start = now
	return SceneClock{Now: now, Index: s.index, Changes: 1}
}

// Status formats the human-readable line used for the title bar and logs.
func Status(name string, clk SceneClock, count, particles int) string {
	return fmt.Sprintf("%s | scene %d/%d | %.1fs | %d particles", name, clk.Index+1, count, clk.SceneTime, particles)
}
