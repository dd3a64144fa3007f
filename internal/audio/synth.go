package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const SampleRate = beep.SampleRate(44100)

// tone is a sine oscillator. A negative remaining count streams forever.
type tone struct {
	freq  float64
	pan   float64 // -1 left .. 1 right
	phase float64
	left  int
}

func newTone(freq, pan float64, d time.Duration) *tone {
	left := -1
	if d > 0 {
		left = SampleRate.N(d)
	}
	return &tone{freq: freq, pan: clamp(pan, -1, 1), left: left}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.left == 0 {
		return 0, false
	}
	gl := math.Sqrt(0.5 * (1 - t.pan))
	gr := math.Sqrt(0.5 * (1 + t.pan))
	step := t.freq / float64(SampleRate)
	for i := range samples {
		if t.left == 0 {
			return i, true
		}
		v := math.Sin(2 * math.Pi * t.phase)
		samples[i] = [2]float64{v * gl, v * gr}
		t.phase += step
		t.phase -= math.Floor(t.phase)
		if t.left > 0 {
			t.left--
		}
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// decay shapes a stream with a linear attack and an exponential tail.
type decay struct {
	s      beep.Streamer
	pos    int
	attack int
	rate   float64 // per-sample multiplier after the attack
	gain   float64
}

func newDecay(s beep.Streamer, attack, halfLife time.Duration) *decay {
	hl := max(1, SampleRate.N(halfLife))
	return &decay{
		s:      s,
		attack: SampleRate.N(attack),
		rate:   math.Pow(0.5, 1/float64(hl)),
		gain:   1,
	}
}

func (d *decay) Stream(samples [][2]float64) (int, bool) {
	n, ok := d.s.Stream(samples)
	for i := 0; i < n; i++ {
		g := d.gain
		if d.pos < d.attack {
			g = float64(d.pos) / float64(d.attack)
		} else {
			d.gain *= d.rate
		}
		samples[i][0] *= g
		samples[i][1] *= g
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.s.Err() }

// fader ramps a stream's gain toward a target and ends it once a fade-out
// reaches silence.
type fader struct {
	s      beep.Streamer
	gain   float64
	target float64
	step   float64
}

func newFader(s beep.Streamer, fadeIn time.Duration) *fader {
	f := &fader{s: s, target: 1}
	f.step = 1 / float64(max(1, SampleRate.N(fadeIn)))
	return f
}

// FadeOut starts a ramp to silence over d.
func (f *fader) FadeOut(d time.Duration) {
	f.target = 0
	f.step = max(f.gain, 1e-9) / float64(max(1, SampleRate.N(d)))
}

func (f *fader) Done() bool { return f.target == 0 && f.gain <= 0 }

func (f *fader) Stream(samples [][2]float64) (int, bool) {
	if f.Done() {
		return 0, false
	}
	n, ok := f.s.Stream(samples)
	for i := 0; i < n; i++ {
		switch {
		case f.gain < f.target:
			f.gain = min(f.target, f.gain+f.step)
		case f.gain > f.target:
			f.gain = max(f.target, f.gain-f.step)
		}
		samples[i][0] *= f.gain
		samples[i][1] *= f.gain
	}
	if f.Done() {
		return n, false
	}
	return n, ok
}

func (f *fader) Err() error { return f.s.Err() }

// Voice is the drone chord bed of one scene.
type Voice struct {
	Root   float64   // Hz
	Ratios []float64 // partials relative to Root
	Level  float64   // linear gain of the whole chord
}

var sceneVoices = map[string]Voice{
	"flight":    {Root: 110, Ratios: []float64{1, 1.5, 2}, Level: 0.18},
	"radar":     {Root: 98, Ratios: []float64{1, 1.498, 3}, Level: 0.14},
	"symbiosis": {Root: 130.81, Ratios: []float64{1, 1.25, 1.5, 2}, Level: 0.16},
	"pulse":     {Root: 73.42, Ratios: []float64{1, 2, 2.997}, Level: 0.2},
	"windows":   {Root: 146.83, Ratios: []float64{1, 1.2, 1.5}, Level: 0.14},
}

var defaultVoice = Voice{Root: 110, Ratios: []float64{1, 1.5}, Level: 0.15}

// VoiceFor returns the drone for a scene name.
func VoiceFor(name string) Voice {
	if v, ok := sceneVoices[name]; ok {
		return v
	}
	return defaultVoice
}

// Drone builds an endless stream of v's partials spread across the stereo
// field, each slightly detuned so the bed beats slowly.
func (v Voice) Drone() beep.Streamer {
	if len(v.Ratios) == 0 {
		return beep.Silence(-1)
	}
	parts := make([]beep.Streamer, 0, len(v.Ratios))
	for i, r := range v.Ratios {
		pan := 0.0
		if len(v.Ratios) > 1 {
			pan = -0.6 + 1.2*float64(i)/float64(len(v.Ratios)-1)
		}
		detune := 1 + 0.002*float64(i%2*2-1)
		parts = append(parts, newTone(v.Root*r*detune, pan, 0))
	}
	return newVolume(beep.Mix(parts...), v.Level/float64(len(parts)))
}

// Chime is the bell heard when the cycle moves on: a rising arpeggio over
// the incoming scene's root.
func Chime(v Voice) beep.Streamer {
	notes := []float64{2, 3, 4}
	seq := make([]beep.Streamer, 0, len(notes))
	for i, n := range notes {
		pan := -0.4 + 0.4*float64(i)
		bell := newDecay(beep.Mix(
			newTone(v.Root*n, pan, 0),
			newVolume(newTone(v.Root*n*2.76, pan, 0), 0.3),
		), 5*time.Millisecond, 120*time.Millisecond)
		seq = append(seq, beep.Take(SampleRate.N(180*time.Millisecond), bell))
	}
	return newVolume(beep.Seq(seq...), 0.25)
}

// Click is the short tick played for a skip.
func Click() beep.Streamer {
	t := newDecay(newTone(1760, 0, 0), time.Millisecond, 8*time.Millisecond)
	return newVolume(beep.Take(SampleRate.N(60*time.Millisecond), t), 0.3)
}

// newVolume scales s linearly; zero and below are silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
