package audio

import (
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"lightshow/internal/show"
)

func drain(t *testing.T, s beep.Streamer) (total int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, fr := range buf[:n] {
			peak = math.Max(peak, math.Max(math.Abs(fr[0]), math.Abs(fr[1])))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("stream never ended")
	return 0, 0
}

func readFrames(t *testing.T, st *Stream, frames int) []float32 {
	t.Helper()
	out := make([]float32, 0, frames*2)
	p := make([]byte, 4096)
	for len(out) < frames*2 {
		n, err := st.Read(p)
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
		for i := 0; i+4 <= n; i += 4 {
			out = append(out, math.Float32frombits(binary.LittleEndian.Uint32(p[i:])))
		}
	}
	return out
}

func TestStream_ReadSilence(t *testing.T) {
	st := NewStream(1)
	for i, v := range readFrames(t, st, 256) {
		if v != 0 {
			t.Fatalf("sample %d = %v, want silence", i, v)
		}
	}
}

func TestStream_ReadWholeFrames(t *testing.T) {
	st := NewStream(1)
	n, err := st.Read(make([]byte, 21))
	if err != nil || n != 16 {
		t.Fatalf("Read(21 bytes) = %d, %v; want 16, nil", n, err)
	}
	n, err = st.Read(make([]byte, 7))
	if err != nil || n != 0 {
		t.Fatalf("Read(7 bytes) = %d, %v; want 0, nil", n, err)
	}
}

func TestTone_Finite(t *testing.T) {
	tn := newTone(440, 0, 10*time.Millisecond)
	total, peak := drain(t, tn)
	if want := SampleRate.N(10 * time.Millisecond); total != want {
		t.Errorf("samples = %d, want %d", total, want)
	}
	if peak > 1 {
		t.Errorf("peak = %v, want <= 1", peak)
	}
}

func TestTone_QuarterPeriod(t *testing.T) {
	tn := newTone(441, 0, 0) // 100 samples per cycle
	buf := make([][2]float64, 100)
	if n, ok := tn.Stream(buf); n != 100 || !ok {
		t.Fatalf("Stream = %d, %v", n, ok)
	}
	want := math.Sqrt(0.5)
	if got := buf[25][0]; math.Abs(got-want) > 1e-6 {
		t.Errorf("left at quarter period = %v, want %v", got, want)
	}
	if math.Abs(buf[25][0]-buf[25][1]) > 1e-12 {
		t.Errorf("centred tone is unbalanced: %v", buf[25])
	}
}

func TestTone_Pan(t *testing.T) {
	tn := newTone(441, 1, 0)
	buf := make([][2]float64, 30)
	tn.Stream(buf)
	if buf[25][0] > 1e-9 || buf[25][1] < 0.99 {
		t.Errorf("hard right pan = %v", buf[25])
	}
}

func TestFader_FadeOutEnds(t *testing.T) {
	f := newFader(newTone(220, 0, 0), time.Millisecond)
	buf := make([][2]float64, 100)
	f.Stream(buf)
	if f.gain != 1 {
		t.Fatalf("gain after fade-in = %v, want 1", f.gain)
	}
	f.FadeOut(time.Millisecond)
	n, ok := f.Stream(buf)
	if ok || !f.Done() {
		t.Fatalf("fade-out did not end the stream (n=%d ok=%v gain=%v)", n, ok, f.gain)
	}
	if n, ok := f.Stream(buf); n != 0 || ok {
		t.Errorf("finished fader streamed %d, %v", n, ok)
	}
}

func TestChime_Length(t *testing.T) {
	total, peak := drain(t, Chime(VoiceFor("flight")))
	if want := 3 * SampleRate.N(180*time.Millisecond); total != want {
		t.Errorf("chime samples = %d, want %d", total, want)
	}
	if peak == 0 || peak > 1 {
		t.Errorf("chime peak = %v", peak)
	}
}

func TestVoiceFor(t *testing.T) {
	if v := VoiceFor("pulse"); v.Root != 73.42 {
		t.Errorf("pulse root = %v", v.Root)
	}
	if v := VoiceFor("nope"); v.Root != defaultVoice.Root {
		t.Errorf("unknown scene root = %v, want default", v.Root)
	}
}

func TestScore_Crossfade(t *testing.T) {
	st := NewStream(1)
	sc := NewScore(st)
	bus := show.NewEventBus()
	sc.Attach(bus)

	bus.Emit(show.Event{Type: show.EventSceneChanged, Name: "flight"})
	if st.Len() != 2 || sc.Scene() != "flight" {
		t.Fatalf("after first change: %d streamers, scene %q", st.Len(), sc.Scene())
	}
	bus.Emit(show.Event{Type: show.EventSceneSkipped, Name: "radar"})
	bus.Emit(show.Event{Type: show.EventSceneChanged, Name: "radar"})
	if st.Len() != 5 {
		t.Fatalf("after skip: %d streamers, want 5", st.Len())
	}

	out := readFrames(t, st, SampleRate.N(Crossfade+500*time.Millisecond))
	var heard bool
	for _, v := range out {
		if v < -1 || v > 1 || math.IsNaN(float64(v)) {
			t.Fatalf("sample out of range: %v", v)
		}
		heard = heard || v != 0
	}
	if !heard {
		t.Error("score produced silence")
	}
	if st.Len() != 1 || sc.Scene() != "radar" {
		t.Errorf("after crossfade: %d streamers, scene %q; want only the radar drone", st.Len(), sc.Scene())
	}
}
