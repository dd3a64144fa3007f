package audio

import (
	"math"
	"sync"

	"github.com/gopxl/beep"
)

// Stream mixes any number of beep streamers into interleaved float32 LE
// stereo frames for the output device. It is safe for concurrent use: the
// device reads from its own goroutine while the frame loop adds sounds.
type Stream struct {
	mu    sync.Mutex
	mixer beep.Mixer
	buf   [][2]float64
	gain  float64
}

func NewStream(gain float64) *Stream {
	return &Stream{gain: clamp(gain, 0, 1)}
}

// Add queues streamers; each plays once from the next Read on.
func (s *Stream) Add(st ...beep.Streamer) {
	s.mu.Lock()
	s.mixer.Add(st...)
	s.mu.Unlock()
}

// Update runs fn while the device is blocked from reading, so fn may change
// the state of queued streamers.
func (s *Stream) Update(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

// Len is the number of streamers still playing.
func (s *Stream) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mixer.Len()
}

// Read fills p with whole frames. It never reports EOF; silence is written
// while nothing is queued.
func (s *Stream) Read(p []byte) (int, error) {
	frames := len(p) / 8
	if frames == 0 {
		return 0, nil
	}
	s.mu.Lock()
	if cap(s.buf) < frames {
		s.buf = make([][2]float64, frames)
	}
	buf := s.buf[:frames]
	clear(buf)
	n, _ := s.mixer.Stream(buf)
	clear(buf[n:])
	gain := s.gain
	s.mu.Unlock()

	for i, fr := range buf {
		putStereoF32LR(p, i, softSat(fr[0]*gain), softSat(fr[1]*gain))
	}
	return frames * 8, nil
}

// putStereoF32LR writes independent left/right samples in [-1,1].
func putStereoF32LR(buf []byte, i int, left, right float64) {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	buf[i*8] = byte(lv)
	buf[i*8+1] = byte(lv >> 8)
	buf[i*8+2] = byte(lv >> 16)
	buf[i*8+3] = byte(lv >> 24)
	buf[i*8+4] = byte(rv)
	buf[i*8+5] = byte(rv >> 8)
	buf[i*8+6] = byte(rv >> 16)
	buf[i*8+7] = byte(rv >> 24)
}

// softSat applies gentle tanh-like saturation instead of hard clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}
