package desktop

import "testing"

func TestCursorToViewport(t *testing.T) {
	tests := []struct {
		name       string
		cx, cy     float64
		winW, winH int
		wantX      float64
		wantY      float64
		present    bool
	}{
		{"same size", 100, 50, 1280, 720, 100, 50, true},
		{"half size window", 320, 180, 640, 360, 640, 360, true},
		{"minimised", 10, 10, 0, 0, 0, 0, false},
		{"left of window", -1, 10, 640, 360, 0, 0, false},
		{"below window", 10, 360, 640, 360, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := cursorToViewport(tt.cx, tt.cy, tt.winW, tt.winH, 1280, 720)
			if p.Present != tt.present || p.X != tt.wantX || p.Y != tt.wantY {
				t.Errorf("cursorToViewport = %+v, want {%v %v %v}", p, tt.wantX, tt.wantY, tt.present)
			}
		})
	}
}
