package show

import "math"

// AirplanePoints returns the drone airplane silhouette in unit object space.
func AirplanePoints() []Point3 {
	var pts []Point3
	layers := func(x, y float64, zs ...float64) {
		for _, z := range zs {
			pts = append(pts, Point3{X: x, Y: y, Z: z})
		}
	}
	thin := []float64{-0.02, 0, 0.02}
	wing := []float64{-0.15, -0.1, -0.05, 0, 0.05, 0.1, 0.15}

	// Nose.
	for i := 0; i < 20; i++ {
		a := math.Pi * float64(i) / 20
		layers(0.4+math.Cos(a)*0.08, math.Sin(a)*0.06, -0.03, 0, 0.03)
	}
	// Upper fuselage.
	for i := 0; i < 30; i++ {
		t := float64(i) / 30
		layers(0.32-t*0.92, 0.06-t*0.02, thin...)
	}
	// Fin.
	for i := 0; i < 15; i++ {
		t := float64(i) / 15
		layers(-0.62-t*0.05, 0.06+t*0.22, thin...)
	}
	pts = append(pts, Point3{X: -0.67, Y: 0.28}, Point3{X: -0.65, Y: 0.3})
	// Lower fuselage.
	for i := 0; i < 30; i++ {
		t := float64(i) / 30
		layers(-0.6+t*0.92, 0.04-t*0.10, thin...)
	}
	// Wings.
	for i := 0; i < 25; i++ {
		t := float64(i) / 25
		layers(t*0.35, 0.02-t*0.25, wing...)
		layers(-0.3-t*0.3, 0.01-t*0.22, wing...)
	}
	// Engines.
	for _, e := range [2]Point3{{X: 0.15, Y: -0.18}, {X: -0.15, Y: -0.17}} {
		for i := 0; i < 12; i++ {
			a := 2 * math.Pi * float64(i) / 12
			layers(e.X+math.Cos(a)*0.04, e.Y+math.Sin(a)*0.04, -0.04, 0, 0.04)
		}
	}
	return pts
}

// glyphOutlines holds closed outlines in units of (letter width, letter height).
var glyphOutlines = map[rune][][2]float64{
	'L': {{0, 0}, {0, 1}, {0.3, 1}, {0.3, 0.15}, {1, 0.15}, {1, 0}},
	'U': {{0, 0.15}, {0, 1}, {0.3, 1}, {0.3, 0.15}, {0.7, 0.15}, {0.7, 1}, {1, 1}, {1, 0.15}},
	'O': {{0.3, 0}, {0.7, 0}, {1, 0.5}, {0.7, 1}, {0.3, 1}, {0, 0.5}, {0.3, 0}},
	'G': {{0.3, 0}, {0.7, 0}, {1, 0.3}, {1, 0.7}, {0.7, 1}, {0.3, 1}, {0, 0.7}, {0, 0.5}, {0.5, 0.5}, {0.5, 0.3}, {0.3, 0}},
	'A': {{0.5, 1}, {0.2, 0.3}, {0.2, 0}, {0.8, 0}, {0.8, 0.3}, {0.5, 1}, {0.35, 0.5}, {0.65, 0.5}},
	'N': {{0, 0}, {0, 1}, {0.3, 1}, {0.7, 0.15}, {0.7, 0}, {1, 0}, {1, 1}, {0.7, 1}, {0.3, 0.15}, {0.3, 0}},
}

// TextPoints samples the outline of text along each glyph edge, three depth
// layers deep. Unknown runes advance the cursor without emitting points.
func TextPoints(text string, width, height, spacing float64) []Point3 {
	const segments = 8
	var pts []Point3
	x0 := 0.0
	for _, ch := range text {
		outline, ok := glyphOutlines[ch]
		if ok {
			for i := range outline {
				a, b := outline[i], outline[(i+1)%len(outline)]
				for j := 0; j < segments; j++ {
					t := float64(j) / segments
					x := lerp(a[0], b[0], t)*width + x0
					y := lerp(a[1], b[1], t)*height - height/2
					for _, z := range [3]float64{-0.02, 0, 0.02} {
						pts = append(pts, Point3{X: x, Y: y, Z: z})
					}
				}
			}
		}
		x0 += width + spacing
	}
	return pts
}
