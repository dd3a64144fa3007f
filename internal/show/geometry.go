package show

import "math"

// Point3 is an object-space position. Shape generators produce it once and it
// is never mutated afterwards.
type Point3 struct {
	X, Y, Z float64
}

func (p Point3) Add(o Point3) Point3 {
	return Point3{X: p.X + o.X, Y: p.Y + o.Y, Z: p.Z + o.Z}
}

func (p Point3) Scale(s float64) Point3 {
	return Point3{X: p.X * s, Y: p.Y * s, Z: p.Z * s}
}

// Dist is the Euclidean distance between p and o.
func (p Point3) Dist(o Point3) float64 {
	dx, dy, dz := p.X-o.X, p.Y-o.Y, p.Z-o.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// RotateX rotates p in the YZ plane.
func RotateX(p Point3, angle float64) Point3 {
	s, c := math.Sincos(angle)
	return Point3{
		X: p.X,
		Y: p.Y*c - p.Z*s,
		Z: p.Y*s + p.Z*c,
	}
}

// RotateY rotates p in the XZ plane.
func RotateY(p Point3, angle float64) Point3 {
	s, c := math.Sincos(angle)
	return Point3{
		X: p.X*c + p.Z*s,
		Y: p.Y,
		Z: -p.X*s + p.Z*c,
	}
}

// RotateZ rotates p in the XY plane.
func RotateZ(p Point3, angle float64) Point3 {
	s, c := math.Sincos(angle)
	return Point3{
		X: p.X*c - p.Y*s,
		Y: p.X*s + p.Y*c,
		Z: p.Z,
	}
}

// Rotation holds per-axis angles in radians.
type Rotation struct {
	X, Y, Z float64
}

// Apply rotates about X, then Y, then Z. The order is observable: swapping it
// changes the animation.
func (r Rotation) Apply(p Point3) Point3 {
	p = RotateX(p, r.X)
	p = RotateY(p, r.Y)
	return RotateZ(p, r.Z)
}

// Undo reverses Apply by rotating -Z, then -Y, then -X.
func (r Rotation) Undo(p Point3) Point3 {
	p = RotateZ(p, -r.Z)
	p = RotateY(p, -r.Y)
	return RotateX(p, -r.X)
}
