// Package render provides the presentation primitives for the mudra visual engine:
// 3D vector math, the shared gradient palette, a perspective projector, and the
// Canvas interface that procedural entities draw onto.
package render

import "math"

// Vec3 represents a point or direction in world space.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum of v and o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Scale returns v scaled uniformly by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// RotateX returns v rotated around the X axis by deg degrees.
func (v Vec3) RotateX(deg float64) Vec3 {
	s, c := math.Sincos(deg * math.Pi / 180)
	return Vec3{v.X, v.Y*c - v.Z*s, v.Y*s + v.Z*c}
}

// RotateY returns v rotated around the Y axis by deg degrees.
func (v Vec3) RotateY(deg float64) Vec3 {
	s, c := math.Sincos(deg * math.Pi / 180)
	return Vec3{v.X*c + v.Z*s, v.Y, -v.X*s + v.Z*c}
}

// RotateZ returns v rotated around the Z axis by deg degrees.
func (v Vec3) RotateZ(deg float64) Vec3 {
	s, c := math.Sincos(deg * math.Pi / 180)
	return Vec3{v.X*c - v.Y*s, v.X*s + v.Y*c, v.Z}
}

// Color is a normalized RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// WithAlpha returns the color with its alpha replaced by a.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Lerp linearly interpolates between two colors. t is clamped to [0, 1];
// the alpha of c0 is kept.
func Lerp(c0, c1 Color, t float64) Color {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Color{
		R: c0.R + (c1.R-c0.R)*t,
		G: c0.G + (c1.G-c0.G)*t,
		B: c0.B + (c1.B-c0.B)*t,
		A: c0.A,
	}
}

// Unified gradient palette shared by all visual entities.
var (
	Cyan      = Color{0.0, 0.85, 1.0, 1.0}
	Electric  = Color{0.15, 0.45, 1.0, 1.0}
	Violet    = Color{0.5, 0.2, 1.0, 1.0}
	Magenta   = Color{0.9, 0.1, 0.7, 1.0}
	WhiteGlow = Color{0.85, 0.92, 1.0, 1.0}

	// Background is deep navy (#0b0f1a).
	Background = Color{0.043, 0.059, 0.102, 1.0}
)
