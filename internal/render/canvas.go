package render

// Canvas is the drawing surface handed to visual entities. Coordinates are in
// world space; the presentation layer owns projection and rasterization.
type Canvas interface {
	// Point submits a single glowing point. size is in pixels at the
	// reference depth.
	Point(p Vec3, c Color, size float64)

	// Line submits a line segment with per-endpoint colors so gradients can
	// flow along edges.
	Line(a, b Vec3, ca, cb Color, width float64)
}

// Recorder is a Canvas that records submitted primitives for tests.
type Recorder struct {
	Points []RecordedPoint
	Lines  []RecordedLine
}

// RecordedPoint is a captured Point call.
type RecordedPoint struct {
	P    Vec3
	C    Color
	Size float64
}

// RecordedLine is a captured Line call.
type RecordedLine struct {
	A, B   Vec3
	CA, CB Color
	Width  float64
}

// Point records the primitive.
func (r *Recorder) Point(p Vec3, c Color, size float64) {
	r.Points = append(r.Points, RecordedPoint{P: p, C: c, Size: size})
}

// Line records the primitive.
func (r *Recorder) Line(a, b Vec3, ca, cb Color, width float64) {
	r.Lines = append(r.Lines, RecordedLine{A: a, B: b, CA: ca, CB: cb, Width: width})
}

// Reset discards all recorded primitives.
func (r *Recorder) Reset() {
	r.Points = r.Points[:0]
	r.Lines = r.Lines[:0]
}
