package render

import "math"

// Projection constants matching the reference camera setup.
const (
	DefaultFOV  = 55.0
	NearPlane   = 0.1
	FarPlane    = 100.0
	CameraDepth = 8.0 // world origin sits this far in front of the camera
)

// Projector performs a simple perspective projection from world space onto a
// pixel grid. The camera looks down +Z from (0, 0, -CameraDepth).
type Projector struct {
	width, height float64
	focal         float64
}

// NewProjector creates a Projector for a viewport of the given pixel size and
// vertical field of view in degrees.
func NewProjector(width, height int, fovDeg float64) *Projector {
	if fovDeg <= 0 || fovDeg >= 180 {
		fovDeg = DefaultFOV
	}
	h := float64(height)
	return &Projector{
		width:  float64(width),
		height: h,
		focal:  (h / 2) / math.Tan(fovDeg*math.Pi/360),
	}
}

// Project maps a world-space point to screen pixels. The second return value
// reports scale with depth (1.0 at the origin plane) and ok is false when the
// point falls outside the clip range.
func (p *Projector) Project(v Vec3) (x, y, scale float64, ok bool) {
	depth := v.Z + CameraDepth
	if depth < NearPlane || depth > FarPlane {
		return 0, 0, 0, false
	}
	scale = CameraDepth / depth
	x = p.width/2 + v.X*p.focal/depth
	// Screen Y grows downward, world Y grows upward.
	y = p.height/2 - v.Y*p.focal/depth
	return x, y, scale, true
}

// Size returns the viewport dimensions in pixels.
func (p *Projector) Size() (width, height float64) {
	return p.width, p.height
}
