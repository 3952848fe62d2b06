package visual

import (
	"math"

	"github.com/ayusman/mudra/internal/render"
)

// Orb is a spherical mesh field: a latitude/longitude grid with dots at every
// intersection and a dimmer, sparser halo grid just outside it. Color flows
// from magenta at the south pole through electric blue to cyan at the north.
type Orb struct {
	age      float64
	rotation float64
	core     [][]render.Vec3
	halo     [][]render.Vec3
}

const (
	orbGridLat  = 20
	orbGridLon  = 32
	orbRadius   = 0.75
	orbHaloRad  = 1.05
	orbHaloLat  = 10
	orbHaloLon  = 16
	orbScale    = 2.0
	orbRotSpeed = 10.0 // degrees per second

	// orbLifetime is when Update starts reporting not-alive. The scene
	// controller ignores the signal; it exists for interface symmetry.
	orbLifetime = 22.0
)

// NewOrb pre-bakes the sphere vertex grids.
func NewOrb() *Orb {
	return &Orb{
		core: sphereVerts(orbRadius, orbGridLat, orbGridLon),
		halo: sphereVerts(orbHaloRad, orbHaloLat, orbHaloLon),
	}
}

// sphereVerts returns a [latDivs+1][lonDivs+1] grid of points on a sphere of
// radius r. Row 0 is the south pole latitude, the last row the north.
func sphereVerts(r float64, latDivs, lonDivs int) [][]render.Vec3 {
	verts := make([][]render.Vec3, latDivs+1)
	for i := 0; i <= latDivs; i++ {
		lat := math.Pi * (-0.5 + float64(i)/float64(latDivs))
		row := make([]render.Vec3, lonDivs+1)
		for j := 0; j <= lonDivs; j++ {
			lon := 2 * math.Pi * float64(j) / float64(lonDivs)
			row[j] = render.Vec3{
				X: r * math.Cos(lat) * math.Cos(lon),
				Y: r * math.Sin(lat),
				Z: r * math.Cos(lat) * math.Sin(lon),
			}
		}
		verts[i] = row
	}
	return verts
}

// orbColor grades by latitude: south magenta, equator electric, north cyan.
func orbColor(latNorm, alpha float64) render.Color {
	var c render.Color
	if latNorm < 0.5 {
		c = render.Lerp(render.Magenta, render.Electric, latNorm*2)
	} else {
		c = render.Lerp(render.Electric, render.Cyan, (latNorm-0.5)*2)
	}
	return c.WithAlpha(alpha)
}

// Update advances the rotation and reports liveness: false once the orb has
// outlived its nominal lifetime. Consumers are expected to ignore it.
func (o *Orb) Update(dt float64) bool {
	o.age += dt
	o.rotation += orbRotSpeed * dt
	return o.age < orbLifetime
}

func (o *Orb) transform(v render.Vec3) render.Vec3 {
	return v.RotateY(o.rotation).Scale(orbScale)
}

// Draw submits both sphere grids.
func (o *Orb) Draw(c render.Canvas) {
	o.drawGrid(c, o.core, orbGridLat, 0.80, 0.90, 0.8, 2.0)
	o.drawGrid(c, o.halo, orbHaloLat, 0.22, 0.30, 0.5, 1.4)
}

func (o *Orb) drawGrid(c render.Canvas, verts [][]render.Vec3, stacks int, lineAlpha, dotAlpha, lineW, dotSize float64) {
	if len(verts) == 0 || stacks == 0 {
		return
	}
	lonCount := len(verts[0])

	// Latitude rings.
	for i := range verts {
		latNorm := float64(i) / float64(stacks)
		col := orbColor(latNorm, lineAlpha)
		for j := 1; j < lonCount; j++ {
			c.Line(o.transform(verts[i][j-1]), o.transform(verts[i][j]), col, col, lineW)
		}
	}

	// Longitude strips, pole to pole.
	for j := 0; j < lonCount-1; j++ {
		for i := 1; i < len(verts); i++ {
			ca := orbColor(float64(i-1)/float64(stacks), lineAlpha)
			cb := orbColor(float64(i)/float64(stacks), lineAlpha)
			c.Line(o.transform(verts[i-1][j]), o.transform(verts[i][j]), ca, cb, lineW)
		}
	}

	// Intersection dots.
	for i := range verts {
		col := orbColor(float64(i)/float64(stacks), dotAlpha)
		for j := 0; j < lonCount; j++ {
			c.Point(o.transform(verts[i][j]), col, dotSize)
		}
	}
}
