package visual

import (
	"math"

	"github.com/ayusman/mudra/internal/render"
)

// Bloom is a radial data-wave flower: eight parametric mesh petals with a
// sinusoidal wave rippling along their length, around a pulsing luminous
// core ring. Gradient flows cyan at the centre to violet at the tips.
type Bloom struct {
	age      float64
	rotation float64
}

const (
	bloomPetals     = 8
	bloomPetalU     = 14 // mesh resolution along petal length
	bloomPetalV     = 10 // mesh resolution across petal width
	bloomPetalLen   = 1.05
	bloomPetalWidth = 0.38
	bloomScale      = 2.6
	bloomRotSpeed   = 6.0 // degrees per second

	// bloomLifetime mirrors orbLifetime: a liveness signal the scene
	// deliberately ignores.
	bloomLifetime = 22.0
)

// NewBloom creates a Bloom. Geometry is rebuilt each frame because the wave
// displacement depends on age.
func NewBloom() *Bloom {
	return &Bloom{}
}

// Update advances the bloom's age and slow rotation.
func (b *Bloom) Update(dt float64) bool {
	b.age += dt
	b.rotation += bloomRotSpeed * dt
	return b.age < bloomLifetime
}

// petalPoint returns the surface point for normalized UV coordinates on a
// single petal lying in the XY plane, v=0.5 being the centre axis.
func (b *Bloom) petalPoint(uNorm, vNorm float64) render.Vec3 {
	// Envelope: narrow at base and tip, widest around 60% of the length.
	envelope := math.Pow(math.Sin(uNorm*math.Pi), 1.4)
	x := (vNorm - 0.5) * 2 * bloomPetalWidth * envelope
	y := 0.18 + uNorm*bloomPetalLen

	// Wave displacement perpendicular to the petal plane.
	const freq = 2.5
	phase := b.age*1.2 + uNorm*math.Pi*freq + vNorm*math.Pi
	z := 0.08 * math.Sin(phase) * envelope

	return render.Vec3{X: x, Y: y, Z: z}
}

// petalColor grades cyan at the base through electric to violet at the tip,
// with brightness rolling off toward the centre.
func petalColor(uNorm, alpha float64) render.Color {
	var c render.Color
	if uNorm < 0.5 {
		c = render.Lerp(render.Cyan, render.Electric, uNorm*2)
	} else {
		c = render.Lerp(render.Electric, render.Violet, (uNorm-0.5)*2)
	}
	brightness := 0.55 + 0.45*uNorm
	return render.Color{R: c.R * brightness, G: c.G * brightness, B: c.B * brightness, A: alpha}
}

func (b *Bloom) transform(v render.Vec3, petalAngle float64) render.Vec3 {
	return v.RotateZ(petalAngle + b.rotation).Scale(bloomScale)
}

// Draw submits all petals and the core rings.
func (b *Bloom) Draw(c render.Canvas) {
	for petal := 0; petal < bloomPetals; petal++ {
		angle := float64(petal) * (360.0 / bloomPetals)

		// Vertex grid for this petal at the current wave phase.
		grid := make([][]render.Vec3, bloomPetalU+1)
		for u := 0; u <= bloomPetalU; u++ {
			row := make([]render.Vec3, bloomPetalV+1)
			for v := 0; v <= bloomPetalV; v++ {
				row[v] = b.petalPoint(float64(u)/bloomPetalU, float64(v)/bloomPetalV)
			}
			grid[u] = row
		}

		for u := 0; u <= bloomPetalU; u++ {
			uN := float64(u) / bloomPetalU
			for v := 0; v <= bloomPetalV; v++ {
				// Edge along the petal length.
				if u < bloomPetalU {
					c.Line(b.transform(grid[u][v], angle), b.transform(grid[u+1][v], angle),
						petalColor(uN, 0.80), petalColor(float64(u+1)/bloomPetalU, 0.80), 0.9)
				}
				// Edge across the petal width.
				if v < bloomPetalV {
					c.Line(b.transform(grid[u][v], angle), b.transform(grid[u][v+1], angle),
						petalColor(uN, 0.80), petalColor(uN, 0.80), 0.9)
				}
			}
		}
	}

	b.drawCoreRings(c)
}

// drawCoreRings renders the pulsing luminous rings at the bloom's centre,
// blending cyan to magenta around each ring.
func (b *Bloom) drawCoreRings(c render.Canvas) {
	const segs = 80
	pulse := 1 + 0.06*math.Sin(b.age*3)

	rings := []struct {
		radius, alpha float64
	}{
		{0.05, 0.90},
		{0.12, 0.55},
		{0.22, 0.28},
	}

	for _, ring := range rings {
		r := ring.radius * pulse
		for i := 1; i <= segs; i++ {
			a0 := float64(i-1) * 2 * math.Pi / segs
			a1 := float64(i) * 2 * math.Pi / segs
			c0 := render.Lerp(render.Cyan, render.Magenta, float64(i-1)/segs).WithAlpha(ring.alpha)
			c1 := render.Lerp(render.Cyan, render.Magenta, float64(i)/segs).WithAlpha(ring.alpha)
			c.Line(
				b.transform(render.Vec3{X: r * math.Cos(a0), Y: r * math.Sin(a0)}, 0),
				b.transform(render.Vec3{X: r * math.Cos(a1), Y: r * math.Sin(a1)}, 0),
				c0, c1, 1.0)
		}
	}
}
