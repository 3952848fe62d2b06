// Package visual implements the four procedural entities the gesture pipeline
// can place on screen. Each entity is formula-driven: geometry is built once
// (or per frame where it depends on time) and submitted to a render.Canvas as
// points and gradient line segments.
package visual

import (
	"math"
	"math/rand"

	"github.com/ayusman/mudra/internal/render"
)

// Galaxy is a spiral data-mesh: three logarithmic spiral arms around a dense
// bright core, with arm strips and inter-arm spokes for mesh topology.
// Rotation is very slow so the structure feels massive.
type Galaxy struct {
	age      float64
	rotation float64
	arms     [][]galaxyPoint
	core     []galaxyPoint
	halo     []render.Vec3
}

type galaxyPoint struct {
	pos   render.Vec3
	normR float64
}

const (
	galaxyArms       = 3
	galaxyArmPoints  = 500
	galaxyCorePoints = 600
	galaxyHaloPoints = 250
	galaxyMaxRadius  = 2.2
	galaxyCoreRadius = 0.45
	galaxyScale      = 4.8
	galaxyRotSpeed   = 2.2 // degrees per second
	galaxyTilt       = 25.0

	// Spiral shape: r = A * e^(B*theta).
	galaxySpiralA     = 0.08
	galaxySpiralB     = 0.18
	galaxySpiralWinds = 2.8
)

var galaxyCoreColor = render.Color{R: 1.0, G: 0.95, B: 0.75, A: 1.0}

// NewGalaxy builds the galaxy with a fixed random seed so the layout is
// deterministic across spawns.
func NewGalaxy() *Galaxy {
	g := &Galaxy{}
	g.build(rand.New(rand.NewSource(77)))
	return g
}

func (g *Galaxy) build(rnd *rand.Rand) {
	for armI := 0; armI < galaxyArms; armI++ {
		armOffset := float64(armI) * (2 * math.Pi / galaxyArms)
		arm := make([]galaxyPoint, 0, galaxyArmPoints)
		for k := 0; k < galaxyArmPoints; k++ {
			t := float64(k) / galaxyArmPoints
			theta := t*galaxySpiralWinds*2*math.Pi + armOffset
			r := galaxySpiralA * math.Exp(galaxySpiralB*(theta-armOffset))
			r = math.Min(r, galaxyMaxRadius)

			// Jitter for a natural look, tighter near the core.
			jitterR := r * (rnd.Float64()*0.24 - 0.12) * (0.3 + 0.7*t)
			jitterA := rnd.Float64()*0.16 - 0.08

			arm = append(arm, galaxyPoint{
				pos: render.Vec3{
					X: (r + jitterR) * math.Cos(theta+jitterA),
					Y: (r + jitterR) * math.Sin(theta+jitterA),
					Z: rnd.NormFloat64() * 0.015 * (1 + t), // thin disk
				},
				normR: math.Min(1, r/galaxyMaxRadius),
			})
		}
		g.arms = append(g.arms, arm)
	}

	// Dense core: exponential radius concentrates points at the centre.
	for i := 0; i < galaxyCorePoints; i++ {
		angle := rnd.Float64() * 2 * math.Pi
		r := math.Min(rnd.ExpFloat64()/8, galaxyCoreRadius*1.2)
		g.core = append(g.core, galaxyPoint{
			pos: render.Vec3{
				X: r * math.Cos(angle),
				Y: r * math.Sin(angle),
				Z: rnd.NormFloat64() * 0.008,
			},
			normR: math.Min(1, r/galaxyCoreRadius),
		})
	}

	// Faint outer halo scatter.
	for i := 0; i < galaxyHaloPoints; i++ {
		angle := rnd.Float64() * 2 * math.Pi
		r := galaxyMaxRadius*0.7 + rnd.Float64()*galaxyMaxRadius*0.55
		g.halo = append(g.halo, render.Vec3{
			X: r*math.Cos(angle) + rnd.NormFloat64()*0.15,
			Y: r*math.Sin(angle) + rnd.NormFloat64()*0.15,
			Z: rnd.NormFloat64() * 0.03,
		})
	}
}

// armColor grades along arm radius: cyan inner, electric mid, violet outer.
func armColor(normR, alpha float64) render.Color {
	var c render.Color
	if normR < 0.45 {
		c = render.Lerp(render.Cyan, render.Electric, normR/0.45)
	} else {
		c = render.Lerp(render.Electric, render.Violet, (normR-0.45)/0.55)
	}
	return c.WithAlpha(alpha)
}

// coreColor grades from warm white at the centre to cyan at the core edge.
func coreColor(normR, alpha float64) render.Color {
	return render.Lerp(galaxyCoreColor, render.Cyan, normR).WithAlpha(alpha)
}

// Update advances the rotation. A galaxy is always alive.
func (g *Galaxy) Update(dt float64) bool {
	g.age += dt
	g.rotation += galaxyRotSpeed * dt
	return true
}

// transform applies the per-frame rotation, the viewing tilt, and world scale.
func (g *Galaxy) transform(v render.Vec3) render.Vec3 {
	return v.RotateZ(g.rotation).RotateX(galaxyTilt).Scale(galaxyScale)
}

// Draw submits the galaxy geometry.
func (g *Galaxy) Draw(c render.Canvas) {
	g.drawCoreGlow(c)

	for _, p := range g.core {
		c.Point(g.transform(p.pos), coreColor(p.normR, 0.95-p.normR*0.30), 5.0)
	}

	for _, arm := range g.arms {
		for _, p := range arm {
			c.Point(g.transform(p.pos), armColor(p.normR, 0.90-p.normR*0.40), 3.5)
		}
	}

	// Arm strips: connect every second arm point for cleaner lines.
	for _, arm := range g.arms {
		for i := 2; i < len(arm); i += 2 {
			a, b := arm[i-2], arm[i]
			c.Line(g.transform(a.pos), g.transform(b.pos),
				armColor(a.normR, 0.45-a.normR*0.30),
				armColor(b.normR, 0.45-b.normR*0.30), 0.6)
		}
	}

	// Inter-arm radial spokes, fading outward.
	const spokeStep = 18
	for k := 0; k < galaxyArmPoints; k += spokeStep {
		for a := 0; a < galaxyArms; a++ {
			b := (a + 1) % galaxyArms
			pa, pb := g.arms[a][k], g.arms[b][k]
			alpha := 0.12 * (1 - pa.normR)
			if alpha <= 0.01 {
				continue
			}
			col := armColor(pa.normR, alpha)
			c.Line(g.transform(pa.pos), g.transform(pb.pos), col, col.WithAlpha(0), 0.45)
		}
	}

	haloCol := render.Color{R: 0.6, G: 0.7, B: 1.0, A: 0.18}
	for _, p := range g.halo {
		c.Point(g.transform(p), haloCol, 1.0)
	}
}

// drawCoreGlow renders concentric soft rings as a radial gradient disk.
func (g *Galaxy) drawCoreGlow(c render.Canvas) {
	const segs = 48
	const rings = 6
	for ri := 0; ri < rings; ri++ {
		t := float64(ri) / rings
		r := galaxyCoreRadius * (0.15 + 0.85*t)
		col := coreColor(t, (1-t)*0.50)
		prev := render.Vec3{X: r, Y: 0}
		for i := 1; i <= segs; i++ {
			angle := float64(i) * 2 * math.Pi / segs
			cur := render.Vec3{X: r * math.Cos(angle), Y: r * math.Sin(angle)}
			c.Line(g.transform(prev), g.transform(cur), col, col, 1.0)
			prev = cur
		}
	}
}
