package visual

import (
	"math"
	"math/rand"

	"github.com/ayusman/mudra/internal/render"
)

// Nebula is a volumetric particle-wave cloud: concentric dot-matrix shells
// whose points breathe with a sinusoidal radial displacement, joined by faint
// strips for mesh topology.
type Nebula struct {
	age      float64
	rotation float64
	shells   [][]nebulaPoint
}

type nebulaPoint struct {
	base  render.Vec3
	normR float64
	phase float64
}

const (
	nebulaShells       = 15
	nebulaShellPoints  = 400
	nebulaBaseRadius   = 4.5
	nebulaRotSpeed     = 5.0 // degrees per second
	nebulaDisplacement = 0.20
	nebulaLineStep     = 15
)

// NewNebula builds the shell cloud with a fixed random seed.
func NewNebula() *Nebula {
	n := &Nebula{}
	rnd := rand.New(rand.NewSource(42))

	for s := 0; s < nebulaShells; s++ {
		shellR := nebulaBaseRadius * (0.4 + 0.6*float64(s)/nebulaShells)
		shell := make([]nebulaPoint, 0, nebulaShellPoints)
		for i := 0; i < nebulaShellPoints; i++ {
			// Fibonacci-sphere distribution for even shell coverage.
			phi := math.Acos(1 - 2*float64(i)/nebulaShellPoints)
			theta := math.Pi * (1 + math.Sqrt(5)) * float64(i)

			shell = append(shell, nebulaPoint{
				base: render.Vec3{
					X: shellR * math.Sin(phi) * math.Cos(theta),
					Y: shellR * math.Sin(phi) * math.Sin(theta),
					Z: shellR * math.Cos(phi),
				},
				normR: float64(s) / nebulaShells,
				phase: rnd.Float64() * 10,
			})
		}
		n.shells = append(n.shells, shell)
	}
	return n
}

// Update advances the cloud's age and rotation. A nebula is always alive.
func (n *Nebula) Update(dt float64) bool {
	n.age += dt
	n.rotation += nebulaRotSpeed * dt
	return true
}

// displaced returns the point's position after the breathing wave.
func (n *Nebula) displaced(p nebulaPoint) render.Vec3 {
	offset := math.Sin(n.age*1.5+p.phase) * nebulaDisplacement
	return p.base.Scale(1 + offset)
}

func (n *Nebula) transform(v render.Vec3) render.Vec3 {
	return v.RotateX(n.rotation * 0.3).RotateY(n.rotation * 0.5)
}

// Draw submits the shell points and sparse connecting strips.
func (n *Nebula) Draw(c render.Canvas) {
	for _, shell := range n.shells {
		for _, p := range shell {
			alpha := 0.6 * (1.1 - p.normR)
			col := render.Lerp(render.Cyan, render.Violet, p.normR).WithAlpha(alpha)
			c.Point(n.transform(n.displaced(p)), col, 2.0)
		}
	}

	for _, shell := range n.shells {
		for i := nebulaLineStep; i < len(shell); i += nebulaLineStep {
			a, b := shell[i-nebulaLineStep], shell[i]
			alpha := 0.15 * (1 - a.normR)
			ca := render.Lerp(render.Cyan, render.Violet, a.normR).WithAlpha(alpha)
			cb := render.Lerp(render.Cyan, render.Violet, b.normR).WithAlpha(alpha)
			c.Line(n.transform(n.displaced(a)), n.transform(n.displaced(b)), ca, cb, 0.5)
		}
	}
}
