package render

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TickFunc advances the application by one frame. dt is the elapsed wall-clock
// time since the previous tick in seconds.
type TickFunc func(dt float64) error

// DrawFunc renders the current scene onto a Canvas.
type DrawFunc func(c Canvas)

// WindowConfig holds the presentation settings for a Window.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	FOV    float64
}

// Window is the ebiten-backed presentation layer. Each display frame runs the
// tick callback and then replays the scene through a projecting canvas, so the
// whole pipeline stays a single cooperative loop on the main thread.
type Window struct {
	cfg       WindowConfig
	tick      TickFunc
	draw      DrawFunc
	projector *Projector
	last      time.Time
}

// NewWindow creates a Window driving the given tick and draw callbacks.
func NewWindow(cfg WindowConfig, tick TickFunc, draw DrawFunc) *Window {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	if cfg.FOV <= 0 {
		cfg.FOV = DefaultFOV
	}
	return &Window{
		cfg:       cfg,
		tick:      tick,
		draw:      draw,
		projector: NewProjector(cfg.Width, cfg.Height, cfg.FOV),
	}
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func (w *Window) Run() error {
	ebiten.SetWindowSize(w.cfg.Width, w.cfg.Height)
	ebiten.SetWindowTitle(w.cfg.Title)
	err := ebiten.RunGame(w)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	now := time.Now()
	dt := 0.0
	if !w.last.IsZero() {
		dt = now.Sub(w.last).Seconds()
	}
	w.last = now

	if w.tick != nil {
		return w.tick(dt)
	}
	return nil
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(toRGBA(Background))
	if w.draw != nil {
		w.draw(&screenCanvas{screen: screen, projector: w.projector})
	}
}

// Layout implements ebiten.Game.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.cfg.Width, w.cfg.Height
}

// screenCanvas projects world-space primitives onto an ebiten image.
type screenCanvas struct {
	screen    *ebiten.Image
	projector *Projector
}

func (s *screenCanvas) Point(p Vec3, c Color, size float64) {
	x, y, scale, ok := s.projector.Project(p)
	if !ok {
		return
	}
	r := float32(size * scale / 2)
	if r < 0.5 {
		r = 0.5
	}
	vector.DrawFilledCircle(s.screen, float32(x), float32(y), r, toRGBA(c), true)
}

func (s *screenCanvas) Line(a, b Vec3, ca, cb Color, width float64) {
	ax, ay, _, okA := s.projector.Project(a)
	bx, by, _, okB := s.projector.Project(b)
	if !okA || !okB {
		return
	}
	w := float32(width)
	if w < 0.5 {
		w = 0.5
	}
	// The vector rasterizer strokes with a single color; blend the endpoint
	// colors so gradients still read correctly at segment granularity.
	mid := Color{
		R: (ca.R + cb.R) / 2,
		G: (ca.G + cb.G) / 2,
		B: (ca.B + cb.B) / 2,
		A: (ca.A + cb.A) / 2,
	}
	vector.StrokeLine(s.screen, float32(ax), float32(ay), float32(bx), float32(by), w, toRGBA(mid), true)
}

// toRGBA converts a normalized color to premultiplied 8-bit RGBA.
func toRGBA(c Color) color.RGBA {
	clamp := func(v float64) float64 {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
		return v
	}
	a := clamp(c.A)
	return color.RGBA{
		R: uint8(clamp(c.R) * a * 255),
		G: uint8(clamp(c.G) * a * 255),
		B: uint8(clamp(c.B) * a * 255),
		A: uint8(a * 255),
	}
}
