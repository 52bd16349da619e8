package fx

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/Zachkp/resume-site/config"
	"github.com/Zachkp/resume-site/sim"
)

var (
	deepSpace = color.NRGBA{R: 0x05, G: 0x07, B: 0x0c, A: 0xff}
	starGlow  = color.NRGBA{R: 79, G: 172, B: 254}
)

// ConstellationRenderer renders a sim.ConstellationField: linked stars on a
// deep-space fill. Under reduced motion it holds a single frame.
type ConstellationRenderer struct {
	Field   *sim.ConstellationField
	reduced bool
}

func NewConstellationRenderer(cfg sim.ConstellationConfig, w, h float64, rng *rand.Rand) *ConstellationRenderer {
	return &ConstellationRenderer{Field: sim.NewConstellationField(cfg, w, h, rng)}
}

func (c *ConstellationRenderer) Resize(w, h float64)      { c.Field.Resize(w, h) }
func (c *ConstellationRenderer) Step(dt float64)          { c.Field.Step(dt) }
func (c *ConstellationRenderer) PointerMove(x, y float64) { c.Field.Pointer.Move(x, y) }
func (c *ConstellationRenderer) PointerDown(x, y float64) { c.Field.Pointer.Move(x, y) }
func (c *ConstellationRenderer) PointerUp()               { c.Field.Pointer.Release() }
func (c *ConstellationRenderer) SetAttract(on bool)       { c.Field.Pointer.SetAttract(on) }
func (c *ConstellationRenderer) SetReducedMotion(on bool) { c.reduced = on }
func (c *ConstellationRenderer) Static() bool             { return c.reduced }
func (c *ConstellationRenderer) DPRMax() float64          { return c.Field.Config.DPRMax }
func (c *ConstellationRenderer) Dispose()                 {}

func (c *ConstellationRenderer) SetTuning(t config.Tuning) {
	reseed := t.Constellation.Count != c.Field.Config.Count
	c.Field.Config = t.Constellation
	if reseed {
		c.Field.Seed()
	}
}

// linkColor is the white of a connection line, faded by the distance
// opacity and the configured line alpha.
func linkColor(opacity, lineAlpha float64) color.NRGBA {
	a := math.Max(0, math.Min(1, opacity*lineAlpha))
	return color.NRGBA{R: 255, G: 255, B: 255, A: uint8(math.Round(a * 255))}
}

func (c *ConstellationRenderer) Draw(s *Surface) {
	cfg := c.Field.Config
	veil(s, deepSpace, 1)

	c.Field.Connections(func(a, b *sim.Particle, opacity float64) {
		line(s, a.X, a.Y, b.X, b.Y, cfg.LineWidth, linkColor(opacity, cfg.LineAlpha))
	})

	blur := cfg.GlowBlur * 0.3
	for _, p := range c.Field.Particles() {
		glow := starGlow
		glow.A = uint8(0.3 * p.Alpha * 255)
		circle(s, p.X, p.Y, p.Size+blur, glow)
		circle(s, p.X, p.Y, p.Size, color.NRGBA{R: 255, G: 255, B: 255, A: uint8(p.Alpha * 255)})
	}
}
