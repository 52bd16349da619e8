package fx

import (
	"image/color"
	"math/rand"

	"github.com/Zachkp/resume-site/config"
	"github.com/Zachkp/resume-site/sim"
	"github.com/Zachkp/resume-site/theme"
)

// Animator is one animated background. Events and Step are called from the
// game loop goroutine only.
type Animator interface {
	Resize(w, h float64)
	Step(dt float64)
	Draw(s *Surface)

	PointerMove(x, y float64)
	PointerDown(x, y float64)
	PointerUp()
	SetAttract(on bool)
	SetReducedMotion(on bool)
	SetTuning(t config.Tuning)

	// Static animators are drawn once per change rather than every frame.
	Static() bool
	// DPRMax caps the device pixel ratio of the surface.
	DPRMax() float64
	Dispose()
}

// NewAnimator builds the animator for a theme.
func NewAnimator(th theme.Theme, t config.Tuning, w, h float64, rng *rand.Rand) Animator {
	switch th {
	case theme.Lava:
		return NewBlobRenderer(t.Lava, func(c config.Tuning) sim.BlobConfig { return c.Lava }, w, h, rng)
	case theme.Constellation:
		return NewConstellationRenderer(t.Constellation, w, h, rng)
	case theme.Light:
		return &LightRenderer{Color: color.NRGBA{R: 0xf5, G: 0xf5, B: 0xf7, A: 0xff}}
	default:
		return NewBlobRenderer(t.Aurora, func(c config.Tuning) sim.BlobConfig { return c.Aurora }, w, h, rng)
	}
}

// LightRenderer paints the static light-theme fill.
type LightRenderer struct {
	Color color.NRGBA
}

func (f *LightRenderer) Resize(w, h float64)       {}
func (f *LightRenderer) Step(dt float64)           {}
func (f *LightRenderer) Draw(s *Surface)           { veil(s, f.Color, 1) }
func (f *LightRenderer) PointerMove(x, y float64)  {}
func (f *LightRenderer) PointerDown(x, y float64)  {}
func (f *LightRenderer) PointerUp()                {}
func (f *LightRenderer) SetAttract(on bool)        {}
func (f *LightRenderer) SetReducedMotion(on bool)  {}
func (f *LightRenderer) SetTuning(t config.Tuning) {}
func (f *LightRenderer) Static() bool              { return true }
func (f *LightRenderer) DPRMax() float64           { return 2 }
func (f *LightRenderer) Dispose()                  {}
