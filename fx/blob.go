package fx

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Zachkp/resume-site/config"
	"github.com/Zachkp/resume-site/sim"
)

// BlobRenderer renders a sim.BlobField: trail veil, vignette, additive
// glowing blobs and film grain.
type BlobRenderer struct {
	Field *sim.BlobField
	pick  func(config.Tuning) sim.BlobConfig
	grain *Grain
	seed  int64
}

func NewBlobRenderer(cfg sim.BlobConfig, pick func(config.Tuning) sim.BlobConfig, w, h float64, rng *rand.Rand) *BlobRenderer {
	return &BlobRenderer{
		Field: sim.NewBlobField(cfg, w, h, rng),
		pick:  pick,
		seed:  rng.Int63(),
	}
}

func (b *BlobRenderer) Resize(w, h float64)      { b.Field.Resize(w, h) }
func (b *BlobRenderer) Step(dt float64)          { b.Field.Step(dt) }
func (b *BlobRenderer) PointerMove(x, y float64) { b.Field.Pointer.Move(x, y) }
func (b *BlobRenderer) PointerUp()               { b.Field.Pointer.Release() }
func (b *BlobRenderer) SetAttract(on bool)       { b.Field.Pointer.SetAttract(on) }
func (b *BlobRenderer) SetReducedMotion(on bool) { b.Field.Reduced = on }
func (b *BlobRenderer) Static() bool             { return false }
func (b *BlobRenderer) DPRMax() float64          { return b.Field.Config.DPRMax }

func (b *BlobRenderer) PointerDown(x, y float64) {
	b.Field.Pointer.Move(x, y)
	b.Field.Burst(x, y)
}

func (b *BlobRenderer) Dispose() {
	if b.grain != nil {
		b.grain.Dispose()
		b.grain = nil
	}
}

func (b *BlobRenderer) SetTuning(t config.Tuning) {
	if b.pick != nil {
		b.Field.SetConfig(b.pick(t))
	}
}

var black = color.NRGBA{A: 0xff}

// trailAlpha is the opacity of the per-frame veil. Reduced motion paints
// it opaque so no trails build up.
func trailAlpha(cfg sim.BlobConfig, reduced bool) float64 {
	if reduced {
		return 1
	}
	return cfg.TrailAlpha
}

func (b *BlobRenderer) Draw(s *Surface) {
	sprites()
	f := b.Field
	cfg := f.Config
	w, h := s.W, s.H

	veil(s, black, trailAlpha(cfg, f.Reduced))

	cx, cy := w*cfg.VignetteCenterX, h*cfg.VignetteCenterY
	vr := math.Max(w, h) * 0.9
	sprite(s, vignetteSprite, cx, cy, vr, vr, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 4}, ebiten.BlendSourceOver)

	seed := f.NoiseSeed()
	for i, bl := range f.Blobs() {
		rb := bl.RB
		hue := BlobHue(i, seed, bl.HueShift)
		rot := math.Sin(bl.Phase) * 0.5

		// Glow halo standing in for the canvas drop shadow.
		sprite(s, radialSprite, bl.X, bl.Y, rb*1.35, rb*1.2, rot,
			hsla(hue, 100, cfg.ShadowL, 0.45*0.35), ebiten.BlendLighter)

		// Three layers approximate the three gradient stops.
		sprite(s, radialSprite, bl.X, bl.Y, rb*1.03, rb*0.90, rot,
			hsla(hue+cfg.ColorJitter1, cfg.ColorS, cfg.ColorL2, 0.04*3), ebiten.BlendLighter)
		sprite(s, radialSprite, bl.X, bl.Y, rb*0.77, rb*0.68, rot,
			hsla(hue+cfg.ColorJitter0, cfg.ColorS, cfg.ColorL1, 0.16), ebiten.BlendLighter)
		sprite(s, radialSprite, bl.X, bl.Y, rb*0.55, rb*0.48, rot,
			hsla(hue, cfg.ColorS, cfg.ColorL0, 0.65), ebiten.BlendLighter)

		sprite(s, discSprite, bl.X, bl.Y-rb*0.18, rb*0.32, rb*0.32, 0,
			hsla(hue, 100, 88, 0.10*0.18), ebiten.BlendLighter)
	}

	if !f.Reduced {
		if b.grain == nil {
			b.grain = NewGrain(rand.New(rand.NewSource(b.seed)))
		}
		b.grain.Draw(s, cfg.GrainStrength)
	}
}
