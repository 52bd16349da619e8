package fx

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const spriteSize = 256

var (
	radialSprite   *ebiten.Image
	vignetteSprite *ebiten.Image
	discSprite     *ebiten.Image
)

// radial returns a white disc whose alpha falls linearly from 1 at inner
// (fraction of the radius) to 0 at the rim.
func radial(inner float64) *ebiten.Image {
	return bake(func(d float64) float64 { return 1 - (d-inner)/(1-inner) })
}

// disc returns a solid white disc with a one pixel soft rim.
func disc() *ebiten.Image {
	return bake(func(d float64) float64 { return (1 - d) * spriteSize / 2 })
}

// bake renders a white sprite whose alpha is alpha(d), d being the
// distance from the centre as a fraction of the radius.
func bake(alpha func(d float64) float64) *ebiten.Image {
	img := ebiten.NewImage(spriteSize, spriteSize)
	pix := make([]byte, spriteSize*spriteSize*4)
	c := float64(spriteSize) / 2
	for y := 0; y < spriteSize; y++ {
		for x := 0; x < spriteSize; x++ {
			d := math.Hypot(float64(x)+0.5-c, float64(y)+0.5-c) / c
			a := math.Max(0, math.Min(1, alpha(d)))
			v := byte(a * 255)
			i := (y*spriteSize + x) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = v, v, v, v
		}
	}
	img.WritePixels(pix)
	return img
}

func sprites() {
	if radialSprite == nil {
		radialSprite = radial(0.1)
		vignetteSprite = radial(0.1 / 0.9)
		discSprite = disc()
	}
}

// Palette is the cosine palette, cycling once per unit of t.
func Palette(t float64) float64 {
	return 0.5 + 0.5*math.Cos(2*math.Pi*math.Mod(t, 1))
}

// BlobHue is the hue in degrees for blob i.
func BlobHue(i int, seed, shift float64) float64 {
	return math.Mod(Palette(float64(i)*0.17+seed*0.5+shift)*360, 360)
}

// hsla converts hue in degrees, saturation and lightness in percent.
func hsla(h, s, l, a float64) color.NRGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	r, g, b := colorful.Hsl(h, s/100, l/100).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(a * 255))}
}

// veil fills the whole surface with c at alpha a, source-over.
func veil(s *Surface, c color.NRGBA, a float64) {
	c.A = uint8(math.Round(a * 255))
	b := s.Image.Bounds()
	vector.DrawFilledRect(s.Image, 0, 0, float32(b.Dx()), float32(b.Dy()), c, false)
}

// sprite draws the radial sprite as a tinted ellipse.
func sprite(s *Surface, img *ebiten.Image, x, y, rx, ry, rot float64, c color.NRGBA, blend ebiten.Blend) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM = s.geo(spriteSize, x, y, rx, ry, rot)
	op.ColorScale.ScaleWithColor(c)
	op.Blend = blend
	op.Filter = ebiten.FilterLinear
	s.Image.DrawImage(img, op)
}

func circle(s *Surface, x, y, r float64, c color.NRGBA) {
	d := s.DPR
	vector.DrawFilledCircle(s.Image, float32(x*d), float32(y*d), float32(r*d), c, true)
}

func line(s *Surface, x0, y0, x1, y1, width float64, c color.NRGBA) {
	d := s.DPR
	vector.StrokeLine(s.Image, float32(x0*d), float32(y0*d), float32(x1*d), float32(y1*d), float32(width*d), c, true)
}

// Grain is a small noise tile repainted every frame and repeated across
// the surface.
type Grain struct {
	tile *ebiten.Image
	pix  []byte
	rng  *rand.Rand
}

const grainSize = 140

func NewGrain(rng *rand.Rand) *Grain {
	return &Grain{
		tile: ebiten.NewImage(grainSize, grainSize),
		pix:  make([]byte, grainSize*grainSize*4),
		rng:  rng,
	}
}

// Draw regenerates the noise with the given strength and tiles it over s.
// Ebitengine has no overlay blend, so the tile is composited source-over
// at the same low alpha the overlay used.
func (g *Grain) Draw(s *Surface, strength float64) {
	const alpha = 12
	for i := 0; i < len(g.pix); i += 4 {
		v := 128 + (g.rng.Float64()*2-1)*128*strength
		p := byte(math.Max(0, math.Min(255, v)) * alpha / 255)
		g.pix[i], g.pix[i+1], g.pix[i+2], g.pix[i+3] = p, p, p, alpha
	}
	g.tile.WritePixels(g.pix)

	b := s.Image.Bounds()
	for y := 0; y < b.Dy(); y += grainSize {
		for x := 0; x < b.Dx(); x += grainSize {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x), float64(y))
			s.Image.DrawImage(g.tile, op)
		}
	}
}

func (g *Grain) Dispose() {
	g.tile.Deallocate()
}
