// Package fx renders the backdrop simulations with Ebitengine and owns
// their lifecycle: surface sizing, input wiring, and the frame loop.
package fx

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Surface is the persistent render target. It is not cleared between
// frames, which is what lets the translucent veil leave trails.
type Surface struct {
	Image *ebiten.Image
	DPR   float64
	W, H  float64 // logical size
}

// DeviceSize is the backing size in physical pixels.
func DeviceSize(w, h, dpr float64) (int, int) {
	return int(math.Ceil(w * dpr)), int(math.Ceil(h * dpr))
}

// ClampDPR caps a device scale factor; values below 1 count as 1.
func ClampDPR(scale, max float64) float64 {
	if scale < 1 || math.IsNaN(scale) {
		scale = 1
	}
	return math.Min(scale, max)
}

func NewSurface(w, h, dpr float64) *Surface {
	s := &Surface{}
	s.Resize(w, h, dpr)
	return s
}

// Resize reallocates the backing image when the physical size changes.
func (s *Surface) Resize(w, h, dpr float64) {
	dw, dh := DeviceSize(w, h, dpr)
	s.W, s.H, s.DPR = w, h, dpr
	if s.Image != nil {
		b := s.Image.Bounds()
		if b.Dx() == dw && b.Dy() == dh {
			return
		}
		s.Image.Deallocate()
	}
	s.Image = ebiten.NewImage(max(dw, 1), max(dh, 1))
}

// Clear wipes the surface to transparent.
func (s *Surface) Clear() {
	if s.Image != nil {
		s.Image.Clear()
	}
}

// Dispose releases the backing image. The surface must not be drawn to
// afterwards.
func (s *Surface) Dispose() {
	if s.Image != nil {
		s.Image.Deallocate()
		s.Image = nil
	}
}

// geo maps a sprite of the given pixel size to a logical ellipse centred
// at (x, y) with radii rx, ry rotated by rot, then into device pixels.
func (s *Surface) geo(size, x, y, rx, ry, rot float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-size/2, -size/2)
	g.Scale(2*rx/size, 2*ry/size)
	g.Rotate(rot)
	g.Translate(x, y)
	g.Scale(s.DPR, s.DPR)
	return g
}
