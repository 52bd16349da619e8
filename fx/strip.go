package fx

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Zachkp/resume-site/carousel"
	"github.com/Zachkp/resume-site/content"
)

const (
	cardW      = 300.0
	cardH      = 120.0
	cardGap    = 20.0
	stripPad   = 24.0
	wheelScale = 40.0
)

var (
	cardFill   = color.NRGBA{R: 255, G: 255, B: 255, A: 20}
	cardBorder = color.NRGBA{R: 255, G: 255, B: 255, A: 60}
)

// Strip is the horizontally scrolling row of project cards along the
// bottom of the window. Coordinates are logical pixels.
type Strip struct {
	Cards   []content.Project
	Track   carousel.Track
	Ctl     *carousel.Controller
	Visible bool

	y float64
}

func NewStrip(cards []content.Project) *Strip {
	s := &Strip{Cards: cards, Visible: true}
	s.Ctl = carousel.New(&s.Track)
	return s
}

// Layout fits the strip to a w×h viewport.
func (s *Strip) Layout(w, h float64) {
	s.Track.ViewportWidth = w
	s.Track.ContentWidth = float64(len(s.Cards))*(cardW+cardGap) + cardGap
	s.Track.ScrollTo(s.Track.Offset)
	s.y = h - cardH - stripPad
}

// Contains reports whether a logical point is over the visible strip.
func (s *Strip) Contains(x, y float64) bool {
	return s.Visible && x >= 0 && x <= s.Track.ViewportWidth && y >= s.y && y <= s.y+cardH
}

// CardAt returns the index of the card under x, or -1.
func (s *Strip) CardAt(x float64) int {
	cx := x + s.Track.Offset - cardGap
	if cx < 0 {
		return -1
	}
	i := int(cx / (cardW + cardGap))
	if i >= len(s.Cards) || cx-float64(i)*(cardW+cardGap) > cardW {
		return -1
	}
	return i
}

func (s *Strip) Draw(screen *ebiten.Image, dpr float64) {
	if !s.Visible {
		return
	}
	for i, c := range s.Cards {
		x := cardGap + float64(i)*(cardW+cardGap) - s.Track.Offset
		if x+cardW < 0 || x > s.Track.ViewportWidth {
			continue
		}
		px, py := float32(x*dpr), float32(s.y*dpr)
		pw, ph := float32(cardW*dpr), float32(cardH*dpr)
		vector.DrawFilledRect(screen, px, py, pw, ph, cardFill, true)
		vector.StrokeRect(screen, px, py, pw, ph, float32(dpr), cardBorder, true)

		text := c.Title + "\n" + strings.Join(c.Tags, " / ")
		ebitenutil.DebugPrintAt(screen, text, int(px)+10, int(py)+10)
	}
}
