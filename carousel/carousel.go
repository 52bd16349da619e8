// Package carousel turns drag, wheel and arrow-key input into horizontal
// scrolling of a content track, with momentum after a drag is released.
package carousel

import "math"

const (
	// Friction is applied to the momentum velocity once per frame.
	Friction = 0.95
	// StopSpeed ends momentum once |velocity| drops to it.
	StopSpeed = 0.5
	// ArrowStep is how far one arrow key press scrolls.
	ArrowStep = 320.0
	// MobileBreakpoint is the viewport width below which drags are amplified.
	MobileBreakpoint = 768.0
	// MobileScale amplifies drag distance on narrow viewports.
	MobileScale = 1.5
	// Easing is the fraction of the remaining distance covered per frame
	// while easing towards an arrow-key target.
	Easing = 0.18
)

// Track is a horizontally scrollable strip: ContentWidth of cards shown
// through a ViewportWidth window, scrolled by Offset.
type Track struct {
	Offset        float64
	ContentWidth  float64
	ViewportWidth float64
}

// MaxOffset is the largest valid offset.
func (t *Track) MaxOffset() float64 {
	return math.Max(0, t.ContentWidth-t.ViewportWidth)
}

// ScrollTo sets the offset, clamped like a browser's scrollLeft.
func (t *Track) ScrollTo(x float64) {
	t.Offset = math.Max(0, math.Min(t.MaxOffset(), x))
}

// Controller drives a Track. Call Tick once per frame.
type Controller struct {
	Track *Track

	dragging    bool
	startX      float64
	startOffset float64
	lastX       float64
	velocity    float64
	coasting    bool

	easing bool
	target float64
}

func New(t *Track) *Controller {
	return &Controller{Track: t}
}

func (c *Controller) Dragging() bool    { return c.dragging }
func (c *Controller) Coasting() bool    { return c.coasting }
func (c *Controller) Velocity() float64 { return c.velocity }

// StartDrag begins a drag at pointer x, cancelling any momentum or easing.
func (c *Controller) StartDrag(x float64) {
	c.dragging = true
	c.startX = x
	c.lastX = x
	c.startOffset = c.Track.Offset
	c.velocity = 0
	c.coasting = false
	c.easing = false
}

// Drag moves the track with the pointer and records the per-event delta
// as the release velocity.
func (c *Controller) Drag(x float64) {
	if !c.dragging {
		return
	}
	scale := 1.0
	if c.Track.ViewportWidth < MobileBreakpoint {
		scale = MobileScale
	}
	c.Track.ScrollTo(c.startOffset - (x-c.startX)*scale)
	c.velocity = (x - c.lastX) * scale
	c.lastX = x
}

// EndDrag releases the track into momentum.
func (c *Controller) EndDrag() {
	if !c.dragging {
		return
	}
	c.dragging = false
	c.coasting = true
}

// Wheel maps vertical wheel motion onto horizontal scroll.
func (c *Controller) Wheel(dy float64) {
	c.Track.ScrollTo(c.Track.Offset + dy)
}

// Arrow scrolls one step left (dir < 0) or right (dir > 0) with easing.
// It does nothing unless the track is on screen.
func (c *Controller) Arrow(dir int, inViewport bool) {
	if !inViewport || dir == 0 {
		return
	}
	base := c.Track.Offset
	if c.easing {
		base = c.target
	}
	step := ArrowStep
	if dir < 0 {
		step = -step
	}
	c.target = math.Max(0, math.Min(c.Track.MaxOffset(), base+step))
	c.easing = true
	c.coasting = false
}

// Tick advances momentum or easing by one frame. It reports whether the
// track is still moving.
func (c *Controller) Tick() bool {
	switch {
	case c.coasting:
		c.Track.ScrollTo(c.Track.Offset - c.velocity)
		c.velocity *= Friction
		if math.Abs(c.velocity) <= StopSpeed {
			c.velocity = 0
			c.coasting = false
		}
		return c.coasting
	case c.easing:
		d := c.target - c.Track.Offset
		if math.Abs(d) < 0.5 {
			c.Track.ScrollTo(c.target)
			c.easing = false
			return false
		}
		c.Track.ScrollTo(c.Track.Offset + d*Easing)
		return true
	}
	return false
}
