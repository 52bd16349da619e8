package fx

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/Zachkp/resume-site/config"
	"github.com/Zachkp/resume-site/content"
	"github.com/Zachkp/resume-site/theme"
)

// Key bindings.
const (
	KeyTheme    = ebiten.KeyT
	KeyBackdrop = ebiten.KeyB
	KeyMotion   = ebiten.KeyM
	KeyProjects = ebiten.KeyP
	KeyCopy     = ebiten.KeyC
	KeyQuit     = ebiten.KeyEscape
)

type Options struct {
	Theme   *theme.Manager
	Tuning  config.Tuning
	Watcher *config.TuningWatcher
	Reduced bool

	// Width and Height are the initial logical size.
	Width, Height float64

	// Scale returns the device scale factor. Defaults to the current
	// monitor's.
	Scale func() float64
	// Copy puts text on the clipboard. Nil disables copying.
	Copy  func(text string) error
	// Open hands a project link to the user. Nil only logs it.
	Open  func(url string) error
	Input Input
	Rand  *rand.Rand
	Now   func() time.Time
}

// Host runs the backdrop as an ebiten.Game. It owns the animator, the
// persistent surface and the project strip, and routes input to them.
type Host struct {
	opts    Options
	themes  *theme.Manager
	tuning  config.Tuning
	watcher *config.TuningWatcher
	input   Input
	rng     *rand.Rand
	now     func() time.Time
	scale   func() float64

	animator Animator
	surface  *Surface
	strip    *Strip

	w, h     float64
	dpr      float64
	last     time.Time
	running  bool
	backdrop bool
	reduced  bool
	dirty    bool
	hoverX   float64
	hoverY   float64
	dragging bool
	pressX   float64
	status   string
}

func NewHost(o Options) *Host {
	h := &Host{
		opts:     o,
		themes:   o.Theme,
		tuning:   o.Tuning,
		watcher:  o.Watcher,
		input:    o.Input,
		rng:      o.Rand,
		now:      o.Now,
		scale:    o.Scale,
		w:        o.Width,
		h:        o.Height,
		dpr:      1,
		backdrop: true,
		reduced:  o.Reduced,
		strip:    NewStrip(append(append([]content.Project{}, content.Projects...), content.Portfolio...)),
	}
	if h.themes == nil {
		h.themes = theme.NewManager(theme.NewMemStore())
	}
	if h.input == nil {
		h.input = NewInput()
	}
	if h.rng == nil {
		h.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if h.now == nil {
		h.now = time.Now
	}
	if h.scale == nil {
		h.scale = func() float64 { return ebiten.Monitor().DeviceScaleFactor() }
	}
	return h
}

// Attach seeds the animator for the stored theme and starts the clock.
func (h *Host) Attach() {
	if h.running {
		return
	}
	h.running = true
	h.last = h.now()
	h.strip.Layout(h.w, h.h)
	h.themes.OnChange(h.setTheme)
	h.themes.Init()
}

// Detach stops the host and releases its resources. It is safe to call
// more than once; Update returns ebiten.Termination afterwards.
func (h *Host) Detach() {
	if !h.running {
		return
	}
	h.running = false
	h.themes.OnChange(nil)
	if h.watcher != nil {
		if err := h.watcher.Close(); err != nil {
			log.Printf("Error closing tuning watcher: %v", err)
		}
		h.watcher = nil
	}
	if h.animator != nil {
		h.animator.Dispose()
		h.animator = nil
	}
	if h.surface != nil {
		h.surface.Dispose()
		h.surface = nil
	}
}

func (h *Host) Running() bool      { return h.running }
func (h *Host) Animator() Animator { return h.animator }
func (h *Host) Strip() *Strip      { return h.strip }
func (h *Host) Backdrop() bool     { return h.backdrop }
func (h *Host) Reduced() bool      { return h.reduced }

func (h *Host) setTheme(t theme.Theme) {
	if h.animator != nil {
		h.animator.Dispose()
	}
	h.animator = NewAnimator(t, h.tuning, h.w, h.h, h.rng)
	h.animator.SetReducedMotion(h.reduced)
	h.dirty = true
	h.status = "theme: " + string(t)
}

// SetReducedMotion switches every animation to its reduced variant.
func (h *Host) SetReducedMotion(on bool) {
	h.reduced = on
	if h.animator != nil {
		h.animator.SetReducedMotion(on)
	}
	h.dirty = true
}

// SetTuning applies new tuning to the running animator.
func (h *Host) SetTuning(t config.Tuning) {
	h.tuning = t
	if h.animator != nil {
		h.animator.SetTuning(t)
	}
	h.dirty = true
}

// Layout reports the device pixel size of the window so drawing is
// crisp on high density displays, and propagates size changes.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, ht := float64(outsideWidth), float64(outsideHeight)
	limit := 2.0
	if h.animator != nil {
		limit = h.animator.DPRMax()
	}
	dpr := ClampDPR(h.scale(), limit)
	if w != h.w || ht != h.h || dpr != h.dpr {
		h.w, h.h, h.dpr = w, ht, dpr
		if h.animator != nil {
			h.animator.Resize(w, ht)
		}
		h.strip.Layout(w, ht)
		h.dirty = true
	}
	return DeviceSize(w, ht, dpr)
}

func (h *Host) Update() error {
	if !h.running {
		return ebiten.Termination
	}
	h.drainTuning()

	in := h.input
	in.Poll()
	if in.KeyJustPressed(KeyQuit) {
		h.Detach()
		return ebiten.Termination
	}
	h.handleKeys()
	h.handlePointer()

	now := h.now()
	dt := float64(now.Sub(h.last)) / float64(time.Millisecond)
	h.last = now

	h.strip.Ctl.Tick()
	if h.backdrop && h.animator != nil && !h.animator.Static() {
		h.animator.Step(dt)
	}
	return nil
}

func (h *Host) drainTuning() {
	if h.watcher == nil {
		return
	}
	for {
		select {
		case t, ok := <-h.watcher.Updates:
			if !ok {
				return
			}
			log.Printf("Tuning reloaded")
			h.SetTuning(t)
		case err, ok := <-h.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Error reloading tuning: %v", err)
		default:
			return
		}
	}
}

func (h *Host) handleKeys() {
	in := h.input
	if in.KeyJustPressed(KeyTheme) {
		if _, err := h.themes.Toggle(); err != nil {
			log.Printf("Error saving theme: %v", err)
		}
	}
	if in.KeyJustPressed(KeyBackdrop) {
		h.backdrop = !h.backdrop
		h.dirty = true
		if !h.backdrop && h.surface != nil {
			// Trails restart from black when the backdrop comes back.
			h.surface.Clear()
		}
	}
	if in.KeyJustPressed(KeyMotion) {
		h.SetReducedMotion(!h.reduced)
		h.status = fmt.Sprintf("reduced motion: %v", h.reduced)
	}
	if in.KeyJustPressed(KeyProjects) {
		h.strip.Visible = !h.strip.Visible
	}
	if in.KeyJustPressed(KeyCopy) {
		h.copyEmail()
	}
	if in.KeyJustPressed(ebiten.KeyArrowRight) {
		h.strip.Ctl.Arrow(1, h.strip.Visible)
	}
	if in.KeyJustPressed(ebiten.KeyArrowLeft) {
		h.strip.Ctl.Arrow(-1, h.strip.Visible)
	}
}

func (h *Host) copyEmail() {
	if h.opts.Copy == nil {
		return
	}
	if err := h.opts.Copy(content.Me.Email); err != nil {
		log.Printf("Error copying email: %v", err)
		return
	}
	h.status = "copied " + content.Me.Email
}

// clickSlop is how far a press on the strip may travel and still count
// as a click on a card.
const clickSlop = 5.0

// openCard reports the clicked card and hands its link to Open.
func (h *Host) openCard(i int) {
	if i < 0 {
		return
	}
	c := h.strip.Cards[i]
	h.status = c.Title
	if c.Link == "" || c.Link == "#" {
		return
	}
	h.status += " " + c.Link
	log.Printf("Project %s: %s", c.Title, c.Link)
	if h.opts.Open != nil {
		if err := h.opts.Open(c.Link); err != nil {
			log.Printf("Error opening %s: %v", c.Link, err)
		}
	}
}

func (h *Host) handlePointer() {
	in := h.input
	cx, cy := in.Cursor()
	x, y := cx/h.dpr, cy/h.dpr

	if a := h.animator; a != nil {
		a.SetAttract(in.AltHeld())
	}

	if _, wy := in.Wheel(); wy != 0 && h.strip.Contains(x, y) {
		h.strip.Ctl.Wheel(-wy * wheelScale)
	}

	if in.JustPressed() && h.strip.Contains(x, y) {
		h.dragging = true
		h.pressX = x
		h.strip.Ctl.StartDrag(x)
	}
	if h.dragging {
		if in.Pressed() {
			h.strip.Ctl.Drag(x)
		}
		if in.JustReleased() || !in.Pressed() {
			h.dragging = false
			h.strip.Ctl.EndDrag()
			if math.Abs(x-h.pressX) < clickSlop {
				h.openCard(h.strip.CardAt(x))
			}
		}
		return
	}

	a := h.animator
	if a == nil || !h.backdrop {
		return
	}
	switch {
	case !in.Hovering():
		a.PointerUp()
	case in.JustPressed():
		a.PointerDown(x, y)
	case in.JustReleased():
		a.PointerUp()
	case x != h.hoverX || y != h.hoverY:
		a.PointerMove(x, y)
	}
	h.hoverX, h.hoverY = x, y
}

func (h *Host) Draw(screen *ebiten.Image) {
	if !h.running {
		return
	}
	if h.backdrop && h.animator != nil {
		if h.surface == nil {
			h.surface = NewSurface(h.w, h.h, h.dpr)
			h.dirty = true
		} else if h.surface.W != h.w || h.surface.H != h.h || h.surface.DPR != h.dpr {
			h.surface.Resize(h.w, h.h, h.dpr)
		}
		if !h.animator.Static() || h.dirty {
			h.animator.Draw(h.surface)
			h.dirty = false
		}
		screen.DrawImage(h.surface.Image, nil)
	} else {
		screen.Fill(black)
	}

	h.strip.Draw(screen, h.dpr)
	if h.status != "" {
		ebitenutil.DebugPrintAt(screen, h.status, 8, 8)
	}
}
