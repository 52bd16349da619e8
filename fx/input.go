package fx

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is the per-tick input snapshot the Host reads. Positions are in
// the coordinate space returned by Layout, which is device pixels.
type Input interface {
	// Poll is called once at the start of every tick.
	Poll()
	Cursor() (x, y float64)
	// Pressed reports whether the primary button or a touch is held.
	Pressed() bool
	JustPressed() bool
	JustReleased() bool
	// Hovering is false once the pointer has left the window or a touch
	// has ended.
	Hovering() bool
	AltHeld() bool
	KeyJustPressed(k ebiten.Key) bool
	Wheel() (x, y float64)
}

// EbitenInput reads the mouse and the first active touch.
type EbitenInput struct {
	touch    ebiten.TouchID
	touching bool
	released bool
	tx, ty   int
	ids      []ebiten.TouchID

	// touchMode holds from a touch until the mouse moves again.
	touchMode bool
	mx, my    int
}

func NewInput() *EbitenInput {
	return &EbitenInput{}
}

func (in *EbitenInput) Poll() {
	in.released = false
	if x, y := ebiten.CursorPosition(); x != in.mx || y != in.my {
		in.mx, in.my = x, y
		if !in.touching {
			in.touchMode = false
		}
	}
	if in.touching {
		if inpututil.IsTouchJustReleased(in.touch) {
			in.touching = false
			in.released = true
			return
		}
		in.tx, in.ty = ebiten.TouchPosition(in.touch)
		return
	}
	in.ids = inpututil.AppendJustPressedTouchIDs(in.ids[:0])
	if len(in.ids) > 0 {
		in.touch = in.ids[0]
		in.touching = true
		in.touchMode = true
		in.tx, in.ty = ebiten.TouchPosition(in.touch)
	}
}

func (in *EbitenInput) Cursor() (float64, float64) {
	if in.touchMode {
		return float64(in.tx), float64(in.ty)
	}
	return float64(in.mx), float64(in.my)
}

func (in *EbitenInput) Pressed() bool {
	return in.touching || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (in *EbitenInput) JustPressed() bool {
	if in.touching && inpututil.TouchPressDuration(in.touch) == 1 {
		return true
	}
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (in *EbitenInput) JustReleased() bool {
	return in.released || inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

func (in *EbitenInput) Hovering() bool {
	if in.touchMode {
		return in.touching
	}
	return ebiten.IsFocused()
}

func (in *EbitenInput) AltHeld() bool {
	return ebiten.IsKeyPressed(ebiten.KeyAlt)
}

func (in *EbitenInput) KeyJustPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}

func (in *EbitenInput) Wheel() (float64, float64) {
	return ebiten.Wheel()
}
