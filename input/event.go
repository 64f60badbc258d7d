// Package input turns key and pointer events into a per-tick intent snapshot.
package input

type Direction int

const (
	Top Direction = iota
	Right
	Bottom
	Left
)

func (d Direction) String() string {
	switch d {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

func (d Direction) valid() bool {
	return d >= Top && d <= Left
}

type PointerPhase int

const (
	PointerDown PointerPhase = iota
	PointerMove
	PointerUp
)

func (p PointerPhase) String() string {
	switch p {
	case PointerDown:
		return "pointerdown"
	case PointerMove:
		return "pointermove"
	case PointerUp:
		return "pointerup"
	default:
		return "unknown"
	}
}

// Event is anything a front end can send to the simulation.
type Event interface {
	isEvent()
}

// KeyEvent carries a DOM style key code such as "KeyA" or "ArrowLeft".
type KeyEvent struct {
	Code    string
	Pressed bool
}

// DirectionEvent presses or releases a direction directly.
type DirectionEvent struct {
	Direction Direction
	Pressed   bool
}

// PointerEvent carries a pointer transition in world coordinates.
type PointerEvent struct {
	Phase PointerPhase
	X, Y  float64
}

// RestartEvent asks for a new round once the current one has ended.
type RestartEvent struct{}

func (KeyEvent) isEvent()       {}
func (DirectionEvent) isEvent() {}
func (PointerEvent) isEvent()   {}
func (RestartEvent) isEvent()   {}
