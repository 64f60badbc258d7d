package input

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/logger"
)

var (
	logKeydown = logger.New("keydown")
	logKeyup   = logger.New("keyup")
	logPointer = logger.New("pointer-event")
)

// Mapper records directional intent. It never computes motion.
//
// Key flags and the pointer are independent sources; Intent merges them.
// The pointer stores signed offsets from the actor's centre: the horizontal
// sign follows the pointer while it is held, the jump request is decided
// once at press time.
type Mapper struct {
	pressed [4]bool

	pointerDown bool
	pointerDX   float64
	pointerJump bool

	restart bool
}

func NewMapper() *Mapper {
	return &Mapper{}
}

// SetDirectionPressed sets or clears one direction flag.
func (m *Mapper) SetDirectionPressed(d Direction, pressed bool) {
	if !d.valid() {
		return
	}
	m.pressed[d] = pressed
}

// HandlePointer applies a pointer transition at world position (x, y).
// actor is the actor's current box, used to compute the offsets.
func (m *Mapper) HandlePointer(phase PointerPhase, x, y float64, actor component.Bounds) {
	logPointer.Printf("%s px=%.1f py=%.1f", phase, x, y)
	center := actor.Center()
	switch phase {
	case PointerDown:
		m.pointerDown = true
		m.pointerDX = common.Sign(x - center.X)
		m.pointerJump = y < center.Y
	case PointerMove:
		if !m.pointerDown {
			return
		}
		m.pointerDX = common.Sign(x - center.X)
	case PointerUp:
		m.Release()
	}
}

// Apply routes an event to the matching setter.
func (m *Mapper) Apply(ev Event, actor component.Bounds) {
	switch ev := ev.(type) {
	case KeyEvent:
		m.applyKey(ev)
	case DirectionEvent:
		m.SetDirectionPressed(ev.Direction, ev.Pressed)
	case PointerEvent:
		m.HandlePointer(ev.Phase, ev.X, ev.Y, actor)
	case RestartEvent:
		m.restart = true
	}
}

func (m *Mapper) applyKey(ev KeyEvent) {
	if ev.Pressed {
		logKeydown.Printf("%s", ev.Code)
	} else {
		logKeyup.Printf("%s", ev.Code)
	}
	if IsRestartKey(ev.Code) {
		if ev.Pressed {
			m.restart = true
		}
		return
	}
	if d, ok := DirectionForKey(ev.Code); ok {
		m.SetDirectionPressed(d, ev.Pressed)
	}
}

// Release clears every flag and the pointer.
func (m *Mapper) Release() {
	m.pressed = [4]bool{}
	m.pointerDown = false
	m.pointerDX = 0
	m.pointerJump = false
}

// Reset clears intent and any pending restart request.
func (m *Mapper) Reset() {
	m.Release()
	m.restart = false
}

// PointerDown reports whether the pointer is currently held.
func (m *Mapper) PointerDown() bool {
	return m.pointerDown
}

// TakeRestart returns and clears the pending restart request.
func (m *Mapper) TakeRestart() bool {
	r := m.restart
	m.restart = false
	return r
}

// Intent returns the merged snapshot for this tick.
func (m *Mapper) Intent() component.Intent {
	in := component.Intent{
		Top:    m.pressed[Top],
		Right:  m.pressed[Right],
		Bottom: m.pressed[Bottom],
		Left:   m.pressed[Left],
	}
	if m.pointerDown {
		in.Top = in.Top || m.pointerJump
		in.Left = in.Left || m.pointerDX < 0
		in.Right = in.Right || m.pointerDX > 0
	}
	return in
}
