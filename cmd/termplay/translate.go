package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/platformer/input"
)

// keyHolder turns the terminal's press-only key stream into press and release
// pairs. A key counts as held until no repeat arrives within hold.
type keyHolder struct {
	hold     time.Duration
	lastSeen map[string]time.Time
}

func newKeyHolder(hold time.Duration) *keyHolder {
	return &keyHolder{hold: hold, lastSeen: map[string]time.Time{}}
}

// press records a repeat of code. Only the first press yields an event.
func (h *keyHolder) press(code string, now time.Time) (input.KeyEvent, bool) {
	_, held := h.lastSeen[code]
	h.lastSeen[code] = now
	if held {
		return input.KeyEvent{}, false
	}
	return input.KeyEvent{Code: code, Pressed: true}, true
}

// expire releases every key not seen within hold of now.
func (h *keyHolder) expire(now time.Time) []input.KeyEvent {
	var out []input.KeyEvent
	for code, seen := range h.lastSeen {
		if now.Sub(seen) >= h.hold {
			delete(h.lastSeen, code)
			out = append(out, input.KeyEvent{Code: code, Pressed: false})
		}
	}
	return out
}

func (h *keyHolder) reset() {
	clear(h.lastSeen)
}

var runeCodes = map[rune]string{
	'w': "KeyW",
	'a': "KeyA",
	's': "KeyS",
	'd': "KeyD",
	' ': "Space",
}

var keyCodes = map[tcell.Key]string{
	tcell.KeyUp:    "ArrowUp",
	tcell.KeyLeft:  "ArrowLeft",
	tcell.KeyDown:  "ArrowDown",
	tcell.KeyRight: "ArrowRight",
	tcell.KeyEnter: "Enter",
}

// keyCode maps a terminal key to the code the input mapper binds.
func keyCode(ev *tcell.EventKey) (string, bool) {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		code, ok := runeCodes[r]
		return code, ok
	}
	code, ok := keyCodes[ev.Key()]
	return code, ok
}

// pointerTracker derives down, move and up transitions from mouse reports,
// which only carry the current button mask.
type pointerTracker struct {
	down bool
}

func (p *pointerTracker) update(pressed bool, x, y float64) (input.PointerEvent, bool) {
	switch {
	case pressed && !p.down:
		p.down = true
		return input.PointerEvent{Phase: input.PointerDown, X: x, Y: y}, true
	case pressed:
		return input.PointerEvent{Phase: input.PointerMove, X: x, Y: y}, true
	case p.down:
		p.down = false
		return input.PointerEvent{Phase: input.PointerUp, X: x, Y: y}, true
	}
	return input.PointerEvent{}, false
}
