package main

import "github.com/hajimehoshi/ebiten/v2"

// keyCodes names Ebiten keys by their DOM key codes, the names the input
// mapper binds.
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyW:           "KeyW",
	ebiten.KeyA:           "KeyA",
	ebiten.KeyS:           "KeyS",
	ebiten.KeyD:           "KeyD",
	ebiten.KeyArrowUp:     "ArrowUp",
	ebiten.KeyArrowLeft:   "ArrowLeft",
	ebiten.KeyArrowDown:   "ArrowDown",
	ebiten.KeyArrowRight:  "ArrowRight",
	ebiten.KeySpace:       "Space",
	ebiten.KeyShiftLeft:   "ShiftLeft",
	ebiten.KeyEnter:       "Enter",
	ebiten.KeyNumpadEnter: "NumpadEnter",
}

func keyCode(k ebiten.Key) (string, bool) {
	code, ok := keyCodes[k]
	return code, ok
}
