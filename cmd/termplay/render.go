package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/scene"
)

var (
	styleSky      = tcell.StyleDefault.Background(tcell.NewRGBColor(135, 206, 235))
	styleHill     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(63, 127, 79)).Background(tcell.NewRGBColor(135, 206, 235))
	stylePlatform = tcell.StyleDefault.Foreground(tcell.NewRGBColor(139, 90, 43))
	styleFloor    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(96, 64, 32))
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(14, 165, 233))
	styleBand     = tcell.StyleDefault.Background(tcell.NewRGBColor(160, 200, 200))
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.NewRGBColor(135, 206, 235))
	styleModal    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
)

// viewport maps the logical view onto terminal cells.
type viewport struct {
	cols, rows int
	viewW      float64
	viewH      float64
}

func (v viewport) cellW() float64 { return v.viewW / float64(max(v.cols, 1)) }
func (v viewport) cellH() float64 { return v.viewH / float64(max(v.rows, 1)) }

func (v viewport) toCell(x, y float64) (int, int) {
	return int(x / v.cellW()), int(y / v.cellH())
}

// toWorld returns the world position under the centre of cell (cx, cy).
func (v viewport) toWorld(cx, cy int, offset float64) (float64, float64) {
	return (float64(cx)+0.5)*v.cellW() + offset, (float64(cy) + 0.5) * v.cellH()
}

func (v viewport) fillRect(s tcell.Screen, x, y, w, h float64, r rune, style tcell.Style) {
	x0, y0 := v.toCell(x, y)
	x1, y1 := v.toCell(x+w, y+h)
	if x1 == x0 {
		x1++
	}
	if y1 == y0 {
		y1++
	}
	for cy := max(y0, 0); cy < min(y1, v.rows); cy++ {
		for cx := max(x0, 0); cx < min(x1, v.cols); cx++ {
			s.SetContent(cx, cy, r, nil, style)
		}
	}
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func draw(s tcell.Screen, v viewport, sc *scene.Scene, started, debug bool) {
	s.Clear()
	offset := sc.CameraOffset()
	v.fillRect(s, 0, 0, v.viewW, v.viewH, ' ', styleSky)

	// hills scroll at the parallax fraction of the camera
	shift := sc.ParallaxOffset()
	for cx := 0; cx < v.cols; cx++ {
		wx := float64(cx)*v.cellW() + shift
		phase := int(wx/40) % 8
		height := []int{1, 2, 3, 4, 4, 3, 2, 1}[phase]
		for i := 0; i < height; i++ {
			s.SetContent(cx, v.rows-1-i, '▒', nil, styleHill)
		}
	}

	if debug {
		left, right := sc.FollowBand()
		v.fillRect(s, left, 0, right-left, v.viewH, ' ', styleBand)
	}

	for _, p := range sc.Platforms() {
		b := p.Bounds
		style := stylePlatform
		if p.Label == levels.FloorLabel {
			style = styleFloor
		}
		v.fillRect(s, b.Left()-offset, b.Top(), b.Width(), b.Height(), '█', style)
	}

	b := sc.Bounds()
	glyph := '▶'
	switch sc.AnimationState() {
	case component.IdleLeft, component.RunLeft:
		glyph = '◀'
	}
	v.fillRect(s, b.Left()-offset, b.Top(), b.Width(), b.Height(), glyph, stylePlayer)

	r := sc.Round()
	drawText(s, 0, 0, fmt.Sprintf(" round %d  x=%.0f  %s  [arrows/wasd move, space jump, esc quit]", r.Number, b.Left(), sc.AnimationState()), styleHUD)

	var msg string
	switch {
	case !started:
		msg = "  Platformer: press Enter to start  "
	case r.Outcome == component.OutcomeWin:
		msg = "  You Win. Press Enter to play again  "
	case r.Outcome == component.OutcomeLose:
		msg = "  You Lose. Press Enter to play again  "
	}
	if msg != "" {
		drawText(s, (v.cols-len(msg))/2, v.rows/2, msg, styleModal)
	}
	s.Show()
}
