package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
	"golang.org/x/image/colornames"
)

// hillSpacing is the distance between background hill centres.
const hillSpacing = 320

func (g *Game) Draw(screen *ebiten.Image) {
	spec := g.scene.SceneSpec()
	screen.Fill(spec.Colors.Sky.Or(colornames.Skyblue))

	g.drawHills(screen, spec.Colors.Hills.Or(colornames.Darkolivegreen))
	g.drawPlatforms(screen, spec.Colors.Platform.Or(colornames.Sienna))
	g.drawPlayer(screen)

	if g.opts.Debug {
		left, right := g.scene.FollowBand()
		_, h := g.viewSize()
		vector.FillRect(screen, float32(left), 0, float32(right-left), float32(h), spec.Colors.Band.Or(color.NRGBA{R: 0x33, G: 0x33, B: 0, A: 0x40}), false)
		ebitenutil.DebugPrint(screen, g.status())
	} else {
		g.drawHUD(screen)
	}

	if g.modalVisible() {
		g.ui.Draw(screen)
	}
}

// drawHills tiles the background layer, scrolled by the parallax offset.
func (g *Game) drawHills(screen *ebiten.Image, clr color.Color) {
	w, h := g.viewSize()
	shift := g.scene.ParallaxOffset()
	first := int(shift/hillSpacing) - 1
	for i := first; float64(i*hillSpacing)-shift < float64(w)+hillSpacing; i++ {
		cx := float64(i*hillSpacing) - shift
		r := float32(hillSpacing * 0.6)
		if i%2 != 0 {
			r *= 0.7
		}
		vector.FillCircle(screen, float32(cx), float32(h), r, clr, true)
	}
}

func (g *Game) drawPlatforms(screen *ebiten.Image, clr color.Color) {
	offset := g.scene.CameraOffset()
	w, _ := g.viewSize()
	for _, p := range g.scene.Platforms() {
		b := p.Bounds
		if b.Right()-offset < 0 || b.Left()-offset > float64(w) {
			continue
		}
		x := float32(b.Left() - offset)
		vector.FillRect(screen, x, float32(b.Top()), float32(b.Width()), float32(b.Height()), clr, false)
		if g.opts.Debug && p.Label != levels.FloorLabel {
			vector.StrokeRect(screen, x, float32(b.Top()), float32(b.Width()), float32(b.Height()), 1, colornames.Yellow, false)
		}
	}
}

// drawPlayer draws the actor box. The current clip frame bobs the body and
// the eye marks the faced side.
func (g *Game) drawPlayer(screen *ebiten.Image) {
	spec := g.scene.PlayerSpec()
	anim := g.scene.Animation()
	frame := spec.Animation.Frame(anim.State.String(), anim.Ticks)

	b := g.scene.Bounds()
	x := float32(b.Left() - g.scene.CameraOffset())
	y := float32(b.Top())
	bob := float32(0)
	if anim.State.Running() && frame%2 == 1 {
		bob = 2
	}
	vector.FillRect(screen, x, y+bob, float32(b.Width()), float32(b.Height())-bob, spec.Color.Or(colornames.Deepskyblue), false)

	eyeX := x + float32(b.Width())*0.65
	if anim.State == component.IdleLeft || anim.State == component.RunLeft {
		eyeX = x + float32(b.Width())*0.15
	}
	vector.FillRect(screen, eyeX, y+bob+10, 8, 8, colornames.White, false)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(8, 8)
	op.ColorScale.ScaleWithColor(colornames.Black)
	ebtext.Draw(screen, g.status(), g.ui.face, op)
}
