// Command animpreview plays the four player clips from player.yaml side by
// side so frame counts and speeds can be tuned. With -watch player.yaml is
// reloaded on save.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
	"golang.org/x/image/colornames"
)

const (
	cellSize = 256
	width    = cellSize * 4
	height   = cellSize
)

var clips = []component.AnimationState{component.IdleLeft, component.IdleRight, component.RunLeft, component.RunRight}

type previewGame struct {
	spec    *prefabs.PlayerSpec
	watcher *prefabs.Watcher
	tick    int
}

func (g *previewGame) Update() error {
	g.tick++
	if g.watcher == nil {
		return nil
	}
	select {
	case name, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return nil
		}
		spec, err := prefabs.LoadPlayerSpec()
		if err != nil {
			log.Printf("reload %s: %v", name, err)
			return nil
		}
		g.spec = spec
		g.tick = 0
	default:
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	w, h := float32(g.spec.Width), float32(g.spec.Height)
	for i, clip := range clips {
		def := g.spec.Animation.Defs[clip.String()]
		frame := g.spec.Animation.Frame(clip.String(), g.tick)

		x := float32(i*cellSize) + (cellSize-w)/2
		y := (cellSize - h) / 2
		// each frame shifts the box so the cycle is visible without sprites
		if def.FrameCount > 0 {
			y -= float32(frame) * 4
		}
		vector.FillRect(screen, x, y, w, h, g.spec.Color.Or(colornames.Deepskyblue), false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %d/%d @%.2f", clip, frame, def.FrameCount, def.Speed), i*cellSize+8, 8)
	}
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return width, height
}

func main() {
	watch := flag.Bool("watch", false, "reload player.yaml on save")
	flag.Parse()

	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Fatal(err)
	}
	g := &previewGame{spec: spec}
	if *watch {
		g.watcher, err = prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Fatal(err)
		}
		defer g.watcher.Close()
	}

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Player Clip Preview")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
