package main

import (
	"context"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/scene"
)

type Options struct {
	Level string
	Debug bool
	Watch bool
	Mute  bool
}

type Game struct {
	opts Options

	scene   *scene.Scene
	keys    chan input.Event
	ui      *RoundUI
	sound   *Sound
	watcher *prefabs.Watcher

	started bool
	// pointerActive is set while a press that began during play is held.
	pointerActive bool
	keyBuf        []ebiten.Key
}

func NewGame(opts Options) (*Game, error) {
	g := &Game{
		opts:  opts,
		keys:  make(chan input.Event, 64),
		sound: NewSound(opts.Mute),
	}
	var err error
	g.scene, err = loadScene(opts.Level, g.keys)
	if err != nil {
		return nil, err
	}
	g.ui = NewRoundUI(g)

	if opts.Watch {
		g.watcher, err = prefabs.NewWatcher(prefabs.Dir, levels.Dir)
		if err != nil {
			log.Printf("watch: disabled: %v", err)
			g.watcher = nil
		}
	}
	return g, nil
}

func loadScene(levelName string, events <-chan input.Event) (*scene.Scene, error) {
	lvl, err := levels.LoadLevel(context.Background(), levelName)
	if err != nil {
		return nil, err
	}
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	spec, err := prefabs.LoadSceneSpec()
	if err != nil {
		return nil, err
	}
	return scene.New(lvl, player, spec, events)
}

// Start begins the first round, or restarts a finished one.
func (g *Game) Start() {
	if !g.started {
		g.started = true
		return
	}
	g.scene.Restart()
}

func (g *Game) modalVisible() bool {
	return !g.started || g.scene.Round().Ended()
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.pollReload()
	g.ui.Update()

	if !g.started {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.Start()
		}
		return nil
	}

	g.pollKeys()
	g.pollPointer()
	g.scene.Update()
	for _, ev := range g.scene.Events() {
		g.sound.Play(ev)
		if ev.Type == ecs.EventRoundStarted {
			g.pointerActive = false
		}
	}
	return nil
}

func (g *Game) pollKeys() {
	g.keyBuf = inpututil.AppendJustPressedKeys(g.keyBuf[:0])
	for _, k := range g.keyBuf {
		g.sendKey(k, true)
	}
	g.keyBuf = inpututil.AppendJustReleasedKeys(g.keyBuf[:0])
	for _, k := range g.keyBuf {
		g.sendKey(k, false)
	}
}

func (g *Game) sendKey(k ebiten.Key, pressed bool) {
	code, ok := keyCode(k)
	if !ok {
		return
	}
	select {
	case g.keys <- input.KeyEvent{Code: code, Pressed: pressed}:
	default:
		log.Printf("input: dropped %s", code)
	}
}

// pollPointer feeds mouse or first-touch state in world coordinates. Presses
// that start while the round modal is up are left to the modal.
func (g *Game) pollPointer() {
	x, y, pressed, justPressed := pointerState()
	wx := float64(x) + g.scene.CameraOffset()
	wy := float64(y)

	switch {
	case justPressed && !g.modalVisible():
		g.pointerActive = true
		g.scene.HandlePointer(true, wx, wy)
	case pressed && g.pointerActive:
		g.scene.HandlePointer(true, wx, wy)
	case !pressed && g.pointerActive:
		g.pointerActive = false
		g.scene.HandlePointer(false, wx, wy)
	}
}

func pointerState() (x, y int, pressed, justPressed bool) {
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y = ebiten.TouchPosition(ids[0])
		return x, y, true, inpututil.TouchPressDuration(ids[0]) == 1
	}
	x, y = ebiten.CursorPosition()
	return x, y, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// pollReload rebuilds the scene after an edit under prefabs/ or levels/.
// A broken file is logged and the running scene is kept.
func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	changed := false
drain:
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("watch: %s changed", name)
			changed = true
		case err, ok := <-g.watcher.Errors:
			if !ok {
				break drain
			}
			log.Printf("watch: %v", err)
		default:
			break drain
		}
	}
	if !changed {
		return
	}

	lvl, err := levels.LoadLevel(context.Background(), g.opts.Level)
	if err != nil {
		log.Printf("reload: %v", err)
		return
	}
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Printf("reload: %v", err)
		return
	}
	spec, err := prefabs.LoadSceneSpec()
	if err != nil {
		log.Printf("reload: %v", err)
		return
	}
	if err := g.scene.Reload(lvl, player, spec); err != nil {
		log.Printf("reload: %v", err)
		return
	}
	g.pointerActive = false
	log.Printf("reload: level %s rebuilt", lvl.Name)
}

func (g *Game) viewSize() (int, int) {
	spec := g.scene.SceneSpec()
	if spec == nil || spec.ViewWidth <= 0 || spec.ViewHeight <= 0 {
		return common.BaseWidth, common.BaseHeight
	}
	return spec.ViewWidth, spec.ViewHeight
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	w, h := g.viewSize()
	return float64(w), float64(h)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("watch: close: %v", err)
		}
	}
	g.scene.Close()
}

func (g *Game) status() string {
	r := g.scene.Round()
	return fmt.Sprintf("round %d  x=%.0f  offset=%.0f  %s", r.Number, g.scene.Position().X, g.scene.CameraOffset(), g.scene.AnimationState())
}
