// Command termplay runs the platformer in a terminal. Terminals report key
// presses but not releases, so a key counts as held while it auto-repeats.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/logger"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/scene"
)

func main() {
	levelName := flag.String("level", "", "level name in levels/ (basename, .json optional)")
	debug := flag.Bool("debug", false, "draw the follow band and enable every debug channel")
	mute := flag.Bool("mute", false, "disable sound cues")
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	hold := flag.Duration("hold", 550*time.Millisecond, "how long a key stays held without a repeat")
	flag.Parse()

	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logOut = f
	}
	log.SetOutput(logOut)
	logger.SetOutput(logOut)
	logger.EnableFromEnv()
	if *debug {
		logger.Enable("*")
	}

	lvl, err := levels.LoadLevel(context.Background(), *levelName)
	if err != nil {
		log.Fatal(err)
	}
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Fatal(err)
	}
	spec, err := prefabs.LoadSceneSpec()
	if err != nil {
		log.Fatal(err)
	}

	events := make(chan input.Event, 64)
	sc, err := scene.New(lvl, player, spec, events)
	if err != nil {
		log.Fatal(err)
	}
	defer sc.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	var cues *cuePlayer
	if !*mute {
		cues, err = newCuePlayer()
		if err != nil {
			log.Printf("sound: disabled: %v", err)
			cues = nil
		}
	}
	defer cues.close()

	viewW, viewH := float64(spec.ViewWidth), float64(spec.ViewHeight)
	if viewW <= 0 || viewH <= 0 {
		viewW, viewH = common.BaseWidth, common.BaseHeight
	}

	r := &runner{
		screen: screen,
		scene:  sc,
		events: events,
		cues:   cues,
		keys:   newKeyHolder(*hold),
		view:   viewport{viewW: viewW, viewH: viewH},
		debug:  *debug,
	}
	r.view.cols, r.view.rows = screen.Size()
	r.run()
}

type runner struct {
	screen  tcell.Screen
	scene   *scene.Scene
	events  chan<- input.Event
	cues    *cuePlayer
	keys    *keyHolder
	pointer pointerTracker
	view    viewport
	debug   bool
	started bool
}

func (r *runner) run() {
	ticker := time.NewTicker(time.Second / common.TicksPerSecond)
	defer ticker.Stop()

	raw := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case raw <- ev:
			case <-quit:
				return
			}
		}
	}()

	for {
		select {
		case ev := <-raw:
			if !r.handle(ev) {
				return
			}
		case now := <-ticker.C:
			for _, ev := range r.keys.expire(now) {
				r.send(ev)
			}
			if r.started {
				r.scene.Update()
				for _, ev := range r.scene.Events() {
					r.cues.play(ev)
					if ev.Type == ecs.EventRoundStarted {
						r.keys.reset()
						r.pointer = pointerTracker{}
					}
				}
			}
			draw(r.screen, r.view, r.scene, r.started, r.debug)
		}
	}
}

// handle translates one terminal event. It returns false to quit.
func (r *runner) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if !r.started {
			if ev.Key() == tcell.KeyEnter {
				r.started = true
			}
			return true
		}
		code, ok := keyCode(ev)
		if !ok {
			return true
		}
		if input.IsRestartKey(code) {
			r.send(input.KeyEvent{Code: code, Pressed: true})
			return true
		}
		if kev, ok := r.keys.press(code, time.Now()); ok {
			r.send(kev)
		}
	case *tcell.EventMouse:
		if !r.started {
			return true
		}
		x, y := ev.Position()
		wx, wy := r.view.toWorld(x, y, r.scene.CameraOffset())
		if pev, ok := r.pointer.update(ev.Buttons()&tcell.Button1 != 0, wx, wy); ok {
			r.send(pev)
		}
	case *tcell.EventResize:
		r.view.cols, r.view.rows = r.screen.Size()
		r.screen.Sync()
	}
	return true
}

func (r *runner) send(ev input.Event) {
	select {
	case r.events <- ev:
	default:
		log.Printf("input: dropped %T", ev)
	}
}
