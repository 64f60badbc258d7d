package scene

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

const (
	floorTop = 700.0
	standY   = floorTop - 64
)

func floorLevel(spawnX, spawnY float64) *levels.Level {
	bottom := floorTop
	return &levels.Level{
		Name:   "test",
		Width:  5200,
		Height: 768,
		Bottom: &bottom,
		WinX:   4500,
		Floor:  true,
		Spawn:  levels.Point{X: spawnX, Y: spawnY},
	}
}

func testPlayer() *prefabs.PlayerSpec {
	return &prefabs.PlayerSpec{Name: "player", MoveSpeed: 8, JumpSpeed: 16, Width: 40, Height: 64}
}

func testSceneSpec() *prefabs.SceneSpec {
	return &prefabs.SceneSpec{
		Gravity:    0.7,
		Parallax:   0.5,
		FollowBand: prefabs.FollowBandSpec{Left: 100, Right: 400},
	}
}

func newScene(t *testing.T, lvl *levels.Level, events <-chan input.Event) *Scene {
	t.Helper()
	s, err := New(lvl, testPlayer(), testSceneSpec(), events)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func hasEvent(events []ecs.Event, typ ecs.EventType) bool {
	for _, ev := range events {
		if ev.Type == typ {
			return true
		}
	}
	return false
}

func TestNewRejectsInvalidInput(t *testing.T) {
	badPlayer := testPlayer()
	badPlayer.Width = 0
	badBand := testSceneSpec()
	badBand.FollowBand.Right = 0
	empty := floorLevel(0, 0)
	empty.Floor = false

	cases := []struct {
		name   string
		level  *levels.Level
		player *prefabs.PlayerSpec
		spec   *prefabs.SceneSpec
		want   error
	}{
		{"nil_level", nil, testPlayer(), testSceneSpec(), ErrNilLevel},
		{"nil_player", floorLevel(0, 0), nil, testSceneSpec(), ErrInvalidActor},
		{"zero_size_player", floorLevel(0, 0), badPlayer, testSceneSpec(), ErrInvalidActor},
		{"nil_scene_spec", floorLevel(0, 0), testPlayer(), nil, ErrNilSceneSpec},
		{"inverted_band", floorLevel(0, 0), testPlayer(), badBand, prefabs.ErrInvalidSpec},
		{"no_platforms", empty, testPlayer(), testSceneSpec(), levels.ErrNoPlatforms},
		{"zero_height", &levels.Level{Width: 100, Floor: true}, testPlayer(), testSceneSpec(), levels.ErrInvalidBounds},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := New(c.level, c.player, c.spec, nil)
			if !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
			if s != nil {
				t.Fatalf("expected nil scene on error")
			}
		})
	}
}

func TestFreeFallAddsGravityEveryTick(t *testing.T) {
	s := newScene(t, floorLevel(100, 0), nil)

	y := 0.0
	for n := 1; n <= 10; n++ {
		s.Update()
		y += 0.7 * float64(n)
		if v := s.Velocity().Y; !approx(v, 0.7*float64(n)) {
			t.Fatalf("tick %d: expected vy %.2f, got %v", n, 0.7*float64(n), v)
		}
		if got := s.Position().Y; !approx(got, y) {
			t.Fatalf("tick %d: expected y %.2f, got %v", n, y, got)
		}
	}
}

func TestLanding(t *testing.T) {
	t.Run("standing_is_idempotent", func(t *testing.T) {
		s := newScene(t, floorLevel(100, standY), nil)
		for i := 0; i < 5; i++ {
			s.Update()
			if s.Position().Y != standY || s.Velocity().Y != 0 {
				t.Fatalf("tick %d: expected rest at y=%v, got y=%v vy=%v", i, standY, s.Position().Y, s.Velocity().Y)
			}
			if hasEvent(s.Events(), ecs.EventLanded) {
				t.Fatalf("tick %d: resting body must not land again", i)
			}
		}
	})

	t.Run("fall_snaps_to_top", func(t *testing.T) {
		s := newScene(t, floorLevel(100, 0), nil)
		landed := false
		for i := 0; i < 200; i++ {
			s.Update()
			if hasEvent(s.Events(), ecs.EventLanded) {
				landed = true
			}
			if s.Bounds().Bottom() > floorTop {
				t.Fatalf("tick %d: bottom %v passed the floor", i, s.Bounds().Bottom())
			}
		}
		if !landed {
			t.Fatalf("expected a landed event")
		}
		if s.Bounds().Bottom() != floorTop || s.Velocity().Y != 0 {
			t.Fatalf("expected bottom=%v vy=0, got bottom=%v vy=%v", floorTop, s.Bounds().Bottom(), s.Velocity().Y)
		}
		if s.Round().Ended() {
			t.Fatalf("landing must not end the round")
		}
	})

	t.Run("first_platform_wins", func(t *testing.T) {
		lvl := floorLevel(0, 0)
		lvl.Platforms = []levels.Platform{
			{Label: "upper", X: 0, Y: 100, Width: 200, Height: 10},
			{Label: "lower", X: 0, Y: 100, Width: 200, Height: 50},
		}
		s := newScene(t, lvl, nil)
		var label any
		for i := 0; i < 100 && label == nil; i++ {
			s.Update()
			for _, ev := range s.Events() {
				if ev.Type == ecs.EventLanded {
					label = ev.Data
				}
			}
		}
		if label != "upper" {
			t.Fatalf("expected landing on upper, got %v", label)
		}
	})
}

func TestHorizontalClamp(t *testing.T) {
	cases := []struct {
		name   string
		spawnX float64
		dir    input.Direction
		wall   float64
	}{
		{"left_wall", 100, input.Left, 0},
		{"right_wall", 4300, input.Right, 5200},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lvl := floorLevel(c.spawnX, standY)
			lvl.WinX = lvl.Width - 1
			s := newScene(t, lvl, nil)
			s.SetDirectionPressed(c.dir, true)

			clamps := 0
			for i := 0; i < 150; i++ {
				s.Update()
				b := s.Bounds()
				if b.Left() < 0 || b.Right() > 5200 {
					t.Fatalf("tick %d: box %v..%v outside level", i, b.Left(), b.Right())
				}
				clamped := hasEvent(s.Events(), ecs.EventClamped)
				if clamped {
					clamps++
				}
				if clamped != (s.Velocity().X == 0) {
					t.Fatalf("tick %d: clamped=%v but vx=%v", i, clamped, s.Velocity().X)
				}
			}
			if clamps == 0 {
				t.Fatalf("expected the wall at %v to be reached", c.wall)
			}
			b := s.Bounds()
			if b.Left() != c.wall && b.Right() != c.wall {
				t.Fatalf("expected box against %v, got %v..%v", c.wall, b.Left(), b.Right())
			}
		})
	}
}

func TestAnimationFollowsVelocity(t *testing.T) {
	s := newScene(t, floorLevel(1000, standY), nil)

	steps := []struct {
		dir     input.Direction
		pressed bool
		want    component.AnimationState
	}{
		{input.Right, true, component.RunRight},
		{input.Right, false, component.IdleRight},
		{input.Left, true, component.RunLeft},
		{input.Left, false, component.IdleLeft},
		{input.Right, true, component.RunRight},
	}

	for i, step := range steps {
		s.SetDirectionPressed(step.dir, step.pressed)
		for tick := 0; tick < 3; tick++ {
			s.Update()
			if got := s.AnimationState(); got != step.want {
				t.Fatalf("step %d tick %d: expected %s, got %s", i, tick, step.want, got)
			}
			vx := s.Velocity().X
			if got := system.AnimationFor(vx, s.Animation().FacingLeft); got != s.AnimationState() {
				t.Fatalf("step %d: animation %s does not match vx=%v", i, s.AnimationState(), vx)
			}
		}
	}
}

func TestJumpFromFloor(t *testing.T) {
	s := newScene(t, floorLevel(100, standY), nil)
	s.SetDirectionPressed(input.Top, true)

	s.Update()
	if v := s.Velocity().Y; v != -16 {
		t.Fatalf("expected vy=-16 after one tick, got %v", v)
	}
	if b := s.Bounds().Bottom(); b >= floorTop {
		t.Fatalf("expected bottom above the floor, got %v", b)
	}
	if !hasEvent(s.Events(), ecs.EventJumped) {
		t.Fatalf("expected a jumped event")
	}

	// holding the key mid-air never fires a second impulse
	for i := 0; i < 10; i++ {
		s.Update()
		if hasEvent(s.Events(), ecs.EventJumped) {
			t.Fatalf("tick %d: unexpected second jump", i)
		}
	}
	if v := s.Velocity().Y; !approx(v, -16+0.7*10) {
		t.Fatalf("expected vy=%v, got %v", -16+0.7*10, v)
	}
}

func TestMoveSpeed(t *testing.T) {
	s := newScene(t, floorLevel(100, standY), nil)
	s.SetDirectionPressed(input.Right, true)
	for i := 0; i < 10; i++ {
		s.Update()
	}
	if x := s.Position().X; x != 180 {
		t.Fatalf("expected x=180 after 10 ticks, got %v", x)
	}
	if s.Velocity().X != 8 {
		t.Fatalf("expected vx=8, got %v", s.Velocity().X)
	}
}

func TestWin(t *testing.T) {
	s := newScene(t, floorLevel(4440, standY), nil)
	s.SetDirectionPressed(input.Right, true)

	for i := 0; i < 7; i++ {
		s.Update()
	}
	if s.Round().Ended() {
		t.Fatalf("round ended early at x=%v", s.Position().X)
	}

	s.Update()
	r := s.Round()
	if r.Phase != component.RoundEnded || r.Outcome != component.OutcomeWin {
		t.Fatalf("expected win at x=%v, got %s/%s", s.Position().X, r.Phase, r.Outcome)
	}
	if r.EndedAt != s.Tick() {
		t.Fatalf("expected EndedAt=%d, got %d", s.Tick(), r.EndedAt)
	}
	if !hasEvent(s.Events(), ecs.EventRoundEnded) {
		t.Fatalf("expected a round_ended event")
	}

	// frozen until restart
	x := s.Position().X
	offset := s.CameraOffset()
	for i := 0; i < 5; i++ {
		s.Update()
	}
	if s.Position().X != x || s.CameraOffset() != offset {
		t.Fatalf("ended round must not move the actor or the camera")
	}
}

func TestLose(t *testing.T) {
	t.Run("fall_below_level", func(t *testing.T) {
		lvl := floorLevel(300, 600)
		lvl.Floor = false
		lvl.Platforms = []levels.Platform{{Label: "ledge", X: 0, Y: 700, Width: 200, Height: 20}}
		s := newScene(t, lvl, nil)

		for i := 0; i < 100 && !s.Round().Ended(); i++ {
			s.Update()
		}
		r := s.Round()
		if r.Outcome != component.OutcomeLose {
			t.Fatalf("expected lose, got %s", r.Outcome)
		}
		if s.Bounds().Bottom() <= 768 {
			t.Fatalf("expected bottom below the level, got %v", s.Bounds().Bottom())
		}
	})

	t.Run("checked_before_win", func(t *testing.T) {
		lvl := floorLevel(4600, 800)
		s := newScene(t, lvl, nil)
		s.Update()
		if got := s.Round().Outcome; got != component.OutcomeLose {
			t.Fatalf("expected lose, got %s", got)
		}
	})
}

func TestRestart(t *testing.T) {
	t.Run("direct", func(t *testing.T) {
		s := newScene(t, floorLevel(100, standY), nil)
		s.SetDirectionPressed(input.Right, true)
		s.SetDirectionPressed(input.Top, true)
		for i := 0; i < 60; i++ {
			s.Update()
		}
		if s.CameraOffset() == 0 {
			t.Fatalf("expected the camera to have scrolled")
		}

		s.Restart()
		if p := s.Position(); p.X != 100 || p.Y != standY {
			t.Fatalf("expected spawn position, got %v", p)
		}
		if v := s.Velocity(); v.X != 0 || v.Y != 0 {
			t.Fatalf("expected zero velocity, got %v", v)
		}
		if s.Intent().Any() {
			t.Fatalf("expected cleared intent, got %+v", s.Intent())
		}
		if s.CameraOffset() != 0 || s.ParallaxOffset() != 0 {
			t.Fatalf("expected camera reset, got %v", s.CameraOffset())
		}
		if r := s.Round(); r.Ended() || r.Number != 2 {
			t.Fatalf("expected round 2 playing, got %+v", r)
		}

		// keys held before the restart do not carry over
		s.Update()
		if s.Intent().Any() || s.Position().X != 100 {
			t.Fatalf("expected no motion after restart, got intent %+v x=%v", s.Intent(), s.Position().X)
		}
	})

	t.Run("enter_after_round_end", func(t *testing.T) {
		events := make(chan input.Event, 8)
		lvl := floorLevel(4600, 800)
		lvl.Spawn = levels.Point{X: 4600, Y: 800}
		s := newScene(t, lvl, events)
		s.Update()
		if !s.Round().Ended() {
			t.Fatalf("expected round over")
		}

		// direction keys are ignored while the round is over
		events <- input.KeyEvent{Code: "ArrowLeft", Pressed: true}
		s.Update()
		if s.Intent().Left {
			t.Fatalf("intent must not change while the round is over")
		}

		events <- input.KeyEvent{Code: "Enter", Pressed: true}
		s.Update()
		got := s.Events()
		if !hasEvent(got, ecs.EventRoundStarted) {
			t.Fatalf("expected round_started, got %v", got)
		}
		if r := s.Round(); r.Ended() || r.Number != 2 {
			t.Fatalf("expected round 2 playing, got %+v", r)
		}
	})
}

func TestPointerIntent(t *testing.T) {
	// actor box 100..140 x 636..700, centre (120, 668)
	s := newScene(t, floorLevel(100, standY), nil)

	s.HandlePointer(true, 300, 690)
	s.Update()
	if s.Velocity().X != 8 || s.Velocity().Y != 0 {
		t.Fatalf("expected run right without jump, got %v", s.Velocity())
	}

	s.HandlePointer(true, -500, 0)
	s.Update()
	if s.Velocity().X != -8 {
		t.Fatalf("expected pointer move to turn left, got %v", s.Velocity())
	}
	if s.Velocity().Y != 0 {
		t.Fatalf("jump is decided at press time, got vy=%v", s.Velocity().Y)
	}

	s.HandlePointer(false, 0, 0)
	s.Update()
	if s.Velocity().X != 0 || s.Intent().Any() {
		t.Fatalf("expected release to clear intent, got %+v", s.Intent())
	}

	c := s.Bounds().Center()
	s.HandlePointer(true, c.X, c.Y-100)
	s.Update()
	if s.Velocity().X != 0 || s.Velocity().Y != -16 {
		t.Fatalf("expected straight jump, got %v", s.Velocity())
	}
}

func TestCameraFollowsPastBand(t *testing.T) {
	s := newScene(t, floorLevel(100, standY), nil)
	s.SetDirectionPressed(input.Right, true)

	for i := 0; i < 32; i++ {
		s.Update()
	}
	if s.CameraOffset() != 0 {
		t.Fatalf("camera moved inside the band: %v", s.CameraOffset())
	}
	for i := 0; i < 8; i++ {
		s.Update()
	}
	if s.CameraOffset() != 64 || s.ParallaxOffset() != 32 {
		t.Fatalf("expected offset 64 parallax 32, got %v %v", s.CameraOffset(), s.ParallaxOffset())
	}
	_, bandRight := s.FollowBand()
	if sr := s.Bounds().Right() - s.CameraOffset(); sr > bandRight+8 {
		t.Fatalf("on-screen right %v overshoots the band by more than a tick", sr)
	}
}

func TestInputChannel(t *testing.T) {
	events := make(chan input.Event, 4)
	s := newScene(t, floorLevel(100, standY), events)

	s.Update()
	if s.Intent().Any() {
		t.Fatalf("empty channel must not produce intent")
	}

	events <- input.KeyEvent{Code: "KeyD", Pressed: true}
	events <- input.KeyEvent{Code: "KeyQ", Pressed: true}
	s.Update()
	if !s.Intent().Right || s.Velocity().X != 8 {
		t.Fatalf("expected KeyD to move right, got %+v", s.Intent())
	}

	events <- input.KeyEvent{Code: "KeyD", Pressed: false}
	close(events)
	s.Update()
	if s.Intent().Right {
		t.Fatalf("expected release to apply before the tick")
	}
	s.Update()

	s.Close()
	s.SetDirectionPressed(input.Left, true)
	s.Update()
	if s.Velocity().X != -8 {
		t.Fatalf("direct setters must work after Close, got %v", s.Velocity())
	}
}

func TestReload(t *testing.T) {
	s := newScene(t, floorLevel(100, standY), nil)
	s.SetDirectionPressed(input.Right, true)
	for i := 0; i < 5; i++ {
		s.Update()
	}

	bad := floorLevel(0, 0)
	bad.Floor = false
	if err := s.Reload(bad, nil, nil); !errors.Is(err, levels.ErrNoPlatforms) {
		t.Fatalf("expected ErrNoPlatforms, got %v", err)
	}
	if s.Position().X != 140 {
		t.Fatalf("failed reload must keep the running scene, got x=%v", s.Position().X)
	}

	if err := s.Reload(floorLevel(300, standY), nil, nil); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if s.Position().X != 300 || s.Level().Spawn.X != 300 {
		t.Fatalf("expected new spawn, got %v", s.Position())
	}
	if r := s.Round(); r.Number != 1 || r.Ended() {
		t.Fatalf("expected fresh round, got %+v", r)
	}
	s.Update()
	if s.Intent().Any() {
		t.Fatalf("reload must drop held input")
	}
}

func TestPlatformsInDeclarationOrder(t *testing.T) {
	lvl := floorLevel(0, 0)
	lvl.Platforms = []levels.Platform{
		{Label: "b", X: 500, Y: 500, Width: 100, Height: 20},
		{Label: "a", X: 100, Y: 400, Width: 100, Height: 20},
	}
	s := newScene(t, lvl, nil)

	got := s.Platforms()
	want := []string{"b", "a", levels.FloorLabel}
	if len(got) != len(want) {
		t.Fatalf("expected %d platforms, got %d", len(want), len(got))
	}
	for i, p := range got {
		if p.Label != want[i] || p.Order != i {
			t.Fatalf("platform %d: expected %s, got %s (order %d)", i, want[i], p.Label, p.Order)
		}
	}
	if floor := got[2].Bounds; floor.Top() != floorTop || floor.Width() != 5200 {
		t.Fatalf("unexpected floor box %+v", floor)
	}
}

func TestDefaultLevelCanBeWon(t *testing.T) {
	lvl, err := levels.LoadLevel(context.Background(), "")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		t.Fatalf("LoadPlayerSpec: %v", err)
	}
	spec, err := prefabs.LoadSceneSpec()
	if err != nil {
		t.Fatalf("LoadSceneSpec: %v", err)
	}
	s, err := New(lvl, player, spec, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// run right and jump off the end of whatever platform the box stands on
	s.SetDirectionPressed(input.Right, true)
	jumps := 0
	for i := 0; i < 1000 && !s.Round().Ended(); i++ {
		jump := false
		if b := s.Bounds(); s.Velocity().Y == 0 {
			for _, p := range s.Platforms() {
				if b.OverlapsX(p.Bounds) && approx(b.Bottom(), p.Bounds.Top()) {
					jump = p.Bounds.Right()-b.Right() <= player.MoveSpeed
					break
				}
			}
		}
		if jump {
			jumps++
		}
		s.SetDirectionPressed(input.Top, jump)
		s.Update()
	}

	r := s.Round()
	if r.Outcome != component.OutcomeWin {
		t.Fatalf("expected %s to be winnable, got %s/%s at x=%v after %d jumps", lvl.Name, r.Phase, r.Outcome, s.Position().X, jumps)
	}
	if jumps != 6 {
		t.Fatalf("expected 6 jumps, got %d", jumps)
	}
}
