package entity

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

func TestNewPlayer(t *testing.T) {
	w := ecs.NewWorld()
	spec := &prefabs.PlayerSpec{MoveSpeed: 8, JumpSpeed: 16, Width: 40, Height: 64}

	e, err := NewPlayer(w, spec, cp.Vector{X: 10, Y: 20})
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}

	tr, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok || tr.Position != (cp.Vector{X: 10, Y: 20}) {
		t.Fatalf("expected spawn transform, got %v", tr)
	}
	body, ok := ecs.Get(w, e, component.BodyComponent)
	if !ok || body.Width != 40 || body.Height != 64 {
		t.Fatalf("unexpected body %v", body)
	}
	for name, has := range map[string]bool{
		"tag":       ecs.Has(w, e, component.PlayerTagComponent),
		"player":    ecs.Has(w, e, component.PlayerComponent),
		"velocity":  ecs.Has(w, e, component.VelocityComponent),
		"intent":    ecs.Has(w, e, component.IntentComponent),
		"animation": ecs.Has(w, e, component.AnimationComponent),
	} {
		if !has {
			t.Fatalf("player is missing %s", name)
		}
	}

	if _, err := NewPlayer(w, nil, cp.Vector{}); !errors.Is(err, prefabs.ErrInvalidSpec) {
		t.Fatalf("expected ErrInvalidSpec for nil spec, got %v", err)
	}
	if _, err := NewPlayer(w, &prefabs.PlayerSpec{Width: -1, Height: 1}, cp.Vector{}); !errors.Is(err, prefabs.ErrInvalidSpec) {
		t.Fatalf("expected ErrInvalidSpec for bad size, got %v", err)
	}
}

func TestNewLevel(t *testing.T) {
	w := ecs.NewWorld()
	bottom := 700.0
	lvl := &levels.Level{
		Name:      "t",
		Width:     3000,
		Height:    768,
		Bottom:    &bottom,
		WinX:      2000,
		Floor:     true,
		Spawn:     levels.Point{X: 40, Y: 500},
		Platforms: []levels.Platform{{Label: "step", X: 400, Y: 600, Width: 200, Height: 20}},
	}

	if _, err := NewLevel(w, lvl, &prefabs.SceneSpec{Gravity: 0.7}); err != nil {
		t.Fatalf("NewLevel: %v", err)
	}

	_, bounds, ok := ecs.First(w, component.LevelBoundsComponent)
	if !ok {
		t.Fatalf("missing level bounds")
	}
	want := component.LevelBounds{Left: 0, Right: 3000, Height: 768, WinX: 2000, Spawn: cp.Vector{X: 40, Y: 500}}
	if *bounds != want {
		t.Fatalf("expected %+v, got %+v", want, *bounds)
	}
	if _, g, ok := ecs.First(w, component.GravityComponent); !ok || g.Accel != 0.7 {
		t.Fatalf("expected gravity 0.7")
	}
	if n := ecs.Count(w, component.PlatformComponent); n != 2 {
		t.Fatalf("expected 2 platforms, got %d", n)
	}
	if _, p, ok := ecs.First(w, component.PlatformComponent); !ok || p.Label != "step" || p.Order != 0 {
		t.Fatalf("expected the declared platform first")
	}
}

func TestNewLevelErrors(t *testing.T) {
	cases := []struct {
		name  string
		level *levels.Level
		scene *prefabs.SceneSpec
		want  error
	}{
		{"nil_level", nil, &prefabs.SceneSpec{}, levels.ErrNoPlatforms},
		{"nil_scene", &levels.Level{Width: 10, Height: 10, Floor: true}, nil, prefabs.ErrInvalidSpec},
		{"no_platforms", &levels.Level{Width: 10, Height: 10}, &prefabs.SceneSpec{}, levels.ErrNoPlatforms},
		{"inverted_bounds", &levels.Level{Width: 10, Height: 10, Left: 20, Floor: true}, &prefabs.SceneSpec{}, levels.ErrInvalidBounds},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := NewLevel(ecs.NewWorld(), c.level, c.scene); !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}
}

func TestNewCameraAndRound(t *testing.T) {
	w := ecs.NewWorld()
	spec := &prefabs.SceneSpec{Parallax: 0.5, FollowBand: prefabs.FollowBandSpec{Left: 100, Right: 400}}
	if _, err := NewCamera(w, spec); err != nil {
		t.Fatal(err)
	}
	if _, err := NewRound(w); err != nil {
		t.Fatal(err)
	}

	_, cam, _ := ecs.First(w, component.CameraComponent)
	if cam.Offset != 0 || cam.BandLeft != 100 || cam.BandRight != 400 || cam.Parallax != 0.5 {
		t.Fatalf("unexpected camera %+v", *cam)
	}
	_, round, _ := ecs.First(w, component.RoundComponent)
	if round.Ended() || round.Number != 1 {
		t.Fatalf("unexpected round %+v", *round)
	}
}
