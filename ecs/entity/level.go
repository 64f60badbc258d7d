package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

// NewLevel creates the level settings entity and one entity per platform,
// the optional floor last.
func NewLevel(w *ecs.World, lvl *levels.Level, scene *prefabs.SceneSpec) (ecs.Entity, error) {
	if lvl == nil {
		return 0, fmt.Errorf("level: nil level: %w", levels.ErrNoPlatforms)
	}
	if scene == nil {
		return 0, fmt.Errorf("level %s: nil scene spec: %w", lvl.Name, prefabs.ErrInvalidSpec)
	}
	if err := lvl.Validate(); err != nil {
		return 0, fmt.Errorf("level %s: %w", lvl.Name, err)
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.LevelBoundsComponent, &component.LevelBounds{
		Left:   lvl.Left,
		Right:  lvl.RightBound(),
		Height: lvl.Height,
		WinX:   lvl.WinX,
		Spawn:  cp.Vector{X: lvl.Spawn.X, Y: lvl.Spawn.Y},
	}); err != nil {
		return 0, fmt.Errorf("level %s: add bounds: %w", lvl.Name, err)
	}
	if err := ecs.Add(w, e, component.GravityComponent, &component.Gravity{Accel: scene.Gravity}); err != nil {
		return 0, fmt.Errorf("level %s: add gravity: %w", lvl.Name, err)
	}

	for i, p := range lvl.AllPlatforms() {
		if _, err := NewPlatform(w, p, i); err != nil {
			return 0, fmt.Errorf("level %s: %w", lvl.Name, err)
		}
	}
	return e, nil
}

func NewPlatform(w *ecs.World, p levels.Platform, order int) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PlatformComponent, &component.Platform{Label: p.Label, Order: order}); err != nil {
		return 0, fmt.Errorf("platform %s: %w", p.Label, err)
	}
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{Position: cp.Vector{X: p.X, Y: p.Y}}); err != nil {
		return 0, fmt.Errorf("platform %s: %w", p.Label, err)
	}
	if err := ecs.Add(w, e, component.BodyComponent, &component.Body{Width: p.Width, Height: p.Height}); err != nil {
		return 0, fmt.Errorf("platform %s: %w", p.Label, err)
	}
	return e, nil
}
