package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

// NewPlayer creates the player at spawn from its spec.
func NewPlayer(w *ecs.World, spec *prefabs.PlayerSpec, spawn cp.Vector) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("player: nil spec: %w", prefabs.ErrInvalidSpec)
	}
	if err := spec.Validate(); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PlayerTagComponent, &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerComponent, &component.Player{
		MoveSpeed: spec.MoveSpeed,
		JumpSpeed: spec.JumpSpeed,
	}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{Position: spawn}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent, &component.Velocity{}); err != nil {
		return 0, fmt.Errorf("player: add velocity: %w", err)
	}
	if err := ecs.Add(w, e, component.BodyComponent, &component.Body{Width: spec.Width, Height: spec.Height}); err != nil {
		return 0, fmt.Errorf("player: add body: %w", err)
	}
	if err := ecs.Add(w, e, component.IntentComponent, &component.Intent{}); err != nil {
		return 0, fmt.Errorf("player: add intent: %w", err)
	}
	if err := ecs.Add(w, e, component.AnimationComponent, &component.Animation{State: component.IdleRight}); err != nil {
		return 0, fmt.Errorf("player: add animation: %w", err)
	}
	return e, nil
}
