package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

func NewCamera(w *ecs.World, scene *prefabs.SceneSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.CameraComponent, &component.Camera{
		Parallax:  scene.Parallax,
		BandLeft:  scene.FollowBand.Left,
		BandRight: scene.FollowBand.Right,
	}); err != nil {
		return 0, fmt.Errorf("camera: %w", err)
	}
	return e, nil
}

func NewRound(w *ecs.World) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.RoundComponent, &component.Round{Phase: component.RoundPlaying, Number: 1}); err != nil {
		return 0, fmt.Errorf("round: %w", err)
	}
	return e, nil
}
