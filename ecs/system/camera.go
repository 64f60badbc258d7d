package system

import (
	"math"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/logger"
)

var logMoveLevelBounds = logger.New("move-level-bounds")

// CameraSystem scrolls the world when the player leaves the follow band.
// The offset grows by the player's velocity, so it may overshoot the band
// edge by one tick, and it never goes below zero.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if roundEnded(w) {
		return
	}
	_, cam, ok := ecs.First(w, component.CameraComponent)
	if !ok {
		return
	}
	target, _, ok := ecs.First(w, component.PlayerTagComponent)
	if !ok {
		return
	}
	t, ok := ecs.Get(w, target, component.TransformComponent)
	if !ok {
		return
	}
	body, ok := ecs.Get(w, target, component.BodyComponent)
	if !ok {
		return
	}
	vel, ok := ecs.Get(w, target, component.VelocityComponent)
	if !ok {
		return
	}

	screenLeft := t.Position.X - cam.Offset
	screenRight := screenLeft + body.Width
	switch {
	case screenRight > cam.BandRight && vel.X > 0:
		cam.Offset += vel.X
	case screenLeft < cam.BandLeft && vel.X < 0:
		cam.Offset += vel.X
	}
	cam.Offset = common.Clamp(cam.Offset, 0, math.Inf(1))
	logMoveLevelBounds.Printf("sl=%.2f sr=%.2f band=%.0f..%.0f offset=%.2f", screenLeft, screenRight, cam.BandLeft, cam.BandRight, cam.Offset)
}
