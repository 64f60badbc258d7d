package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.AnimationComponent, component.VelocityComponent, func(_ ecs.Entity, anim *component.Animation, vel *component.Velocity) {
		next := AnimationFor(vel.X, anim.FacingLeft)
		anim.FacingLeft = next == component.IdleLeft || next == component.RunLeft
		if next != anim.State {
			anim.State = next
			anim.Ticks = 0
			return
		}
		anim.Ticks++
	})
}

// AnimationFor derives the clip from the sign of vx. A resting body keeps
// the side it last faced.
func AnimationFor(vx float64, facingLeft bool) component.AnimationState {
	switch {
	case vx > 0:
		return component.RunRight
	case vx < 0:
		return component.RunLeft
	case facingLeft:
		return component.IdleLeft
	default:
		return component.IdleRight
	}
}
