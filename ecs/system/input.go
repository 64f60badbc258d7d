package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/input"
)

// InputSystem copies the mapper's intent snapshot onto the player. While the
// round is over only the restart trigger is observed.
type InputSystem struct {
	mapper *input.Mapper
}

func NewInputSystem(mapper *input.Mapper) *InputSystem {
	return &InputSystem{mapper: mapper}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || i.mapper == nil {
		return
	}

	restart := i.mapper.TakeRestart()
	if _, round, ok := ecs.First(w, component.RoundComponent); ok && round.Ended() {
		if restart {
			round.RestartRequested = true
		}
		return
	}

	intent := i.mapper.Intent()
	ecs.ForEach2(w, component.PlayerTagComponent, component.IntentComponent, func(_ ecs.Entity, _ *component.PlayerTag, in *component.Intent) {
		*in = intent
	})
}
