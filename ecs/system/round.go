package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// RoundSystem ends the round when the player falls below the level or passes
// the goal offset, and performs a requested restart once the round is over.
type RoundSystem struct {
	// OnRestart runs after the world state is reset, e.g. to clear input.
	OnRestart func()
}

func NewRoundSystem(onRestart func()) *RoundSystem {
	return &RoundSystem{OnRestart: onRestart}
}

func (rs *RoundSystem) Update(w *ecs.World) {
	roundEntity, round, ok := ecs.First(w, component.RoundComponent)
	if !ok {
		return
	}
	if round.Ended() {
		if round.RestartRequested {
			RestartRound(w)
			if rs.OnRestart != nil {
				rs.OnRestart()
			}
		}
		return
	}

	_, level, ok := ecs.First(w, component.LevelBoundsComponent)
	if !ok {
		return
	}
	player, _, ok := ecs.First(w, component.PlayerTagComponent)
	if !ok {
		return
	}
	t, ok := ecs.Get(w, player, component.TransformComponent)
	if !ok {
		return
	}
	body, ok := ecs.Get(w, player, component.BodyComponent)
	if !ok {
		return
	}

	b := body.Bounds(t.Position)
	switch {
	case b.Bottom() > level.Height:
		endRound(w, roundEntity, round, component.OutcomeLose)
	case t.Position.X > level.WinX:
		endRound(w, roundEntity, round, component.OutcomeWin)
	}
}

func endRound(w *ecs.World, e ecs.Entity, round *component.Round, outcome component.Outcome) {
	round.Phase = component.RoundEnded
	round.Outcome = outcome
	round.EndedAt = w.Tick()
	round.RestartRequested = false
	log.Printf("round: #%d ended at tick %d: %s", round.Number, round.EndedAt, outcome)
	w.Events().Push(ecs.Event{Type: ecs.EventRoundEnded, Entity: e, Data: outcome})
}

// RestartRound zeroes the player's velocity and intent, moves it to the level
// spawn, resets the camera and starts a new round. It works in any phase.
func RestartRound(w *ecs.World) {
	var spawn cp.Vector
	if _, level, ok := ecs.First(w, component.LevelBoundsComponent); ok {
		spawn = level.Spawn
	}

	ecs.ForEach(w, component.PlayerTagComponent, func(e ecs.Entity, _ *component.PlayerTag) {
		if t, ok := ecs.Get(w, e, component.TransformComponent); ok {
			t.Position = spawn
		}
		if vel, ok := ecs.Get(w, e, component.VelocityComponent); ok {
			vel.X, vel.Y = 0, 0
		}
		if in, ok := ecs.Get(w, e, component.IntentComponent); ok {
			*in = component.Intent{}
		}
		if anim, ok := ecs.Get(w, e, component.AnimationComponent); ok {
			*anim = component.Animation{State: component.IdleRight}
		}
	})

	if _, cam, ok := ecs.First(w, component.CameraComponent); ok {
		cam.Offset = 0
	}

	if e, round, ok := ecs.First(w, component.RoundComponent); ok {
		*round = component.Round{Phase: component.RoundPlaying, Number: round.Number + 1}
		w.Events().Push(ecs.Event{Type: ecs.EventRoundStarted, Entity: e, Data: round.Number})
	}
}
