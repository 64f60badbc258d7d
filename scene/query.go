package scene

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

func (s *Scene) AnimationState() component.AnimationState {
	return s.Animation().State
}

// Animation returns the clip state together with the ticks spent in it.
func (s *Scene) Animation() component.Animation {
	if a, ok := ecs.Get(s.world, s.player, component.AnimationComponent); ok {
		return *a
	}
	return component.Animation{}
}

// Bounds returns the actor's world-space box.
func (s *Scene) Bounds() component.Bounds {
	t, ok := ecs.Get(s.world, s.player, component.TransformComponent)
	if !ok {
		return component.Bounds{}
	}
	b, ok := ecs.Get(s.world, s.player, component.BodyComponent)
	if !ok {
		return component.Bounds{}
	}
	return b.Bounds(t.Position)
}

func (s *Scene) Position() cp.Vector {
	if t, ok := ecs.Get(s.world, s.player, component.TransformComponent); ok {
		return t.Position
	}
	return cp.Vector{}
}

func (s *Scene) Velocity() cp.Vector {
	if v, ok := ecs.Get(s.world, s.player, component.VelocityComponent); ok {
		return v.Vector
	}
	return cp.Vector{}
}

// Intent is the snapshot the resolver used on the last tick.
func (s *Scene) Intent() component.Intent {
	if in, ok := ecs.Get(s.world, s.player, component.IntentComponent); ok {
		return *in
	}
	return component.Intent{}
}

func (s *Scene) camera() component.Camera {
	if _, c, ok := ecs.First(s.world, component.CameraComponent); ok {
		return *c
	}
	return component.Camera{}
}

func (s *Scene) CameraOffset() float64 {
	return s.camera().Offset
}

func (s *Scene) ParallaxOffset() float64 {
	return s.camera().ParallaxOffset()
}

// FollowBand returns the on-screen band edges.
func (s *Scene) FollowBand() (left, right float64) {
	c := s.camera()
	return c.BandLeft, c.BandRight
}

func (s *Scene) Round() component.Round {
	if _, r, ok := ecs.First(s.world, component.RoundComponent); ok {
		return *r
	}
	return component.Round{}
}

func (s *Scene) Platforms() []system.PlatformBox {
	return system.Platforms(s.world)
}

func (s *Scene) Level() *levels.Level {
	return s.level
}

func (s *Scene) PlayerSpec() *prefabs.PlayerSpec {
	return s.playerSpec
}

func (s *Scene) SceneSpec() *prefabs.SceneSpec {
	return s.sceneSpec
}

// Events returns and clears the events queued by the last Update.
func (s *Scene) Events() []ecs.Event {
	return s.world.Events().Drain()
}

func (s *Scene) Tick() uint64 {
	return s.world.Tick()
}
