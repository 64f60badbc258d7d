package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/logger"
)

var (
	logPlayerBounds  = logger.New("player-bounds")
	logPlayerGravity = logger.New("player-gravity")
	logPlayerMove    = logger.New("player-move")
)

// ResolverSystem integrates player motion once per tick: jump trigger,
// horizontal velocity, top-only platform landing or gravity, then the
// horizontal level clamp. Comparisons are inclusive and use no epsilon.
type ResolverSystem struct{}

func NewResolverSystem() *ResolverSystem {
	return &ResolverSystem{}
}

func (r *ResolverSystem) Update(w *ecs.World) {
	if roundEnded(w) {
		return
	}

	_, level, ok := ecs.First(w, component.LevelBoundsComponent)
	if !ok {
		return
	}
	gravity := 0.0
	if _, g, ok := ecs.First(w, component.GravityComponent); ok {
		gravity = g.Accel
	}
	platforms := Platforms(w)

	ecs.ForEach(w, component.PlayerComponent, func(e ecs.Entity, player *component.Player) {
		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			return
		}
		vel, ok := ecs.Get(w, e, component.VelocityComponent)
		if !ok {
			return
		}
		body, ok := ecs.Get(w, e, component.BodyComponent)
		if !ok {
			return
		}
		intent := component.Intent{}
		if in, ok := ecs.Get(w, e, component.IntentComponent); ok {
			intent = *in
		}

		jumped := false
		if intent.Top && vel.Y == 0 {
			vel.Y = -player.JumpSpeed
			jumped = true
			w.Events().Push(ecs.Event{Type: ecs.EventJumped, Entity: e})
		}

		switch {
		case intent.Left:
			vel.X = -player.MoveSpeed
		case intent.Right:
			vel.X = player.MoveSpeed
		default:
			vel.X = 0
		}

		b := body.Bounds(t.Position)
		logPlayerBounds.Printf("pl=%.2f pr=%.2f pw=%.2f ph=%.2f", b.Left(), b.Right(), b.Width(), b.Height())

		// the launch tick moves by exactly -JumpSpeed; gravity starts next tick
		next := vel.Y
		if !jumped {
			next += gravity
		}
		if p, ok := landing(b, next, platforms); ok {
			logPlayerGravity.Printf("Floor bot=%.2f vy=%.2f fl=%.2f (%s)", b.Bottom(), vel.Y, p.Bounds.Top(), p.Label)
			if vel.Y > 0 {
				w.Events().Push(ecs.Event{Type: ecs.EventLanded, Entity: e, Data: p.Label})
			}
			vel.Y = 0
			t.Position.Y = p.Bounds.Top() - body.Height
		} else {
			logPlayerGravity.Printf("Gravity bot=%.2f vy=%.2f", b.Bottom(), next)
			vel.Y = next
			t.Position.Y += vel.Y
		}

		b = body.Bounds(t.Position)
		logPlayerMove.Printf("Move left=%.2f right=%.2f vx=%.2f", b.Left(), b.Right(), vel.X)
		switch {
		case b.Left()+vel.X < level.Left:
			vel.X = 0
			t.Position.X = level.Left
			w.Events().Push(ecs.Event{Type: ecs.EventClamped, Entity: e, Data: "left"})
		case b.Right()+vel.X > level.Right:
			vel.X = 0
			t.Position.X = level.Right - body.Width
			w.Events().Push(ecs.Event{Type: ecs.EventClamped, Entity: e, Data: "right"})
		default:
			t.Position.X += vel.X
		}
	})
}

// landing returns the first platform (declaration order) whose top surface the
// box reaches this tick from above, with overlapping horizontal spans. vy is
// the velocity the box would move by, so a fall never skips past a top.
func landing(b component.Bounds, vy float64, platforms []PlatformBox) (PlatformBox, bool) {
	for _, p := range platforms {
		top := p.Bounds.Top()
		if b.OverlapsX(p.Bounds) && b.Bottom()+vy >= top && b.Bottom() <= top {
			return p, true
		}
	}
	return PlatformBox{}, false
}
