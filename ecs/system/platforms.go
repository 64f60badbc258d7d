package system

import (
	"cmp"
	"slices"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// PlatformBox is a platform resolved to world space.
type PlatformBox struct {
	Label  string
	Order  int
	Bounds component.Bounds
}

// Platforms returns every platform in declaration order.
func Platforms(w *ecs.World) []PlatformBox {
	out := make([]PlatformBox, 0, ecs.Count(w, component.PlatformComponent))
	ecs.ForEach3(w, component.PlatformComponent, component.TransformComponent, component.BodyComponent,
		func(_ ecs.Entity, p *component.Platform, t *component.Transform, b *component.Body) {
			out = append(out, PlatformBox{Label: p.Label, Order: p.Order, Bounds: b.Bounds(t.Position)})
		})
	slices.SortStableFunc(out, func(a, b PlatformBox) int {
		return cmp.Compare(a.Order, b.Order)
	})
	return out
}

func roundEnded(w *ecs.World) bool {
	_, round, ok := ecs.First(w, component.RoundComponent)
	return ok && round.Ended()
}
