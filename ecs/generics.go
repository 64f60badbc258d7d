package ecs

import "github.com/milk9111/platformer/ecs/component"

// Add attaches value to e, replacing any previous value of the same kind.
func Add[T any](w *World, e Entity, h component.ComponentHandle[T], value *T) error {
	if value == nil {
		return component.ErrNilComponent
	}
	return w.addComponent(e, h.Kind().ID(), value)
}

func Get[T any](w *World, e Entity, h component.ComponentHandle[T]) (*T, bool) {
	v, ok := w.getComponent(e, h.Kind().ID())
	if !ok {
		return nil, false
	}
	cast, ok := v.(*T)
	return cast, ok
}

func Has[T any](w *World, e Entity, h component.ComponentHandle[T]) bool {
	_, ok := w.getComponent(e, h.Kind().ID())
	return ok
}

func Remove[T any](w *World, e Entity, h component.ComponentHandle[T]) bool {
	return w.removeComponent(e, h.Kind().ID())
}

// Count returns how many live entities carry the component.
func Count[T any](w *World, h component.ComponentHandle[T]) int {
	if w == nil {
		return 0
	}
	return w.store(h.Kind().ID(), false).Len()
}

// First returns the first entity (in store order) carrying the component.
func First[T any](w *World, h component.ComponentHandle[T]) (Entity, *T, bool) {
	var found Entity
	var value *T
	ForEach(w, h, func(e Entity, v *T) {
		if value == nil {
			found, value = e, v
		}
	})
	return found, value, value != nil
}

// ForEach visits every entity carrying the component. The id list is copied
// first so fn may add or destroy entities.
func ForEach[T any](w *World, h component.ComponentHandle[T], fn func(Entity, *T)) {
	if w == nil {
		return
	}
	s := w.store(h.Kind().ID(), false)
	if s == nil {
		return
	}
	ids := append([]entityID(nil), s.denseIDs...)
	for _, id := range ids {
		e, ok := w.entities.entity(id)
		if !ok {
			continue
		}
		v, ok := s.get(id)
		if !ok {
			continue
		}
		if cast, ok := v.(*T); ok {
			fn(e, cast)
		}
	}
}

func ForEach2[A, B any](w *World, ha component.ComponentHandle[A], hb component.ComponentHandle[B], fn func(Entity, *A, *B)) {
	ForEach(w, ha, func(e Entity, a *A) {
		b, ok := Get(w, e, hb)
		if !ok {
			return
		}
		fn(e, a, b)
	})
}

func ForEach3[A, B, C any](w *World, ha component.ComponentHandle[A], hb component.ComponentHandle[B], hc component.ComponentHandle[C], fn func(Entity, *A, *B, *C)) {
	ForEach2(w, ha, hb, func(e Entity, a *A, b *B) {
		c, ok := Get(w, e, hc)
		if !ok {
			return
		}
		fn(e, a, b, c)
	})
}
