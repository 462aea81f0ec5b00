package ecs

import "github.com/milk9111/platformer/ecs/component"

// Add stores value as the kind's component on e, replacing any previous one.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(kind.ID(), true).Set(e, value)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	set := w.store(kind.ID(), false)
	return set.Remove(e)
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	set := w.store(kind.ID(), false)
	return set.Has(e)
}

// Get returns the stored component pointer; mutations through it are visible
// to every later reader.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	set := w.store(kind.ID(), false)
	value, ok := set.Get(e).(*T)
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

// First returns the first entity carrying kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	set := w.store(kind.ID(), false)
	if set.Len() == 0 {
		return 0, false
	}
	return set.denseEntities[0], true
}

// ForEach calls fn for every entity carrying kind. Components may be added or
// removed from fn; the iteration works on a snapshot.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	set := w.store(kind.ID(), false)
	for _, e := range set.Entities() {
		if v, ok := set.Get(e).(*T); ok && v != nil {
			fn(e, v)
		}
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	for _, e := range w.Query(ka, kb) {
		a, aok := Get(w, e, ka)
		b, bok := Get(w, e, kb)
		if aok && bok {
			fn(e, a, b)
		}
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	for _, e := range w.Query(ka, kb, kc) {
		a, aok := Get(w, e, ka)
		b, bok := Get(w, e, kb)
		c, cok := Get(w, e, kc)
		if aok && bok && cok {
			fn(e, a, b, c)
		}
	}
}
