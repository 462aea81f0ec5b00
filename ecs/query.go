package ecs

import "github.com/milk9111/platformer/ecs/component"

// Kind is satisfied by every component.ComponentKind[T].
type Kind interface {
	ID() component.ComponentID
}

// Query returns the entities that carry every listed component kind.
func (w *World) Query(kinds ...Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		set := w.stores[k.ID()]
		if set == nil || set.Len() == 0 {
			return nil
		}
		sets = append(sets, set)
	}
	// iterate smallest set
	smallest := 0
	for i := range sets {
		if sets[i].Len() < sets[smallest].Len() {
			smallest = i
		}
	}
	out := make([]Entity, 0, sets[smallest].Len())
	for _, e := range sets[smallest].Entities() {
		match := true
		for i, set := range sets {
			if i != smallest && !set.Has(e) {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}
