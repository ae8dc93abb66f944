package ecs

import "slices"

// EntitiesWith returns the entities owning a component of type T, in id order.
func EntitiesWith[T any](w *World) []Entity {
	ids := w.bucketIDs(ComponentIDOf[T]())
	out := make([]Entity, len(ids))
	for i, id := range ids {
		out[i] = Entity{world: w, id: id}
	}
	return out
}

// Each calls fn for every entity owning T, in id order. The set is captured
// before the first call; entities removed during the walk are skipped, so
// fn may schedule removals or create entities freely.
func Each[T any](w *World, fn func(Entity, *T)) {
	cid := ComponentIDOf[T]()
	for _, id := range w.bucketIDs(cid) {
		cw, ok := w.components[cid][id]
		if !ok {
			continue
		}
		c, err := Unwrap[T](cw)
		if err != nil {
			continue
		}
		fn(Entity{world: w, id: id}, c)
	}
}

// Each2 calls fn for every entity owning both A and B. It walks the smaller
// bucket and probes the larger one.
func Each2[A, B any](w *World, fn func(Entity, *A, *B)) {
	ca, cb := ComponentIDOf[A](), ComponentIDOf[B]()
	walk := ca
	if len(w.components[cb]) < len(w.components[ca]) {
		walk = cb
	}
	for _, id := range w.bucketIDs(walk) {
		wa, ok := w.components[ca][id]
		if !ok {
			continue
		}
		wb, ok := w.components[cb][id]
		if !ok {
			continue
		}
		a, err := Unwrap[A](wa)
		if err != nil {
			continue
		}
		b, err := Unwrap[B](wb)
		if err != nil {
			continue
		}
		fn(Entity{world: w, id: id}, a, b)
	}
}

// IndexHas reports whether the T bucket of the index holds an entry for id.
func IndexHas[T any](w *World, id EntityID) bool {
	_, ok := w.components[ComponentIDOf[T]()][id]
	return ok
}

// HasBucket reports whether any entity owns a component of type T.
func HasBucket[T any](w *World) bool {
	_, ok := w.components[ComponentIDOf[T]()]
	return ok
}

func BucketLen[T any](w *World) int {
	return len(w.components[ComponentIDOf[T]()])
}

func (w *World) bucketIDs(cid ComponentID) []EntityID {
	bucket := w.components[cid]
	ids := make([]EntityID, 0, len(bucket))
	for id := range bucket {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
