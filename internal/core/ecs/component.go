package ecs

import (
	"fmt"
	"reflect"
)

// ComponentID identifies a component type. Two components share an id iff
// they have the same Go type.
type ComponentID struct {
	typ reflect.Type
}

// ComponentIDOf returns the id of component type T.
func ComponentIDOf[T any]() ComponentID {
	return ComponentID{typ: reflect.TypeFor[T]()}
}

func (c ComponentID) String() string {
	if c.typ == nil {
		return "<nil>"
	}
	return c.typ.String()
}

// Wrapper owns exactly one component value behind a uniform handle so the
// world's storage is not parameterised per type. Typed access goes through
// Unwrap, which checks the dynamic type.
type Wrapper struct {
	id    ComponentID
	value any // always *T for the T recorded in id
}

// NewWrapper moves v into a freshly allocated wrapper.
func NewWrapper[T any](v T) *Wrapper {
	p := new(T)
	*p = v
	return &Wrapper{id: ComponentIDOf[T](), value: p}
}

func (w *Wrapper) ID() ComponentID { return w.id }

// Value returns the stored pointer as an untyped value.
func (w *Wrapper) Value() any { return w.value }

// Unwrap returns the typed pointer held by w.
func Unwrap[T any](w *Wrapper) (*T, error) {
	p, ok := w.value.(*T)
	if !ok {
		return nil, fmt.Errorf("%w: wrapper holds %s, requested %s",
			ErrComponentTypeMismatch, w.id, ComponentIDOf[T]())
	}
	return p, nil
}

// AddComponent stores v on e, replacing any previous component of the same
// type, and returns a pointer valid until the component or entity is removed.
func AddComponent[T any](e Entity, v T) (*T, error) {
	if e.IsZero() {
		return nil, fmt.Errorf("add %s: %w", ComponentIDOf[T](), ErrEntityNotFound)
	}
	w := NewWrapper(v)
	if err := e.world.AddComponent(e, w); err != nil {
		return nil, err
	}
	return w.value.(*T), nil
}

// GetComponent returns e's component of type T.
func GetComponent[T any](e Entity) (*T, error) {
	id := ComponentIDOf[T]()
	rec, err := e.record()
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", id, err)
	}
	w, ok := rec.components[id]
	if !ok {
		return nil, fmt.Errorf("get %s on %s: %w", id, e, ErrComponentNotFound)
	}
	return Unwrap[T](w)
}

// MustComponent is GetComponent for callers that already checked
// HasComponent or obtained e from a query on T. It panics otherwise.
func MustComponent[T any](e Entity) *T {
	c, err := GetComponent[T](e)
	if err != nil {
		panic(err)
	}
	return c
}

func HasComponent[T any](e Entity) bool {
	rec, err := e.record()
	if err != nil {
		return false
	}
	_, ok := rec.components[ComponentIDOf[T]()]
	return ok
}

// RemoveComponent drops e's component of type T. No-op if absent.
func RemoveComponent[T any](e Entity) {
	if e.IsZero() {
		return
	}
	e.world.RemoveComponent(e, ComponentIDOf[T]())
}

func (e Entity) record() (*entityRecord, error) {
	if e.IsZero() {
		return nil, ErrEntityNotFound
	}
	rec, ok := e.world.entities[e.id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", e, ErrEntityNotFound)
	}
	return rec, nil
}
