package ecs

import "errors"

var (
	// ErrEntityNotFound is returned when an entity id is not present in the world.
	ErrEntityNotFound = errors.New("ecs: entity not found")
	// ErrComponentNotFound is returned when an entity does not own the requested component type.
	ErrComponentNotFound = errors.New("ecs: component not found")
	// ErrComponentTypeMismatch signals a typed accessor used on a wrapper of another type.
	ErrComponentTypeMismatch = errors.New("ecs: component type mismatch")
)
