package event

import (
	"image"

	"github.com/battlecity/engine/internal/core/ecs"
)

// EntityCaused is embedded by events that concern one or more entities.
// Targets keep insertion order and may repeat.
type EntityCaused struct {
	entities []ecs.EntityID
}

// AddTarget appends id to the event's affected entities.
func (e *EntityCaused) AddTarget(id ecs.EntityID) {
	e.entities = append(e.entities, id)
}

func (e EntityCaused) Entities() []ecs.EntityID { return e.entities }

// EntityHit: a projectile damaged the target entities.
type EntityHit struct {
	EntityCaused
	Damage uint32
}

// EntityKilled: the target entities' health reached zero.
type EntityKilled struct {
	EntityCaused
	Killer ecs.EntityID
}

// EntitiesRemoved batches every entity scheduled for removal in one tick.
type EntitiesRemoved struct {
	EntityCaused
}

// GeometryChanged is emitted after an entity moved or turned.
type GeometryChanged struct {
	EntityCaused
	Rect     image.Rectangle
	Rotation int
}

// LevelResult is the outcome of a finished level.
type LevelResult int

const (
	LevelWon LevelResult = iota
	LevelLost
)

func (r LevelResult) String() string {
	if r == LevelWon {
		return "won"
	}
	return "lost"
}

type LevelStarted struct {
	Name string
}

type LevelCompleted struct {
	Name   string
	Result LevelResult
}

type PrepareNextLevel struct{}

type GameCompleted struct{}
