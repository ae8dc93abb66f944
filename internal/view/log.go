package view

import (
	"go.uber.org/zap"

	"github.com/battlecity/engine/internal/component"
	"github.com/battlecity/engine/internal/core/ecs"
	"github.com/battlecity/engine/internal/core/event"
	"github.com/battlecity/engine/internal/core/system"
)

// LogView is a headless MapView that logs what a graphical view would draw.
// When the game ends or a level completes it drives the runner forward the
// way a player pressing "continue" would. commands is called from inside a
// tick, so it must queue (Runner.Send), not act immediately.
type LogView struct {
	log      *zap.Logger
	objects  map[ecs.EntityID]component.ObjectType
	commands func(system.Command)
}

func NewLogView(log *zap.Logger, commands func(system.Command)) *LogView {
	return &LogView{
		log:      log,
		objects:  make(map[ecs.EntityID]component.ObjectType),
		commands: commands,
	}
}

func (v *LogView) Objects() int { return len(v.objects) }

func (v *LogView) AddObject(t component.ObjectType, e ecs.Entity, sendUpdate bool) {
	v.objects[e.ID()] = t
	if sendUpdate {
		v.log.Debug("object added", zap.Stringer("type", t), zap.Stringer("entity", e.ID()))
	}
}

func (v *LogView) RemoveAllObjects() {
	v.log.Debug("all objects removed", zap.Int("count", len(v.objects)))
	clear(v.objects)
}

func (v *LogView) EntityHit(ev event.EntityHit) {
	v.log.Debug("entity hit", zap.Uint32("damage", ev.Damage), zap.Int("targets", len(ev.Entities())))
}

func (v *LogView) EntityKilled(ev event.EntityKilled) {
	for _, id := range ev.Entities() {
		t, ok := v.objects[id]
		if !ok {
			t = component.ObjNone
		}
		v.log.Info("entity killed",
			zap.Stringer("entity", id),
			zap.Stringer("type", t),
			zap.Stringer("killer", ev.Killer))
	}
}

func (v *LogView) EntitiesRemoved(ev event.EntitiesRemoved) {
	for _, id := range ev.Entities() {
		delete(v.objects, id)
	}
	v.log.Debug("entities removed", zap.Int("count", len(ev.Entities())))
}

func (v *LogView) PrepareToLoadNextLevel() {
	v.log.Info("preparing next level")
}

func (v *LogView) LevelStarted(name string) {
	v.log.Info("level started", zap.String("level", name))
}

func (v *LogView) LevelCompleted(name string, result event.LevelResult) {
	v.log.Info("level completed", zap.String("level", name), zap.Stringer("result", result))
	if v.commands == nil {
		return
	}
	if result == event.LevelWon {
		v.commands(system.CmdLoadNextLevel)
		return
	}
	v.commands(system.CmdStop)
}

func (v *LogView) GameCompleted() {
	v.log.Info("game completed")
	if v.commands != nil {
		v.commands(system.CmdStop)
	}
}
