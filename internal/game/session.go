// Package game sequences levels over a single ECS world.
package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/battlecity/engine/internal/core/ecs"
	"github.com/battlecity/engine/internal/core/event"
	"github.com/battlecity/engine/internal/data"
	"github.com/battlecity/engine/internal/level"
	"github.com/battlecity/engine/internal/view"
)

// Session owns the level order. Each LoadNextLevel wipes the world (systems
// stay registered and are cleaned) and populates the next level file.
// Accessed only from the runner goroutine.
type Session struct {
	world  *ecs.World
	bus    *event.Bus
	loader *level.Loader
	view   view.MapView
	log    *zap.Logger

	files   []string
	next    int
	current *level.Result
}

// NewSession creates a session over the given level files. v may be nil.
func NewSession(world *ecs.World, bus *event.Bus, loader *level.Loader, v view.MapView, files []string, log *zap.Logger) *Session {
	return &Session{
		world:  world,
		bus:    bus,
		loader: loader,
		view:   v,
		log:    log,
		files:  files,
	}
}

// Current returns the running level, or nil before the first load.
func (s *Session) Current() *level.Result { return s.current }

// Remaining returns how many levels have not been started yet.
func (s *Session) Remaining() int { return len(s.files) - s.next }

// LoadNextLevel replaces the world contents with the next level. Once every
// level has been played it emits GameCompleted instead and leaves the world
// alone.
func (s *Session) LoadNextLevel() error {
	if s.next >= len(s.files) {
		s.log.Info("no levels left", zap.Int("played", s.next))
		event.Emit(s.bus, event.GameCompleted{})
		return nil
	}
	path := s.files[s.next]
	lvl, err := data.LoadLevel(path)
	if err != nil {
		return err
	}

	event.Emit(s.bus, event.PrepareNextLevel{})
	if s.view != nil {
		s.view.RemoveAllObjects()
	}
	s.world.Reset()
	s.current = nil

	res, err := s.loader.Populate(lvl)
	if err != nil {
		return fmt.Errorf("level %d (%s): %w", s.next+1, path, err)
	}
	s.current = res
	s.next++
	s.log.Info("level loaded",
		zap.String("level", res.Name),
		zap.Int("index", s.next),
		zap.Int("entities", s.world.Entities()))
	event.Emit(s.bus, event.LevelStarted{Name: res.Name})
	return nil
}
