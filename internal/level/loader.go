// Package level turns parsed level data into entities.
package level

import (
	"fmt"
	"image"
	"time"

	"go.uber.org/zap"

	"github.com/battlecity/engine/internal/component"
	"github.com/battlecity/engine/internal/config"
	"github.com/battlecity/engine/internal/core/ecs"
	"github.com/battlecity/engine/internal/data"
	"github.com/battlecity/engine/internal/factory"
	"github.com/battlecity/engine/internal/view"
)

// Result lists the notable entities of a populated level.
type Result struct {
	Name    string
	Map     ecs.Entity
	Base    ecs.Entity
	Player  ecs.Entity // zero if the level has no player spawn
	Enemies []ecs.Entity
}

// Loader populates a world through the archetype factory.
type Loader struct {
	factory *factory.Factory
	cfg     config.GameConfig
	view    view.MapView
	log     *zap.Logger
}

// NewLoader creates a loader. v may be nil.
func NewLoader(f *factory.Factory, cfg config.GameConfig, v view.MapView, log *zap.Logger) *Loader {
	return &Loader{factory: f, cfg: cfg, view: v, log: log}
}

type placed struct {
	kind   component.ObjectType
	entity ecs.Entity
}

// Populate creates every entity of lvl. It is all-or-nothing: on failure
// every entity it created is removed again and the view hears nothing.
func (l *Loader) Populate(lvl *data.LevelData) (*Result, error) {
	var created []placed
	res, err := l.populate(lvl, &created)
	if err != nil {
		w := l.factory.World()
		for _, p := range created {
			w.RemoveEntity(p.entity)
		}
		return nil, fmt.Errorf("populate level %q: %w", lvl.Name, err)
	}

	if l.view != nil {
		for _, p := range created {
			if p.kind != component.ObjNone {
				l.view.AddObject(p.kind, p.entity, false)
			}
		}
	}
	l.log.Info("level populated",
		zap.String("level", lvl.Name),
		zap.Int("entities", len(created)),
		zap.Int("enemies", len(res.Enemies)))
	return res, nil
}

func (l *Loader) populate(lvl *data.LevelData, created *[]placed) (*Result, error) {
	f := l.factory
	ts := l.cfg.TileSize
	place := func(kind component.ObjectType, build func() (ecs.Entity, error)) (ecs.Entity, error) {
		e, err := build()
		if err != nil {
			return ecs.Entity{}, err
		}
		*created = append(*created, placed{kind: kind, entity: e})
		return e, nil
	}

	res := &Result{Name: lvl.Name}
	bounds := image.Rect(0, 0, lvl.Columns()*ts, lvl.RowCount()*ts)
	m, err := place(component.ObjNone, func() (ecs.Entity, error) { return f.Map(bounds) })
	if err != nil {
		return nil, err
	}
	res.Map = m

	for _, cell := range lvl.Cells() {
		rect := image.Rect(cell.Col*ts, cell.Row*ts, (cell.Col+1)*ts, (cell.Row+1)*ts)
		if err := l.placeCell(cell, rect, lvl, res, place); err != nil {
			return nil, fmt.Errorf("cell (%d,%d): %w", cell.Col, cell.Row, err)
		}
	}
	return res, nil
}

type placeFunc func(component.ObjectType, func() (ecs.Entity, error)) (ecs.Entity, error)

func (l *Loader) placeCell(cell data.Cell, rect image.Rectangle, lvl *data.LevelData, res *Result, place placeFunc) error {
	f := l.factory
	tile := tileType(cell.Kind)
	if _, err := place(component.ObjTile, func() (ecs.Entity, error) {
		return f.Tile(tile, rect, l.cfg.TileHealth)
	}); err != nil {
		return err
	}

	respawnPoint := func() (ecs.Entity, error) { return f.RespawnPoint(rect) }

	switch cell.Kind {
	case data.CellBase:
		e, err := place(component.ObjPlayerBase, func() (ecs.Entity, error) {
			return f.PlayerBase(rect, l.cfg.BaseHealth)
		})
		if err != nil {
			return err
		}
		res.Base = e
	case data.CellPlayer:
		if _, err := place(component.ObjRespawnPoint, respawnPoint); err != nil {
			return err
		}
		e, err := place(component.ObjPlayerTank, func() (ecs.Entity, error) {
			return f.Tank(l.tankSpec(rect, component.AlignPlayer, lvl))
		})
		if err != nil {
			return err
		}
		res.Player = e
	case data.CellEnemy:
		if _, err := place(component.ObjRespawnPoint, respawnPoint); err != nil {
			return err
		}
		e, err := place(component.ObjEnemyTank, func() (ecs.Entity, error) {
			return f.Tank(l.tankSpec(rect, component.AlignEnemy, lvl))
		})
		if err != nil {
			return err
		}
		res.Enemies = append(res.Enemies, e)
	case data.CellShield:
		if _, err := place(component.ObjPowerUp, func() (ecs.Entity, error) {
			return f.PowerUp(rect, component.PowerupShield, powerupDelay(lvl))
		}); err != nil {
			return err
		}
	case data.CellRespawn:
		if _, err := place(component.ObjRespawnPoint, respawnPoint); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) tankSpec(rect image.Rectangle, align component.Alignment, lvl *data.LevelData) factory.TankSpec {
	health := l.cfg.TankHealth
	if align == component.AlignEnemy && lvl.EnemyHealth > 0 {
		health = lvl.EnemyHealth
	}
	return factory.TankSpec{
		Rect:           rect,
		Alignment:      align,
		Speed:          l.cfg.TankSpeed,
		Health:         health,
		Lives:          l.cfg.PlayerLives,
		TurretCooldown: l.cfg.TurretCooldown,
		RespawnDelay:   l.cfg.RespawnDelay,
	}
}

func powerupDelay(lvl *data.LevelData) time.Duration {
	if lvl.PowerupDelay > 0 {
		return time.Duration(lvl.PowerupDelay) * time.Millisecond
	}
	return 10 * time.Second
}

// tileType maps a cell kind to the tile under it. Unknown kinds map to an
// out-of-range TileType, which the factory rejects.
func tileType(kind byte) component.TileType {
	switch kind {
	case data.CellWall:
		return component.TileWall
	case data.CellIronWall:
		return component.TileIronWall
	case data.CellEmpty, data.CellBase, data.CellPlayer, data.CellEnemy, data.CellShield, data.CellRespawn:
		return component.TileEmpty
	default:
		return component.TileType(-1)
	}
}
