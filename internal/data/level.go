package data

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Cell kinds used in a level's tile rows.
const (
	CellEmpty    = '.'
	CellWall     = 'W'
	CellIronWall = 'I'
	CellBase     = 'B'
	CellPlayer   = 'P'
	CellEnemy    = 'E'
	CellShield   = 'S'
	CellRespawn  = 'R'
)

// LevelData is one level, loaded from a level yaml file.
type LevelData struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"` // one character per cell, see Cell* constants

	// Optional per-level overrides; zero keeps the game default.
	EnemyHealth  uint32 `yaml:"enemy_health"`
	PowerupDelay int    `yaml:"powerup_delay_ms"`
}

type levelFile struct {
	Level LevelData `yaml:"level"`
}

// Cell is one map cell.
type Cell struct {
	Col, Row int
	Kind     byte
}

// LoadLevel reads and validates a level file.
func LoadLevel(path string) (*LevelData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", path, err)
	}
	lvl, err := ParseLevel(raw)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return lvl, nil
}

// ParseLevel decodes and validates level yaml.
func ParseLevel(raw []byte) (*LevelData, error) {
	var file levelFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}
	lvl := &file.Level
	if err := lvl.validate(); err != nil {
		return nil, err
	}
	return lvl, nil
}

func (l *LevelData) validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("level name is empty")
	}
	if len(l.Rows) == 0 {
		return fmt.Errorf("level %q has no rows", l.Name)
	}
	width := len(l.Rows[0])
	bases := 0
	for r, row := range l.Rows {
		if len(row) != width {
			return fmt.Errorf("level %q row %d has %d cells, want %d", l.Name, r, len(row), width)
		}
		for c := 0; c < len(row); c++ {
			switch row[c] {
			case CellEmpty, CellWall, CellIronWall, CellPlayer, CellEnemy, CellShield, CellRespawn:
			case CellBase:
				bases++
			default:
				return fmt.Errorf("level %q cell (%d,%d): unknown kind %q", l.Name, c, r, row[c])
			}
		}
	}
	if bases != 1 {
		return fmt.Errorf("level %q has %d player bases, want 1", l.Name, bases)
	}
	return nil
}

func (l *LevelData) Columns() int  { return len(l.Rows[0]) }
func (l *LevelData) RowCount() int { return len(l.Rows) }

// Cells returns every cell in row-major order.
func (l *LevelData) Cells() []Cell {
	out := make([]Cell, 0, l.Columns()*l.RowCount())
	for r, row := range l.Rows {
		for c := 0; c < len(row); c++ {
			out = append(out, Cell{Col: c, Row: r, Kind: row[c]})
		}
	}
	return out
}
