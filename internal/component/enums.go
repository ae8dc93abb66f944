package component

import "fmt"

type TileType int

const (
	TileWall TileType = iota
	TileIronWall
	TileEmpty
)

func (t TileType) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileIronWall:
		return "iron_wall"
	case TileEmpty:
		return "empty"
	default:
		return fmt.Sprintf("tile_type(%d)", int(t))
	}
}

type Alignment int

const (
	AlignPlayer Alignment = iota
	AlignEnemy
)

func (a Alignment) String() string {
	switch a {
	case AlignPlayer:
		return "player"
	case AlignEnemy:
		return "enemy"
	default:
		return fmt.Sprintf("alignment(%d)", int(a))
	}
}

type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
	DirNone
)

// Rotation returns the sprite rotation in degrees for d; DirNone maps to -1.
func (d Direction) Rotation() int {
	switch d {
	case DirUp:
		return 0
	case DirRight:
		return 90
	case DirDown:
		return 180
	case DirLeft:
		return 270
	default:
		return -1
	}
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirNone:
		return "none"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection is the inverse of Direction.String.
func ParseDirection(s string) (Direction, bool) {
	for d := DirLeft; d <= DirNone; d++ {
		if d.String() == s {
			return d, true
		}
	}
	return DirNone, false
}

type AnimationType int

const (
	AnimExplosion AnimationType = iota
	AnimRespawn
	AnimShield
)

func (a AnimationType) String() string {
	switch a {
	case AnimExplosion:
		return "explosion"
	case AnimRespawn:
		return "respawn"
	case AnimShield:
		return "shield"
	default:
		return fmt.Sprintf("animation_type(%d)", int(a))
	}
}

type PowerupType int

const (
	PowerupShield PowerupType = iota
)

func (p PowerupType) String() string {
	if p == PowerupShield {
		return "shield"
	}
	return fmt.Sprintf("powerup_type(%d)", int(p))
}

// ObjectType tells the view which kind of object an entity represents.
type ObjectType int

const (
	ObjTile ObjectType = iota
	ObjPlayerBase
	ObjPlayerTank
	ObjEnemyTank
	ObjProjectile
	ObjRespawnPoint
	ObjFrag
	ObjAnimation
	ObjPowerUp
	ObjNone
)

var objectTypeNames = [...]string{
	ObjTile:         "tile",
	ObjPlayerBase:   "player_base",
	ObjPlayerTank:   "player_tank",
	ObjEnemyTank:    "enemy_tank",
	ObjProjectile:   "projectile",
	ObjRespawnPoint: "respawn_point",
	ObjFrag:         "frag",
	ObjAnimation:    "animation",
	ObjPowerUp:      "power_up",
	ObjNone:         "none",
}

func (o ObjectType) String() string {
	if o < 0 || int(o) >= len(objectTypeNames) {
		return fmt.Sprintf("object_type(%d)", int(o))
	}
	return objectTypeNames[o]
}
