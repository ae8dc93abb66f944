package factory

import (
	"fmt"

	"github.com/battlecity/engine/internal/component"
)

// Image names, resolved to paths through Images.Template.
const (
	imageTileEmpty       = "tile_empty"
	imageTileWall        = "tile_wall"
	imageTileIronWall    = "tile_iron_wall"
	imagePlayerBase      = "player_base"
	imagePlayerTank      = "player_tank"
	imageEnemyTank       = "enemy_tank"
	imageProjectile      = "projectile"
	imageFrag            = "frag"
	imageExplosion       = "explosion"
	imageRespawn         = "respawn"
	imageShield          = "shield"
	imageShieldAnimation = "shield_animation"
)

// DefaultImageTemplate is used when Images.Template is empty.
const DefaultImageTemplate = "graphics/%s.png"

// Images turns image names into paths a view can load.
type Images struct {
	Template string // fmt template with one %s verb
}

func (im Images) Path(name string) string {
	tmpl := im.Template
	if tmpl == "" {
		tmpl = DefaultImageTemplate
	}
	return fmt.Sprintf(tmpl, name)
}

func (im Images) Tile(t component.TileType) (string, error) {
	var name string
	switch t {
	case component.TileEmpty:
		name = imageTileEmpty
	case component.TileWall:
		name = imageTileWall
	case component.TileIronWall:
		name = imageTileIronWall
	default:
		return "", fmt.Errorf("tile image for %s: %w", t, ErrInvalidArgument)
	}
	return im.Path(name), nil
}

func (im Images) Tank(a component.Alignment) (string, error) {
	var name string
	switch a {
	case component.AlignPlayer:
		name = imagePlayerTank
	case component.AlignEnemy:
		name = imageEnemyTank
	default:
		return "", fmt.Errorf("tank image for %s: %w", a, ErrInvalidArgument)
	}
	return im.Path(name), nil
}

func (im Images) Animation(a component.AnimationType) (string, error) {
	var name string
	switch a {
	case component.AnimExplosion:
		name = imageExplosion
	case component.AnimRespawn:
		name = imageRespawn
	case component.AnimShield:
		name = imageShieldAnimation
	default:
		return "", fmt.Errorf("animation image for %s: %w", a, ErrInvalidArgument)
	}
	return im.Path(name), nil
}

func (im Images) Powerup(p component.PowerupType) (string, error) {
	switch p {
	case component.PowerupShield:
		return im.Path(imageShield), nil
	default:
		return "", fmt.Errorf("power-up image for %s: %w", p, ErrInvalidArgument)
	}
}

// TileTraversible reports whether tanks can drive over a tile of type t.
func TileTraversible(t component.TileType) (bool, error) {
	switch t {
	case component.TileEmpty:
		return true, nil
	case component.TileWall, component.TileIronWall:
		return false, nil
	default:
		return false, fmt.Errorf("traversibility of %s: %w", t, ErrInvalidArgument)
	}
}
