package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Game      GameConfig      `toml:"game"`
	Assets    AssetsConfig    `toml:"assets"`
	Levels    LevelsConfig    `toml:"levels"`
	Scripting ScriptingConfig `toml:"scripting"`
	Logging   LoggingConfig   `toml:"logging"`
	Debug     DebugConfig     `toml:"debug"`
}

type GameConfig struct {
	TickRate time.Duration `toml:"tick_rate"`
	MaxTicks uint64        `toml:"max_ticks"` // 0 = run until interrupted
	TileSize int           `toml:"tile_size"` // pixels per map cell

	TankSpeed      uint32        `toml:"tank_speed"` // pixels per tick
	TankHealth     uint32        `toml:"tank_health"`
	PlayerLives    uint32        `toml:"player_lives"`
	TurretCooldown time.Duration `toml:"turret_cooldown"`
	RespawnDelay   time.Duration `toml:"respawn_delay"`

	ProjectileSpeed  uint32 `toml:"projectile_speed"`
	ProjectileDamage uint32 `toml:"projectile_damage"`
	ProjectileSize   int    `toml:"projectile_size"`

	TileHealth uint32 `toml:"tile_health"`
	BaseHealth uint32 `toml:"base_health"`
}

type AssetsConfig struct {
	ImageTemplate string `toml:"image_template"` // fmt template, one %s for the image name
}

type LevelsConfig struct {
	Files []string `toml:"files"` // played in order
}

type ScriptingConfig struct {
	Dir string `toml:"dir"`
}

type DebugConfig struct {
	Profile string `toml:"profile"` // "", "cpu" or "mem"; written to the working directory
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads path over the defaults. A missing file is an error; missing
// keys keep their default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Game.TickRate <= 0 {
		return fmt.Errorf("game.tick_rate must be positive, got %s", c.Game.TickRate)
	}
	if c.Game.TileSize <= 0 {
		return fmt.Errorf("game.tile_size must be positive, got %d", c.Game.TileSize)
	}
	if len(c.Levels.Files) == 0 {
		return fmt.Errorf("levels.files is empty")
	}
	switch c.Debug.Profile {
	case "", "cpu", "mem":
	default:
		return fmt.Errorf("debug.profile must be cpu or mem, got %q", c.Debug.Profile)
	}
	return nil
}

func Defaults() *Config {
	return &Config{
		Game: GameConfig{
			TickRate:         50 * time.Millisecond,
			TileSize:         16,
			TankSpeed:        2,
			TankHealth:       100,
			PlayerLives:      3,
			TurretCooldown:   500 * time.Millisecond,
			RespawnDelay:     2 * time.Second,
			ProjectileSpeed:  6,
			ProjectileDamage: 50,
			ProjectileSize:   4,
			TileHealth:       50,
			BaseHealth:       100,
		},
		Assets: AssetsConfig{
			ImageTemplate: "graphics/%s.png",
		},
		Levels: LevelsConfig{
			Files: []string{"levels/level1.yaml"},
		},
		Scripting: ScriptingConfig{
			Dir: "scripts",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
