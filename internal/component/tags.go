package component

// Marker components. They carry no data; owning one is the information.

type TankObject struct{}

type GameMap struct{}

type Player struct{}

type Enemy struct{}

type PlayerBase struct{}

// NonTraversible blocks tanks and projectiles (bases, player tanks).
type NonTraversible struct{}

// NonTraversibleTile marks wall tiles.
type NonTraversibleTile struct{}

// Flying marks entities that move until they hit something (projectiles).
type Flying struct{}

type RespawnPoint struct{}

type Animation struct{}

// Blocked is set on a tank whose last move ran into an obstacle and
// cleared once it moves again.
type Blocked struct{}

// Expired marks an entity the reaper should remove at the end of this tick.
type Expired struct{}

// TTL expires an entity after Ticks more ticks.
type TTL struct {
	Ticks uint32
}
