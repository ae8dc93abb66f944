package system

import "github.com/battlecity/engine/internal/core/ecs"

// Base carries the world a system was built for and no-op lifecycle hooks.
// Embed it and override the hooks a system needs.
type Base struct {
	world *ecs.World
}

func NewBase(world *ecs.World) Base { return Base{world: world} }

func (b *Base) World() *ecs.World { return b.world }

func (b *Base) Init()  {}
func (b *Base) Tick()  {}
func (b *Base) Clean() {}

// Command is a lifecycle request sent to the Runner, usually by a view.
type Command int

const (
	CmdStart Command = iota
	CmdStop
	CmdPause
	CmdResume
	CmdLoadNextLevel
)

func (c Command) String() string {
	switch c {
	case CmdStart:
		return "start"
	case CmdStop:
		return "stop"
	case CmdPause:
		return "pause"
	case CmdResume:
		return "resume"
	case CmdLoadNextLevel:
		return "load_next_level"
	default:
		return "unknown"
	}
}

// State of the Runner's tick loop.
type State int

const (
	StateStopped State = iota
	StateRunning
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "stopped"
	}
}
