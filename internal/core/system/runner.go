package system

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/battlecity/engine/internal/core/ecs"
)

// Runner drives a World at a fixed tick rate. Every world access, tick and
// command handling included, happens on the goroutine that calls Run;
// other goroutines only talk to it through Send.
type Runner struct {
	world    *ecs.World
	rate     time.Duration
	log      *zap.Logger
	commands chan Command

	state      State
	ticks      uint64
	onLoadNext func() error
	afterTick  func(ticks uint64)
}

func NewRunner(world *ecs.World, rate time.Duration, log *zap.Logger) *Runner {
	return &Runner{
		world:    world,
		rate:     rate,
		log:      log,
		commands: make(chan Command, 16),
	}
}

// OnLoadNextLevel sets the hook run for CmdLoadNextLevel.
func (r *Runner) OnLoadNextLevel(fn func() error) { r.onLoadNext = fn }

// AfterTick sets a hook run after every executed tick.
func (r *Runner) AfterTick(fn func(ticks uint64)) { r.afterTick = fn }

func (r *Runner) State() State        { return r.state }
func (r *Runner) Ticks() uint64       { return r.ticks }
func (r *Runner) Rate() time.Duration { return r.rate }

// Send queues cmd for the Run goroutine and reports whether it was queued.
// It never blocks: listeners call it from inside a tick on the goroutine
// that drains the queue, so a full queue drops cmd with a warning.
func (r *Runner) Send(cmd Command) bool {
	select {
	case r.commands <- cmd:
		return true
	default:
		r.log.Warn("runner command queue full, dropping command",
			zap.Stringer("cmd", cmd), zap.Int("capacity", cap(r.commands)))
		return false
	}
}

// Run ticks the world until ctx is done. The loop starts stopped; send
// CmdStart (or call Handle before Run) to begin ticking.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.rate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.log.Info("runner stopped", zap.Uint64("ticks", r.ticks))
			return nil
		case cmd := <-r.commands:
			r.Handle(cmd)
		case <-ticker.C:
			r.Step()
		}
	}
}

// Step runs one world tick if the runner is in StateRunning.
func (r *Runner) Step() bool {
	if r.state != StateRunning {
		return false
	}
	r.world.Tick()
	r.ticks++
	if r.afterTick != nil {
		r.afterTick(r.ticks)
	}
	return true
}

// Handle applies one lifecycle command.
func (r *Runner) Handle(cmd Command) {
	prev := r.state
	switch cmd {
	case CmdStart:
		r.state = StateRunning
	case CmdStop:
		r.state = StateStopped
	case CmdPause:
		if r.state == StateRunning {
			r.state = StatePaused
		}
	case CmdResume:
		if r.state == StatePaused {
			r.state = StateRunning
		}
	case CmdLoadNextLevel:
		if r.onLoadNext == nil {
			r.log.Warn("no level loader wired, ignoring command", zap.Stringer("cmd", cmd))
			return
		}
		if err := r.onLoadNext(); err != nil {
			r.log.Error("load next level failed", zap.Error(err))
			r.state = StateStopped
		}
	default:
		r.log.Warn("unknown runner command", zap.Int("cmd", int(cmd)))
		return
	}
	if prev != r.state {
		r.log.Debug("runner state changed",
			zap.Stringer("cmd", cmd),
			zap.Stringer("from", prev),
			zap.Stringer("to", r.state))
	}
}
