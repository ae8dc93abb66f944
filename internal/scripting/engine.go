package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/battlecity/engine/internal/component"
)

// Engine wraps a single gopher-lua VM running tank AI scripts.
// Single-goroutine access only (the runner goroutine).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads every script under scriptsDir/ai.
// A missing directory is not an error; AI then falls back to built-in defaults.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	e := newEngine(log)
	if err := e.loadDir(filepath.Join(scriptsDir, "ai")); err != nil {
		e.Close()
		return nil, fmt.Errorf("load ai scripts: %w", err)
	}
	return e, nil
}

func newEngine(log *zap.Logger) *Engine {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	return &Engine{vm: vm, log: log}
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// LoadString runs src in the engine's VM, e.g. to define or replace functions.
func (e *Engine) LoadString(name, src string) error {
	if err := e.vm.DoString(src); err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}
	return nil
}

// TankAIContext is the per-tick view an enemy tank's script gets.
type TankAIContext struct {
	TankID    uint64
	Tick      uint64
	X, Y      int
	Direction component.Direction
	Blocked   bool // last move was stopped by an obstacle
	CanFire   bool // turret cooldown elapsed

	HasTarget bool
	TargetX   int
	TargetY   int
}

// TankAICommand is what the script decided.
type TankAICommand struct {
	Direction component.Direction
	Fire      bool
}

// RunTankAI calls Lua tank_ai(ctx). Without a script, or on a script error,
// the tank keeps its heading and holds fire.
func (e *Engine) RunTankAI(ctx TankAIContext) TankAICommand {
	fallback := TankAICommand{Direction: ctx.Direction}

	fn := e.vm.GetGlobal("tank_ai")
	if fn == lua.LNil {
		return fallback
	}

	t := e.vm.NewTable()
	t.RawSetString("id", lua.LNumber(ctx.TankID))
	t.RawSetString("tick", lua.LNumber(ctx.Tick))
	t.RawSetString("x", lua.LNumber(ctx.X))
	t.RawSetString("y", lua.LNumber(ctx.Y))
	t.RawSetString("dir", lua.LString(ctx.Direction.String()))
	t.RawSetString("blocked", lua.LBool(ctx.Blocked))
	t.RawSetString("can_fire", lua.LBool(ctx.CanFire))
	t.RawSetString("has_target", lua.LBool(ctx.HasTarget))
	t.RawSetString("target_x", lua.LNumber(ctx.TargetX))
	t.RawSetString("target_y", lua.LNumber(ctx.TargetY))

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, t); err != nil {
		e.log.Error("lua tank_ai error", zap.Error(err), zap.Uint64("tank_id", ctx.TankID))
		return fallback
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	rt, ok := result.(*lua.LTable)
	if !ok {
		e.log.Error("lua tank_ai returned non-table", zap.String("type", result.Type().String()))
		return fallback
	}

	cmd := TankAICommand{
		Direction: ctx.Direction,
		Fire:      lua.LVAsBool(rt.RawGetString("fire")),
	}
	if name := lStr(rt, "dir"); name != "" {
		dir, ok := component.ParseDirection(name)
		if !ok {
			e.log.Warn("lua tank_ai returned unknown direction", zap.String("dir", name))
		} else {
			cmd.Direction = dir
		}
	}
	return cmd
}

// lStr reads a string field from a Lua table.
func lStr(t *lua.LTable, key string) string {
	v := t.RawGetString(key)
	if v == lua.LNil {
		return ""
	}
	return lua.LVAsString(v)
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
