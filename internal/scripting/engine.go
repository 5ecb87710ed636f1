package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM for level scripts.
// Single-goroutine access only (game loop).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads all scripts from the given directory.
// Missing directories are skipped, so a game without scripts gets an empty VM.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	// Set API version global
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}

	for _, sub := range []string{"core", "level"} {
		p := filepath.Join(scriptsDir, sub)
		if err := e.loadDir(p); err != nil {
			vm.Close()
			return nil, fmt.Errorf("load %s scripts: %w", sub, err)
		}
	}

	return e, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
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

// DoString runs a chunk of Lua. Tests and tools use it to define functions
// without files.
func (e *Engine) DoString(src string) error {
	return e.vm.DoString(src)
}

// HasFunc reports whether a global Lua function is defined.
func (e *Engine) HasFunc(name string) bool {
	_, ok := e.vm.GetGlobal(name).(*lua.LFunction)
	return ok
}

// GenerateTerrain calls generate_terrain(size). While it runs the script can
// call set_solid(x, y) for 0 <= x, y < size; each call is passed to solid.
// It reports false when the script does not define generate_terrain.
func (e *Engine) GenerateTerrain(size int, solid func(x, y int)) (bool, error) {
	fn, ok := e.vm.GetGlobal("generate_terrain").(*lua.LFunction)
	if !ok {
		return false, nil
	}

	n := 0
	e.vm.SetGlobal("set_solid", e.vm.NewFunction(func(L *lua.LState) int {
		x := L.CheckInt(1)
		y := L.CheckInt(2)
		if x < 0 || x >= size {
			L.ArgError(1, fmt.Sprintf("x %d outside 0..%d", x, size-1))
		}
		if y < 0 || y >= size {
			L.ArgError(2, fmt.Sprintf("y %d outside 0..%d", y, size-1))
		}
		solid(x, y)
		n++
		return 0
	}))
	defer e.vm.SetGlobal("set_solid", lua.LNil)

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, lua.LNumber(size)); err != nil {
		return true, fmt.Errorf("generate_terrain: %w", err)
	}
	e.log.Debug("terrain generated by script", zap.Int("solid", n))
	return true, nil
}

// SpawnPoint calls zorb_spawn(), which returns a table {x = ..., y = ...}.
// It reports false when the function is missing or returns something else.
func (e *Engine) SpawnPoint() (x, y float64, ok bool) {
	fn := e.vm.GetGlobal("zorb_spawn")
	if fn == lua.LNil {
		return 0, 0, false
	}

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}); err != nil {
		e.log.Error("lua zorb_spawn error", zap.Error(err))
		return 0, 0, false
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	rt, isTable := result.(*lua.LTable)
	if !isTable {
		e.log.Error("lua zorb_spawn returned non-table")
		return 0, 0, false
	}
	lx, okX := rt.RawGetString("x").(lua.LNumber)
	ly, okY := rt.RawGetString("y").(lua.LNumber)
	if !okX || !okY {
		e.log.Error("lua zorb_spawn returned a table without numeric x and y")
		return 0, 0, false
	}
	return float64(lx), float64(ly), true
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
