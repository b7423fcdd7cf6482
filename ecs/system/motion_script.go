package system

import (
	"fmt"
	"log/slog"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/solarsystem/ecs/component"
	"github.com/milk9111/solarsystem/prefabs"
)

// MotionScripts compiles and caches tengo scripts that compute a per-frame
// rotation increment. A script sees frame, base and speed and must assign
// delta.
type MotionScripts struct {
	cache map[string]*tengo.Compiled
}

func NewMotionScripts() *MotionScripts {
	return &MotionScripts{cache: map[string]*tengo.Compiled{}}
}

// Delta runs the script at path and returns its delta.
func (m *MotionScripts) Delta(path string, frame uint64, base, speed float64) (float64, error) {
	compiled, err := m.compiled(path)
	if err != nil {
		return 0, err
	}
	if err := compiled.Set("frame", int64(frame)); err != nil {
		return 0, err
	}
	if err := compiled.Set("base", base); err != nil {
		return 0, err
	}
	if err := compiled.Set("speed", speed); err != nil {
		return 0, err
	}
	if err := compiled.Run(); err != nil {
		return 0, fmt.Errorf("motion script %s: %w", path, err)
	}
	return compiled.Get("delta").Float(), nil
}

// Invalidate drops a cached script so the next call recompiles it. Any
// spelling of the path that LoadScript accepts works.
func (m *MotionScripts) Invalidate(path string) {
	delete(m.cache, prefabs.ScriptKey(path))
}

func (m *MotionScripts) compiled(path string) (*tengo.Compiled, error) {
	key := prefabs.ScriptKey(path)
	if c, ok := m.cache[key]; ok {
		return c, nil
	}
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("motion script %s: %w", path, err)
	}

	script := tengo.NewScript(src)
	_ = script.Add("frame", 0)
	_ = script.Add("base", 0.0)
	_ = script.Add("speed", 0.0)
	_ = script.Add("delta", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("motion script %s: compile: %w", path, err)
	}
	m.cache[key] = compiled
	return compiled, nil
}

// increment returns the scripted delta, or fallback when the script is
// missing or broken. Failures are logged once per script component.
func (m *MotionScripts) increment(script *component.MotionScript, frame uint64, base, speed, fallback float64) float64 {
	if m == nil || script == nil || script.Failed {
		return fallback
	}
	delta, err := m.Delta(script.Path, frame, base, speed)
	if err != nil {
		script.Failed = true
		slog.Error("motion script disabled", "path", script.Path, "err", err)
		return fallback
	}
	return delta
}
