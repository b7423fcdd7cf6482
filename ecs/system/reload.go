package system

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/milk9111/solarsystem/ecs"
	"github.com/milk9111/solarsystem/ecs/component"
	"github.com/milk9111/solarsystem/ecs/entity"
	"github.com/milk9111/solarsystem/prefabs"
)

// ChangeSource yields file paths that changed since the last call.
type ChangeSource interface {
	Drain() []string
}

// errorSource is implemented by change sources that can fail, such as
// prefabs.Watcher.
type errorSource interface {
	DrainErrors() []error
}

// ReloadSystem re-reads the catalogue and motion scripts when they change on
// disk. A catalogue that fails to load or validate leaves the scene as is.
type ReloadSystem struct {
	source  ChangeSource
	scripts *MotionScripts
	load    func() (*prefabs.SolarSystemSpec, error)
}

func NewReloadSystem(source ChangeSource, scripts *MotionScripts) *ReloadSystem {
	return &ReloadSystem{
		source:  source,
		scripts: scripts,
		load:    prefabs.LoadSolarSystemSpec,
	}
}

func (r *ReloadSystem) Update(w *ecs.World) {
	if w == nil || r.source == nil {
		return
	}
	if errs, ok := r.source.(errorSource); ok {
		for _, err := range errs.DrainErrors() {
			slog.Warn("reload: watcher error", "err", err)
		}
	}
	paths := r.source.Drain()
	if len(paths) == 0 {
		return
	}

	reloadSpec := false
	for _, path := range paths {
		name := filepath.Base(path)
		switch strings.ToLower(filepath.Ext(name)) {
		case ".tengo":
			r.reloadScript(w, name)
		case ".yaml", ".yml":
			if name == prefabs.SolarSystemFile {
				reloadSpec = true
			}
		}
	}
	if !reloadSpec {
		return
	}

	spec, err := r.load()
	if err != nil {
		slog.Error("reload: keeping previous catalogue", "err", err)
		return
	}
	updated, err := entity.ApplySpec(w, spec)
	if err != nil {
		slog.Error("reload: apply catalogue", "err", err)
		return
	}
	slog.Info("reload: catalogue applied", "updated", updated)
}

func (r *ReloadSystem) reloadScript(w *ecs.World, name string) {
	if r.scripts != nil {
		r.scripts.Invalidate(name)
	}
	ecs.ForEach(w, component.MotionScriptComponent.Kind(), func(_ ecs.Entity, script *component.MotionScript) {
		if filepath.Base(script.Path) == name {
			script.Failed = false
		}
	})
	slog.Info("reload: motion script", "script", name)
}
