package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/solarsystem/common"
	"github.com/milk9111/solarsystem/ecs"
	"github.com/milk9111/solarsystem/ecs/entity"
	"github.com/milk9111/solarsystem/ecs/system"
	"github.com/milk9111/solarsystem/prefabs"
)

type Options struct {
	Debug bool
	Watch bool
}

type Game struct {
	world     *ecs.World
	scene     *entity.SolarSystem
	scheduler *ecs.Scheduler
	render    *system.RenderSystem
	cameras   *system.CameraControlSystem
	controls  *ControlsUI
	watcher   *prefabs.Watcher
}

// newScene loads the catalogue and builds the world and its update systems.
// The returned watcher is nil unless watch is set.
func newScene(watch bool, input *system.InputSystem) (*ecs.World, *entity.SolarSystem, *ecs.Scheduler, *system.CameraControlSystem, *prefabs.Watcher, error) {
	spec, err := prefabs.LoadSolarSystemSpec()
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}

	w := ecs.NewWorld()
	scene, err := entity.BuildSolarSystem(w, spec)
	if err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("build scene: %w", err)
	}

	var watcher *prefabs.Watcher
	var changes system.ChangeSource
	if watch {
		watcher, err = prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			slog.Warn("hot reload disabled", "dir", prefabs.Dir, "err", err)
			watcher = nil
		} else {
			changes = watcher
			slog.Info("watching catalogue", "dir", prefabs.Dir)
		}
	}

	scripts := system.NewMotionScripts()
	cameras := system.NewCameraControlSystem()
	scheduler := ecs.NewScheduler()
	if input != nil {
		scheduler.Add(input)
	}
	if changes != nil {
		scheduler.Add(system.NewReloadSystem(changes, scripts))
	}
	scheduler.Add(cameras)
	scheduler.Add(system.NewSpinSystem(scripts))
	scheduler.Add(system.NewOrbitSystem(scripts))
	scheduler.Add(system.NewTransformSystem())
	if input != nil {
		scheduler.Add(system.NewCameraPoseSystem())
	}
	scheduler.Add(system.NewClockSystem())

	return w, scene, scheduler, cameras, watcher, nil
}

func NewGame(opts Options) (*Game, error) {
	input := system.NewInputSystem()
	w, scene, scheduler, cameras, watcher, err := newScene(opts.Watch, input)
	if err != nil {
		return nil, err
	}

	controls, err := NewControlsUI(w, scene)
	if err != nil {
		if watcher != nil {
			_ = watcher.Close()
		}
		return nil, err
	}
	input.Blocked = controls.Contains

	render := system.NewRenderSystem()
	render.Debug = opts.Debug

	return &Game{
		world:     w,
		scene:     scene,
		scheduler: scheduler,
		render:    render,
		cameras:   cameras,
		controls:  controls,
		watcher:   watcher,
	}, nil
}

func (g *Game) Update() error {
	g.controls.UI.Update()
	g.scheduler.Update(g.world)

	for _, evt := range g.world.Events().Drain() {
		switch evt.Type {
		case ecs.EventSpecReloaded:
			g.controls.Sync()
		case ecs.EventCameraFocus:
			slog.Debug("camera focus requested", "body", evt.Data)
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	g.controls.UI.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return common.BaseWidth, common.BaseHeight
	}
	g.cameras.ScreenHeight = float64(outsideHeight)
	return outsideWidth, outsideHeight
}

// Close stops the catalogue watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
