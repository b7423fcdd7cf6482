package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/milk9111/solarsystem/ecs"
	"github.com/milk9111/solarsystem/ecs/component"
)

type HeadlessConfig struct {
	Hz    int
	Ticks uint64
	Watch bool
}

// RunHeadless advances the scene on a ticker without a window and logs the
// body angles once a second. It returns nil after cfg.Ticks updates, or the
// context error when cancelled first.
func RunHeadless(ctx context.Context, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	w, _, scheduler, _, watcher, err := newScene(cfg.Watch, nil)
	if err != nil {
		return err
	}
	if watcher != nil {
		defer watcher.Close()
	}

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			scheduler.Update(w)
			w.Events().Drain()
			tick++
			if tick%uint64(cfg.Hz) == 0 {
				logAngles(w, tick)
			}
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				logAngles(w, tick)
				return nil
			}
		}
	}
}

func logAngles(w *ecs.World, tick uint64) {
	attrs := []any{"tick", tick}
	ecs.ForEach2(w, component.BodyComponent.Kind(), component.SpinComponent.Kind(), func(_ ecs.Entity, body *component.Body, spin *component.Spin) {
		attrs = append(attrs, body.Name+".spin", fmt.Sprintf("%.4f", spin.Angle))
	})
	ecs.ForEach2(w, component.PivotComponent.Kind(), component.OrbitComponent.Kind(), func(_ ecs.Entity, pivot *component.Pivot, orbit *component.Orbit) {
		attrs = append(attrs, pivot.BodyName+".orbit", fmt.Sprintf("%.4f", orbit.Angle))
	})
	slog.Info("headless", attrs...)
}
