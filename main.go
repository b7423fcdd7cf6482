package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/solarsystem/assets"
	"github.com/milk9111/solarsystem/common"
	"github.com/milk9111/solarsystem/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging and the frame overlay")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	assetsDir := flag.String("assets", "assets/textures", "directory searched for textures before the embedded ones")
	prefabsDir := flag.String("prefabs", prefabs.Dir, "directory searched for the catalogue and scripts before the embedded ones")
	watch := flag.Bool("watch", false, "reload the catalogue and motion scripts when they change on disk")
	var headless HeadlessConfig
	headlessMode := flag.Bool("headless", false, "run without a window")
	flag.IntVar(&headless.Hz, "hz", 60, "tick rate in headless mode")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "stop after N ticks in headless mode (0 = run forever)")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	assets.Dir = *assetsDir
	prefabs.Dir = *prefabsDir

	if *headlessMode {
		headless.Watch = *watch
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := RunHeadless(ctx, headless); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			slog.Error("headless run failed", "err", err)
			os.Exit(1)
		}
		return
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("solar system")

	game, err := NewGame(Options{Debug: *debug, Watch: *watch})
	if err != nil {
		slog.Error("setup failed", "err", err)
		os.Exit(1)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		slog.Error("run failed", "err", err)
		os.Exit(1)
	}
}
