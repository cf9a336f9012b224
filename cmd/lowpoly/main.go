package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/Versifine/lowpoly/internal/config"
	"github.com/Versifine/lowpoly/internal/debug"
	"github.com/Versifine/lowpoly/internal/logger"
	"github.com/Versifine/lowpoly/internal/sim"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the scene config")
	headless := flag.Bool("headless", false, "run a scripted session without the terminal console")
	frames := flag.Int("frames", 600, "frames to simulate in headless mode")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "path", *configPath, "error", err)
		os.Exit(1)
	}
	logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	})
	defer logger.Close()

	scene, err := sim.NewScene(cfg)
	if err != nil {
		slog.Error("Failed to build scene", "error", err)
		logger.Close()
		os.Exit(1)
	}
	driver := sim.NewDriver(scene)
	driver.Initialize()

	if *headless {
		runHeadless(driver, cfg, *frames)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	console := debug.NewConsole(driver)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return driver.Run(ctx, console)
	})
	g.Go(func() error {
		defer stop()
		return console.Start(ctx)
	})
	if err := g.Wait(); err != nil {
		slog.Error("Session ended with error", "error", err)
		logger.Close()
		os.Exit(1)
	}
}

func runHeadless(driver *sim.Driver, cfg *config.Config, frames int) {
	script := newScript()
	for i := 0; i < frames; i++ {
		driver.Advance(cfg.Simulation.FrameInterval, script.Intent())
	}
	s := driver.Snapshot()
	slog.Info("Headless session finished",
		"frames", s.Frame,
		"sim_time", s.Time,
		"weapon", s.Weapon,
		"ammo", s.Ammo,
		"position", s.Position,
		"grounded", s.Grounded,
		"wave", s.Wave,
	)
}
