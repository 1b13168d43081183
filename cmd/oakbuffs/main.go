// Command oakbuffs replays a scripted play session against the modifier
// engine using the in-memory game, logging every HUD message and the final
// engine state. Useful for tuning options without launching the game.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/udisondev/oakbuffs/internal/config"
)

const DefaultSettingsPath = "config/oakbuffs.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, os.Args[1:]); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("oakbuffs", flag.ContinueOnError)
	settingsPath := fs.String("settings", DefaultSettingsPath, "settings YAML file")
	scenarioPath := fs.String("scenario", "", "scenario YAML file (built-in demo when empty)")
	seed := fs.Uint64("seed", 1, "drop roll seed")
	tick := fs.Float64("tick", 0.5, "world seconds between ticks")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if p := os.Getenv("OAKBUFFS_SETTINGS"); p != "" {
		*settingsPath = p
	}
	settings, err := config.Load(*settingsPath)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(settings.LogLevel),
	})))

	sc, err := loadScenario(*scenarioPath)
	if err != nil {
		return fmt.Errorf("loading scenario: %w", err)
	}
	slog.Info("oakbuffs replay starting",
		"scenario", sc.Name,
		"steps", len(sc.Steps),
		"tick", *tick,
		"seed", *seed)

	snap, err := replay(ctx, sc, settings, replayOptions{Seed: *seed, Tick: *tick})
	if err != nil {
		return err
	}

	slog.Info("final state",
		"time", snap.Now,
		"map", snap.MapID,
		"stacks", snap.Stacks,
		"multiplier", snap.Multiplier,
		"anchors", len(snap.Anchors),
		"buffs", len(snap.Buffs),
		"grant", snap.Grant,
		"baselines", snap.Baselines)
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
