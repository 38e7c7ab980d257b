package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"compound2d/internal/commands"
	"compound2d/internal/engineconfig"
	"compound2d/internal/env"
	"compound2d/internal/graphics"
	"compound2d/internal/logger"
	"compound2d/internal/physics"
	"compound2d/internal/scene"
)

func main() {
	if err := env.Load(env.DefaultPath); err != nil {
		fmt.Fprintf(os.Stderr, "compound2d: %v\n", err)
		os.Exit(1)
	}
	configPath := env.Get(env.ConfigVar, engineconfig.DefaultPath)

	reg := commands.NewRegistry()
	reg.Default = "run"

	var runConfig string
	runFlags := flag.NewFlagSet("run", flag.ContinueOnError)
	runFlags.StringVar(&runConfig, "config", configPath, "engine config file (YAML)")
	reg.Register("run", "open a window and simulate the compound scene", runFlags, func() error {
		return run(runConfig)
	})

	var inspectConfig string
	var steps int
	inspectFlags := flag.NewFlagSet("inspect", flag.ContinueOnError)
	inspectFlags.StringVar(&inspectConfig, "config", configPath, "engine config file (YAML)")
	inspectFlags.IntVar(&steps, "steps", 0, "number of fixed steps to simulate before reporting")
	reg.Register("inspect", "build the scene headless and log a summary", inspectFlags, func() error {
		return inspect(inspectConfig, steps)
	})

	if err := reg.Execute(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "Commands:")
			reg.Usage(os.Stderr)
			return
		}
		fmt.Fprintf(os.Stderr, "compound2d: %v\n", err)
		os.Exit(1)
	}
}

// run opens the window and simulates until it is closed.
func run(configPath string) error {
	prefs, err := engineconfig.Load(configPath)
	if err != nil {
		return err
	}
	log := newLogger(prefs)

	err = graphics.Simulate(func(r *graphics.Renderer) (*physics.World, error) {
		world, err := scene.Build(r)
		if err != nil {
			return nil, err
		}
		logSummary(log, world)
		return world, nil
	}, optionsFrom(prefs))
	if err != nil {
		log.Logf("scene construction failed: %v", err)
		return err
	}
	return nil
}

// inspect builds the scene without a window, optionally steps it, and logs the result.
func inspect(configPath string, steps int) error {
	prefs, err := engineconfig.Load(configPath)
	if err != nil {
		return err
	}
	log := newLogger(prefs)

	rec := &scene.Recorder{}
	world, err := scene.Build(rec)
	if err != nil {
		log.Logf("scene construction failed: %v", err)
		return err
	}
	world.SetIterations(prefs.Iterations)
	logSummary(log, world)
	log.Logf("renderer registrations: %d", len(rec.Bodies))

	for i := 0; i < steps; i++ {
		world.Step(prefs.TimeStep)
	}
	if steps > 0 {
		logMotion(log, world)
	}
	return nil
}

func newLogger(prefs engineconfig.EnginePrefs) *logger.Logger {
	log := logger.New(env.Get(env.LogPathVar, prefs.LogPath))
	log.Echo = os.Stderr
	return log
}

func optionsFrom(p engineconfig.EnginePrefs) graphics.Options {
	return graphics.Options{
		Width:         p.WindowWidth,
		Height:        p.WindowHeight,
		Title:         p.WindowTitle,
		Fullscreen:    p.Fullscreen,
		TargetFPS:     p.TargetFPS,
		TimeStep:      p.TimeStep,
		Iterations:    p.Iterations,
		Zoom:          p.Zoom,
		ShowFPS:       p.ShowFPS,
		ShowBodyCount: p.ShowBodyCount,
	}
}
