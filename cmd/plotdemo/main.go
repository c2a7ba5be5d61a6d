// Command plotdemo renders the demo charts to one or more outputs.
//
// A scene is drawn once onto a recording backend and then replayed onto
// every configured output backend:
//
//	plotdemo -scene normal-dist -backend svg -out normal.svg
//	plotdemo -config demo.toml
//
// Example configuration:
//
//	scene = "two-scales"
//	width = 1024
//	height = 768
//	log_level = "debug"
//
//	[[output]]
//	backend = "raster"
//	path = "twoscale.png"
//
//	[[output]]
//	backend = "svg"
//	path = "twoscale.svg"
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/backend"
	_ "github.com/gogpu/plot/backends/draw2d"
	_ "github.com/gogpu/plot/backends/raster"
	_ "github.com/gogpu/plot/backends/svg"
	"github.com/gogpu/plot/recording"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML configuration file")
		sceneName  = flag.String("scene", "", "scene to draw: two-scales or normal-dist")
		width      = flag.Int("width", 0, "image width")
		height     = flag.Int("height", 0, "image height")
		backendArg = flag.String("backend", "", "output backend")
		output     = flag.String("out", "", "output file")
		logLevel   = flag.String("log-level", "", "log level: debug, info, warn or error")
	)
	flag.Parse()

	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = loadConfig(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	cfg = applyFlags(cfg, flagValues{
		scene:    *sceneName,
		width:    *width,
		height:   *height,
		backend:  *backendArg,
		output:   *output,
		logLevel: *logLevel,
	})

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type flagValues struct {
	scene, backend, output, logLevel string
	width, height                    int
}

// applyFlags overrides configuration values with the flags that were set.
// A backend or output flag replaces the configured outputs with one.
func applyFlags(cfg Config, f flagValues) Config {
	if f.scene != "" {
		cfg.Scene = f.scene
	}
	if f.width > 0 {
		cfg.Width = f.width
	}
	if f.height > 0 {
		cfg.Height = f.height
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	if f.backend != "" || f.output != "" {
		out := Output{Backend: "raster", Path: f.output}
		if len(cfg.Outputs) > 0 {
			out = cfg.Outputs[0]
		}
		if f.backend != "" {
			out.Backend = f.backend
		}
		if f.output != "" {
			out.Path = f.output
		}
		cfg.Outputs = []Output{out}
	}
	return cfg
}

func run(cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	level, _ := cfg.level()
	plot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	log := plot.Logger()

	rec := recording.NewRecorder(cfg.Width, cfg.Height)
	if err := scenes[cfg.Scene](rec, cfg); err != nil {
		return fmt.Errorf("plotdemo: draw %s: %w", cfg.Scene, err)
	}
	r := rec.FinishRecording()
	log.Debug("plotdemo: scene recorded", "scene", cfg.Scene, "commands", len(r.Commands()))

	for _, o := range cfg.Outputs {
		if err := render(r, o, cfg.Width, cfg.Height); err != nil {
			return err
		}
		log.Info("plotdemo: wrote output", "backend", o.Backend, "path", o.Path)
	}
	return nil
}

// render replays r onto a fresh backend and writes its output file.
func render(r *recording.Recording, o Output, width, height int) error {
	b, err := backend.New(o.Backend, width, height)
	if err != nil {
		return fmt.Errorf("plotdemo: %w", err)
	}
	out, ok := b.(backend.OutputBackend)
	if !ok {
		return fmt.Errorf("plotdemo: backend %q cannot write files", o.Backend)
	}
	area := plot.IntoDrawingArea(b)
	if err := r.Playback(b); err != nil {
		return fmt.Errorf("plotdemo: replay onto %s: %w", o.Backend, err)
	}
	if err := area.Present(); err != nil {
		return fmt.Errorf("plotdemo: present %s: %w", o.Backend, err)
	}
	if err := out.SaveToFile(o.Path); err != nil {
		return fmt.Errorf("plotdemo: save %s: %w", o.Path, err)
	}
	return nil
}
