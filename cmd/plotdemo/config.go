package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/plot/backend"
)

// Config describes one demo run.
type Config struct {
	Scene    string   `toml:"scene"`
	Width    int      `toml:"width"`
	Height   int      `toml:"height"`
	LogLevel string   `toml:"log_level"`
	Outputs  []Output `toml:"output"`

	Normal NormalConfig `toml:"normal"`
}

// Output names a registered backend and the file it writes.
type Output struct {
	Backend string `toml:"backend"`
	Path    string `toml:"path"`
}

// NormalConfig tunes the normal-dist scene.
type NormalConfig struct {
	StdDev  float64 `toml:"sd"`
	Samples int     `toml:"samples"`
	Seed    uint64  `toml:"seed"`
}

func defaultConfig() Config {
	return Config{
		Scene:    sceneTwoScales,
		Width:    1024,
		Height:   768,
		LogLevel: "info",
		Outputs:  []Output{{Backend: "raster", Path: "plot.png"}},
		Normal:   NormalConfig{StdDev: 0.6, Samples: 5000, Seed: 1},
	}
}

// loadConfig decodes a TOML file over the defaults. Unknown keys are
// rejected.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("plotdemo: read config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("plotdemo: unknown config keys: %v", undecoded)
	}
	return cfg, nil
}

// parseConfig is loadConfig for in-memory TOML.
func parseConfig(data string) (Config, error) {
	cfg := defaultConfig()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("plotdemo: parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("plotdemo: unknown config keys: %v", undecoded)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if _, ok := scenes[c.Scene]; !ok {
		return fmt.Errorf("plotdemo: unknown scene %q", c.Scene)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("plotdemo: invalid size %dx%d", c.Width, c.Height)
	}
	if len(c.Outputs) == 0 {
		return fmt.Errorf("plotdemo: no output configured")
	}
	for _, o := range c.Outputs {
		if !backend.IsRegistered(o.Backend) {
			return fmt.Errorf("plotdemo: unknown backend %q (have %s)", o.Backend, strings.Join(backend.Backends(), ", "))
		}
		if o.Path == "" {
			return fmt.Errorf("plotdemo: output for backend %q has no path", o.Backend)
		}
	}
	if c.Normal.StdDev <= 0 || c.Normal.Samples <= 0 {
		return fmt.Errorf("plotdemo: normal scene needs positive sd and samples")
	}
	_, err := c.level()
	return err
}

func (c Config) level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, fmt.Errorf("plotdemo: log level: %w", err)
	}
	return l, nil
}
