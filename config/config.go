// Package config loads the optional lab.yaml settings file shared by the
// demos. Every field has a default, so running without a file reproduces
// the stock lab setup.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvPath overrides the config file location.
const EnvPath = "LAB_CONFIG"

// DefaultPath is read from the working directory when EnvPath is unset.
const DefaultPath = "lab.yaml"

// Window is fixed-size for the lifetime of a demo.
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

type Assets struct {
	Root       string `yaml:"root"`
	ShaderDir  string `yaml:"shader_dir"`
	Material   string `yaml:"material"`
	TextureExt string `yaml:"texture_ext"`
}

type Controls struct {
	MoveSpeed       float32 `yaml:"move_speed"`       // world units per millisecond
	LookSensitivity float32 `yaml:"look_sensitivity"` // degrees per pixel per millisecond
	RabbitSpeed     float32 `yaml:"rabbit_speed"`     // clip units per millisecond
}

// Demo holds the settings of one demo program.
type Demo struct {
	Window Window `yaml:"window"`
}

type Config struct {
	LogLevel    string   `yaml:"log_level"`
	HotReload   bool     `yaml:"hot_reload"`
	FrameTimeMs float32  `yaml:"frame_time_ms"` // seed until the first fps window closes
	Assets      Assets   `yaml:"assets"`
	Controls    Controls `yaml:"controls"`
	Rabbit      Demo     `yaml:"rabbit"`
	Crate       Demo     `yaml:"crate"`
}

// Default returns the stock lab configuration.
func Default() Config {
	return Config{
		LogLevel:    "info",
		FrameTimeMs: 1000.0 / 60.0,
		Assets: Assets{
			Root:       "assets",
			ShaderDir:  "shaders",
			Material:   "gfx/crate",
			TextureExt: "png",
		},
		Controls: Controls{
			MoveSpeed:       0.0025,
			LookSensitivity: 0.05,
			RabbitSpeed:     0.001,
		},
		Rabbit: Demo{Window: Window{Width: 1000, Height: 1000, Title: "Rabbit", VSync: true}},
		Crate:  Demo{Window: Window{Width: 1280, Height: 800, Title: "Crate", VSync: true}},
	}
}

// Load reads path over the defaults. A missing file is not an error;
// unknown keys are.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads from $LAB_CONFIG or ./lab.yaml.
func LoadDefault() (Config, error) {
	path := os.Getenv(EnvPath)
	if path == "" {
		path = DefaultPath
	}
	return Load(path)
}

func (c Config) Validate() error {
	for name, w := range map[string]Window{"rabbit": c.Rabbit.Window, "crate": c.Crate.Window} {
		if w.Width <= 0 || w.Height <= 0 {
			return fmt.Errorf("%s window size %dx%d must be positive", name, w.Width, w.Height)
		}
	}
	if c.FrameTimeMs < 0 {
		return fmt.Errorf("frame_time_ms must not be negative")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}
	return l, nil
}

// ShaderPath resolves a shader source file for program dir.
func (c Config) ShaderPath(dir, file string) string {
	return filepath.Join(c.Assets.Root, c.Assets.ShaderDir, dir, file)
}

// MaterialBase resolves the material base path, without suffix or extension.
func (c Config) MaterialBase() string {
	return filepath.Join(c.Assets.Root, filepath.FromSlash(c.Assets.Material))
}

// NewLogger builds the text logger used by both demos.
func (c Config) NewLogger() *slog.Logger {
	level, err := c.Level()
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
