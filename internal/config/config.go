package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultScene  = "page"
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultFrames = 120
	DefaultFPS    = 60
	DefaultScale  = 1.0 // Braille dots per surface pixel in the terminal

	MaxFPS = 1_000_000_000 // one frame per nanosecond
)

var (
	ErrInvalid       = errors.New("config: invalid value")
	ErrUnknownPreset = errors.New("config: unknown preset")
)

type Config struct {
	Scene    string  `yaml:"scene"`
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Frames   int     `yaml:"frames"`
	FPS      int     `yaml:"fps"`
	Seed     int64   `yaml:"seed"`
	Scale    float64 `yaml:"scale"`
	Output   string  `yaml:"output"`
	Theme    string  `yaml:"theme"`
	LogLevel string  `yaml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Scene:    DefaultScene,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Frames:   DefaultFrames,
		FPS:      DefaultFPS,
		Scale:    DefaultScale,
		Theme:    "violet",
		LogLevel: "info",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height)
	case c.Frames < 0:
		return fmt.Errorf("%w: frames %d", ErrInvalid, c.Frames)
	case c.FPS < 0 || c.FPS > MaxFPS:
		return fmt.Errorf("%w: fps %d", ErrInvalid, c.FPS)
	case c.Scale <= 0:
		return fmt.Errorf("%w: scale %v", ErrInvalid, c.Scale)
	}
	return nil
}
