package config

import (
	"fmt"
	"sort"
)

var Presets = map[string]*Config{
	"hero": {
		Scene: "page", Width: 1920, Height: 1080, Frames: 600, FPS: 60, Scale: 1.0,
	},
	"card": {
		Scene: "interactive", Width: 400, Height: 400, Frames: 240, FPS: 60, Scale: 1.0,
	},
	"thumbnail": {
		Scene: "background", Width: 320, Height: 180, Frames: 1, FPS: 0, Scale: 1.0,
	},
	"terminal": {
		Scene: "interactive", Width: 160, Height: 96, Frames: 0, FPS: 30, Scale: 0.5,
	},
}

// GetPreset returns a copy of the named preset with unset fields taken
// from DefaultConfig.
func GetPreset(name string) (*Config, error) {
	p, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	cfg := DefaultConfig()
	cfg.Scene = p.Scene
	cfg.Width, cfg.Height = p.Width, p.Height
	cfg.Frames, cfg.FPS = p.Frames, p.FPS
	cfg.Scale = p.Scale
	return cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
