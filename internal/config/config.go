// Package config loads horizons.yaml.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Calculator5329/infinite-horizons/internal/texture"
)

// FileName is the default config file name.
const FileName = "horizons.yaml"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	SaveRoot         string `yaml:"save_root"`
	PlanetCount      int    `yaml:"planet_count"`
	StarFieldRange   int    `yaml:"star_field_range"`
	PlanetResolution int    `yaml:"planet_resolution"`
	Workers          int    `yaml:"workers"` // 0 means one per CPU
	BackupsKept      int    `yaml:"backups_kept"`
	Window           Window `yaml:"window"`
}

type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		SaveRoot:         "saves",
		PlanetCount:      20,
		StarFieldRange:   5000,
		PlanetResolution: 256,
		BackupsKept:      5,
		Window:           Window{Width: 1280, Height: 720},
	}
}

// Load overlays the YAML file at path onto Default. A missing file is not
// an error.
func Load(path string) (Config, error) {
	c := Default()
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	switch {
	case c.SaveRoot == "":
		return fmt.Errorf("%w: save_root is empty", ErrInvalid)
	case c.PlanetCount < 1:
		return fmt.Errorf("%w: planet_count %d < 1", ErrInvalid, c.PlanetCount)
	case c.StarFieldRange < 1:
		return fmt.Errorf("%w: star_field_range %d < 1", ErrInvalid, c.StarFieldRange)
	case c.PlanetResolution < texture.MinResolution || c.PlanetResolution > texture.MaxResolution:
		return fmt.Errorf("%w: planet_resolution %d outside [%d, %d]", ErrInvalid,
			c.PlanetResolution, texture.MinResolution, texture.MaxResolution)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d < 0", ErrInvalid, c.Workers)
	case c.BackupsKept < 0:
		return fmt.Errorf("%w: backups_kept %d < 0", ErrInvalid, c.BackupsKept)
	case c.Window.Width < 320 || c.Window.Height < 240:
		return fmt.Errorf("%w: window %dx%d smaller than 320x240", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	return nil
}
