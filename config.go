package diablo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"
)

// Config is the game's startup configuration.
type Config struct {
	Seed          int64  `yaml:"seed"`
	WindowW       int    `yaml:"window_w"`
	WindowH       int    `yaml:"window_h"`
	Title         string `yaml:"title"`
	SpriteDir     string `yaml:"sprite_dir"`
	ScreenshotDir string `yaml:"screenshot_dir"`
	Debug         bool   `yaml:"debug"`
}

// DefaultConfig is the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Seed:          12345,
		WindowW:       1280,
		WindowH:       720,
		Title:         "Diablo Clone",
		SpriteDir:     "assets/sprites",
		ScreenshotDir: ".",
	}
}

// LoadConfig reads a YAML config file. A missing file yields the
// defaults; fields present in the file override them individually.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("diablo: read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("diablo: parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.WindowW <= 0 || c.WindowH <= 0 {
		return fmt.Errorf("diablo: window size %dx%d must be positive", c.WindowW, c.WindowH)
	}
	if c.Title == "" {
		return fmt.Errorf("diablo: window title must not be empty")
	}
	return nil
}
