package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"themed-todo/internal/theme"
)

const (
	// DefaultPath is read when THEMED_TODO_CONFIG is unset; it may be absent
	DefaultPath = "themed-todo.toml"
	// PathEnv names an explicit config file, which must exist
	PathEnv = "THEMED_TODO_CONFIG"

	MinWindowWidth  = 400
	MinWindowHeight = 500
)

// Config holds the user-tunable settings
type Config struct {
	AssetsDir    string `toml:"assets_dir"`
	InitialTheme string `toml:"theme"`
	Placeholder  string `toml:"placeholder"`
	WindowWidth  int    `toml:"window_width"`
	WindowHeight int    `toml:"window_height"`
	LogLevel     string `toml:"log_level"`
	LogFile      string `toml:"log_file"`
	WatchAssets  bool   `toml:"watch_assets"`
}

// Default returns the settings used when no file is present
func Default() Config {
	return Config{
		AssetsDir:    "assets",
		InitialTheme: "light",
		Placeholder:  "Write a task...",
		WindowWidth:  520,
		WindowHeight: 570,
		LogLevel:     "info",
		WatchAssets:  true,
	}
}

// Load reads the config file named by THEMED_TODO_CONFIG, or DefaultPath when
// that variable is unset. LOG_LEVEL and DEBUG=1 override the file's log level.
func Load() (Config, error) {
	path, explicit := os.LookupEnv(PathEnv)
	if !explicit {
		path = DefaultPath
	}

	cfg, err := LoadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			cfg = Default()
		} else {
			return Config{}, err
		}
	}

	cfg.applyEnv()
	return cfg, cfg.Validate()
}

// LoadFile decodes path over the defaults
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	switch level := os.Getenv("LOG_LEVEL"); {
	case level != "":
		c.LogLevel = level
	case os.Getenv("DEBUG") == "1":
		c.LogLevel = "debug"
	}
}

// Validate rejects values the application cannot start with
func (c Config) Validate() error {
	if _, err := theme.ParseTheme(c.InitialTheme); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.AssetsDir == "" {
		return errors.New("invalid config: assets_dir is empty")
	}
	if c.WindowWidth < MinWindowWidth || c.WindowHeight < MinWindowHeight {
		return fmt.Errorf("invalid config: window %dx%d is smaller than %dx%d",
			c.WindowWidth, c.WindowHeight, MinWindowWidth, MinWindowHeight)
	}
	return nil
}

// Theme returns the parsed initial theme
func (c Config) Theme() theme.Theme {
	t, _ := theme.ParseTheme(c.InitialTheme)
	return t
}
