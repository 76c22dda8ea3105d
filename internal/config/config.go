package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	AppDirName            = "tasktrack"
	EnvConfigPath         = "TASKTRACK_CONFIG"
)

const (
	ViewAll        = "all"
	ViewIncomplete = "incomplete"
)

type Keymap struct {
	Quit       string `toml:"quit"`
	Add        string `toml:"add"`
	Lookup     string `toml:"lookup"`
	Complete   string `toml:"complete"`
	All        string `toml:"all"`
	Incomplete string `toml:"incomplete"`
	Last       string `toml:"last"`
	Confirm    string `toml:"confirm"`
	Cancel     string `toml:"cancel"`
	NextField  string `toml:"next_field"`
}

type Config struct {
	LogLevel    string `toml:"log_level"`
	LogFile     string `toml:"log_file"`
	DefaultView string `toml:"default_view"`
	Keys        Keymap `toml:"keys"`
}

// ResolveConfigPath picks the config file location: an explicit override,
// then $TASKTRACK_CONFIG, then the user config directory.
func ResolveConfigPath(override string) string {
	if override != "" {
		return override
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, AppDirName, DefaultConfigFileName)
}

// LoadOrCreate reads the config at path, writing the defaults there first
// if the file does not exist yet. Keys missing from the file keep their defaults.
func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, fmt.Errorf("write default config: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.DefaultView != ViewIncomplete {
		cfg.DefaultView = ViewAll
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func Default() Config {
	return Config{
		LogLevel:    "info",
		LogFile:     "",
		DefaultView: ViewAll,
		Keys: Keymap{
			Quit:       "q",
			Add:        "a",
			Lookup:     "g",
			Complete:   "c",
			All:        "l",
			Incomplete: "i",
			Last:       "h",
			Confirm:    "enter",
			Cancel:     "esc",
			NextField:  "tab",
		},
	}
}
