package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

// Settings are per-user launch options. Command-line flags override them.
type Settings struct {
	Window  Window  `toml:"window"`
	Log     Log     `toml:"log"`
	Arena   Arena   `toml:"arena"`
	Service Service `toml:"service"`
}

type Window struct {
	Title       string `toml:"title"`
	Width       int    `toml:"width"`
	Height      int    `toml:"height"`
	BaseMonitor bool   `toml:"base_monitor"`
}

type Log struct {
	Level string `toml:"level"`
	Debug bool   `toml:"debug"`
}

type Arena struct {
	File  string `toml:"file"`
	Watch bool   `toml:"watch"`
}

type Service struct {
	StatsAddr string `toml:"stats_addr"`
	SentryDSN string `toml:"sentry_dsn"`
}

// Default returns the settings used when no file exists. A zero window size
// means the size of the monitor.
func Default() Settings {
	return Settings{
		Window: Window{Title: "duojump"},
		Log:    Log{Level: "info"},
		Arena:  Arena{File: "arena.yaml"},
	}
}

// DefaultPath is ~/.config/duojump/settings.toml, or the platform's
// equivalent user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("settings: config dir: %w", err)
	}
	return filepath.Join(dir, "duojump", "settings.toml"), nil
}

// Load reads path on top of Default. A missing file is not an error.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("settings: load %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return s, fmt.Errorf("settings: load %s: unknown keys %v", path, undecoded)
	}
	if _, err := logrus.ParseLevel(s.Log.Level); err != nil {
		return s, fmt.Errorf("settings: load %s: %w", path, err)
	}
	if s.Window.Width < 0 || s.Window.Height < 0 {
		return s, fmt.Errorf("settings: load %s: negative window size", path)
	}
	return s, nil
}

// Level parses the configured log level, falling back to info.
func (s Settings) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(s.Log.Level)
	if err != nil {
		return logrus.InfoLevel
	}
	if s.Log.Debug && lvl < logrus.DebugLevel {
		return logrus.DebugLevel
	}
	return lvl
}
