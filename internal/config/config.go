// Package config loads application settings. Song definitions live in their
// own file (see songfile); this covers paths and logging.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	MusicDir  string `koanf:"music_dir"`  // directory song filenames resolve against
	SongsFile string `koanf:"songs_file"` // path to the [[song]] TOML file
	LogFile   string `koanf:"log_file"`   // empty disables file logging
	Debug     bool   `koanf:"debug"`
}

// Load reads config files in priority order (last wins) and applies
// defaults. Missing files are fine; defaults cover everything.
func Load() (*Config, error) {
	k := koanf.New(".")

	for _, path := range configPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		MusicDir:  "music",
		SongsFile: filepath.Join(xdg.ConfigHome, "cuepad", "songs.toml"),
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.MusicDir = expandPath(cfg.MusicDir)
	cfg.SongsFile = expandPath(cfg.SongsFile)
	cfg.LogFile = expandPath(cfg.LogFile)

	return cfg, nil
}

func configPaths() []string {
	return []string{
		// 1. ~/.config/cuepad/config.toml
		filepath.Join(xdg.ConfigHome, "cuepad", "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
