// Package stsettings resolves the user settings directory and loads the
// optional YAML configuration file kept there.
package stsettings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/filetug/sizetug/pkg/dirsize"
	"github.com/filetug/sizetug/pkg/fsutils"
)

const UserDir = "~/.sizetug"

const ConfigFileName = "config.yaml"

var osUserHomeDir = os.UserHomeDir

var readYAML = fsutils.ReadYAMLFile

func GetUserDir() (string, error) {
	userHomeDir, err := osUserHomeDir()
	if err != nil {
		return UserDir, err
	}
	return filepath.Join(userHomeDir, UserDir[2:]), nil
}

// DefaultConfigPath returns the config file location inside the user dir.
func DefaultConfigPath() (string, error) {
	dir, err := GetUserDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// SortConfig is the initial ordering applied after each scan.
type SortConfig struct {
	Key       string `yaml:"key,omitempty"`
	Direction string `yaml:"direction,omitempty"`
}

type Config struct {
	Sort         SortConfig `yaml:"sort,omitempty"`
	HideDotfiles bool       `yaml:"hide_dotfiles,omitempty"`
	// OpenCommand replaces the platform file-manager command; "{path}" marks
	// where the path goes, otherwise it is appended.
	OpenCommand []string `yaml:"open_command,omitempty"`
}

// SortState converts the configured sort into a dirsize.SortState.
func (c Config) SortState() (dirsize.SortState, error) {
	key, err := dirsize.ParseSortKey(c.Sort.Key)
	if err != nil {
		return dirsize.SortState{}, err
	}
	state := dirsize.SortState{Key: key}
	switch strings.ToLower(c.Sort.Direction) {
	case "", "desc", "descending":
		state.Direction = dirsize.Descending
	case "asc", "ascending":
		state.Direction = dirsize.Ascending
	default:
		return dirsize.SortState{}, fmt.Errorf("unknown sort direction %q: must be asc or desc", c.Sort.Direction)
	}
	return state, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	_, err := c.SortState()
	return err
}

// LoadConfig reads the config at path. A missing file yields the zero Config
// unless required is set.
func LoadConfig(path string, required bool) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	if err := readYAML(fsutils.ExpandHome(path), required, &cfg); err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}
