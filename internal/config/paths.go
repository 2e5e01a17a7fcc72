package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// EnvConfigPath overrides the config file location when set.
const EnvConfigPath = "TMENU_CONFIG"

// Dir returns the tmenu config directory under the user config base.
// On Linux, this typically resolves to $XDG_CONFIG_HOME/tmenu; on macOS
// to ~/Library/Application Support/tmenu; and on Windows to %AppData%/tmenu.
// Falls back to HOME when UserConfigDir is unavailable.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = home
		} else {
			return "", errors.New("cannot determine config directory")
		}
	}
	return filepath.Join(base, "tmenu"), nil
}

// Path returns the config file path, honoring TMENU_CONFIG.
func Path() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
