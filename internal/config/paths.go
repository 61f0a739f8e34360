package config

import (
	"fmt"
	"os"
	"path/filepath"

	dberrors "git.home.luguber.info/inful/docpress/internal/errors"
)

// DefaultConfigFile is the config file name looked up when none is given.
const DefaultConfigFile = "docpress.yaml"

// ResolveUserConfigPath resolves config against cwd and checks that something
// exists there. An empty cwd means the process working directory. An absolute
// config is returned as is (cleaned).
//
// The existence check is a point-in-time check made at CLI startup; the file
// may still disappear before it is read.
func ResolveUserConfigPath(config, cwd string) (string, error) {
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		cwd = wd
	}

	configPath := config
	if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(cwd, configPath)
	}
	configPath, err := filepath.Abs(configPath)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", config, err)
	}

	if _, err := os.Stat(configPath); err != nil {
		return "", dberrors.ConfigNotFound(config)
	}

	return configPath, nil
}
