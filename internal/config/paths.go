package config

import (
	"os"
	"path/filepath"
)

// ConfigEnvVar overrides the config file location.
const ConfigEnvVar = envPrefix + "_CONFIG"

// Paths contains standard filesystem paths for newcomp.
type Paths struct {
	// HomeDir is the newcomp home directory (~/.newcomp).
	HomeDir string

	// ConfigFile is the path to the config file (~/.newcomp/config.yaml).
	ConfigFile string

	// TemplatesDir is the user-level template directory (~/.newcomp/templates).
	TemplatesDir string
}

// DefaultPaths returns the default paths for newcomp.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	home := filepath.Join(homeDir, ".newcomp")

	return &Paths{
		HomeDir:      home,
		ConfigFile:   filepath.Join(home, "config.yaml"),
		TemplatesDir: filepath.Join(home, "templates"),
	}, nil
}

// GetConfigFile returns the config file path.
// If NEWCOMP_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv(ConfigEnvVar); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username is not supported
	return path, nil
}
