package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for newcomp configuration.
const envPrefix = "NEWCOMP"

var envKeyReplacer = strings.NewReplacer(".", "_")

// EnvVar returns the environment variable for a configuration key,
// e.g. defaults.language -> NEWCOMP_DEFAULTS_LANGUAGE.
func EnvVar(key string) string {
	return strings.ToUpper(envPrefix + "_" + envKeyReplacer.Replace(key))
}

// Loader reads the configuration file.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{v: viper.New()}
}

// Loaded is a configuration file merged over the defaults.
type Loaded struct {
	// Path is the expanded config file path.
	Path string

	// Found reports whether the file existed.
	Found bool

	// Config holds file values over DefaultConfig.
	Config *Config

	set map[string]bool
}

// IsSet reports whether the config file set key.
func (l *Loaded) IsSet(key string) bool {
	return l != nil && l.set[key]
}

// Value returns the configured value of key as a string.
func (l *Loaded) Value(key string) string {
	if l == nil || l.Config == nil {
		return defaultValue(key)
	}
	return configValue(l.Config, key)
}

// Load reads configFile. An empty path selects the default location.
// A missing file is not an error; the defaults are returned.
func (l *Loader) Load(configFile string) (*Loaded, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	loaded := &Loaded{
		Path:   expandedPath,
		Config: DefaultConfig(),
		set:    make(map[string]bool),
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return loaded, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	loaded.Found = true

	if err := l.v.Unmarshal(loaded.Config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	for _, key := range Keys() {
		if l.v.IsSet(key) {
			loaded.set[key] = true
		}
	}

	return loaded, nil
}

func configValue(cfg *Config, key string) string {
	switch key {
	case KeyLanguage:
		return cfg.Defaults.Language
	case KeyKind:
		return cfg.Defaults.Kind
	case KeyStyle:
		return cfg.Defaults.Style
	case KeyProps:
		return strconv.FormatBool(cfg.Defaults.Props)
	case KeyImportReact:
		return strconv.FormatBool(cfg.Defaults.ImportReact)
	case KeyTemplatesFile:
		return cfg.Templates.File
	case KeyTemplatesDir:
		return cfg.Templates.Dir
	case KeyTimestamps:
		if cfg.Log.Timestamps == nil {
			return ""
		}
		return strconv.FormatBool(*cfg.Log.Timestamps)
	}
	return ""
}

func defaultValue(key string) string {
	return configValue(DefaultConfig(), key)
}
