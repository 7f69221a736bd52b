package config

import (
	"fmt"
	"os"
	"strconv"

	oerrors "github.com/opmodel/newcomp/internal/errors"
	"github.com/opmodel/newcomp/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is one configuration value with its provenance.
type ResolvedValue struct {
	Key    string
	Value  string
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// FlagValue is a command-line flag as seen by the resolver.
type FlagValue struct {
	Value string
	// Set is true when the user passed the flag explicitly.
	Set bool
}

// Resolve resolves key using precedence:
// (1) flag, (2) NEWCOMP_* env, (3) config file, (4) built-in default.
func Resolve(key string, flag FlagValue, loaded *Loaded) ResolvedValue {
	type candidate struct {
		source ConfigSource
		value  string
		ok     bool
	}

	envValue, envOK := os.LookupEnv(EnvVar(key))
	candidates := []candidate{
		{SourceFlag, flag.Value, flag.Set},
		{SourceEnv, envValue, envOK},
		{SourceConfig, loaded.Value(key), loaded.IsSet(key)},
		{SourceDefault, defaultValue(key), true},
	}

	result := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]string)}
	for _, c := range candidates {
		if !c.ok {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		result.Shadowed[c.source] = c.value
	}
	return result
}

// Options are the fully resolved settings a command runs with.
type Options struct {
	Language      string
	Kind          string
	Style         string
	Props         bool
	ImportReact   bool
	TemplatesFile string
	TemplatesDir  string
	// Timestamps is nil when nothing set it; logging then defaults to on.
	Timestamps *bool
}

// ResolveOptions resolves every key. flags maps keys to their flag values;
// keys without a flag resolve from env, config and defaults only.
func ResolveOptions(loaded *Loaded, flags map[string]FlagValue) (*Options, []ResolvedValue, error) {
	values := make([]ResolvedValue, 0, len(Keys()))
	byKey := make(map[string]ResolvedValue, len(Keys()))
	for _, key := range Keys() {
		v := Resolve(key, flags[key], loaded)
		values = append(values, v)
		byKey[key] = v
	}

	opts := &Options{
		Language:      byKey[KeyLanguage].Value,
		Kind:          byKey[KeyKind].Value,
		Style:         byKey[KeyStyle].Value,
		TemplatesFile: byKey[KeyTemplatesFile].Value,
		TemplatesDir:  byKey[KeyTemplatesDir].Value,
	}

	var err error
	if opts.Props, err = parseBool(byKey[KeyProps]); err != nil {
		return nil, values, err
	}
	if opts.ImportReact, err = parseBool(byKey[KeyImportReact]); err != nil {
		return nil, values, err
	}
	if ts := byKey[KeyTimestamps]; ts.Value != "" {
		b, err := parseBool(ts)
		if err != nil {
			return nil, values, err
		}
		opts.Timestamps = &b
	}

	for _, key := range []string{KeyTemplatesFile, KeyTemplatesDir} {
		v := byKey[key]
		expanded, err := ExpandPath(v.Value)
		if err != nil {
			return nil, values, fmt.Errorf("expanding %s: %w", key, err)
		}
		if key == KeyTemplatesFile {
			opts.TemplatesFile = expanded
		} else {
			opts.TemplatesDir = expanded
		}
	}

	return opts, values, nil
}

func parseBool(v ResolvedValue) (bool, error) {
	b, err := strconv.ParseBool(v.Value)
	if err != nil {
		return false, oerrors.NewValidationError(
			fmt.Sprintf("invalid boolean %q from %s", v.Value, v.Source),
			"", v.Key, "Use true or false.")
	}
	return b, nil
}

// ResolveConfigPathResult contains the resolved config path and its source.
type ResolveConfigPathResult struct {
	// ConfigPath is the resolved config file path.
	ConfigPath string
	// Source indicates where the config path came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) NEWCOMP_CONFIG env, (3) ~/.newcomp/config.yaml default
func ResolveConfigPath(flagValue string) (ResolveConfigPathResult, error) {
	result := ResolveConfigPathResult{
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv(ConfigEnvVar)

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile

	switch {
	case flagValue != "":
		result.ConfigPath = flagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	case envValue != "":
		result.ConfigPath = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	default:
		result.ConfigPath = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			if source == SourceDefault {
				continue
			}
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
