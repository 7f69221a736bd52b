// Package config provides configuration loading and management.
package config

import "github.com/opmodel/newcomp/internal/component"

// Configuration keys. They double as flag resolution keys and map to
// environment variables through EnvVar.
const (
	KeyLanguage      = "defaults.language"
	KeyKind          = "defaults.kind"
	KeyStyle         = "defaults.style"
	KeyProps         = "defaults.props"
	KeyImportReact   = "defaults.importReact"
	KeyTemplatesFile = "templates.file"
	KeyTemplatesDir  = "templates.dir"
	KeyTimestamps    = "log.timestamps"
)

// Keys returns every configuration key in display order.
func Keys() []string {
	return []string{
		KeyLanguage, KeyKind, KeyStyle, KeyProps, KeyImportReact,
		KeyTemplatesFile, KeyTemplatesDir, KeyTimestamps,
	}
}

// DefaultsConfig holds the default component options.
type DefaultsConfig struct {
	// Language is js or ts.
	// Env: NEWCOMP_DEFAULTS_LANGUAGE, Default: js
	Language string `json:"language,omitempty" yaml:"language,omitempty" mapstructure:"language"`

	// Kind is the default component kind.
	// Env: NEWCOMP_DEFAULTS_KIND, Default: functional
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty" mapstructure:"kind"`

	// Style is the stylesheet suffix. An empty string disables the stylesheet.
	// Env: NEWCOMP_DEFAULTS_STYLE, Default: css
	Style string `json:"style" yaml:"style" mapstructure:"style"`

	// Props declares a props parameter.
	Props bool `json:"props" yaml:"props" mapstructure:"props"`

	// ImportReact prepends the React import.
	ImportReact bool `json:"importReact" yaml:"importReact" mapstructure:"importReact"`
}

// TemplatesConfig points at custom templates.
type TemplatesConfig struct {
	// File is a single custom template file.
	File string `json:"file,omitempty" yaml:"file,omitempty" mapstructure:"file"`

	// Dir is a directory of custom templates.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty" mapstructure:"dir"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty" mapstructure:"timestamps"`
}

// Config represents the newcomp configuration file (~/.newcomp/config.yaml).
type Config struct {
	Defaults  DefaultsConfig  `json:"defaults" yaml:"defaults" mapstructure:"defaults"`
	Templates TemplatesConfig `json:"templates,omitempty" yaml:"templates,omitempty" mapstructure:"templates"`
	Log       LogConfig       `json:"log,omitempty" yaml:"log,omitempty" mapstructure:"log"`
}

// DefaultStyle is the stylesheet suffix used when nothing else is configured.
const DefaultStyle = "css"

// DefaultConfig returns a Config with all default values populated.
// Used by `newcomp config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Language: string(component.DefaultLanguage),
			Kind:     string(component.DefaultKind),
			Style:    DefaultStyle,
		},
	}
}
