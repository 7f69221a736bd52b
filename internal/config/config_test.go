package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "js", cfg.Defaults.Language)
	assert.Equal(t, "functional", cfg.Defaults.Kind)
	assert.Equal(t, "css", cfg.Defaults.Style)
	assert.False(t, cfg.Defaults.Props)
	assert.False(t, cfg.Defaults.ImportReact)
	assert.Empty(t, cfg.Templates.File)
	assert.Empty(t, cfg.Templates.Dir)
	assert.Nil(t, cfg.Log.Timestamps)
}

func TestDefaultConfig_YAML(t *testing.T) {
	data, err := yaml.Marshal(DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, `defaults:
    language: js
    kind: functional
    style: css
    props: false
    importReact: false
`, string(data))
}

func TestEnvVar(t *testing.T) {
	assert.Equal(t, "NEWCOMP_DEFAULTS_LANGUAGE", EnvVar(KeyLanguage))
	assert.Equal(t, "NEWCOMP_DEFAULTS_IMPORTREACT", EnvVar(KeyImportReact))
	assert.Equal(t, "NEWCOMP_LOG_TIMESTAMPS", EnvVar(KeyTimestamps))
}
