package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/newcomp/internal/errors"
)

func loadConfig(t *testing.T, content string) *Loaded {
	t.Helper()
	loaded, err := NewLoader().Load(writeConfig(t, content))
	require.NoError(t, err)
	return loaded
}

func TestResolve_Precedence(t *testing.T) {
	loaded := loadConfig(t, "defaults:\n  kind: class\n")

	t.Run("flag wins", func(t *testing.T) {
		t.Setenv("NEWCOMP_DEFAULTS_KIND", "arrow")

		v := Resolve(KeyKind, FlagValue{Value: "memoized", Set: true}, loaded)
		assert.Equal(t, "memoized", v.Value)
		assert.Equal(t, SourceFlag, v.Source)
		assert.Equal(t, "arrow", v.Shadowed[SourceEnv])
		assert.Equal(t, "class", v.Shadowed[SourceConfig])
		assert.Equal(t, "functional", v.Shadowed[SourceDefault])
	})

	t.Run("env beats config", func(t *testing.T) {
		t.Setenv("NEWCOMP_DEFAULTS_KIND", "arrow")

		v := Resolve(KeyKind, FlagValue{Value: "memoized"}, loaded)
		assert.Equal(t, "arrow", v.Value)
		assert.Equal(t, SourceEnv, v.Source)
		assert.NotContains(t, v.Shadowed, SourceFlag)
	})

	t.Run("config beats default", func(t *testing.T) {
		v := Resolve(KeyKind, FlagValue{}, loaded)
		assert.Equal(t, "class", v.Value)
		assert.Equal(t, SourceConfig, v.Source)
	})

	t.Run("default", func(t *testing.T) {
		v := Resolve(KeyLanguage, FlagValue{}, loaded)
		assert.Equal(t, "js", v.Value)
		assert.Equal(t, SourceDefault, v.Source)
		assert.Empty(t, v.Shadowed)
	})

	t.Run("empty env value still counts", func(t *testing.T) {
		t.Setenv("NEWCOMP_DEFAULTS_STYLE", "")

		v := Resolve(KeyStyle, FlagValue{}, loaded)
		assert.Equal(t, "", v.Value)
		assert.Equal(t, SourceEnv, v.Source)
	})
}

func TestResolveOptions(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	loaded := loadConfig(t, `
defaults:
  language: ts
  props: true
templates:
  dir: ~/my-templates
log:
  timestamps: false
`)
	t.Setenv("NEWCOMP_DEFAULTS_IMPORTREACT", "true")

	opts, values, err := ResolveOptions(loaded, map[string]FlagValue{
		KeyKind:  {Value: "forwardRef", Set: true},
		KeyProps: {Value: "false", Set: true},
	})
	require.NoError(t, err)
	assert.Len(t, values, len(Keys()))

	assert.Equal(t, "ts", opts.Language)
	assert.Equal(t, "forwardRef", opts.Kind)
	assert.Equal(t, "css", opts.Style)
	assert.False(t, opts.Props)
	assert.True(t, opts.ImportReact)
	assert.Equal(t, filepath.Join(home, "my-templates"), opts.TemplatesDir)
	assert.Empty(t, opts.TemplatesFile)
	require.NotNil(t, opts.Timestamps)
	assert.False(t, *opts.Timestamps)

	require.NoError(t, ValidateOptions(opts))
}

func TestResolveOptions_TimestampsUnset(t *testing.T) {
	opts, _, err := ResolveOptions(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, opts.Timestamps)
	assert.Equal(t, "js", opts.Language)
	assert.Equal(t, "functional", opts.Kind)
}

func TestResolveOptions_InvalidBool(t *testing.T) {
	t.Setenv("NEWCOMP_DEFAULTS_PROPS", "sometimes")

	_, _, err := ResolveOptions(nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrValidation)
	assert.Contains(t, err.Error(), "defaults.props")
	assert.Contains(t, err.Error(), `invalid boolean "sometimes" from env`)
}

func TestResolveConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	defaultPath := filepath.Join(home, ".newcomp", "config.yaml")

	t.Run("flag precedence", func(t *testing.T) {
		t.Setenv(ConfigEnvVar, "/env/config.yaml")

		result, err := ResolveConfigPath("/flag/config.yaml")
		require.NoError(t, err)
		assert.Equal(t, "/flag/config.yaml", result.ConfigPath)
		assert.Equal(t, SourceFlag, result.Source)
		assert.Equal(t, "/env/config.yaml", result.Shadowed[SourceEnv])
		assert.Equal(t, defaultPath, result.Shadowed[SourceDefault])
	})

	t.Run("env precedence", func(t *testing.T) {
		t.Setenv(ConfigEnvVar, "/env/config.yaml")

		result, err := ResolveConfigPath("")
		require.NoError(t, err)
		assert.Equal(t, "/env/config.yaml", result.ConfigPath)
		assert.Equal(t, SourceEnv, result.Source)
	})

	t.Run("default", func(t *testing.T) {
		t.Setenv(ConfigEnvVar, "")

		result, err := ResolveConfigPath("")
		require.NoError(t, err)
		assert.Equal(t, defaultPath, result.ConfigPath)
		assert.Equal(t, SourceDefault, result.Source)
		assert.Empty(t, result.Shadowed)
	})
}
