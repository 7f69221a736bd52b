package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	info := Get()

	require.NotEmpty(t, info.GoVersion, "GoVersion should be populated")
	require.NotEmpty(t, info.Version)
}

func TestFillFromBuildInfo(t *testing.T) {
	bi := &debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-01-29T10:00:00Z"},
		},
	}

	t.Run("fills unset values", func(t *testing.T) {
		info := fillFromBuildInfo(Info{Version: "v0.0.0-dev", GitCommit: "unknown", BuildDate: "unknown"}, bi)
		assert.Equal(t, "v1.2.3", info.Version)
		assert.Equal(t, "abc123", info.GitCommit)
		assert.Equal(t, "2026-01-29T10:00:00Z", info.BuildDate)
	})

	t.Run("keeps ldflags values", func(t *testing.T) {
		info := fillFromBuildInfo(Info{Version: "v9.0.0", GitCommit: "def456", BuildDate: "today"}, bi)
		assert.Equal(t, "v9.0.0", info.Version)
		assert.Equal(t, "def456", info.GitCommit)
		assert.Equal(t, "today", info.BuildDate)
	})

	t.Run("ignores devel main version", func(t *testing.T) {
		info := fillFromBuildInfo(Info{Version: "v0.0.0-dev"}, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
		assert.Equal(t, "v0.0.0-dev", info.Version)
	})
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "v1.0.0",
		GitCommit: "abc123",
		BuildDate: "2026-01-29",
		GoVersion: "go1.25",
	}

	str := info.String()

	assert.Contains(t, str, "newcomp version v1.0.0")
	assert.Contains(t, str, "abc123")
	assert.Contains(t, str, "2026-01-29")
	assert.Contains(t, str, "go1.25")
}
