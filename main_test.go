package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pacmanninja/SteamFolderID/internal/cfg"
	"github.com/Pacmanninja/SteamFolderID/internal/ui"
)

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "picker.cfg")
	require.NoError(t, os.WriteFile(path, []byte("[Steam]\napi_key = fromfile\n[Core]\nlog_level = 2\n"), 0o644))

	cmd := newRootCommand()
	require.NoError(t, cmd.ParseFlags([]string{"--api-key", "fromflag", "--verbosity", "2"}))

	sections, err := loadConfig(cmd, flags{configFile: path, apiKey: "fromflag", logLevel: 3, verbosity: 2})
	require.NoError(t, err)

	assert.Equal(t, "fromflag", sections.Steam.APIKey)
	assert.Equal(t, 2, sections.Core.LogLevel, "unset flag must not override the file")
	assert.Equal(t, 2, sections.Core.LogVerbosity)
}

func TestLoadConfigDefaults(t *testing.T) {
	cmd := newRootCommand()
	require.NoError(t, cmd.ParseFlags(nil))

	sections, err := loadConfig(cmd, flags{logLevel: 3})
	require.NoError(t, err)
	assert.Equal(t, cfg.DefaultAPIKey, sections.Steam.APIKey)
	assert.Equal(t, ui.DefaultConfig(), uiConfig(sections))
}

func TestRootCommandRejectsArgs(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"unexpected"})
	cmd.SetOut(new(nopWriter))
	cmd.SetErr(new(nopWriter))
	assert.Error(t, cmd.Execute())
}

type nopWriter struct{}

func (*nopWriter) Write(p []byte) (int, error) { return len(p), nil }
