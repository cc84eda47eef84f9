package cfg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyTemplate(t *testing.T) {
	data := map[string]string{
		"apiKey":          "testkey",
		"userdataSubpath": "testdir",
	}

	buffer := new(strings.Builder)
	require.NoError(t, applyTemplate(defaultConfigTemplate, data, buffer))

	got := buffer.String()
	assert.Contains(t, got, "api_key = testkey")
	assert.Contains(t, got, "userdata_subpath = testdir")
}

func TestLoadDefaults(t *testing.T) {
	sections, err := Load("")
	require.NoError(t, err)

	want := &Sections{
		Core: &Core{LogLevel: 3},
		Steam: &Steam{
			APIKey:          DefaultAPIKey,
			APIURL:          "https://api.steampowered.com",
			RequestTimeout:  8 * time.Second,
			UserdataSubpath: defaultUserdataSubpath,
		},
		UI: &UI{
			Title:          "Select Steam Profile",
			WindowWidth:    500,
			RowHeight:      90,
			MaxVisibleRows: 5,
			AvatarSize:     64,
		},
	}
	if diff := cmp.Diff(want, sections); diff != "" {
		t.Errorf("Load(\"\") returned unexpected diff (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	sections, err := Load(filepath.Join(t.TempDir(), "missing.cfg"))
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIKey, sections.Steam.APIKey)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "picker.cfg")
	content := `
[Steam]
api_key = 0123456789ABCDEF
request_timeout = 2s

[ui]
max_visible_rows = 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	sections, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0123456789ABCDEF", sections.Steam.APIKey)
	assert.Equal(t, 2*time.Second, sections.Steam.RequestTimeout)
	assert.Equal(t, 3, sections.UI.MaxVisibleRows)
	// Untouched keys keep their defaults.
	assert.Equal(t, 90, sections.UI.RowHeight)
	assert.Equal(t, "https://api.steampowered.com", sections.Steam.APIURL)
}

func TestInvalidConfig(t *testing.T) {
	invalidConfig := `
[Section
key = value
`
	dataSources = func(string) []any {
		return []any{[]byte(invalidConfig)}
	}
	t.Cleanup(func() { dataSources = defaultDataSources })

	_, err := Load("")
	assert.Error(t, err)
}
