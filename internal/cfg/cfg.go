// Package cfg loads the picker configuration from the built-in defaults and an
// optional user supplied INI file.
package cfg

import (
	"bytes"
	"fmt"
	"io"
	"text/template"
	"time"

	"gopkg.in/ini.v1"
)

const (
	// DefaultAPIKey is the embedded Steam Web API key. Replace it at build time
	// or override it with the config file or the --api-key flag.
	DefaultAPIKey = "API_KEY_HERE"

	// defaultConfigTemplate is the default configuration template for the
	// configuration sections.
	defaultConfigTemplate = `
[Core]
log_level = 3
log_verbosity = 0

[Steam]
api_key = {{.apiKey}}
api_url = https://api.steampowered.com
request_timeout = 8s
userdata_subpath = {{.userdataSubpath}}

[UI]
title = Select Steam Profile
window_width = 500
row_height = 90
max_visible_rows = 5
avatar_size = 64
`
)

var (
	// dataSources returns the sources layered on top of the defaults, unit
	// tests replace it to feed in-memory configurations.
	dataSources = defaultDataSources

	defaultConfigValues = map[string]string{
		"apiKey":          DefaultAPIKey,
		"userdataSubpath": defaultUserdataSubpath,
	}
)

// Sections encapsulates all the configuration sections.
type Sections struct {
	// Core holds the logging configuration.
	Core *Core `ini:"Core,omitempty"`
	// Steam holds the discovery and Web API configuration.
	Steam *Steam `ini:"Steam,omitempty"`
	// UI holds the selection window geometry.
	UI *UI `ini:"UI,omitempty"`
}

// Core contains the logging configuration entries.
type Core struct {
	// LogLevel is the galog level, 0 (fatal) through 4 (debug). The CLI's flag
	// takes precedence over this configuration.
	LogLevel int `ini:"log_level,omitempty"`
	// LogVerbosity is the minimum verbosity of V() logs. The CLI's flag takes
	// precedence over this configuration.
	LogVerbosity int `ini:"log_verbosity,omitempty"`
}

// Steam contains the account discovery and profile lookup configuration.
type Steam struct {
	// APIKey is the Steam Web API key sent with every profile lookup.
	APIKey string `ini:"api_key,omitempty"`
	// APIURL is the base URL of the Steam Web API.
	APIURL string `ini:"api_url,omitempty"`
	// RequestTimeout bounds every HTTP request, lookups and avatar fetches
	// alike.
	RequestTimeout time.Duration `ini:"request_timeout,omitempty"`
	// UserdataSubpath is joined to every search root to find the userdata
	// directory.
	UserdataSubpath string `ini:"userdata_subpath,omitempty"`
}

// UI contains the selection window configuration.
type UI struct {
	Title          string `ini:"title,omitempty"`
	WindowWidth    int    `ini:"window_width,omitempty"`
	RowHeight      int    `ini:"row_height,omitempty"`
	MaxVisibleRows int    `ini:"max_visible_rows,omitempty"`
	AvatarSize     int    `ini:"avatar_size,omitempty"`
}

// Load builds the configuration from the defaults overlaid with the file at
// path. An empty path or a missing file leaves the defaults untouched.
func Load(path string) (*Sections, error) {
	opts := ini.LoadOptions{
		Loose:       true,
		Insensitive: true,
	}

	var buffer bytes.Buffer
	if err := applyTemplate(defaultConfigTemplate, defaultConfigValues, &buffer); err != nil {
		return nil, fmt.Errorf("unable to apply %v to config template: %w", defaultConfigValues, err)
	}

	cfg, err := ini.LoadSources(opts, buffer.Bytes(), dataSources(path)...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	sections := new(Sections)
	if err := cfg.MapTo(sections); err != nil {
		return nil, fmt.Errorf("failed to map configuration to object: %w", err)
	}
	return sections, nil
}

func applyTemplate(templateStr string, data map[string]string, buffer io.Writer) error {
	t, err := template.New("").Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	if err := t.Execute(buffer, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	return nil
}

func defaultDataSources(path string) []any {
	if path == "" {
		return nil
	}
	return []any{path}
}
