// Command steamfolderid lets the user pick one of the Steam profiles on this
// machine and prints the profile's userdata folder.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/GoogleCloudPlatform/galog"
	"github.com/spf13/cobra"

	"github.com/Pacmanninja/SteamFolderID/internal/cfg"
	"github.com/Pacmanninja/SteamFolderID/internal/logger"
	"github.com/Pacmanninja/SteamFolderID/internal/picker"
	"github.com/Pacmanninja/SteamFolderID/internal/steam_util"
	"github.com/Pacmanninja/SteamFolderID/internal/steam_webapi"
	"github.com/Pacmanninja/SteamFolderID/internal/ui"
)

const (
	// galogShutdownTimeout is the period of time we should wait for galog to
	// shutdown.
	galogShutdownTimeout = time.Second
)

type flags struct {
	configFile string
	apiKey     string
	logLevel   int
	verbosity  int
}

func newRootCommand() *cobra.Command {
	var f flags
	root := &cobra.Command{
		Use:          "steamfolderid",
		Short:        "Pick a local Steam profile and print its userdata folder.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, f)
		},
	}
	root.Flags().StringVar(&f.configFile, "config", "", "INI file overriding the built-in configuration")
	root.Flags().StringVar(&f.apiKey, "api-key", "", "Steam Web API key")
	root.Flags().IntVar(&f.logLevel, "log-level", 3, "log level, 0 (fatal) to 4 (debug)")
	root.Flags().IntVar(&f.verbosity, "verbosity", 0, "debug log verbosity")
	return root
}

// loadConfig loads the configuration file and applies the flags the user
// set on top of it.
func loadConfig(cmd *cobra.Command, f flags) (*cfg.Sections, error) {
	sections, err := cfg.Load(f.configFile)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("api-key") {
		sections.Steam.APIKey = f.apiKey
	}
	if cmd.Flags().Changed("log-level") {
		sections.Core.LogLevel = f.logLevel
	}
	if cmd.Flags().Changed("verbosity") {
		sections.Core.LogVerbosity = f.verbosity
	}
	return sections, nil
}

func uiConfig(sections *cfg.Sections) ui.Config {
	return ui.Config{
		Title:          sections.UI.Title,
		Width:          float32(sections.UI.WindowWidth),
		RowHeight:      float32(sections.UI.RowHeight),
		MaxVisibleRows: sections.UI.MaxVisibleRows,
		AvatarSize:     float32(sections.UI.AvatarSize),
	}
}

func run(cmd *cobra.Command, f flags) error {
	ctx := cmd.Context()

	sections, err := loadConfig(cmd, f)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logOpts := logger.Options{
		Level:     sections.Core.LogLevel,
		Verbosity: sections.Core.LogVerbosity,
	}
	if err := logger.Init(ctx, logOpts); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer galog.Shutdown(galogShutdownTimeout)

	if sections.Steam.APIKey == cfg.DefaultAPIKey {
		galog.Warnf("No Steam Web API key configured, profile lookups will fail")
	}

	client := steam_webapi.NewClient(steam_webapi.Options{
		BaseURL:    sections.Steam.APIURL,
		APIKey:     sections.Steam.APIKey,
		Timeout:    sections.Steam.RequestTimeout,
		AvatarSize: sections.UI.AvatarSize,
	})

	return picker.Run(ctx, picker.Options{
		SearchRoots:       steam_util.SearchRoots(),
		UserdataSubpath:   sections.Steam.UserdataSubpath,
		ExtraUserdataDirs: steam_util.ExtraUserdataDirs(),
		Lookup:            client,
		Avatars:           client,
		Selector:          ui.Selector{Config: uiConfig(sections)},
	}, cmd.OutOrStdout())
}

func main() {
	// Must run before anything captures os.Stdout or os.Stderr.
	ui.AttachToConsole()

	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
