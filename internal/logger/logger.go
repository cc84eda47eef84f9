// Package logger wraps the galog configuration/initialization.
package logger

import (
	"context"
	"fmt"
	"os"

	"github.com/GoogleCloudPlatform/galog"
)

// Options contains the logger configuration.
type Options struct {
	// Level is the log level, see galog.ParseLevel.
	Level int
	// Verbosity is the log verbosity level.
	Verbosity int
}

// Init initializes the logger. Entries only ever go to stderr, stdout is
// reserved for the selected profile path.
func Init(ctx context.Context, opts Options) error {
	level, err := galog.ParseLevel(opts.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	galog.SetMinVerbosity(opts.Verbosity)
	galog.RegisterBackend(ctx, galog.NewStderrBackend(os.Stderr))
	galog.SetLevel(level)
	return nil
}
