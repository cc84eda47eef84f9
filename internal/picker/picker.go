// Package picker runs discovery, enrichment and selection in order and prints
// the outcome.
package picker

import (
	"context"
	"fmt"
	"io"

	"github.com/GoogleCloudPlatform/galog"
	"github.com/sanity-io/litter"

	"github.com/Pacmanninja/SteamFolderID/internal/profile"
	"github.com/Pacmanninja/SteamFolderID/internal/steam_util"
)

// Fixed lines written instead of a path.
const (
	// NoneFoundMessage is written when no profile survives enrichment.
	NoneFoundMessage   = "No Steam profiles found"
	// NotSelectedMessage is written when the window closes without a click.
	NotSelectedMessage = "No profile selected."
)

// Selector lets the user pick one of the profiles.
type Selector interface {
	Select(profiles []profile.Profile) profile.Selection
}

// Options carries every collaborator Run needs.
type Options struct {
	// SearchRoots are joined with UserdataSubpath to find userdata
	// directories.
	SearchRoots     []string
	UserdataSubpath string
	// ExtraUserdataDirs are searched after the roots.
	ExtraUserdataDirs []string

	Lookup   profile.Lookup
	Avatars  profile.AvatarFetcher
	Selector Selector
}

// Run finds, enriches and offers the local profiles, then writes the selected
// path or a fixed message to out. The selector is not used when no profile
// survives enrichment.
func Run(ctx context.Context, opts Options, out io.Writer) error {
	dirs := steam_util.UserdataDirs(opts.SearchRoots, opts.UserdataSubpath, opts.ExtraUserdataDirs...)
	galog.V(1).Debugf("Searching userdata directories: %v", dirs)

	accounts := steam_util.DiscoverAccounts(dirs)
	galog.Debugf("Discovered %d local accounts", len(accounts))

	profiles := profile.Enrich(ctx, accounts, opts.Lookup, opts.Avatars)
	if len(profiles) == 0 {
		return writeLine(out, NoneFoundMessage)
	}
	galog.V(2).Debugf("Enriched profiles: %s", litter.Sdump(summaries(profiles)))

	selection := opts.Selector.Select(profiles)
	if !selection.OK {
		return writeLine(out, NotSelectedMessage)
	}
	return writeLine(out, selection.Path)
}

func writeLine(out io.Writer, line string) error {
	if _, err := fmt.Fprintln(out, line); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}

type profileSummary struct {
	Name        string
	SteamID64   string
	Path        string
	AccountName string
	MostRecent  bool
}

// summaries drops the avatar pixels from the debug dump.
func summaries(profiles []profile.Profile) []profileSummary {
	res := make([]profileSummary, 0, len(profiles))
	for _, p := range profiles {
		res = append(res, profileSummary{
			Name:        p.Name,
			SteamID64:   p.SteamID64,
			Path:        p.Path,
			AccountName: p.AccountName,
			MostRecent:  p.MostRecent,
		})
	}
	return res
}
