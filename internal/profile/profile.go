// Package profile turns discovered local accounts into displayable profiles.
package profile

import (
	"context"
	"image"

	"github.com/GoogleCloudPlatform/galog"

	"github.com/Pacmanninja/SteamFolderID/internal/steam_steamid"
	"github.com/Pacmanninja/SteamFolderID/internal/steam_util"
	"github.com/Pacmanninja/SteamFolderID/internal/steam_webapi"
)

// Profile is a local account enriched with its public display data. Each
// profile owns its avatar.
type Profile struct {
	Name      string
	SteamID64 string
	AvatarURL string
	// Avatar is never nil, failed fetches leave a blank placeholder.
	Avatar image.Image
	// Path is the account's userdata folder.
	Path string
	// AccountName and MostRecent come from loginusers.vdf and are empty when
	// Steam kept no login record for the account.
	AccountName string
	MostRecent  bool
}

// Selection is the outcome of offering profiles to the user, OK is false when
// none was chosen.
type Selection struct {
	Path string
	OK   bool
}

// Lookup resolves a SteamID64 to its public player summary.
type Lookup interface {
	GetPlayerSummary(ctx context.Context, steamID64 string) (*steam_webapi.PlayerSummary, error)
}

// AvatarFetcher loads an avatar, substituting a placeholder on failure.
type AvatarFetcher interface {
	AvatarOrPlaceholder(ctx context.Context, avatarURL string) image.Image
}

// Enrich looks up every account in order. Accounts whose lookup fails are
// dropped, accounts whose avatar fails are kept with a placeholder.
func Enrich(ctx context.Context, accounts []steam_util.LocalAccount, lookup Lookup, avatars AvatarFetcher) []Profile {
	var profiles []Profile
	for _, account := range accounts {
		steamID64, err := steam_steamid.ToSteam64(account.AccountID)
		if err != nil {
			galog.Errorf("Skipping account %s: %v", account.Path(), err)
			continue
		}

		summary, err := lookup.GetPlayerSummary(ctx, steamID64)
		if err != nil {
			galog.Errorf("Error fetching profile for SteamID %s: %v", steamID64, err)
			continue
		}

		p := Profile{
			Name:      summary.PersonaName,
			SteamID64: steamID64,
			AvatarURL: summary.AvatarFull,
			Avatar:    avatars.AvatarOrPlaceholder(ctx, summary.AvatarFull),
			Path:      account.Path(),
		}
		if account.LoginUser != nil {
			p.AccountName = account.LoginUser.AccountName
			p.MostRecent = account.LoginUser.MostRecent == 1
		}
		galog.V(1).Debugf("Found profile %q (%s) at %s", p.Name, p.SteamID64, p.Path)
		profiles = append(profiles, p)
	}
	return profiles
}
