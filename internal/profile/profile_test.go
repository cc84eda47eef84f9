package profile

import (
	"context"
	"errors"
	"image"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pacmanninja/SteamFolderID/internal/steam_util"
	"github.com/Pacmanninja/SteamFolderID/internal/steam_webapi"
)

type fakeLookup map[string]*steam_webapi.PlayerSummary

func (f fakeLookup) GetPlayerSummary(_ context.Context, steamID64 string) (*steam_webapi.PlayerSummary, error) {
	summary, ok := f[steamID64]
	if !ok {
		return nil, steam_webapi.ErrNoPlayers
	}
	return summary, nil
}

type failingLookup struct{}

func (failingLookup) GetPlayerSummary(context.Context, string) (*steam_webapi.PlayerSummary, error) {
	return nil, errors.New("connection refused")
}

type fakeAvatars struct {
	fetched []string
}

func (f *fakeAvatars) AvatarOrPlaceholder(_ context.Context, avatarURL string) image.Image {
	f.fetched = append(f.fetched, avatarURL)
	return steam_webapi.Placeholder(64)
}

func TestEnrich(t *testing.T) {
	userdata := filepath.Join("steam", "userdata")
	accounts := []steam_util.LocalAccount{
		{AccountID: "22202", UserdataDir: userdata, LoginUser: &steam_util.SteamUser{AccountName: "gaben", MostRecent: 1}},
		{AccountID: "1", UserdataDir: userdata},
		{AccountID: "123", UserdataDir: userdata},
	}
	lookup := fakeLookup{
		"76561197960287930": {PersonaName: "Rabscuttle", AvatarFull: "https://a.example/1.jpg"},
		"76561197960265851": {PersonaName: "Other", AvatarFull: "https://a.example/2.jpg"},
	}
	avatars := &fakeAvatars{}

	profiles := Enrich(context.Background(), accounts, lookup, avatars)

	require.Len(t, profiles, 2)
	assert.Equal(t, "Rabscuttle", profiles[0].Name)
	assert.Equal(t, "76561197960287930", profiles[0].SteamID64)
	assert.Equal(t, filepath.Join(userdata, "22202"), profiles[0].Path)
	assert.Equal(t, "gaben", profiles[0].AccountName)
	assert.True(t, profiles[0].MostRecent)

	assert.Equal(t, "Other", profiles[1].Name)
	assert.Equal(t, filepath.Join(userdata, "123"), profiles[1].Path)
	assert.False(t, profiles[1].MostRecent)

	// The dropped account never reaches the avatar fetch.
	assert.Equal(t, []string{"https://a.example/1.jpg", "https://a.example/2.jpg"}, avatars.fetched)
}

func TestEnrichDropsFailedLookups(t *testing.T) {
	accounts := []steam_util.LocalAccount{{AccountID: "5", UserdataDir: "userdata"}}
	assert.Empty(t, Enrich(context.Background(), accounts, failingLookup{}, &fakeAvatars{}))
}

func TestEnrichEmptyPlayersAgainstServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response":{"players":[]}}`))
	}))
	t.Cleanup(srv.Close)
	client := steam_webapi.NewClient(steam_webapi.Options{BaseURL: srv.URL, APIKey: "k"})

	accounts := []steam_util.LocalAccount{{AccountID: "5", UserdataDir: "userdata"}}
	assert.Empty(t, Enrich(context.Background(), accounts, client, client))
}

func TestEnrichKeepsProfileWhenAvatarFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/avatar.jpg" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"response":{"players":[{"personaname":"Rabscuttle","avatarfull":"` + "http://" + r.Host + `/avatar.jpg"}]}}`))
	}))
	t.Cleanup(srv.Close)
	client := steam_webapi.NewClient(steam_webapi.Options{BaseURL: srv.URL, APIKey: "k"})

	accounts := []steam_util.LocalAccount{{AccountID: "22202", UserdataDir: "userdata"}}
	profiles := Enrich(context.Background(), accounts, client, client)

	require.Len(t, profiles, 1)
	assert.Equal(t, "Rabscuttle", profiles[0].Name)
	require.NotNil(t, profiles[0].Avatar)
	assert.Equal(t, image.Rect(0, 0, 64, 64), profiles[0].Avatar.Bounds())
}
