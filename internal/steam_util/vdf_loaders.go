package steam_util

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/andygrunwald/vdf"

	"github.com/Pacmanninja/SteamFolderID/internal/steam_steamid"
)

func initVdfStructFromFile(vdfFilePath string, result interface{}) error {
	vdfFile, err := os.Open(vdfFilePath)
	if err != nil {
		return fmt.Errorf("couldn't open %s: %w", vdfFilePath, err)
	}
	defer vdfFile.Close()

	parsedVdfFile, err := vdf.NewParser(vdfFile).Parse()
	if err != nil {
		return fmt.Errorf("couldn't parse %s: %w", vdfFilePath, err)
	}
	return populateStructFromMap(parsedVdfFile, result)
}

func GetLoginUsers(steamPath string) (*VdfLoginUsers, error) {
	var loginUsers VdfLoginUsers
	err := initVdfStructFromFile(
		filepath.Join(steamPath, "config", "loginusers.vdf"),
		&loginUsers,
	)
	if err != nil {
		return nil, err
	}
	return &loginUsers, nil
}

// LoginUsersByAccount indexes the login users of a Steam install by the
// account id that names their userdata folder.
func LoginUsersByAccount(steamPath string) (map[string]SteamUser, error) {
	loginUsers, err := GetLoginUsers(steamPath)
	if err != nil {
		return nil, err
	}

	byAccount := make(map[string]SteamUser, len(loginUsers.Users))
	for steamId64, steamUser := range loginUsers.Users {
		steamId, err := steam_steamid.NewSteamID(strconv.FormatUint(steamId64, 10))
		if err != nil {
			return nil, err
		}
		steamUser.SteamID64 = steamId64
		steamUser.AccountId = strconv.FormatUint(uint64(steamId.AccountID), 10)
		byAccount[steamUser.AccountId] = steamUser
	}
	return byAccount, nil
}
