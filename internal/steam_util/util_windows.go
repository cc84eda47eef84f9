package steam_util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/windows/registry"
)

// SearchRoots returns every existing drive root, A:\ through Z:\.
func SearchRoots() []string {
	var roots []string
	for letter := 'A'; letter <= 'Z'; letter++ {
		root := fmt.Sprintf(`%c:\`, letter)
		if _, err := os.Stat(root); err == nil {
			roots = append(roots, root)
		}
	}
	return roots
}

// ExtraUserdataDirs returns the userdata directory of the Steam install
// registered for the current user, which may live outside the default
// Program Files location.
func ExtraUserdataDirs() []string {
	steamPath, err := GetSteamPath()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(steamPath, "userdata")}
}

func GetSteamPath() (string, error) {
	regKey, err := registry.OpenKey(registry.CURRENT_USER, `Software\Valve\Steam`, registry.QUERY_VALUE)
	if err != nil {
		return "", fmt.Errorf("error opening registry key: %w", err)
	}
	defer regKey.Close()
	steamPath, _, err := regKey.GetStringValue("SteamPath")
	if err != nil {
		return "", fmt.Errorf("error querying SteamPath: %w", err)
	}
	steamPath = strings.ReplaceAll(steamPath, "/", "\\")
	return steamPath, nil
}
