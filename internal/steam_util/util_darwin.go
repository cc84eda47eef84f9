package steam_util

import (
	"os"
	"path/filepath"
)

func SearchRoots() []string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(homeDir, "Library", "Application Support", "Steam")}
}

func ExtraUserdataDirs() []string {
	return nil
}
