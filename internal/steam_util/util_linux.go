package steam_util

import (
	"os"
	"path/filepath"
)

// SearchRoots returns the known Steam install locations, native, snap and
// flatpak.
func SearchRoots() []string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	roots := []string{
		filepath.Join(homeDir, ".steam", "steam"),
		filepath.Join(homeDir, ".local", "share", "Steam"),
		filepath.Join(homeDir, "snap", "steam", "common", ".local", "share", "Steam"),
		filepath.Join(homeDir, ".var", "app", "com.valvesoftware.Steam", ".local", "share", "Steam"),
	}
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		roots = append(roots, filepath.Join(xdgData, "Steam"))
	}
	return roots
}

// ExtraUserdataDirs has nothing to add on linux, SearchRoots already covers
// every install.
func ExtraUserdataDirs() []string {
	return nil
}
