package steam_util

import (
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/GoogleCloudPlatform/galog"
)

var accountDirPattern = regexp.MustCompile(`^[0-9]+$`)

// LocalAccount is one Steam login found on this machine, named by the numeric
// folder Steam keeps for it under userdata.
type LocalAccount struct {
	AccountID   string
	UserdataDir string
	// LoginUser is the loginusers.vdf entry of the account, nil when Steam
	// has no record of it.
	LoginUser *SteamUser
}

// Path is the account's own folder, the value printed on selection.
func (a LocalAccount) Path() string {
	return filepath.Join(a.UserdataDir, a.AccountID)
}

// UserdataDirs joins subpath to every root and returns those that are
// directories, followed by the existing extra directories. Each directory is
// returned once, in search order.
func UserdataDirs(roots []string, subpath string, extra ...string) []string {
	var candidates []string
	for _, root := range roots {
		candidates = append(candidates, filepath.Join(root, subpath))
	}
	candidates = append(candidates, extra...)

	seen := make(map[string]bool)
	var dirs []string
	for _, dir := range candidates {
		dir = filepath.Clean(dir)
		key := dirKey(dir)
		if seen[key] {
			continue
		}
		seen[key] = true
		if stat, err := os.Stat(dir); err == nil && stat.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// ListAccounts returns the numeric account folders directly inside
// userdataDir in directory listing order.
func ListAccounts(userdataDir string) ([]LocalAccount, error) {
	entries, err := os.ReadDir(userdataDir)
	if err != nil {
		return nil, err
	}
	var accounts []LocalAccount
	for _, entry := range entries {
		if !accountDirPattern.MatchString(entry.Name()) {
			continue
		}
		if !isDir(filepath.Join(userdataDir, entry.Name())) {
			continue
		}
		accounts = append(accounts, LocalAccount{
			AccountID:   entry.Name(),
			UserdataDir: userdataDir,
		})
	}
	return accounts, nil
}

// DiscoverAccounts lists the accounts of every userdata directory. A directory
// that can't be read contributes nothing. Accounts are decorated with their
// loginusers.vdf entry when the owning Steam install has one.
func DiscoverAccounts(userdataDirs []string) []LocalAccount {
	var all []LocalAccount
	for _, dir := range userdataDirs {
		accounts, err := ListAccounts(dir)
		if err != nil {
			galog.Debugf("Skipping userdata directory %s: %v", dir, err)
			continue
		}
		if len(accounts) == 0 {
			continue
		}

		steamPath := filepath.Dir(dir)
		loginUsers, err := LoginUsersByAccount(steamPath)
		if err != nil {
			galog.Debugf("No login users for %s: %v", steamPath, err)
		}
		for i := range accounts {
			if user, ok := loginUsers[accounts[i].AccountID]; ok {
				accounts[i].LoginUser = &user
			}
		}
		all = append(all, accounts...)
	}
	return all
}

// dirKey identifies a directory independently of symlinks and, on windows,
// of letter case.
func dirKey(dir string) string {
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		dir = resolved
	}
	if runtime.GOOS == "windows" {
		return strings.ToLower(dir)
	}
	return dir
}

// isDir follows symlinks, so a linked account folder still counts.
func isDir(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && stat.IsDir()
}
