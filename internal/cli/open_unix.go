//go:build unix

package cli

import (
	"os"
	"path/filepath"

	"github.com/named-lock/namedlock"
)

// openLock opens the named lock, honoring the lock-directory override.
func openLock(name string) (*namedlock.NamedLock, error) {
	if lockDir == "" {
		return namedlock.New(name)
	}
	if err := namedlock.ValidateName(name); err != nil {
		return nil, err
	}
	return namedlock.NewWithPath(lockPath(name))
}

// lockPath reports the lock file path a name resolves to.
func lockPath(name string) string {
	dir := lockDir
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, name+".lock")
}
