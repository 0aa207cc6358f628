//go:build windows

package cli

import (
	"github.com/named-lock/namedlock"
)

// openLock opens the named lock. Windows locks are named mutex objects, not
// files, so the lock-directory override does not apply.
func openLock(name string) (*namedlock.NamedLock, error) {
	return namedlock.New(name)
}

// lockPath reports the mutex name a lock name resolves to.
func lockPath(name string) string {
	return `Global\` + name
}
