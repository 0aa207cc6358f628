package namedlock

import "sync"

// Guard represents active possession of a named lock. It is returned by a
// successful Lock or TryLock and stays valid even if the NamedLock that
// produced it is closed.
type Guard struct {
	entry *entry
	once  sync.Once
}

// Unlock releases the lock. The OS-level release is best-effort: a failure
// there cannot be surfaced during cleanup and the in-process mutex release,
// which always succeeds, is what gates subsequent acquisitions. Unlock is
// idempotent.
func (g *Guard) Unlock() {
	g.once.Do(func() {
		_ = g.entry.raw.release()
		g.entry.mu.Unlock()
		openedLocks.release(g.entry)
	})
}

// Close releases the lock. It implements io.Closer and never returns an
// error.
func (g *Guard) Close() error {
	g.Unlock()
	return nil
}
