// Package namedlock provides cross-process mutual exclusion identified by a
// human-readable name. Unrelated processes on the same machine can use it to
// serialize access to a shared resource such as a file, a network port, or a
// singleton daemon.
//
// On Unix the lock is backed by flock(2) on a file at $TMPDIR/<name>.lock
// (/tmp if TMPDIR is unset). On Windows it is backed by a named mutex object
// in the Global namespace.
//
// Basic usage:
//
//	lock, err := namedlock.New("my-daemon")
//	if err != nil {
//		return err
//	}
//	defer lock.Close()
//
//	guard, err := lock.Lock()
//	if err != nil {
//		return err
//	}
//	defer guard.Unlock()
//
//	// Do something...
//
// Both OS primitives happily let the same process acquire the same lock a
// second time through a second handle, which would defeat mutual exclusion
// between threads of one process. The package therefore pairs every OS
// primitive with an in-process mutex and deduplicates primitives per name, so
// two handles for the same name in the same process always contend on the
// same lock.
package namedlock
