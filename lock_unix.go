//go:build unix

package namedlock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// resourceName maps a validated lock name to its lock file path,
// $TMPDIR/<name>.lock or /tmp/<name>.lock if TMPDIR is unset.
func resourceName(name string) string {
	return filepath.Join(os.TempDir(), name+".lock")
}

// rawLock wraps one open lock file descriptor. The flock(2) lock is
// associated with the open file description, not the path or the process,
// so one rawLock must exist per name per process (see registry.go).
type rawLock struct {
	file *os.File
}

// openRaw opens the lock file at path, creating it if absent. If exclusive
// creation races with another process and loses, fall back to opening the
// existing file; both descriptors refer to the same lock.
func openRaw(path string) (*rawLock, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o666)
	if err != nil {
		file, err = os.OpenFile(path, os.O_WRONLY, 0)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCreateFailed, err)
		}
	}
	return &rawLock{file: file}, nil
}

// tryAcquire attempts a non-blocking exclusive lock on the descriptor.
func (r *rawLock) tryAcquire() error {
	return r.flock(unix.LOCK_EX | unix.LOCK_NB)
}

// acquire blocks until the exclusive lock is available.
func (r *rawLock) acquire() error {
	return r.flock(unix.LOCK_EX)
}

// release removes the exclusive lock.
func (r *rawLock) release() error {
	return r.flock(unix.LOCK_UN)
}

// close closes the descriptor, which also drops any lock held on it.
// The lock file itself is never removed: the path is the lock's identity
// and other processes may hold descriptors to it.
func (r *rawLock) close() error {
	return r.file.Close()
}

// flock performs the flock operation, retrying on interrupted syscalls.
// Checks both EWOULDBLOCK and EAGAIN; older Unix systems report them as
// distinct codes.
func (r *rawLock) flock(how int) error {
	for {
		err := unix.Flock(int(r.file.Fd()), how)
		if err == nil {
			return nil
		}
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if errors.Is(err, unix.EWOULDBLOCK) || errors.Is(err, unix.EAGAIN) {
			return ErrWouldBlock
		}
		if how&unix.LOCK_UN != 0 {
			return fmt.Errorf("%w: %w", ErrUnlockFailed, err)
		}
		return fmt.Errorf("%w: %w", ErrLockFailed, err)
	}
}
