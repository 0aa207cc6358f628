//go:build windows

package namedlock

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// resourceName maps a validated lock name to a named mutex in the Global
// namespace, visible across sessions.
func resourceName(name string) string {
	return `Global\` + name
}

// rawLock wraps one handle to a named mutex object. Windows lets the same
// process open a second handle to the same named mutex and re-acquire it,
// so one rawLock must exist per name per process (see registry.go).
type rawLock struct {
	handle windows.Handle
}

// openRaw creates or opens the named mutex object.
func openRaw(name string) (*rawLock, error) {
	namep, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}
	handle, err := windows.CreateMutex(nil, false, namep)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}
	return &rawLock{handle: handle}, nil
}

// tryAcquire waits on the mutex with a zero timeout. WAIT_ABANDONED means
// the previous owner exited without releasing; the mutex is ours regardless.
func (r *rawLock) tryAcquire() error {
	event, err := windows.WaitForSingleObject(r.handle, 0)
	switch event {
	case windows.WAIT_OBJECT_0, windows.WAIT_ABANDONED:
		return nil
	case uint32(windows.WAIT_TIMEOUT):
		return ErrWouldBlock
	default:
		return lockFailed(err)
	}
}

// acquire waits on the mutex until it is released by its current owner.
func (r *rawLock) acquire() error {
	event, err := windows.WaitForSingleObject(r.handle, windows.INFINITE)
	switch event {
	case windows.WAIT_OBJECT_0, windows.WAIT_ABANDONED:
		return nil
	default:
		return lockFailed(err)
	}
}

func lockFailed(err error) error {
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLockFailed, err)
	}
	return ErrLockFailed
}

// release releases the mutex.
func (r *rawLock) release() error {
	if err := windows.ReleaseMutex(r.handle); err != nil {
		return fmt.Errorf("%w: %w", ErrUnlockFailed, err)
	}
	return nil
}

// close closes the mutex handle. The OS destroys the mutex object once the
// last handle to it, in any process, is closed.
func (r *rawLock) close() error {
	return windows.CloseHandle(r.handle)
}
