package namedlock

import "errors"

// Error variables for named lock operations
var (
	// ErrEmptyName is returned when a lock is created with an empty name
	ErrEmptyName = errors.New("lock name is empty")
	// ErrInvalidCharacter is returned when a lock name contains NUL, '/' or '\'
	ErrInvalidCharacter = errors.New("lock name contains an invalid character")
	// ErrCreateFailed is returned when the OS lock resource cannot be created or opened
	ErrCreateFailed = errors.New("failed to create named lock")
	// ErrLockFailed is returned on OS-level lock failures other than contention
	ErrLockFailed = errors.New("failed to lock named lock")
	// ErrUnlockFailed is returned when releasing the OS lock fails
	ErrUnlockFailed = errors.New("failed to unlock named lock")
	// ErrWouldBlock is returned by TryLock when the lock is held by another acquirer
	ErrWouldBlock = errors.New("named lock would block")
	// ErrClosed is returned when using a handle after Close
	ErrClosed = errors.New("named lock handle is closed")
)
