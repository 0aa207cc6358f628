package namedlock

import (
	"strings"
	"sync"
)

// NamedLock is a cross-process lock identified by name. It is safe for
// concurrent use by multiple goroutines; all handles for the same name in
// the same process contend on one underlying lock.
type NamedLock struct {
	mu     sync.Mutex // guards closed
	entry  *entry
	closed bool
}

// New creates or opens a named lock.
//
// On Unix this creates/opens a file at $TMPDIR/<name>.lock (/tmp/<name>.lock
// if TMPDIR is unset) and locks it with flock(2). Use NewWithPath to pick
// the exact path. On Windows this creates/opens a named mutex in the Global
// namespace.
//
// The name must be non-empty and must not contain NUL, '/' or '\'.
func New(name string) (*NamedLock, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	return open(resourceName(name))
}

// ValidateName rejects names that cannot map to an OS resource identifier.
// '/' would escape the temp directory on Unix, '\' is invalid in mutex
// names on Windows, and both platforms expect NUL-terminated strings.
func ValidateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if strings.ContainsAny(name, "\x00/\\") {
		return ErrInvalidCharacter
	}
	return nil
}

func open(key string) (*NamedLock, error) {
	e, err := openedLocks.open(key)
	if err != nil {
		return nil, err
	}
	return &NamedLock{entry: e}, nil
}

// TryLock attempts to acquire the lock without blocking. If another
// goroutine or process holds it, ErrWouldBlock is returned. When another
// goroutine of this process holds the lock, no OS call is made.
func (l *NamedLock) TryLock() (*Guard, error) {
	e, err := l.ref()
	if err != nil {
		return nil, err
	}

	if !e.mu.TryLock() {
		openedLocks.release(e)
		return nil, ErrWouldBlock
	}

	if err := e.raw.tryAcquire(); err != nil {
		e.mu.Unlock()
		openedLocks.release(e)
		return nil, err
	}

	return &Guard{entry: e}, nil
}

// Lock acquires the lock, blocking until it is available. There is no
// timeout; callers needing a bounded wait should poll TryLock.
func (l *NamedLock) Lock() (*Guard, error) {
	e, err := l.ref()
	if err != nil {
		return nil, err
	}

	e.mu.Lock()

	if err := e.raw.acquire(); err != nil {
		e.mu.Unlock()
		openedLocks.release(e)
		return nil, err
	}

	return &Guard{entry: e}, nil
}

// ref takes a registry reference on behalf of a prospective Guard, so the
// primitive stays alive even if the handle is closed mid-acquisition.
func (l *NamedLock) ref() (*entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil, ErrClosed
	}
	openedLocks.retain(l.entry)
	return l.entry, nil
}

// Close releases the handle's reference to the underlying lock primitive.
// Guards obtained from the handle stay valid: the lock is held until the
// guard itself is released. Close is idempotent.
func (l *NamedLock) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}
	l.closed = true
	openedLocks.release(l.entry)
	return nil
}
