//go:build unix

package namedlock

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceNameUsesTempDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TMPDIR", dir)

	assert.Equal(t, filepath.Join(dir, "foo.lock"), resourceName("foo"))
}

func TestNewWithPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom-lock")

	lock1, err := NewWithPath(path)
	require.NoError(t, err)
	defer lock1.Close()

	// The path is used verbatim, no .lock suffix appended.
	_, err = os.Stat(path)
	require.NoError(t, err)
	_, err = os.Stat(path + ".lock")
	assert.True(t, os.IsNotExist(err))

	lock2, err := NewWithPath(path)
	require.NoError(t, err)
	defer lock2.Close()

	guard, err := lock1.TryLock()
	require.NoError(t, err)

	_, err = lock2.TryLock()
	assert.ErrorIs(t, err, ErrWouldBlock)

	guard.Unlock()
}

func TestNewWithPathMissingParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "x.lock")

	lock, err := NewWithPath(path)
	assert.Nil(t, lock)
	assert.ErrorIs(t, err, ErrCreateFailed)
}

func TestLockFilePersistsAfterRelease(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TMPDIR", dir)

	name := uniqueName(t)

	lock, err := New(name)
	require.NoError(t, err)

	guard, err := lock.TryLock()
	require.NoError(t, err)
	guard.Unlock()
	require.NoError(t, lock.Close())

	// The lock file is the lock's identity and is deliberately left behind.
	_, err = os.Stat(filepath.Join(dir, name+".lock"))
	assert.NoError(t, err)
}
