package namedlock

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The cross-process tests re-exec the test binary. A child process is
// selected by environment variable and runs one of the helper roles below
// instead of the test suite.
const (
	envHoldLock = "NAMEDLOCK_TEST_HOLD"
	envTryLock  = "NAMEDLOCK_TEST_TRY"
)

func TestMain(m *testing.M) {
	if name := os.Getenv(envHoldLock); name != "" {
		holdLockChild(name)
		return
	}
	if name := os.Getenv(envTryLock); name != "" {
		tryLockChild(name)
		return
	}
	os.Exit(m.Run())
}

// holdLockChild acquires the lock, reports, holds it for 300ms and exits.
func holdLockChild(name string) {
	lock, err := New(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "child: create failed: %v\n", err)
		os.Exit(1)
	}
	defer lock.Close()

	guard, err := lock.Lock()
	if err != nil {
		fmt.Fprintf(os.Stderr, "child: lock failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("acquired")
	time.Sleep(300 * time.Millisecond)
	guard.Unlock()
	fmt.Println("released")
}

// tryLockChild probes the lock once and reports whether it was busy.
func tryLockChild(name string) {
	lock, err := New(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "child: create failed: %v\n", err)
		os.Exit(1)
	}
	defer lock.Close()

	guard, err := lock.TryLock()
	switch {
	case errors.Is(err, ErrWouldBlock):
		fmt.Println("busy")
	case err == nil:
		guard.Unlock()
		fmt.Println("free")
	default:
		fmt.Fprintf(os.Stderr, "child: try failed: %v\n", err)
		os.Exit(1)
	}
}

// spawnChild re-execs the test binary with one helper role selected.
func spawnChild(t *testing.T, env, name string) (*exec.Cmd, *bufio.Scanner) {
	t.Helper()

	cmd := exec.Command(os.Args[0])
	cmd.Env = append(os.Environ(), env+"="+name)
	cmd.Stderr = os.Stderr

	stdout, err := cmd.StdoutPipe()
	require.NoError(t, err)
	require.NoError(t, cmd.Start())

	return cmd, bufio.NewScanner(stdout)
}

func TestCrossProcessContention(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping cross-process test in short mode")
	}

	name := uniqueName(t)

	cmd, out := spawnChild(t, envHoldLock, name)
	defer func() { _ = cmd.Wait() }()

	require.True(t, out.Scan(), "child never reported acquisition")
	require.Equal(t, "acquired", out.Text())

	lock, err := New(name)
	require.NoError(t, err)
	defer lock.Close()

	// The child holds the lock, so a probe fails fast without blocking.
	_, err = lock.TryLock()
	assert.ErrorIs(t, err, ErrWouldBlock)

	// A blocking acquisition waits out the child's hold.
	start := time.Now()
	guard, err := lock.Lock()
	require.NoError(t, err)
	elapsed := time.Since(start)

	guard.Unlock()

	assert.GreaterOrEqual(t, elapsed, 100*time.Millisecond,
		"Lock returned while the child still held the lock")

	require.NoError(t, cmd.Wait())
}

func TestCrossProcessTryLockObservesHolder(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping cross-process test in short mode")
	}

	name := uniqueName(t)

	lock, err := New(name)
	require.NoError(t, err)
	defer lock.Close()

	guard, err := lock.TryLock()
	require.NoError(t, err)

	cmd, out := spawnChild(t, envTryLock, name)
	require.True(t, out.Scan(), "child produced no output")
	assert.Equal(t, "busy", out.Text())
	require.NoError(t, cmd.Wait())

	guard.Unlock()

	// After release the same probe succeeds immediately.
	cmd, out = spawnChild(t, envTryLock, name)
	require.True(t, out.Scan(), "child produced no output")
	assert.Equal(t, "free", out.Text())
	require.NoError(t, cmd.Wait())
}
