package cli

import (
	"errors"
	"os"
	"os/exec"
	"time"

	"github.com/named-lock/namedlock"
	"github.com/named-lock/namedlock/internal/util"
	"github.com/spf13/cobra"
)

var (
	runTry  bool
	runWait time.Duration
)

var runCmd = &cobra.Command{
	Use:   "run <name> -- <command> [args...]",
	Short: "Run a command while holding a named lock",
	Long: `Acquire the named lock, run the command, and release the lock when the
command exits. By default acquisition blocks until the lock is free; --try
fails immediately when it is held, and --wait gives up after a duration.

The command's exit code is passed through.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRun(args[0], args[1:])
	},
}

func init() {
	runCmd.Flags().BoolVar(&runTry, "try", false, "fail immediately if the lock is held")
	runCmd.Flags().DurationVar(&runWait, "wait", 0, "give up after this long waiting for the lock (0 blocks forever)")
}

func runRun(name string, command []string) error {
	lock, err := openLock(name)
	if err != nil {
		return err
	}
	defer lock.Close()

	wait := runWait
	if wait == 0 {
		wait = cfg.DefaultWait
	}

	guard, err := acquireGuard(lock, runTry, wait, cfg.PollInterval)
	if err != nil {
		return err
	}
	defer guard.Unlock()

	child := exec.Command(command[0], command[1:]...)
	child.Stdin = os.Stdin
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr

	err = child.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// Release before exiting; os.Exit skips deferred calls.
		guard.Unlock()
		_ = lock.Close()
		os.Exit(exitErr.ExitCode())
	}
	return err
}

// acquireGuard acquires the lock according to the try/wait policy. Bounded
// waits poll TryLock: the underlying primitive has no timed acquisition.
func acquireGuard(lock *namedlock.NamedLock, try bool, wait, poll time.Duration) (*namedlock.Guard, error) {
	if try {
		return lock.TryLock()
	}
	if wait <= 0 {
		return lock.Lock()
	}

	deadline := time.Now().Add(wait)
	for {
		guard, err := lock.TryLock()
		if err == nil {
			return guard, nil
		}
		if !errors.Is(err, namedlock.ErrWouldBlock) {
			return nil, err
		}
		if time.Now().After(deadline) {
			return nil, util.ErrWaitTimeout
		}
		time.Sleep(poll)
	}
}
