package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tryCmd = &cobra.Command{
	Use:   "try <name>",
	Short: "Probe whether a named lock is currently free",
	Long: `Try to acquire the named lock without blocking and release it again
immediately. Exits 0 if the lock was free, with the busy exit code if it is
held by another process.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTryProbe(cmd, args[0])
	},
}

func runTryProbe(cmd *cobra.Command, name string) error {
	lock, err := openLock(name)
	if err != nil {
		return err
	}
	defer lock.Close()

	guard, err := lock.TryLock()
	if err != nil {
		return err
	}
	guard.Unlock()

	fmt.Fprintf(cmd.OutOrStdout(), "%s: free\n", name)
	return nil
}
