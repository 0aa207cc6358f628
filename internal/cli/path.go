package cli

import (
	"fmt"

	"github.com/named-lock/namedlock"
	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path <name>",
	Short: "Print the OS resource a lock name resolves to",
	Long: `Print the lock file path (Unix) or named mutex identifier (Windows)
that backs the given lock name. Useful for inspecting locks with external
tools.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := namedlock.ValidateName(args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), lockPath(args[0]))
		return nil
	},
}
