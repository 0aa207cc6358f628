// Package cli implements the namedlock command line interface.
package cli

import (
	"fmt"

	"github.com/named-lock/namedlock/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	lockDir string
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "namedlock",
	Short: "Run commands under a cross-process named lock",
	Long: `namedlock serializes access to a shared resource between unrelated
processes on the same machine, in the spirit of flock(1) but identified by a
plain name instead of a file the caller must manage.

On Unix the lock is a flock(2)-ed file in the temp directory; on Windows it
is a named mutex in the Global namespace.`,
	Version: "1.0.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if lockDir == "" {
			lockDir = cfg.LockDir
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/namedlock/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&lockDir, "dir", "", "directory for lock files (Unix only; default is $TMPDIR or /tmp)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(tryCmd)
	rootCmd.AddCommand(pathCmd)
}

func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		return
	}

	if path, err := config.DefaultPath(); err == nil {
		cfgFile = path
	}
}
