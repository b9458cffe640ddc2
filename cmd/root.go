// Package cmd wires the cobra CLI surface around pkg/tokencode and
// pkg/credentials: `code` prints a single TOTP code, `run` gates a
// subprocess behind it.
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var verbose bool

var rootCmd = &cobra.Command{
	Use:     "oathmfa",
	Short:   "Gate AWS session credentials behind a hardware OATH token",
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(codeCmd, runCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
