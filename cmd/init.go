package cmd

import (
	"log"

	"github.com/osama1998H/ocean/core/config"
	"github.com/spf13/cobra"
)

// initCmd writes the default configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the shell configuration in the --config directory.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		logger := log.New(cmd.ErrOrStderr(), "", 0)

		return config.Initialize(cfgPath, logger)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
