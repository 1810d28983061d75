package cmd

import (
	"fmt"
	"strings"

	"github.com/osama1998H/ocean/commands"
	"github.com/spf13/cobra"
)

// builtinsCmd lists the builtin commands
var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the builtin commands and their aliases.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, entry := range commands.ListBuiltinCommands() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", entry.ID, strings.Join(entry.Names, ", "))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
