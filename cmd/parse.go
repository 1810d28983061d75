package cmd

import (
	"fmt"
	"strings"

	"github.com/osama1998H/ocean/core/shell"
	"github.com/spf13/cobra"
)

var showTokens bool

// parseCmd shows how a line is tokenized and parsed without running it.
var parseCmd = &cobra.Command{
	Use:   "parse LINE...",
	Short: "Print the command tree for a line without running it.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		line := strings.Join(args, " ")
		w := cmd.OutOrStdout()

		if showTokens {
			for _, token := range shell.Tokenize(line) {
				fmt.Fprintln(w, token)
			}
			fmt.Fprintln(w)
		}

		tree, err := shell.Parse(line)
		if err != nil {
			return err
		}
		return shell.DebugPrint(w, tree)
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVarP(&showTokens, "tokens", "t", false, "print the tokens before the tree")
}
