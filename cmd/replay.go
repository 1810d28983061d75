package cmd

import (
	"os"
	"time"

	"github.com/osama1998H/ocean/core/ttylog"
	"github.com/spf13/cobra"
)

var maxSleep time.Duration

// replayCmd plays a recorded session
var replayCmd = &cobra.Command{
	Use:   "replay FILE." + ttylog.AsciicastFileExt,
	Short: "Play a recorded interactive session.",
	Long:  `Plays a recorded interactive session back to the current terminal.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		fd, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer fd.Close()

		output := ttylog.NewClientOutput(cmd.OutOrStdout())
		return ttylog.Replay(ttylog.NewAsciicastLogSource(fd), ttylog.NewRealTimePlayback(maxSleep, output))
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().DurationVar(&maxSleep, "max-sleep", 2*time.Second, "longest pause between events")
}
