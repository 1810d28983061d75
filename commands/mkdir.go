package commands

import (
	"fmt"

	"github.com/osama1998H/ocean/core/vos"
)

// Mkdir creates directories along with any missing parents.
func Mkdir(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "انشئ [OPTION...] DIRECTORY...",
		Short: "إنشاء مجلد / Create directories and their parents if they don't exist.",
	}

	// Accepted for compatibility, parents are always created.
	cmd.Flags().BoolLong("parents", 'p', "make parents if needed (always on)")
	verbose := cmd.Flags().BoolLong("verbose", 'v', "print line for every created directory")

	return cmd.Run(virtOS, func() int {
		directories := cmd.Flags().Args()
		if len(directories) == 0 {
			printError(virtOS, "يرجى تحديد اسم المجلد", "missing operand")
			return 1
		}

		anyFailed := false
		for _, dir := range directories {
			err := virtOS.MkdirAll(dir, 0755)
			switch {
			case err != nil:
				printError(virtOS, "لا يمكن إنشاء '%s' - %v", "Cannot create '%s' - %v", dir, err)
				anyFailed = true

			case *verbose:
				fmt.Fprintf(virtOS.Stdout(), "mkdir: created directory '%s'\n", dir)
			}
		}

		if anyFailed {
			return 1
		}
		return 0
	})
}

var _ vos.ProcessFunc = Mkdir

func init() {
	mustAddBuiltin("mkdir", "إنشاء مجلد / Create directories", Mkdir, "انشئ", "mkdir")
}
