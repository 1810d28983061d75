package commands

import (
	"github.com/osama1998H/ocean/core/vos"
)

// Rm removes files. Directories are removed along with their contents.
func Rm(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "احذف [OPTION...] FILE...",
		Short: "حذف ملف / Remove files or directories.",
	}

	// Accepted for compatibility, directories are always removed recursively.
	cmd.Flags().BoolLong("recursive", 'r', "remove directories and their contents recursively (always on)")
	force := cmd.Flags().BoolLong("force", 'f', "ignore missing files and arguments")

	return cmd.Run(virtOS, func() int {
		files := cmd.Flags().Args()
		if len(files) == 0 && !*force {
			printError(virtOS, "يرجى تحديد ملف للحذف", "missing operand")
			return 1
		}

		anyFailed := false
		for _, file := range files {
			stat, statErr := lstatIfPossible(virtOS, file)
			switch {
			case vos.IsNotExist(statErr):
				if !*force {
					printError(virtOS, "لا يمكن حذف '%s' - %v", "Cannot remove '%s' - %v", file, statErr)
					anyFailed = true
				}
			case statErr != nil:
				printError(virtOS, "لا يمكن حذف '%s' - %v", "Cannot remove '%s' - %v", file, statErr)
				anyFailed = true
			case stat.IsDir():
				if err := virtOS.RemoveAll(file); err != nil {
					printError(virtOS, "لا يمكن حذف '%s' - %v", "Cannot remove '%s' - %v", file, err)
					anyFailed = true
				}
			default:
				if err := virtOS.Remove(file); err != nil {
					printError(virtOS, "لا يمكن حذف '%s' - %v", "Cannot remove '%s' - %v", file, err)
					anyFailed = true
				}
			}
		}

		if anyFailed {
			return 1
		}
		return 0
	})
}

var _ vos.ProcessFunc = Rm

func init() {
	mustAddBuiltin("rm", "حذف ملف / Remove files", Rm, "احذف", "rm")
}
