package commands

import (
	"path/filepath"

	"github.com/osama1998H/ocean/core/vos"
)

// Mv renames files. Sources are moved into DEST when it is a directory.
func Mv(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "انقل SOURCE... DEST",
		Short: "نقل ملف / Rename SOURCE to DEST, or move SOURCE(s) to DIRECTORY.",
	}

	return cmd.Run(virtOS, func() int {
		args := cmd.Flags().Args()
		if len(args) < 2 {
			printError(virtOS, "يرجى تحديد المصدر والوجهة", "missing source or destination")
			return 1
		}

		sources, dest := args[:len(args)-1], args[len(args)-1]
		destIsDir := isDir(virtOS, dest)
		if len(sources) > 1 && !destIsDir {
			printError(virtOS, "الوجهة '%s' ليست مجلدا", "target '%s' is not a directory", dest)
			return 1
		}

		anyFailed := false
		for _, src := range sources {
			target := dest
			if destIsDir {
				target = filepath.Join(dest, filepath.Base(src))
			}

			if err := virtOS.Rename(src, target); err != nil {
				printError(virtOS, "لا يمكن نقل '%s' إلى '%s' - %v", "Cannot move '%s' to '%s' - %v", src, target, err)
				anyFailed = true
			}
		}

		if anyFailed {
			return 1
		}
		return 0
	})
}

var _ vos.ProcessFunc = Mv

func init() {
	mustAddBuiltin("mv", "نقل ملف / Move files", Mv, "انقل", "mv")
}
