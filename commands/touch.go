package commands

import (
	"time"

	"github.com/osama1998H/ocean/core/vos"
)

// Touch updates file times, creating missing files.
func Touch(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "المس [OPTION...] FILE...",
		Short: "إنشاء ملف فارغ / Update the access and modification times of files to now.",
	}

	noCreate := cmd.Flags().BoolLong("no-create", 'c', "don't create files")

	return cmd.Run(virtOS, func() int {
		paths := cmd.Flags().Args()
		if len(paths) == 0 {
			printError(virtOS, "يرجى تحديد اسم الملف", "missing operand")
			return 1
		}

		now := time.Now()

		var anyFailed bool
		for _, path := range paths {
			err := virtOS.Chtimes(path, now, now)
			switch {
			case vos.IsNotExist(err) && !*noCreate:
				fd, err := virtOS.Create(path)
				if err != nil {
					printError(virtOS, "لا يمكن إنشاء '%s' - %v", "Cannot create '%s' - %v", path, err)
					anyFailed = true
					continue
				}
				fd.Close()
			case vos.IsNotExist(err) && *noCreate:
				// Not an error.
			case err != nil:
				printError(virtOS, "لا يمكن تحديث '%s' - %v", "Cannot set times of '%s' - %v", path, err)
				anyFailed = true
			}
		}

		if anyFailed {
			return 1
		}
		return 0
	})
}

var _ vos.ProcessFunc = Touch

func init() {
	mustAddBuiltin("touch", "إنشاء ملف فارغ / Create empty files", Touch, "المس", "touch")
}
