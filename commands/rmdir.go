package commands

import (
	"fmt"
	"path"

	"github.com/osama1998H/ocean/core/vos"
	"github.com/spf13/afero"
)

// Rmdir removes empty directories.
func Rmdir(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "rmdir [OPTION...] DIRECTORY...",
		Short: "حذف مجلد فارغ / Remove empty directories.",
	}

	parents := cmd.Flags().BoolLong("parents", 'p', "remove DIRECTORY and its ancestors")
	verbose := cmd.Flags().BoolLong("verbose", 'v', "print line for every deleted directory")

	return cmd.Run(virtOS, func() int {
		directories := cmd.Flags().Args()
		if len(directories) == 0 {
			printError(virtOS, "يرجى تحديد اسم المجلد", "missing operand")
			return 1
		}

		anyFailed := false
		for _, dir := range directories {
			steps := []string{path.Clean(dir)}
			if *parents {
				for parent := path.Dir(steps[0]); parent != "." && parent != "/"; parent = path.Dir(parent) {
					steps = append(steps, parent)
				}
			}

			for _, step := range steps {
				if err := removeEmptyDir(virtOS, step); err != nil {
					printError(virtOS, "لا يمكن حذف '%s' - %v", "Cannot remove '%s' - %v", step, err)
					anyFailed = true
					break
				}

				if *verbose {
					fmt.Fprintf(virtOS.Stdout(), "rmdir: removing directory, '%s'\n", step)
				}
			}
		}

		if anyFailed {
			return 1
		}
		return 0
	})
}

func removeEmptyDir(virtOS vos.VOS, dir string) error {
	stat, err := virtOS.Stat(dir)
	if err != nil {
		return err
	}
	if !stat.IsDir() {
		return fmt.Errorf("not a directory")
	}

	empty, err := afero.IsEmpty(virtOS, dir)
	switch {
	case err != nil:
		return err
	case !empty:
		return fmt.Errorf("directory not empty")
	}

	return virtOS.Remove(dir)
}

var _ vos.ProcessFunc = Rmdir

func init() {
	mustAddBuiltin("rmdir", "حذف مجلد فارغ / Remove empty directories", Rmdir, "rmdir")
}
