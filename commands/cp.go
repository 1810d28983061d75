package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/osama1998H/ocean/core/vos"
	"github.com/spf13/afero"
)

// Cp copies files, and directories when -r is given.
func Cp(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "انسخ [-r] SOURCE... DEST",
		Short: "نسخ ملف / Copy SOURCE to DEST, or multiple SOURCEs into directory DEST.",
	}

	recursive := cmd.Flags().BoolLong("recursive", 'r', "copy directories recursively")

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

			switch {
			case sameFile(virtOS, src, target):
				printError(virtOS, "'%s' و '%s' نفس الملف", "'%s' and '%s' are the same file", src, target)
				anyFailed = true
				continue
			case *recursive && isDir(virtOS, src) && isWithin(virtOS, src, target):
				printError(virtOS, "لا يمكن نسخ المجلد '%s' إلى داخله '%s'", "cannot copy a directory, '%s', into itself, '%s'", src, target)
				anyFailed = true
				continue
			}

			if err := copyPath(virtOS, src, target, *recursive); err != nil {
				printError(virtOS, "لا يمكن نسخ '%s' إلى '%s' - %v", "Cannot copy '%s' to '%s' - %v", src, target, err)
				anyFailed = true
			}
		}

		if anyFailed {
			return 1
		}
		return 0
	})
}

func isDir(fs afero.Fs, name string) bool {
	ok, err := afero.IsDir(fs, name)
	return err == nil && ok
}

// sameFile reports whether src and dst name the same existing file.
func sameFile(virtOS vos.VOS, src, dst string) bool {
	srcInfo, err := virtOS.Stat(src)
	if err != nil {
		return false
	}

	wd := virtOS.Getwd()
	if vos.ResolvePath(wd, src) == vos.ResolvePath(wd, dst) {
		return true
	}

	dstInfo, err := virtOS.Stat(dst)
	if err != nil {
		return false
	}
	return os.SameFile(srcInfo, dstInfo)
}

// isWithin reports whether dst is dir or a path below it.
func isWithin(virtOS vos.VOS, dir, dst string) bool {
	wd := virtOS.Getwd()
	rel, err := filepath.Rel(vos.ResolvePath(wd, dir), vos.ResolvePath(wd, dst))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, "../")
}

func copyPath(virtOS vos.VOS, src, dst string, recursive bool) error {
	stat, err := virtOS.Stat(src)
	if err != nil {
		return err
	}

	if !stat.IsDir() {
		return copyFile(virtOS, src, dst, stat.Mode())
	}
	if !recursive {
		return fmt.Errorf("-r not specified; omitting directory")
	}

	return afero.Walk(virtOS, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if info.IsDir() {
			return virtOS.MkdirAll(target, info.Mode().Perm())
		}
		return copyFile(virtOS, path, target, info.Mode())
	})
}

func copyFile(virtOS vos.VOS, src, dst string, mode os.FileMode) error {
	in, err := virtOS.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := virtOS.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

var _ vos.ProcessFunc = Cp

func init() {
	mustAddBuiltin("cp", "نسخ ملف / Copy files", Cp, "انسخ", "cp")
}
