package commands

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/osama1998H/ocean/core/vos"
	"github.com/spf13/afero"
)

// Ln creates symbolic links.
func Ln(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "رابط [-sf] TARGET [LINK_NAME]",
		Short: "إنشاء رابط / Create a symbolic link to TARGET named LINK_NAME.",
	}

	// Only symbolic links are supported so -s is implied.
	cmd.Flags().BoolLong("symbolic", 's', "make symbolic links (always on)")
	force := cmd.Flags().BoolLong("force", 'f', "remove existing destination files")

	return cmd.Run(virtOS, func() int {
		args := cmd.Flags().Args()
		var target, linkName string
		switch len(args) {
		case 1:
			target, linkName = args[0], filepath.Base(args[0])
		case 2:
			target, linkName = args[0], args[1]
		default:
			printError(virtOS, "يرجى تحديد الهدف واسم الرابط", "expected TARGET [LINK_NAME]")
			return 1
		}

		if isDir(virtOS, linkName) {
			linkName = filepath.Join(linkName, filepath.Base(target))
		}

		if err := symlink(virtOS, target, linkName, *force); err != nil {
			printError(virtOS, "لا يمكن إنشاء الرابط '%s' - %v", "Cannot create link '%s' - %v", linkName, err)
			return 1
		}
		return 0
	})
}

func symlink(virtOS vos.VOS, target, linkName string, force bool) error {
	linker, ok := virtOS.(afero.Linker)
	if !ok {
		return afero.ErrNoSymlink
	}

	if force {
		if _, err := lstatIfPossible(virtOS, linkName); err == nil {
			if err := virtOS.Remove(linkName); err != nil {
				return err
			}
		}
	}

	if err := linker.SymlinkIfPossible(target, linkName); err != nil {
		var linkErr *os.LinkError
		if errors.As(err, &linkErr) {
			return linkErr.Err
		}
		return err
	}
	return nil
}

var _ vos.ProcessFunc = Ln

func init() {
	mustAddBuiltin("ln", "إنشاء رابط / Create links", Ln, "رابط", "ln")
}
