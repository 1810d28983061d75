package commands

import (
	"io"

	"github.com/osama1998H/ocean/core/vos"
)

// Cat concatenates files, or piped input if no files are given.
func Cat(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "اقرأ [FILE]...",
		Short: "قراءة محتوى ملف / Concatenate FILE(s) to standard output.",
	}

	return cmd.Run(virtOS, func() int {
		return cmd.RunEachFileOrStdin(virtOS, cmd.Flags().Args(), func(name string, fd io.Reader) error {
			_, err := io.Copy(virtOS.Stdout(), fd)
			return err
		})
	})
}

var _ vos.ProcessFunc = Cat

func init() {
	mustAddBuiltin("cat", "قراءة محتوى ملف / Read files", Cat, "اقرأ", "cat")
}
