package commands

import (
	"fmt"

	"github.com/osama1998H/ocean/core/vos"
)

// Pwd prints the working directory.
func Pwd(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "اين",
		Short: "المسار الحالي / Print the name of the current working directory.",
	}

	return cmd.Run(virtOS, func() int {
		fmt.Fprintln(virtOS.Stdout(), virtOS.Getwd())
		return 0
	})
}

var _ vos.ProcessFunc = Pwd

func init() {
	mustAddBuiltin("pwd", "المسار الحالي / Print working directory", Pwd, "اين", "pwd")
}
