package commands

import (
	"fmt"

	"github.com/osama1998H/ocean/core/vos"
)

// Env prints the session environment, sorted by name.
func Env(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "بيئة",
		Short: "عرض متغيرات البيئة / Print the environment.",
	}

	return cmd.Run(virtOS, func() int {
		for _, envDef := range virtOS.Environ() {
			fmt.Fprintln(virtOS.Stdout(), envDef)
		}
		return 0
	})
}

var _ vos.ProcessFunc = Env

func init() {
	mustAddBuiltin("env", "عرض متغيرات البيئة / Print the environment", Env, "بيئة", "env")
}
