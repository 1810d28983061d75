package commands

import (
	"github.com/osama1998H/ocean/core/vos"
)

// Exit ends the session. Arguments are ignored and the status is always 0.
func Exit(virtOS vos.VOS) int {
	virtOS.Exit(0)
	return 0
}

var _ vos.ProcessFunc = Exit

func init() {
	mustAddBuiltin("exit", "الخروج من الصدفة / Exit the shell", Exit, "خروج", "exit", "quit")
}
