package commands

import (
	"errors"
	"fmt"

	"github.com/osama1998H/ocean/core/vos"
)

var errNoUser = errors.New("لا يوجد مستخدم / no user set in USER or LOGNAME")

// Whoami prints the session user from the environment.
func Whoami(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "من_انا",
		Short: "عرض اسم المستخدم / Print the current user.",

		// Never bail, even if args are bad.
		NeverBail: true,
	}

	return cmd.RunE(virtOS, func() error {
		for _, key := range []string{"USER", "LOGNAME"} {
			if user := virtOS.Getenv(key); user != "" {
				fmt.Fprintln(virtOS.Stdout(), user)
				return nil
			}
		}
		return errNoUser
	})
}

var _ vos.ProcessFunc = Whoami

func init() {
	mustAddBuiltin("whoami", "عرض اسم المستخدم / Print the current user", Whoami, "من_انا", "whoami")
}
