package commands

import (
	"fmt"

	"github.com/osama1998H/ocean/core/vos"
)

// Cd changes the session working directory.
//
// With no argument it goes to $HOME, "-" goes to $OLDPWD and prints it.
func Cd(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "انتقل [DIR|-]",
		Short: "الانتقال إلى مجلد / Change the working directory.",
	}

	return cmd.Run(virtOS, func() int {
		args := cmd.Flags().Args()

		var target string
		printTarget := false
		switch {
		case len(args) > 1:
			printError(virtOS, "عدد كبير من المعاملات", "too many arguments")
			return 1

		case len(args) == 0 || args[0] == "":
			home, err := virtOS.UserHomeDir()
			if err != nil {
				printError(virtOS, "لا يمكن إيجاد مجلد المنزل", "Cannot find home directory")
				return 1
			}
			target = home

		case args[0] == "-":
			old, ok := virtOS.LookupEnv(vos.EnvOldPWD)
			if !ok || old == "" {
				printError(virtOS, "المجلد السابق غير محدد", "OLDPWD not set")
				return 1
			}
			target = old
			printTarget = true

		default:
			target = args[0]
		}

		if err := virtOS.Chdir(target); err != nil {
			printError(virtOS, "لا يمكن الانتقال إلى '%s' - %v", "Cannot change to '%s' - %v", target, err)
			return 1
		}

		if printTarget {
			fmt.Fprintln(virtOS.Stdout(), virtOS.Getwd())
		}
		return 0
	})
}

var _ vos.ProcessFunc = Cd

func init() {
	mustAddBuiltin("cd", "الانتقال إلى مجلد / Change directory", Cd, "انتقل", "cd")
}
