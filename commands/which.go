package commands

import (
	"fmt"
	"path/filepath"

	"github.com/osama1998H/ocean/core/vos"
)

// Which reports whether each name is a builtin or the host program it would
// run.
func Which(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "اين_الأمر [COMMAND...]",
		Short: "تحديد موقع أمر / Locate a command.",
	}

	return cmd.Run(virtOS, func() int {
		status := 0
		for _, name := range cmd.Flags().Args() {
			if entry, ok := LookupBuiltin(name); ok {
				fmt.Fprintf(virtOS.Stdout(), "%s: أمر مدمج / shell builtin (%s)\n", name, entry.ID)
				continue
			}

			path, ok := lookPath(virtOS, name)
			if !ok {
				printError(virtOS, "'%s' غير موجود", "'%s' not found", name)
				status = 1
				continue
			}
			fmt.Fprintln(virtOS.Stdout(), path)
		}
		return status
	})
}

// lookPath searches PATH for an executable regular file called name.
func lookPath(virtOS vos.VOS, name string) (string, bool) {
	candidates := []string{name}
	if filepath.Base(name) == name {
		candidates = nil
		for _, dir := range filepath.SplitList(virtOS.Getenv("PATH")) {
			if dir == "" {
				dir = "."
			}
			candidates = append(candidates, filepath.Join(dir, name))
		}
	}

	for _, candidate := range candidates {
		fi, err := virtOS.Stat(candidate)
		if err != nil || fi.IsDir() || fi.Mode()&0111 == 0 {
			continue
		}
		return candidate, true
	}
	return "", false
}

var _ vos.ProcessFunc = Which

func init() {
	mustAddBuiltin("which", "تحديد موقع أمر / Locate a command", Which, "اين_الأمر", "which")
}
