package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/osama1998H/ocean/core/vos"
)

// Help lists the builtins, or describes the ones named as arguments.
func Help(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "مساعدة [COMMAND]...",
		Short: "عرض هذه المساعدة / Show the available commands.",
	}

	var color ColorPrinter
	color.Init(cmd.Flags(), virtOS)

	return cmd.Run(virtOS, func() int {
		entries := ListBuiltinCommands()

		if names := cmd.Flags().Args(); len(names) > 0 {
			entries = nil
			for _, name := range names {
				entry, ok := LookupBuiltin(name)
				if !ok {
					printError(virtOS, "الأمر '%s' غير موجود", "Command '%s' not found", name)
					return 1
				}
				entries = append(entries, *entry)
			}
		}

		w := virtOS.Stdout()
		fmt.Fprintln(w, color.Sprintf(ColorBoldCyan, "أوامر محيط - Ocean Commands"))
		fmt.Fprintln(w)

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, entry := range entries {
			primary, others := entry.Names[0], entry.Names[1:]
			fmt.Fprintf(tw, "  %s\t%s\t%s\n",
				color.Sprintf(ColorBoldGreen, "%s", primary),
				strings.Join(others, ", "),
				entry.Short)
		}
		tw.Flush()

		fmt.Fprintln(w)
		fmt.Fprintln(w, "اكتب '<أمر> --help' للتفاصيل / Type '<command> --help' for details.")
		return 0
	})
}

var _ vos.ProcessFunc = Help

func init() {
	mustAddBuiltin("help", "عرض هذه المساعدة / Show this help", Help, "مساعدة", "help", "?")
}
