package core

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var bannerLines = []string{
	"",
	"🌊  محيط (Ocean) - الصدفة العربية",
	"    Arabic Shell v%s",
	"",
	"مشروع ترقيم - Tarqeem Project",
	"اكتب 'مساعدة' للمساعدة | Type 'مساعدة' for help",
	"",
	"دعم الأنابيب والتوجيه: cmd1 | cmd2, cmd > file",
	"",
}

// WriteBanner prints the welcome banner for the given version.
func WriteBanner(w io.Writer, version string, col *color.Color) {
	rule := strings.Repeat("═", 60)

	fmt.Fprintln(w)
	fmt.Fprintln(w, col.Sprint("╔"+rule+"╗"))
	for _, line := range bannerLines {
		if strings.Contains(line, "%s") {
			line = fmt.Sprintf(line, version)
		}
		fmt.Fprintf(w, "   %s\n", line)
	}
	fmt.Fprintln(w, col.Sprint("╚"+rule+"╝"))
	fmt.Fprintln(w)
}
