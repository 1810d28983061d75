package commands

import (
	"fmt"

	"github.com/osama1998H/ocean/core/vos"
)

const (
	// Version of the interpreter.
	Version = "0.1.0"

	ProjectURL = "https://github.com/osama1998H/ocean"
)

// VersionString is the first line printed by the version builtin.
func VersionString() string {
	return fmt.Sprintf("محيط (Ocean) v%s", Version)
}

// ShowVersion prints version information.
func ShowVersion(virtOS vos.VOS) int {
	w := virtOS.Stdout()
	fmt.Fprintln(w, VersionString())
	fmt.Fprintln(w, "مشروع ترقيم - Tarqeem Project")
	fmt.Fprintln(w, ProjectURL)
	return 0
}

var _ vos.ProcessFunc = ShowVersion

func init() {
	mustAddBuiltin("version", "عرض الإصدار / Show the version", ShowVersion, "اصدار", "version")
}
