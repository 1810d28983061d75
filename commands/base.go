package commands

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/osama1998H/ocean/core/vos"
	getopt "github.com/pborman/getopt/v2"
	"golang.org/x/text/unicode/norm"
)

// BuiltinEntry is a registered builtin and every name it answers to.
type BuiltinEntry struct {
	// ID is the canonical English name of the operation.
	ID string
	// Short is a bilingual one line description.
	Short string
	// Names holds the aliases in registration order, Arabic first.
	Names []string
	Proc  vos.ProcessFunc
}

var (
	builtins = make(map[string]*BuiltinEntry)
	aliases  = make(map[string]string)
)

// mustAddBuiltin registers a builtin under its ID and aliases, it panics on
// duplicates.
func mustAddBuiltin(id, short string, proc vos.ProcessFunc, names ...string) {
	if _, ok := builtins[id]; ok {
		panic(fmt.Sprintf("duplicate builtin %q", id))
	}

	entry := &BuiltinEntry{ID: id, Short: short, Names: names, Proc: proc}
	builtins[id] = entry

	for _, name := range names {
		key := norm.NFC.String(name)
		if other, ok := aliases[key]; ok {
			panic(fmt.Sprintf("alias %q of %q already used by %q", name, id, other))
		}
		aliases[key] = id
	}
}

// LookupBuiltin finds a builtin by any of its aliases.
func LookupBuiltin(name string) (*BuiltinEntry, bool) {
	id, ok := aliases[norm.NFC.String(name)]
	if !ok {
		return nil, false
	}
	return builtins[id], true
}

// ListBuiltinCommands returns the registered builtins sorted by ID.
func ListBuiltinCommands() []BuiltinEntry {
	var out []BuiltinEntry
	for _, entry := range builtins {
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// BuiltinNames returns every alias, sorted.
func BuiltinNames() []string {
	var out []string
	for alias := range aliases {
		out = append(out, alias)
	}
	sort.Strings(out)
	return out
}

// printError writes a bilingual error line to stderr. Both formats receive
// the same arguments.
func printError(virtOS vos.VOS, arabic, english string, a ...interface{}) {
	fmt.Fprintf(virtOS.Stderr(), "خطأ: %s / Error: %s\n", fmt.Sprintf(arabic, a...), fmt.Sprintf(english, a...))
}

type SimpleCommand struct {
	// Use holds a one line usage string
	Use string
	// Short holds a one line description of the command.
	Short string
	// ShowHelp sets whether help is displayed or not.
	// If this is non-nil when Run() is called, then the default help flag isn't
	// added.
	ShowHelp *bool
	// NeverBail skips interacting with stdout/stderr on failure and
	// always runs the callback.
	NeverBail bool

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (s *SimpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
	}

	return s.flags
}

// PrintHelp writes help for the command to the given writer.
func (s *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, s.Use)
	fmt.Fprintln(w, s.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	s.Flags().PrintOptions(w)
}

// Run the command, if flag parsing was succcessful call the callback.
func (s *SimpleCommand) Run(virtOS vos.VOS, callback func() int) int {
	opts := s.Flags()

	// Add help flag if not overridden.
	if s.ShowHelp == nil {
		s.ShowHelp = opts.BoolLong("help", 'h', "show this help and exit")
	}

	err := opts.Getopt(virtOS.Args(), nil)
	if err != nil {
		virtOS.LogInvalidInvocation(err)
	}

	if err != nil && !s.NeverBail {
		fmt.Fprintf(virtOS.Stderr(), "error: %s\n\n", err)

		s.PrintHelp(virtOS.Stderr())
		return 1
	}

	if *s.ShowHelp {
		s.PrintHelp(virtOS.Stdout())
		return 0
	}

	return callback()
}

// RunE is like Run, but a returned error is reported on stderr and turned
// into exit status 1.
func (s *SimpleCommand) RunE(virtOS vos.VOS, callback func() error) int {
	return s.Run(virtOS, func() int {
		if err := callback(); err != nil {
			s.LogProgramError(virtOS, err)
			return 1
		}
		return 0
	})
}

// LogProgramError writes an error prefixed with the program name.
func (s *SimpleCommand) LogProgramError(virtOS vos.VOS, err error) {
	name := "?"
	if args := virtOS.Args(); len(args) > 0 {
		name = args[0]
	}
	fmt.Fprintf(virtOS.Stderr(), "%s: %v\n", name, err)
}

// RunEachFileOrStdin calls fn for every file, or once with stdin if no files
// were given. Failures are reported and processing continues.
func (s *SimpleCommand) RunEachFileOrStdin(virtOS vos.VOS, files []string, fn func(name string, fd io.Reader) error) int {
	if len(files) == 0 {
		if err := fn("-", virtOS.Stdin()); err != nil {
			s.LogProgramError(virtOS, err)
			return 1
		}
		return 0
	}

	anyFailed := false
	for _, file := range files {
		if err := s.runFile(virtOS, file, fn); err != nil {
			s.LogProgramError(virtOS, err)
			anyFailed = true
		}
	}

	if anyFailed {
		return 1
	}
	return 0
}

func (s *SimpleCommand) runFile(virtOS vos.VOS, file string, fn func(name string, fd io.Reader) error) error {
	fd, err := virtOS.Open(file)
	if err != nil {
		return err
	}
	defer fd.Close()

	return fn(file, fd)
}

const (
	colorAlways = "always"
	colorAuto   = "auto"
	colorNever  = "never"
)

var (
	ColorBoldBlue  = color.New(color.FgBlue, color.Bold)
	ColorBoldGreen = color.New(color.FgGreen, color.Bold)
	ColorBoldCyan  = color.New(color.FgCyan, color.Bold)
	ColorBoldRed   = color.New(color.FgRed, color.Bold)
)

// DefaultColorMode is used by ColorPrinter when --color isn't given.
var DefaultColorMode = colorAuto

type ColorPrinter struct {
	value  *string
	virtOS vos.VOS
}

// Init sets up the flag and virtual OS to determine the color output.
func (c *ColorPrinter) Init(flags *getopt.Set, virtOS vos.VOS) {
	c.virtOS = virtOS
	c.value = flags.EnumLong(
		"color",
		rune(0), // No short flag.
		[]string{colorAlways, colorAuto, colorNever},
		DefaultColorMode,
		"colorize the output (always|auto|never)")
}

func (c *ColorPrinter) ShouldColor() bool {
	switch {
	case *c.value == colorNever:
		return false
	case *c.value == colorAlways:
		return true
	default:
		return c.virtOS.GetPTY().IsPTY
	}
}

// Sprintf formats the string, applying color if the output supports it.
func (c *ColorPrinter) Sprintf(col *color.Color, format string, a ...interface{}) string {
	if c.ShouldColor() {
		// Force color because fatih/color disables itself when the host
		// stdout isn't a terminal.
		forced := *col
		forced.EnableColor()
		return forced.Sprintf(format, a...)
	}
	return fmt.Sprintf(format, a...)
}
