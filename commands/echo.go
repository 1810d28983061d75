package commands

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/osama1998H/ocean/core/vos"
)

var (
	unescapeOctal   = regexp.MustCompile(`\\0[0-7][0-7]?[0-7]?`)
	unescapeHex     = regexp.MustCompile(`\\x[0-9a-fA-F][0-9a-fA-F]?`)
	unescapeReplace = strings.NewReplacer(
		`\n`, "\n", // newline
		`\r`, "\r", // carriage return
		`\t`, "\t", // horizontal tab
		`\\`, `\`, // backslash literal
		`\b`, "\b", // backspace
		`\a`, "\a", // alert
		`\f`, "\f", // form feed
		`\v`, "\v", // vertical tab
	)
)

func unescape(s string) string {
	s = unescapeReplace.Replace(s)
	s = unescapeOctal.ReplaceAllStringFunc(s, func(arg string) string {
		out, err := strconv.ParseInt(arg[2:], 8, 32)
		if err != nil {
			return arg
		}
		return string(rune(out))
	})
	s = unescapeHex.ReplaceAllStringFunc(s, func(arg string) string {
		out, err := strconv.ParseInt(arg[2:], 16, 32)
		if err != nil {
			return arg
		}
		return string(rune(out))
	})
	return s
}

// Echo writes its arguments separated by spaces.
func Echo(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "اطبع [-ne] [ARG]...",
		Short: "طباعة نص / Display a line of text.",
	}

	opt := cmd.Flags()
	escaped := opt.Bool('e', "interpret backslash escapes")
	noNewline := opt.Bool('n', "do not output the trailing newline")

	return cmd.Run(virtOS, func() int {
		w := virtOS.Stdout()
		for i, arg := range opt.Args() {
			if i > 0 {
				fmt.Fprint(w, " ")
			}

			if *escaped {
				arg = unescape(arg)
			}

			fmt.Fprint(w, arg)
		}

		if !*noNewline {
			fmt.Fprintln(w)
		}

		return 0
	})
}

var _ vos.ProcessFunc = Echo

func init() {
	mustAddBuiltin("echo", "طباعة نص / Print text", Echo, "اطبع", "echo")
}
