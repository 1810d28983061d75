package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"

	"github.com/osama1998H/ocean/core/vos"
)

// Grep prints lines matching a regular expression.
func Grep(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "ابحث [-inv] PATTERN [FILE]...",
		Short: "البحث في النص / Search files or piped input for lines matching a pattern.",
	}

	invert := cmd.Flags().Bool('v', "select lines not matching the pattern")
	ignoreCase := cmd.Flags().Bool('i', "ignore case distinctions")
	showLineNumbers := cmd.Flags().Bool('n', "prefix each line with its line number")

	return cmd.Run(virtOS, func() int {
		args := cmd.Flags().Args()
		if len(args) == 0 {
			cmd.LogProgramError(virtOS, errors.New("missing argument PATTERN"))
			return 2
		}

		pattern := args[0]
		if *ignoreCase {
			pattern = "(?i)" + pattern
		}
		regex, err := regexp.Compile(pattern)
		if err != nil {
			cmd.LogProgramError(virtOS, err)
			return 2
		}

		files := args[1:]
		showFileName := len(files) > 1
		anyMatched := false
		status := cmd.RunEachFileOrStdin(virtOS, files, func(name string, fd io.Reader) error {
			w := virtOS.Stdout()

			scanner := bufio.NewScanner(fd)
			lineNo := 1
			for scanner.Scan() {
				line := scanner.Bytes()
				lineMatches := regex.Match(line)

				if lineMatches != *invert {
					anyMatched = true
					if showFileName {
						fmt.Fprintf(w, "%s:", name)
					}

					if *showLineNumbers {
						fmt.Fprintf(w, "%d:", lineNo)
					}

					fmt.Fprintf(w, "%s\n", line)
				}
				lineNo++
			}

			return scanner.Err()
		})

		switch {
		case status != 0:
			return 2
		case !anyMatched:
			return 1
		default:
			return 0
		}
	})
}

var _ vos.ProcessFunc = Grep

func init() {
	mustAddBuiltin("grep", "البحث في النص / Search text", Grep, "ابحث", "grep")
}
