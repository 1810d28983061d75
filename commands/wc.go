package commands

import (
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/osama1998H/ocean/core/vos"
)

type wcCount struct {
	bytes int
	lines int
	chars int
	words int
	name  string

	inSpace bool
}

func (w *wcCount) Write(data []byte) (int, error) {
	for _, c := range data {
		isFirstByte := w.bytes == 0
		w.bytes++

		// Assume UTF-8 characters. Bytes following the leading byte always
		// have MSB of 0b10 indicating they're part of a previous character.
		if c < 0b10000000 || c > 0b10111111 {
			w.chars++
		}

		if c == '\n' {
			w.lines++
		}

		// Multi-byte sequences never contain ASCII bytes, so only those can
		// be spaces.
		if c < utf8.RuneSelf && unicode.IsSpace(rune(c)) {
			w.inSpace = true
		} else {
			if w.inSpace || isFirstByte {
				w.words++
			}
			w.inSpace = false
		}
	}

	return len(data), nil
}

func NewWcCount(name string, fd io.Reader) (*wcCount, error) {
	var out wcCount
	out.name = name

	if _, err := io.Copy(&out, fd); err != nil {
		return nil, err
	}

	return &out, nil
}

func (w *wcCount) Increment(other *wcCount) {
	w.bytes += other.bytes
	w.chars += other.chars
	w.lines += other.lines
	w.words += other.words
}

// Wc counts newlines, words and bytes in files or piped input.
func Wc(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "عد [-c|-m] [-lw] [FILE...]",
		Short: "عد الأسطر والكلمات / Print newline, word, and byte counts for each FILE.",
	}

	opts := cmd.Flags()
	writeLines := opts.Bool('l', "print the newline counts")
	writeWords := opts.Bool('w', "print the word counts")
	writeBytes := opts.Bool('c', "print the byte counts")
	writeChars := opts.Bool('m', "print the character counts")

	return cmd.RunE(virtOS, func() error {
		args := opts.Args()

		nonePicked := !(*writeLines || *writeWords || *writeBytes || *writeChars)

		var cols []func(*wcCount) string
		if *writeLines || nonePicked {
			cols = append(cols, func(w *wcCount) string {
				return fmt.Sprint(w.lines)
			})
		}
		if *writeWords || nonePicked {
			cols = append(cols, func(w *wcCount) string {
				return fmt.Sprint(w.words)
			})
		}
		if *writeChars {
			cols = append(cols, func(w *wcCount) string {
				return fmt.Sprint(w.chars)
			})
		}
		if *writeBytes || nonePicked {
			cols = append(cols, func(w *wcCount) string {
				return fmt.Sprint(w.bytes)
			})
		}

		if len(args) == 0 {
			count, err := NewWcCount("", virtOS.Stdin())
			if err != nil {
				return err
			}
			writeWcCounts(virtOS.Stdout(), cols, count)
			return nil
		}

		cols = append(cols, func(w *wcCount) string {
			return w.name
		})

		var counts []*wcCount
		for _, path := range args {
			count, err := countFile(virtOS, path)
			if err != nil {
				return err
			}
			counts = append(counts, count)
		}

		writeWcCounts(virtOS.Stdout(), cols, counts...)
		return nil
	})
}

func countFile(virtOS vos.VOS, path string) (*wcCount, error) {
	fd, err := virtOS.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	return NewWcCount(path, fd)
}

func writeWcCounts(w io.Writer, cols []func(*wcCount) string, counts ...*wcCount) {
	display := func(count *wcCount) {
		for i, col := range cols {
			if i != 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprint(w, col(count))
		}
		fmt.Fprintln(w)
	}

	total := &wcCount{name: "total"}
	for _, count := range counts {
		total.Increment(count)
		display(count)
	}

	if len(counts) > 1 {
		display(total)
	}
}

var _ vos.ProcessFunc = Wc

func init() {
	mustAddBuiltin("wc", "عد الأسطر والكلمات / Count lines and words", Wc, "عد", "wc")
}
