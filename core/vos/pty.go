package vos

import (
	"os"

	"github.com/abiosoft/readline"
	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// DetectPTY describes the terminal attached to f.
func DetectPTY(f *os.File) PTY {
	if !IsTerminal(f) {
		return PTY{Width: 80, Height: 24}
	}

	width, height, err := readline.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		width, height = 80, 24
	}
	return PTY{Width: width, Height: height, IsPTY: true}
}
