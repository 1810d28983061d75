package core

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"
	"github.com/osama1998H/ocean/core/logger"
	"github.com/osama1998H/ocean/core/result"
	"github.com/osama1998H/ocean/core/shell"
	"github.com/osama1998H/ocean/core/vos"
)

const (
	// DefaultName labels the prompt when no name is configured.
	DefaultName = "محيط"

	// GoodbyeMessage is printed when an interactive session ends.
	GoodbyeMessage = "مع السلامة! (Goodbye!)"

	continuationPrompt = "> "
)

var (
	colorName  = color.New(color.FgCyan, color.Bold)
	colorDir   = color.New(color.FgBlue, color.Bold)
	colorError = color.New(color.FgRed)
)

// Shell reads lines, parses them and runs them with an Executor.
type Shell struct {
	// Name labels the prompt.
	Name     string
	Executor *Executor
	Session  *vos.Session

	Stdout io.Writer
	Stderr io.Writer

	// Logger receives diagnostics, may be nil.
	Logger *log.Logger
	// Events receives session events, may be nil.
	Events vos.EventRecorder

	color bool
}

// NewShell creates a shell running commands from dispatch in session.
func NewShell(session *vos.Session, dispatch Dispatcher, stdout, stderr io.Writer) *Shell {
	return &Shell{
		Name:    DefaultName,
		Session: session,
		Stdout:  stdout,
		Stderr:  stderr,
		Executor: &Executor{
			Dispatch: dispatch,
			Session:  session,
			Stdout:   stdout,
			Stderr:   stderr,
		},
	}
}

// SetColor turns colored prompts and errors on or off.
func (s *Shell) SetColor(enabled bool) {
	s.color = enabled
	s.Executor.ErrorColor = nil
	if enabled {
		s.Executor.ErrorColor = forceColor(colorError)
	}
}

// forceColor copies col and enables it even if the host stdout isn't a
// terminal.
func forceColor(col *color.Color) *color.Color {
	forced := *col
	forced.EnableColor()
	return &forced
}

func (s *Shell) paint(col *color.Color, text string) string {
	if !s.color {
		return text
	}
	return forceColor(col).Sprint(text)
}

// Prompt renders the prompt for the next line, the working directory is
// shortened relative to HOME.
func (s *Shell) Prompt() string {
	home, _ := s.Session.Env().UserHomeDir()
	cwd := ShortenPath(s.Session.Getwd(), home)

	prompt := fmt.Sprintf("%s [%s]", s.paint(colorName, s.Name), s.paint(colorDir, cwd))
	if code := s.Executor.LastExitCode(); code != 0 {
		prompt += " " + s.paint(colorError, fmt.Sprintf("[%d]", code))
	}
	return prompt + "> "
}

// ShortenPath replaces a leading home directory with "~".
func ShortenPath(path, home string) string {
	switch {
	case home == "" || home == "/":
		return path
	case path == home:
		return "~"
	case strings.HasPrefix(path, home+"/"):
		return "~" + strings.TrimPrefix(path, home)
	default:
		return path
	}
}

// RunLine parses and executes a single line, displaying its result. Exit
// results are returned to the caller.
func (s *Shell) RunLine(ctx context.Context, line string) result.Result {
	res, _ := s.eval(ctx, line, true)
	return res
}

// eval runs line. If final is false and the line ends in a chain operator
// nothing is run and incomplete is true.
func (s *Shell) eval(ctx context.Context, line string, final bool) (res result.Result, incomplete bool) {
	cmd, err := shell.Parse(line)
	if err != nil {
		var parseErr *shell.ParseError
		if !final && errors.As(err, &parseErr) && parseErr.Incomplete() {
			return result.None(), true
		}

		s.logf("syntax error in %q: %v", line, err)
		s.record(&logger.SyntaxError{Line: line, Message: err.Error()})
		fmt.Fprintln(s.Stderr, s.paint(colorError, err.Error()))
		return result.None(), false
	}

	res = s.Executor.Execute(ctx, cmd, nil)
	s.Executor.Display(res)
	return res, false
}

// NewReadline creates a line editor that completes builtins and paths.
// An empty historyFile keeps history in memory only and a limit of zero
// disables it.
func (s *Shell) NewReadline(stdin io.ReadCloser, historyFile string, historyLimit int, commands []string) (*readline.Instance, error) {
	if historyLimit == 0 {
		historyLimit = -1
	}

	cfg := &readline.Config{
		Prompt:          s.Prompt(),
		HistoryFile:     historyFile,
		HistoryLimit:    historyLimit,
		InterruptPrompt: "^C",
		AutoComplete: &Completer{
			Commands: commands,
			Session:  s.Session,
		},
		Stdin:  stdin,
		Stdout: s.Stdout,
		Stderr: s.Stderr,
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}
	return readline.NewEx(cfg)
}

// LineReader reads edited lines from a terminal, *readline.Instance
// implements it.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

var _ LineReader = (*readline.Instance)(nil)

// Interact runs an interactive session until exit or end of input and returns
// the exit code.
func (s *Shell) Interact(ctx context.Context, rl LineReader) int {
	s.record(&logger.SessionStart{Interactive: true, Dir: s.Session.Getwd()})

	var pending string
	for {
		if pending == "" {
			rl.SetPrompt(s.Prompt())
		} else {
			rl.SetPrompt(continuationPrompt)
		}

		line, err := rl.Readline()
		switch {
		case err == readline.ErrInterrupt:
			pending = ""
			continue

		case err == io.EOF:
			if pending != "" {
				s.RunLine(ctx, pending)
			}
			return s.end(0, true)

		case err != nil:
			s.logf("error reading line: %v", err)
			return s.end(1, true)
		}

		res, incomplete := s.eval(ctx, pending+line, false)
		if incomplete {
			pending += line + "\n"
			continue
		}
		pending = ""

		if res.Kind == result.KindExit {
			return s.end(res.Code, true)
		}
	}
}

// RunScript runs each line read from r. It returns the status of the last
// command, or the code of an explicit exit.
func (s *Shell) RunScript(ctx context.Context, r io.Reader) int {
	s.record(&logger.SessionStart{Interactive: false, Dir: s.Session.Getwd()})

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var pending string
	for scanner.Scan() {
		line := scanner.Text()

		res, incomplete := s.eval(ctx, pending+line, false)
		if incomplete {
			pending += line + "\n"
			continue
		}
		pending = ""

		if res.Kind == result.KindExit {
			return s.end(res.Code, false)
		}
	}

	if err := scanner.Err(); err != nil {
		s.logf("error reading script: %v", err)
		fmt.Fprintln(s.Stderr, s.paint(colorError, err.Error()))
		return s.end(1, false)
	}

	if pending != "" {
		s.RunLine(ctx, pending)
	}
	return s.end(s.Executor.LastExitCode(), false)
}

// RunCommand runs a single line and returns the resulting exit code.
func (s *Shell) RunCommand(ctx context.Context, line string) int {
	s.record(&logger.SessionStart{Interactive: false, Dir: s.Session.Getwd()})

	res := s.RunLine(ctx, line)
	if res.Kind == result.KindExit {
		return s.end(res.Code, false)
	}
	return s.end(s.Executor.LastExitCode(), false)
}

func (s *Shell) end(code int, interactive bool) int {
	if interactive {
		fmt.Fprintln(s.Stdout, GoodbyeMessage)
	}
	s.record(&logger.SessionEnd{ExitCode: code})
	return code
}

func (s *Shell) record(event logger.LogType) {
	if s.Events == nil {
		return
	}
	if err := s.Events.Record(event); err != nil {
		s.logf("couldn't record event: %v", err)
	}
}

func (s *Shell) logf(format string, a ...interface{}) {
	if s.Logger != nil {
		s.Logger.Printf(format, a...)
	}
}
