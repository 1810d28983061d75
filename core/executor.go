package core

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/osama1998H/ocean/core/result"
	"github.com/osama1998H/ocean/core/shell"
	"github.com/osama1998H/ocean/core/vos"
	"github.com/spf13/afero"
)

// BackgroundWarning is written before a command ending in '&' runs.
const BackgroundWarning = "تحذير: التنفيذ في الخلفية غير مدعوم بعد / Warning: Background execution not yet supported"

// Dispatcher runs named operations. It returns false if name isn't one of its
// operations.
type Dispatcher interface {
	Lookup(ctx context.Context, name string, args []string, input *string) (result.Result, bool)
}

// Executor walks command trees, running builtins through Dispatch and
// everything else as a host process.
type Executor struct {
	Dispatch Dispatcher
	Session  *vos.Session

	Stdout io.Writer
	Stderr io.Writer

	// Logger receives diagnostics, may be nil.
	Logger *log.Logger
	// Events receives command events, may be nil.
	Events vos.EventRecorder
	// Timeout limits each host process, zero means no limit.
	Timeout time.Duration
	// ErrorColor is applied to displayed errors, may be nil.
	ErrorColor *color.Color

	lastExitCode int
}

// LastExitCode returns the status of the most recently run command.
func (e *Executor) LastExitCode() int {
	return e.lastExitCode
}

// Execute evaluates cmd. Piped input, if any, is passed in input.
func (e *Executor) Execute(ctx context.Context, cmd shell.Command, input *string) result.Result {
	switch c := cmd.(type) {
	case *shell.Empty:
		return result.None()

	case *shell.Simple:
		return e.executeSimple(ctx, c, input)

	case *shell.Pipeline:
		return e.executePipeline(ctx, c, input)

	case *shell.And:
		left := e.Execute(ctx, c.Left, input)
		if !left.IsSuccess() {
			return left
		}
		return e.Execute(ctx, c.Right, input)

	case *shell.Or:
		left := e.Execute(ctx, c.Left, input)
		if left.IsSuccess() {
			return left
		}
		return e.Execute(ctx, c.Right, input)

	case *shell.Sequence:
		res := result.None()
		for i, member := range c.Commands {
			res = e.Execute(ctx, member, input)
			if res.Kind == result.KindExit || i == len(c.Commands)-1 {
				return res
			}
			e.Display(res)
		}
		return res

	case *shell.Background:
		fmt.Fprintln(e.stderr(), BackgroundWarning)
		return e.Execute(ctx, c.Inner, input)

	default:
		return result.Errorf("أمر غير معروف / Unknown command node: %T", cmd)
	}
}

func (e *Executor) executePipeline(ctx context.Context, p *shell.Pipeline, input *string) result.Result {
	var res result.Result
	for _, stage := range p.Commands {
		res = e.Execute(ctx, stage, input)

		switch res.Kind {
		case result.KindError, result.KindExit:
			return res
		case result.KindSuccess:
			text := res.Text
			input = &text
		default:
			input = nil
		}
	}

	if res.Kind == result.KindSuccess {
		e.writeOutput(res.Text)
	}
	return result.None()
}

func (e *Executor) executeSimple(ctx context.Context, c *shell.Simple, input *string) result.Result {
	if target, ok := c.Input(); ok {
		contents, err := afero.ReadFile(e.Session.Fs(), target)
		if err != nil {
			e.lastExitCode = 1
			return result.Errorf("خطأ: لا يمكن قراءة '%[1]s' - %[2]v / Error: Cannot read '%[1]s' - %[2]v", target, err)
		}
		text := string(contents)
		input = &text
	}

	res, ok := e.Dispatch.Lookup(ctx, c.Name, c.Args, input)
	if ok {
		e.lastExitCode = builtinExitCode(res)
	} else {
		res = e.spawn(ctx, c.Name, c.Args, input)
	}

	if redirect, ok := c.Output(); ok && res.Kind == result.KindSuccess {
		if err := e.writeRedirect(redirect, res.Text); err != nil {
			e.lastExitCode = 1
			return result.Error(err.Error())
		}
		return result.None()
	}

	return res
}

func builtinExitCode(res result.Result) int {
	switch {
	case res.Kind == result.KindExit:
		return res.Code
	case res.IsSuccess():
		return 0
	default:
		return 1
	}
}

func (e *Executor) writeRedirect(redirect shell.Redirect, text string) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if redirect.Kind == shell.RedirectKindAppend {
		flags = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	}

	fd, err := e.Session.Fs().OpenFile(redirect.Target, flags, 0644)
	if err != nil {
		return fmt.Errorf("خطأ: لا يمكن فتح '%[1]s' - %[2]v / Error: Cannot open '%[1]s' - %[2]v", redirect.Target, err)
	}

	if _, err := io.WriteString(fd, text); err != nil {
		fd.Close()
		return fmt.Errorf("خطأ: لا يمكن الكتابة إلى '%[1]s' - %[2]v / Error: Cannot write to '%[1]s' - %[2]v", redirect.Target, err)
	}

	if err := fd.Close(); err != nil {
		return fmt.Errorf("خطأ: لا يمكن الكتابة إلى '%[1]s' - %[2]v / Error: Cannot write to '%[1]s' - %[2]v", redirect.Target, err)
	}
	return nil
}

// Display writes a Success to stdout and an Error to stderr.
func (e *Executor) Display(res result.Result) {
	switch res.Kind {
	case result.KindSuccess:
		e.writeOutput(res.Text)
	case result.KindError:
		msg := res.Text
		if e.ErrorColor != nil {
			msg = e.ErrorColor.Sprint(msg)
		}
		fmt.Fprintln(e.stderr(), msg)
	}
}

// writeOutput prints text to stdout, adding a trailing newline if missing.
func (e *Executor) writeOutput(text string) {
	if text == "" || e.Stdout == nil {
		return
	}
	io.WriteString(e.Stdout, text)
	if !strings.HasSuffix(text, "\n") {
		io.WriteString(e.Stdout, "\n")
	}
}

func (e *Executor) stderr() io.Writer {
	if e.Stderr == nil {
		return io.Discard
	}
	return e.Stderr
}

func (e *Executor) logf(format string, a ...interface{}) {
	if e.Logger != nil {
		e.Logger.Printf(format, a...)
	}
}
