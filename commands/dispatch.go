package commands

import (
	"bytes"
	"context"
	"io"
	"log"
	"strings"

	"github.com/osama1998H/ocean/core/logger"
	"github.com/osama1998H/ocean/core/result"
	"github.com/osama1998H/ocean/core/vos"
)

// Dispatcher runs builtins against a session and converts their output into
// results.
type Dispatcher struct {
	Session *vos.Session
	// Events receives a RunCommand per dispatched builtin, may be nil.
	Events vos.EventRecorder
	// Logger receives diagnostics, may be nil.
	Logger *log.Logger
	// Stderr receives diagnostics written by builtins that succeeded.
	Stderr io.Writer
}

// Lookup runs the builtin called name. It returns false if there is no
// builtin by that name.
//
// Output written to stdout becomes a Success, an empty stdout becomes None
// and a non-zero status becomes an Error carrying stderr. Anything written to
// stderr by a successful builtin is forwarded to the session's stderr.
func (d *Dispatcher) Lookup(ctx context.Context, name string, args []string, input *string) (result.Result, bool) {
	entry, ok := LookupBuiltin(name)
	if !ok {
		return result.None(), false
	}
	if err := ctx.Err(); err != nil {
		return result.Error(err.Error()), true
	}

	stdin := strings.NewReader("")
	if input != nil {
		stdin = strings.NewReader(*input)
	}
	var stdout, errOut bytes.Buffer

	argv := append([]string{name}, args...)
	proc := d.Session.StartProcess(argv, vos.NewVIOAdapter(stdin, &stdout, &errOut))
	status := proc.Run(entry.Proc)

	d.logf("builtin %s (%s) exited with %d", name, entry.ID, status)
	d.record(&logger.RunCommand{Command: argv, Builtin: true, ExitCode: status})

	if code, exit := proc.ExitRequested(); exit {
		return result.Exit(code), true
	}

	if status != 0 {
		msg := strings.TrimRight(errOut.String(), "\n")
		if msg == "" {
			msg = strings.TrimRight(stdout.String(), "\n")
		}
		if msg == "" {
			return result.Errorf("الأمر انتهى برمز: %[1]d / Command exited with code: %[1]d", status), true
		}
		return result.Error(msg), true
	}

	if errOut.Len() > 0 && d.Stderr != nil {
		d.Stderr.Write(errOut.Bytes())
	}

	if stdout.Len() == 0 {
		return result.None(), true
	}
	return result.Success(stdout.String()), true
}

func (d *Dispatcher) record(event logger.LogType) {
	if d.Events == nil {
		return
	}
	if err := d.Events.Record(event); err != nil {
		d.logf("couldn't record event: %v", err)
	}
}

func (d *Dispatcher) logf(format string, a ...interface{}) {
	if d.Logger != nil {
		d.Logger.Printf(format, a...)
	}
}
