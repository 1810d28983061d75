package core

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/osama1998H/ocean/core/logger"
	"github.com/osama1998H/ocean/core/result"
)

const (
	// exitCodeNotFound is the status of a command that couldn't be started.
	exitCodeNotFound = 127

	// waitDelay bounds how long output is drained after a process is killed.
	waitDelay = time.Second
)

// spawn runs a host process to completion, feeding it input and capturing its
// output.
func (e *Executor) spawn(ctx context.Context, name string, args []string, input *string) result.Result {
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.WaitDelay = waitDelay
	cmd.Dir = e.Session.HostDir()
	cmd.Env = e.Session.Env().Environ()
	if input != nil {
		cmd.Stdin = strings.NewReader(*input)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	argv := append([]string{name}, args...)

	if err := cmd.Start(); err != nil {
		e.logf("couldn't start %q: %v", name, err)
		e.record(&logger.UnknownCommand{Command: argv, ErrorMessage: err.Error()})
		e.lastExitCode = exitCodeNotFound
		return result.Errorf("الأمر '%[1]s' غير موجود / Command '%[1]s' not found", name)
	}

	err := cmd.Wait()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		e.lastExitCode = 0

	case errors.As(err, &exitErr):
		e.lastExitCode = exitErr.ExitCode()
		if e.lastExitCode < 0 {
			// Killed by a signal.
			e.lastExitCode = 1
		}

	default:
		e.logf("waiting for %q failed: %v", name, err)
		e.lastExitCode = 1
		e.record(&logger.RunCommand{Command: argv, ExitCode: e.lastExitCode})
		return result.Errorf("خطأ في تنفيذ '%[1]s' - %[2]v / Error running '%[1]s' - %[2]v", name, err)
	}

	e.record(&logger.RunCommand{Command: argv, ExitCode: e.lastExitCode})

	if e.lastExitCode != 0 {
		if msg := strings.TrimRight(stderr.String(), "\n"); msg != "" {
			return result.Error(msg)
		}
		return result.Errorf("الأمر انتهى برمز: %[1]d / Command exited with code: %[1]d", e.lastExitCode)
	}

	return result.Success(stdout.String())
}

func (e *Executor) record(event logger.LogType) {
	if e.Events == nil {
		return
	}
	if err := e.Events.Record(event); err != nil {
		e.logf("couldn't record event: %v", err)
	}
}
