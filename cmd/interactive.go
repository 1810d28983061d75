package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/osama1998H/ocean/commands"
	"github.com/osama1998H/ocean/core"
	"github.com/osama1998H/ocean/core/config"
	"github.com/osama1998H/ocean/core/ttylog"
	"github.com/osama1998H/ocean/core/vos"
)

const recordingTimeFormat = "20060102-150405"

// runInteractive runs a line-edited session on the host terminal, recording
// it if a recording directory is configured.
func runInteractive(ctx context.Context, cfg *config.Configuration, session *vos.Session, events vos.EventRecorder, diag *log.Logger) (int, error) {
	var stdio vos.VIO = vos.NewVIOAdapter(os.Stdin, os.Stdout, os.Stderr)

	if cfg.RecordingDir != "" {
		name := time.Now().Format(recordingTimeFormat) + "." + ttylog.AsciicastFileExt
		fd, err := cfg.CreateRecording(name)
		if err != nil {
			diag.Printf("couldn't start recording: %v", err)
		} else {
			defer fd.Close()

			pty := session.PTY()
			sink := ttylog.NewAsciicastLogSink(fd, ttylog.AsciicastHeader{
				Width:  pty.Width,
				Height: pty.Height,
				Title:  cfg.ShellName,
				Shell:  os.Args[0],
			})
			recorder := ttylog.NewRecorder(stdio, sink)
			recorder.Logger = diag
			stdio = recorder
			diag.Printf("recording session to %q", fd.Name())
		}
	}

	// Interrupts end the foreground host process, not the session.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	go func() {
		for range interrupts {
		}
	}()
	defer func() {
		signal.Stop(interrupts)
		close(interrupts)
	}()

	sh := newShell(cfg, session, events, diag, stdio.Stdout(), stdio.Stderr())

	if cfg.ShowBanner {
		bannerColor := color.New(color.FgCyan, color.Bold)
		if shouldColor(cfg.Color) {
			bannerColor.EnableColor()
		} else {
			bannerColor.DisableColor()
		}
		core.WriteBanner(stdio.Stdout(), commands.Version, bannerColor)
	}

	rl, err := sh.NewReadline(stdio.Stdin(), cfg.HistoryPath(), cfg.HistoryLimit, commands.BuiltinNames())
	if err != nil {
		return 1, err
	}
	defer rl.Close()

	return sh.Interact(ctx, rl), nil
}
