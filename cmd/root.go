package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/osama1998H/ocean/commands"
	"github.com/osama1998H/ocean/core"
	"github.com/osama1998H/ocean/core/config"
	"github.com/osama1998H/ocean/core/logger"
	"github.com/osama1998H/ocean/core/vos"
	"github.com/spf13/cobra"
)

var (
	cfgPath     string
	commandLine string
	verbose     bool
)

// exitCodeError carries the status of the last command out of cobra.
type exitCodeError int

func (e exitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", int(e))
}

func defaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".ocean")
}

func newDiagLogger(w io.Writer) *log.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(w, "[ocean] ", 0)
}

func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		log.Println("Couldn't load config: did you run init?")
	}

	return configuration, err
}

// loadConfigOrDefault falls back to the built-in configuration if none has
// been initialized.
func loadConfigOrDefault(diag *log.Logger) (*config.Configuration, error) {
	configuration, err := config.Load(cfgPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		diag.Printf("no configuration in %q, using defaults (run 'ocean init' to create one)", cfgPath)
		return config.Default(cfgPath), nil
	case err != nil:
		return nil, err
	default:
		return configuration, nil
	}
}

// openEvents opens the configured event log, the returned closer is never
// nil.
func openEvents(cfg *config.Configuration, diag *log.Logger) (vos.EventRecorder, func(), error) {
	if cfg.EventLog == "" {
		return logger.NewNopLogger().NewSession(), func() {}, nil
	}

	fd, err := cfg.OpenEventLog()
	if err != nil {
		return nil, nil, fmt.Errorf("opening event log: %w", err)
	}

	events := logger.NewJsonLinesLogRecorder(fd).NewSession()
	diag.Printf("recording events for session %s to %q", events.SessionID(), cfg.EventLogPath())
	return events, func() { fd.Close() }, nil
}

// shouldColor resolves a color setting against the host stdout.
func shouldColor(mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return vos.IsTerminal(os.Stdout)
	}
}

// newShell wires a shell for session that writes to stdout and stderr.
func newShell(cfg *config.Configuration, session *vos.Session, events vos.EventRecorder, diag *log.Logger, stdout, stderr io.Writer) *core.Shell {
	dispatch := &commands.Dispatcher{
		Session: session,
		Events:  events,
		Logger:  diag,
		Stderr:  stderr,
	}

	sh := core.NewShell(session, dispatch, stdout, stderr)
	sh.Name = cfg.ShellName
	sh.Logger = diag
	sh.Events = events
	sh.Executor.Logger = diag
	sh.Executor.Events = events
	sh.Executor.Timeout = cfg.Timeout()
	sh.SetColor(shouldColor(cfg.Color))
	return sh
}

// rootCmd runs the shell: interactively, from a script, or a single line
// given with -c.
var rootCmd = &cobra.Command{
	Use:   "ocean [SCRIPT]",
	Short: "محيط - Arabic/English command shell",
	Long: `محيط (Ocean) is a command shell that accepts commands in Arabic and English.

Without arguments an interactive session starts if stdin is a terminal,
otherwise commands are read from stdin. A SCRIPT argument runs each of
its lines and -c runs a single line.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		diag := newDiagLogger(cmd.ErrOrStderr())
		cfg, err := loadConfigOrDefault(diag)
		if err != nil {
			return err
		}
		commands.DefaultColorMode = cfg.Color

		session, err := vos.NewOSSession()
		if err != nil {
			return err
		}
		session.SetPTY(vos.DetectPTY(os.Stdout))

		events, closeEvents, err := openEvents(cfg, diag)
		if err != nil {
			return err
		}
		defer closeEvents()
		session.SetEventRecorder(events)

		ctx := cmd.Context()
		var code int
		switch {
		case cmd.Flags().Changed("command"):
			sh := newShell(cfg, session, events, diag, cmd.OutOrStdout(), cmd.ErrOrStderr())
			code = sh.RunCommand(ctx, commandLine)

		case len(args) == 1:
			fd, err := session.Fs().Open(args[0])
			if err != nil {
				return err
			}
			defer fd.Close()

			sh := newShell(cfg, session, events, diag, cmd.OutOrStdout(), cmd.ErrOrStderr())
			code = sh.RunScript(ctx, fd)

		case !vos.IsTerminal(os.Stdin):
			sh := newShell(cfg, session, events, diag, cmd.OutOrStdout(), cmd.ErrOrStderr())
			code = sh.RunScript(ctx, cmd.InOrStdin())

		default:
			code, err = runInteractive(ctx, cfg, session, events, diag)
			if err != nil {
				return err
			}
		}

		if code != 0 {
			return exitCodeError(code)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()

	var exitErr exitCodeError
	if errors.As(err, &exitErr) {
		os.Exit(int(exitErr))
	}
	cobra.CheckErr(err)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultConfigDir(), "config path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")
	rootCmd.Flags().StringVarP(&commandLine, "command", "c", "", "run a single command line and exit")
}
