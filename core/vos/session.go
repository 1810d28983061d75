package vos

import (
	"fmt"
	"os"
	"sync"

	"github.com/osama1998H/ocean/core/logger"
	"github.com/spf13/afero"
)

// EventRecorder records events to the session log.
type EventRecorder interface {
	Record(event logger.LogType) error
}

type nopEventRecorder struct{}

func (nopEventRecorder) Record(logger.LogType) error { return nil }

// Session is the state shared by every process started during one
// interpreter session: the filesystem, environment and working directory.
type Session struct {
	base VFS
	fs   VFS
	env  *MapEnv

	mu     sync.RWMutex
	wd     string
	pty    PTY
	synced bool

	events EventRecorder
}

// NewSession creates a session over base starting in wd. Relative paths
// passed to the session filesystem resolve against the working directory.
func NewSession(base VFS, env *MapEnv, wd string) *Session {
	if env == nil {
		env = NewMapEnv()
	}

	s := &Session{
		base:   base,
		env:    env,
		wd:     ResolvePath("/", wd),
		events: nopEventRecorder{},
	}
	s.fs = NewRelativeFs(base, s.Getwd)
	_ = env.Setenv(EnvPWD, s.wd)
	return s
}

// NewOSSession creates a session on the host filesystem and environment.
// Directory changes are mirrored onto the host process.
func NewOSSession() (*Session, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("couldn't determine working directory: %w", err)
	}

	env := NewMapEnvFromEnvList(os.Environ())
	if _, ok := env.LookupEnv(EnvHome); !ok {
		if home, err := os.UserHomeDir(); err == nil {
			_ = env.Setenv(EnvHome, home)
		}
	}

	s := NewSession(afero.NewOsFs(), env, wd)
	s.synced = true
	return s, nil
}

// Fs returns the working-directory aware filesystem.
func (s *Session) Fs() VFS {
	return s.fs
}

// Env returns the session environment.
func (s *Session) Env() *MapEnv {
	return s.env
}

// Getwd returns the absolute working directory.
func (s *Session) Getwd() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wd
}

// HostDir returns the directory host processes should start in, or "" if the
// session filesystem isn't the host's.
func (s *Session) HostDir() string {
	if _, ok := s.base.(*afero.OsFs); ok {
		return s.Getwd()
	}
	return ""
}

// Chdir changes the working directory. A leading "~" expands to HOME.
func (s *Session) Chdir(dir string) error {
	target := ResolvePath(s.Getwd(), s.env.ExpandTilde(dir))

	fi, err := s.base.Stat(target)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return &os.PathError{Op: "chdir", Path: dir, Err: fmt.Errorf("not a directory")}
	}

	if s.synced {
		if err := os.Chdir(target); err != nil {
			return err
		}
	}

	s.mu.Lock()
	old := s.wd
	s.wd = target
	s.mu.Unlock()

	_ = s.env.Setenv(EnvOldPWD, old)
	_ = s.env.Setenv(EnvPWD, target)
	return nil
}

// SetPTY sets the terminal description handed to processes.
func (s *Session) SetPTY(pty PTY) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pty = pty
}

// PTY returns the terminal description.
func (s *Session) PTY() PTY {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pty
}

// SetEventRecorder sets where process events are logged, nil disables it.
func (s *Session) SetEventRecorder(events EventRecorder) {
	if events == nil {
		events = nopEventRecorder{}
	}
	s.events = events
}

// StartProcess prepares a process with the given arguments and streams.
func (s *Session) StartProcess(argv []string, files VIO) *Proc {
	if files == nil {
		files = NewNullIO()
	}
	return &Proc{
		VIO:     files,
		VFS:     s.fs,
		MapEnv:  s.env,
		session: s,
		args:    append([]string(nil), argv...),
	}
}
