// Package vostest provides an in-memory OS for testing builtins.
package vostest

import (
	"bytes"
	"io"

	"github.com/osama1998H/ocean/core/vos"
	"github.com/spf13/afero"
)

// NewDeterministicSession creates a session on an empty in-memory filesystem
// rooted at "/" with HOME set to /root.
func NewDeterministicSession() *vos.Session {
	fs := afero.NewMemMapFs()
	_ = fs.MkdirAll("/root", 0755)
	_ = fs.MkdirAll("/tmp", 0777)

	env := vos.NewMapEnvFromEnvList([]string{"HOME=/root", "USER=root"})
	return vos.NewSession(fs, env, "/")
}

// Cmd is similar to exec.Cmd.
type Cmd struct {
	// Process function
	Process vos.ProcessFunc
	// Process arguments, the first argument should be the process name.
	Argv []string
	// Session the process runs in, a deterministic one is created if nil.
	Session *vos.Session

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	ExitStatus int
	// ExitRequested is set if the process asked the session to end.
	ExitRequested bool

	Setup func(vos.VOS) error
}

// Command returns the Cmd struct to execute the process with the given
// arguments.
func Command(process vos.ProcessFunc, name string, arg ...string) *Cmd {
	return &Cmd{
		Process: process,
		Argv:    append([]string{name}, arg...),
	}
}

// CombinedOutput runs the command and returns its combined stdout and stderr.
func (c *Cmd) CombinedOutput() ([]byte, error) {
	buf := &bytes.Buffer{}
	c.Stdout = buf
	c.Stderr = buf

	if err := c.Run(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Run starts the command and waits for it to complete.
func (c *Cmd) Run() error {
	if c.Session == nil {
		c.Session = NewDeterministicSession()
	}

	proc := c.Session.StartProcess(c.Argv, vos.NewVIOAdapter(c.Stdin, c.Stdout, c.Stderr))
	if c.Setup != nil {
		if err := c.Setup(proc); err != nil {
			return err
		}
	}

	c.ExitStatus = proc.Run(c.Process)
	_, c.ExitRequested = proc.ExitRequested()
	return nil
}
