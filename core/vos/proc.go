package vos

import (
	"os"

	"github.com/osama1998H/ocean/core/logger"
	"github.com/spf13/afero"
)

// Proc is a single builtin invocation bound to a Session.
type Proc struct {
	VIO
	VFS
	*MapEnv

	session *Session
	args    []string

	exitRequested bool
	exitCode      int
}

var _ VOS = (*Proc)(nil)
var _ afero.Symlinker = (*Proc)(nil)

// Args implements VProc.Args.
func (p *Proc) Args() []string {
	return p.args
}

// Getwd implements VProc.Getwd.
func (p *Proc) Getwd() string {
	return p.session.Getwd()
}

// Chdir implements VProc.Chdir.
func (p *Proc) Chdir(dir string) error {
	return p.session.Chdir(dir)
}

// Exit implements VProc.Exit.
func (p *Proc) Exit(code int) {
	p.exitRequested = true
	p.exitCode = code
}

// ExitRequested returns the code passed to Exit, if it was called.
func (p *Proc) ExitRequested() (int, bool) {
	return p.exitCode, p.exitRequested
}

// LogInvalidInvocation implements VProc.LogInvalidInvocation.
func (p *Proc) LogInvalidInvocation(err error) {
	_ = p.session.events.Record(&logger.InvalidInvocation{
		Command: p.args,
		Error:   err.Error(),
	})
}

// GetPTY implements VOS.GetPTY.
func (p *Proc) GetPTY() PTY {
	return p.session.PTY()
}

// Run executes fn against the process and returns its exit status.
func (p *Proc) Run(fn ProcessFunc) int {
	return fn(p)
}

// LstatIfPossible implements afero.Lstater.
func (p *Proc) LstatIfPossible(name string) (os.FileInfo, bool, error) {
	if lstater, ok := p.VFS.(afero.Lstater); ok {
		return lstater.LstatIfPossible(name)
	}
	fi, err := p.VFS.Stat(name)
	return fi, false, err
}

// SymlinkIfPossible implements afero.Linker.
func (p *Proc) SymlinkIfPossible(oldname, newname string) error {
	if linker, ok := p.VFS.(afero.Linker); ok {
		return linker.SymlinkIfPossible(oldname, newname)
	}
	return &os.LinkError{Op: FsOpSymlink, Old: oldname, New: newname, Err: afero.ErrNoSymlink}
}

// ReadlinkIfPossible implements afero.LinkReader.
func (p *Proc) ReadlinkIfPossible(name string) (string, error) {
	if reader, ok := p.VFS.(afero.LinkReader); ok {
		return reader.ReadlinkIfPossible(name)
	}
	return "", &os.PathError{Op: FsOpReadlink, Path: name, Err: afero.ErrNoReadlink}
}
