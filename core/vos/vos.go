package vos

// PTY describes the terminal attached to the session.
type PTY struct {
	Width  int
	Height int
	IsPTY  bool
}

// ProcessFunc is a builtin program that can be run against a VOS, it returns
// the exit status.
type ProcessFunc func(VOS) int

// VProc is the process specific part of the VOS.
type VProc interface {
	// Args holds command line arguments, including the command as Args[0].
	Args() []string

	// Getwd returns the session working directory.
	Getwd() string

	// Chdir changes the session working directory.
	Chdir(dir string) error

	// Exit asks the session to end with the given status once the process
	// returns.
	Exit(code int)

	// LogInvalidInvocation records that the program was called incorrectly.
	LogInvalidInvocation(err error)
}

// VOS provides a virtual OS interface to builtin programs.
type VOS interface {
	VEnv
	VIO
	VProc
	VFS

	GetPTY() PTY
}
