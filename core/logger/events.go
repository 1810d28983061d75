package logger

// LogEntry is a single line of the event log. Exactly one event field is set.
type LogEntry struct {
	TimestampMicros int64  `json:"timestamp_micros"`
	SessionID       string `json:"session_id,omitempty"`

	SessionStart      *SessionStart      `json:"session_start,omitempty"`
	SessionEnd        *SessionEnd        `json:"session_end,omitempty"`
	RunCommand        *RunCommand        `json:"run_command,omitempty"`
	UnknownCommand    *UnknownCommand    `json:"unknown_command,omitempty"`
	InvalidInvocation *InvalidInvocation `json:"invalid_invocation,omitempty"`
	SyntaxError       *SyntaxError       `json:"syntax_error,omitempty"`
}

// LogType is implemented by every event that can be recorded.
type LogType interface {
	setOn(le *LogEntry)
}

// GetLogType returns the event held by the entry or nil if there is none.
func (le *LogEntry) GetLogType() LogType {
	switch {
	case le.SessionStart != nil:
		return le.SessionStart
	case le.SessionEnd != nil:
		return le.SessionEnd
	case le.RunCommand != nil:
		return le.RunCommand
	case le.UnknownCommand != nil:
		return le.UnknownCommand
	case le.InvalidInvocation != nil:
		return le.InvalidInvocation
	case le.SyntaxError != nil:
		return le.SyntaxError
	default:
		return nil
	}
}

// SessionStart is logged when an interactive or scripted session begins.
type SessionStart struct {
	Interactive bool   `json:"interactive"`
	Dir         string `json:"dir"`
}

// SessionEnd is logged when the session exits.
type SessionEnd struct {
	ExitCode int `json:"exit_code"`
}

// RunCommand is logged for every builtin or external command that was run.
type RunCommand struct {
	Command  []string `json:"command"`
	Builtin  bool     `json:"builtin"`
	ExitCode int      `json:"exit_code"`
}

// UnknownCommand is logged when a command couldn't be started.
type UnknownCommand struct {
	Command      []string `json:"command"`
	ErrorMessage string   `json:"error"`
}

// InvalidInvocation is logged when a builtin is called with bad arguments.
type InvalidInvocation struct {
	Command []string `json:"command"`
	Error   string   `json:"error"`
}

// SyntaxError is logged when a line can't be tokenized or parsed.
type SyntaxError struct {
	Line    string `json:"line"`
	Message string `json:"message"`
}

func (e *SessionStart) setOn(le *LogEntry)      { le.SessionStart = e }
func (e *SessionEnd) setOn(le *LogEntry)        { le.SessionEnd = e }
func (e *RunCommand) setOn(le *LogEntry)        { le.RunCommand = e }
func (e *UnknownCommand) setOn(le *LogEntry)    { le.UnknownCommand = e }
func (e *InvalidInvocation) setOn(le *LogEntry) { le.InvalidInvocation = e }
func (e *SyntaxError) setOn(le *LogEntry)       { le.SyntaxError = e }
