package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// ReadJSONLinesLog parses a newline delimited JSON log.
func ReadJSONLinesLog(r io.Reader, handler func(le *LogEntry)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var logEntry LogEntry
		if err := decoder.Decode(&logEntry); err != nil {
			return err
		}

		handler(&logEntry)
	}
	return nil
}

// Report holds statistics about the logged events.
type Report struct {
	LogEntries     int        `json:"log_entries"`
	InvalidEntries StrCounter `json:"unknown_log_entries,omitempty"`

	Sessions          SessionReport           `json:"session_report"`
	RunCommand        RunCommandReport        `json:"run_command_report"`
	UnknownCommand    UnknownCommandReport    `json:"unknown_command_report"`
	InvalidInvocation InvalidInvocationReport `json:"invalid_invocation_report"`
	SyntaxError       SyntaxErrorReport       `json:"syntax_error_report"`
}

// Update adds the entry to the report.
func (r *Report) Update(le *LogEntry) {
	r.LogEntries++

	switch event := le.GetLogType().(type) {
	case *SessionStart:
		r.Sessions.updateStart(event)
	case *SessionEnd:
		r.Sessions.updateEnd(event)
	case *RunCommand:
		r.RunCommand.update(event)
	case *UnknownCommand:
		r.UnknownCommand.update(event)
	case *InvalidInvocation:
		r.InvalidInvocation.update(event)
	case *SyntaxError:
		r.SyntaxError.update(event)
	default:
		r.InvalidEntries.Increment(fmt.Sprintf("%T", event))
	}
}

type SessionReport struct {
	Interactive int        `json:"interactive"`
	Scripted    int        `json:"scripted"`
	ExitCodes   StrCounter `json:"exit_codes"`
}

func (r *SessionReport) updateStart(s *SessionStart) {
	if s.Interactive {
		r.Interactive++
	} else {
		r.Scripted++
	}
}

func (r *SessionReport) updateEnd(s *SessionEnd) {
	r.ExitCodes.Increment(strconv.Itoa(s.ExitCode))
}

type RunCommandReport struct {
	// Name of the command
	CommandNames StrCounter `json:"command_names"`
	// Number of builtin vs external invocations.
	Kinds StrCounter `json:"kinds"`
	// Commands that exited with a non-zero status.
	Failures StrCounter `json:"failures"`
}

func (r *RunCommandReport) update(rc *RunCommand) {
	if rc.Builtin {
		r.Kinds.Increment("builtin")
	} else {
		r.Kinds.Increment("external")
	}

	if len(rc.Command) == 0 {
		return
	}
	r.CommandNames.Increment(rc.Command[0])
	if rc.ExitCode != 0 {
		r.Failures.Increment(rc.Command[0])
	}
}

type UnknownCommandReport struct {
	CommandNames StrCounter `json:"command_names"`
}

func (r *UnknownCommandReport) update(logEntry *UnknownCommand) {
	if len(logEntry.Command) > 0 {
		r.CommandNames.Increment(logEntry.Command[0])
	}
}

type InvalidInvocationReport struct {
	CommandNames StrCounter   `json:"command_counts"`
	Errors       *PathCounter `json:"errors"`
}

func (r *InvalidInvocationReport) update(logEntry *InvalidInvocation) {
	if r.Errors == nil {
		r.Errors = NewPathCounter("command", "error")
	}

	if len(logEntry.Command) > 0 {
		r.CommandNames.Increment(logEntry.Command[0])
		r.Errors.Increment(logEntry.Command[0], logEntry.Error)
	}
}

type SyntaxErrorReport struct {
	Count int `json:"count"`
	// Messages with the position prefix stripped so similar errors group.
	Messages StrCounter `json:"messages"`
}

func (r *SyntaxErrorReport) update(se *SyntaxError) {
	r.Count++

	msg := se.Message
	if idx := strings.Index(msg, "]: "); idx >= 0 {
		msg = msg[idx+len("]: "):]
	}
	r.Messages.Increment(msg)
}

// StrCounter counts the number of strings seen.
type StrCounter struct {
	internal map[string]int
}

// Increment adds one to the given key.
func (s *StrCounter) Increment(toAdd string) {
	if s.internal == nil {
		s.internal = make(map[string]int)
	}

	s.internal[toAdd]++
}

// Get returns the count for the given key.
func (s *StrCounter) Get(key string) int {
	return s.internal[key]
}

// MarshalJSON implements a custom JSON marshaler.
func (s StrCounter) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.internal)
}

func NewPathCounter(cols ...string) *PathCounter {
	return &PathCounter{
		cols:     cols,
		internal: make(map[string]int),
	}
}

// PathCounter counts the number of times each tuple of values was seen.
type PathCounter struct {
	cols     []string
	internal map[string]int
}

// Increment adds one to the given key.
func (ctr *PathCounter) Increment(toAdd ...string) {
	if len(toAdd) != len(ctr.cols) {
		panic("wrong number of columns to add")
	}

	ctr.internal[toKey(toAdd...)]++
}

// MarshalJSON implements a custom JSON marshaler.
func (ctr *PathCounter) MarshalJSON() ([]byte, error) {
	type Count struct {
		Count  int               `json:"count"`
		Fields map[string]string `json:"event"`
		Path   string            `json:"-"`
	}

	out := []Count{}
	for k, v := range ctr.internal {
		count := Count{
			Count:  v,
			Path:   k,
			Fields: make(map[string]string),
		}

		splitPath := fromKey(k)
		for colNum, colVal := range ctr.cols {
			count.Fields[colVal] = splitPath[colNum]
		}

		out = append(out, count)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Path < out[j].Path
		}
		return out[i].Count > out[j].Count
	})

	return json.Marshal(out)
}

func toKey(vals ...string) string {
	key, _ := json.Marshal(vals)
	return string(key)
}

func fromKey(key string) (out []string) {
	json.Unmarshal([]byte(key), &out)
	return
}
