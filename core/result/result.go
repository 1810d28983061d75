// Package result holds the value every command evaluation produces.
package result

import "fmt"

// Kind tags a Result.
type Kind int

const (
	// KindNone is a successful command with nothing to show.
	KindNone Kind = iota
	// KindSuccess is a successful command with text output.
	KindSuccess
	// KindError is a failed command with a user facing message.
	KindError
	// KindExit asks the session to end.
	KindExit
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "Success"
	case KindError:
		return "Error"
	case KindExit:
		return "Exit"
	default:
		return "None"
	}
}

// Result is the outcome of running a command. The zero value is None.
type Result struct {
	Kind Kind
	// Text is the output of a Success or the message of an Error.
	Text string
	// Code is the exit code of an Exit.
	Code int
}

// Success creates a successful result carrying output text.
func Success(text string) Result {
	return Result{Kind: KindSuccess, Text: text}
}

// Error creates a failed result.
func Error(message string) Result {
	return Result{Kind: KindError, Text: message}
}

// Errorf creates a failed result with a formatted message.
func Errorf(format string, a ...interface{}) Result {
	return Error(fmt.Sprintf(format, a...))
}

// Exit creates a session termination request.
func Exit(code int) Result {
	return Result{Kind: KindExit, Code: code}
}

// None creates an empty successful result.
func None() Result {
	return Result{}
}

// IsSuccess returns true for Success and None.
func (r Result) IsSuccess() bool {
	return r.Kind == KindSuccess || r.Kind == KindNone
}

func (r Result) String() string {
	switch r.Kind {
	case KindSuccess:
		return fmt.Sprintf("Success(%q)", r.Text)
	case KindError:
		return fmt.Sprintf("Error(%q)", r.Text)
	case KindExit:
		return fmt.Sprintf("Exit(%d)", r.Code)
	default:
		return "None"
	}
}
