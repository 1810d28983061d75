package shell

import "strings"

// RedirectKind is the direction of a redirect.
type RedirectKind int

const (
	// RedirectKindIn reads the command's input from a file.
	RedirectKindIn RedirectKind = iota
	// RedirectKindOut truncates the file and writes the output.
	RedirectKindOut
	// RedirectKindAppend appends the output to the file.
	RedirectKindAppend
)

func (k RedirectKind) String() string {
	switch k {
	case RedirectKindIn:
		return "<"
	case RedirectKindAppend:
		return ">>"
	default:
		return ">"
	}
}

// Redirect sends a command's input or output to a file.
type Redirect struct {
	Kind   RedirectKind
	Target string
}

func (r Redirect) String() string {
	return r.Kind.String() + " " + r.Target
}

// Command is a node in the command tree. The set of implementations is closed:
// *Empty, *Simple, *Pipeline, *And, *Or, *Sequence and *Background.
type Command interface {
	// String re-serializes the command.
	String() string

	commandNode()
}

// Empty is a line with nothing to run.
type Empty struct{}

// Simple is a single command invocation.
type Simple struct {
	Name      string
	Args      []string
	Redirects []Redirect
}

// Pipeline feeds the output of each command into the next. It always has at
// least two members.
type Pipeline struct {
	Commands []Command
}

// And runs Right only if Left succeeds.
type And struct {
	Left, Right Command
}

// Or runs Right only if Left fails.
type Or struct {
	Left, Right Command
}

// Sequence runs each command in order. It always has at least two members.
type Sequence struct {
	Commands []Command
}

// Background marks a command that was suffixed with '&'.
type Background struct {
	Inner Command
}

func (*Empty) commandNode()      {}
func (*Simple) commandNode()     {}
func (*Pipeline) commandNode()   {}
func (*And) commandNode()        {}
func (*Or) commandNode()         {}
func (*Sequence) commandNode()   {}
func (*Background) commandNode() {}

func (*Empty) String() string {
	return ""
}

func (s *Simple) String() string {
	parts := append([]string{s.Name}, s.Args...)
	for _, r := range s.Redirects {
		parts = append(parts, r.String())
	}
	return strings.Join(parts, " ")
}

func (p *Pipeline) String() string {
	return joinCommands(p.Commands, " | ")
}

func (a *And) String() string {
	return a.Left.String() + " && " + a.Right.String()
}

func (o *Or) String() string {
	return o.Left.String() + " || " + o.Right.String()
}

func (s *Sequence) String() string {
	return joinCommands(s.Commands, " ; ")
}

func (b *Background) String() string {
	return b.Inner.String() + " &"
}

func joinCommands(cmds []Command, sep string) string {
	var parts []string
	for _, cmd := range cmds {
		parts = append(parts, cmd.String())
	}
	return strings.Join(parts, sep)
}

// Input returns the target of the redirect that supplies the command's input.
// When several are given the last one wins.
func (s *Simple) Input() (target string, ok bool) {
	for _, r := range s.Redirects {
		if r.Kind == RedirectKindIn {
			target, ok = r.Target, true
		}
	}
	return
}

// Output returns the redirect that receives the command's output. When several
// are given the last one wins.
func (s *Simple) Output() (redirect Redirect, ok bool) {
	for _, r := range s.Redirects {
		if r.Kind == RedirectKindOut || r.Kind == RedirectKindAppend {
			redirect, ok = r, true
		}
	}
	return
}
