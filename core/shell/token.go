package shell

import "fmt"

// TokenKind identifies the lexical class of a Token.
type TokenKind int

const (
	// Word is an unquoted run of word-forming characters.
	Word TokenKind = iota
	// String is a quoted string, Value holds the unescaped contents.
	String
	Pipe
	RedirectOut
	RedirectIn
	Append
	AndIf
	OrIf
	// Semicolon is produced for both ';' and the Arabic semicolon U+061B.
	Semicolon
	Amp
	Newline
	EOF
	// Error marks malformed input, Value holds the diagnostic.
	Error
)

var kindNames = map[TokenKind]string{
	Word:        "Word",
	String:      "String",
	Pipe:        "|",
	RedirectOut: ">",
	RedirectIn:  "<",
	Append:      ">>",
	AndIf:       "&&",
	OrIf:        "||",
	Semicolon:   ";",
	Amp:         "&",
	Newline:     `\n`,
	EOF:         "EOF",
	Error:       "Error",
}

func (k TokenKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// IsWord returns true for tokens that can serve as a command name or argument.
func (k TokenKind) IsWord() bool {
	return k == Word || k == String
}

// Span is the source location of a token. Start and End are rune offsets into
// the normalized line, Line and Column are 1-indexed.
type Span struct {
	Start  int
	End    int
	Line   int
	Column int
}

// Token is a single lexical unit.
type Token struct {
	Kind TokenKind
	// Value holds the decoded text of Word and String tokens and the message of
	// Error tokens.
	Value string
	// Lexeme is the raw source text the token was scanned from.
	Lexeme string
	Span   Span
}

// String formats the token the way it's shown in diagnostics.
func (t Token) String() string {
	switch t.Kind {
	case Word:
		return fmt.Sprintf("Word(%s)", t.Value)
	case String:
		return fmt.Sprintf("String(\"%s\")", t.Value)
	case Error:
		return fmt.Sprintf("Error: %s", t.Value)
	default:
		return t.Kind.String()
	}
}
