package shell

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	msgUnterminatedString = "نص غير مكتمل / Unterminated string"
	msgUnterminatedEscape = "تسلسل هروب غير مكتمل / Unterminated escape"

	arabicSemicolon = '؛'
)

// Lexer splits a single input line into tokens. A Lexer is single use.
type Lexer struct {
	src []rune
	pos int

	line   int
	column int

	// Position of the token currently being scanned.
	start       int
	startLine   int
	startColumn int
}

// NewLexer creates a lexer over the NFC normalized form of input.
func NewLexer(input string) *Lexer {
	return &Lexer{
		src:    []rune(norm.NFC.String(input)),
		line:   1,
		column: 1,
	}
}

// Tokenize is shorthand for NewLexer(input).Tokenize().
func Tokenize(input string) []Token {
	return NewLexer(input).Tokenize()
}

// Tokenize scans the whole input. The result always ends in an EOF token. If
// the input is malformed the sequence stops at the first Error token, which is
// immediately followed by EOF.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.Next()
		tokens = append(tokens, tok)

		switch tok.Kind {
		case EOF:
			return tokens
		case Error:
			for !l.atEnd() {
				l.advance()
			}
			l.mark()
			return append(tokens, l.emit(EOF, ""))
		}
	}
}

// Next scans the next token.
func (l *Lexer) Next() Token {
	for {
		l.skipBlanks()
		l.mark()

		if l.atEnd() {
			return l.emit(EOF, "")
		}

		c := l.advance()
		switch c {
		case '\n':
			return l.emit(Newline, "")

		case '"', '\'':
			return l.scanString(c)
		case '«':
			return l.scanString('»')

		case '|':
			if l.accept('|') {
				return l.emit(OrIf, "")
			}
			return l.emit(Pipe, "")

		case '&':
			if l.accept('&') {
				return l.emit(AndIf, "")
			}
			return l.emit(Amp, "")

		case '>':
			if l.accept('>') {
				return l.emit(Append, "")
			}
			return l.emit(RedirectOut, "")

		case '<':
			return l.emit(RedirectIn, "")

		case ';', arabicSemicolon:
			return l.emit(Semicolon, "")

		case '#':
			for !l.atEnd() && l.peek() != '\n' {
				l.advance()
			}

		default:
			return l.scanWord()
		}
	}
}

func (l *Lexer) scanWord() Token {
	for !l.atEnd() && isWordRune(l.peek()) {
		l.advance()
	}

	return l.emit(Word, string(l.src[l.start:l.pos]))
}

func (l *Lexer) scanString(closing rune) Token {
	var value strings.Builder

	for !l.atEnd() && l.peek() != closing {
		c := l.peek()
		if c == '\n' {
			return l.emit(Error, msgUnterminatedString)
		}
		l.advance()

		if c != '\\' {
			value.WriteRune(c)
			continue
		}

		if l.atEnd() {
			return l.emit(Error, msgUnterminatedEscape)
		}
		value.WriteRune(unescapeRune(l.advance()))
	}

	if l.atEnd() {
		return l.emit(Error, msgUnterminatedString)
	}

	l.advance() // closing quote
	return l.emit(String, value.String())
}

func unescapeRune(r rune) rune {
	switch r {
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	case '0':
		return 0
	default:
		// Covers \\, \" and \' along with any unknown escape.
		return r
	}
}

func isWordRune(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r',
		'|', '&', '>', '<', ';', arabicSemicolon,
		'"', '\'', '«', '»',
		'#':
		return false
	}
	return true
}

func (l *Lexer) skipBlanks() {
	for !l.atEnd() {
		switch l.peek() {
		case ' ', '\t', '\r':
			l.advance()
		default:
			return
		}
	}
}

func (l *Lexer) mark() {
	l.start = l.pos
	l.startLine = l.line
	l.startColumn = l.column
}

func (l *Lexer) emit(kind TokenKind, value string) Token {
	return Token{
		Kind:   kind,
		Value:  value,
		Lexeme: string(l.src[l.start:l.pos]),
		Span: Span{
			Start:  l.start,
			End:    l.pos,
			Line:   l.startLine,
			Column: l.startColumn,
		},
	}
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) peek() rune {
	return l.src[l.pos]
}

func (l *Lexer) advance() rune {
	r := l.src[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

func (l *Lexer) accept(r rune) bool {
	if l.atEnd() || l.peek() != r {
		return false
	}
	l.advance()
	return true
}
