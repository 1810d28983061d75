package shell

import "fmt"

// ParseError is a positioned syntax error.
type ParseError struct {
	Message string
	Line    int
	Column  int

	// incomplete is set when input ran out right after a chain operator.
	incomplete bool
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("خطأ نحوي / Parse error [%d:%d]: %s", e.Line, e.Column, e.Message)
}

// Incomplete returns true if the line ended right after '|', '&&' or '||' and
// could be completed by another line of input.
func (e *ParseError) Incomplete() bool {
	return e.incomplete
}

// LexError is a malformed-input error reported by the lexer.
type LexError struct {
	Message string
	Span    Span
}

func (e *LexError) Error() string {
	return fmt.Sprintf("خطأ لغوي / Lex error [%d:%d]: %s", e.Span.Line, e.Span.Column, e.Message)
}

// CheckTokens returns a *LexError for the first Error token in tokens, or nil.
func CheckTokens(tokens []Token) error {
	for _, tok := range tokens {
		if tok.Kind == Error {
			return &LexError{Message: tok.Value, Span: tok.Span}
		}
	}
	return nil
}

// Parse tokenizes and parses a single line of input. Lexer errors are reported
// as *LexError before parsing starts, syntax errors as *ParseError.
func Parse(line string) (Command, error) {
	tokens := Tokenize(line)
	if err := CheckTokens(tokens); err != nil {
		return nil, err
	}
	return NewParser(tokens).Parse()
}

// Parser is a recursive descent parser over one line's tokens.
//
// Grammar, loosest binding first:
//
//	sequence = and_or (';' and_or)*
//	and_or   = pipeline (('&&' | '||') pipeline)*
//	pipeline = simple ('|' simple)*
//	simple   = WORD (WORD | redirect)* ['&']
//	redirect = ('>' | '>>' | '<') WORD
type Parser struct {
	tokens []Token
	pos    int
}

// NewParser creates a parser, tokens must be terminated by an EOF token.
func NewParser(tokens []Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != EOF {
		tokens = append(tokens, Token{Kind: EOF, Span: Span{Line: 1, Column: 1}})
	}
	return &Parser{tokens: tokens}
}

// Parse parses the complete token stream into a single command.
func (p *Parser) Parse() (Command, error) {
	p.skipNewlines()
	if p.atEnd() {
		return &Empty{}, nil
	}

	cmd, err := p.parseSequence()
	if err != nil {
		return nil, err
	}

	p.skipNewlines()
	if !p.atEnd() {
		return nil, p.errorf(p.peek(), "رمز غير متوقع / Unexpected token: %s", p.peek())
	}

	return cmd, nil
}

func (p *Parser) parseSequence() (Command, error) {
	first, err := p.parseAndOr()
	if err != nil {
		return nil, err
	}
	cmds := []Command{first}

	for p.check(Semicolon) {
		p.advance()
		p.skipNewlines()
		if p.atEnd() {
			// Trailing separator.
			break
		}

		next, err := p.parseAndOr()
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, next)
	}

	if len(cmds) == 1 {
		return cmds[0], nil
	}
	return &Sequence{Commands: cmds}, nil
}

func (p *Parser) parseAndOr() (Command, error) {
	left, err := p.parsePipeline()
	if err != nil {
		return nil, err
	}

	for p.check(AndIf) || p.check(OrIf) {
		op := p.advance()
		p.skipNewlines()

		right, err := p.parsePipeline()
		if err != nil {
			return nil, err
		}

		if op.Kind == AndIf {
			left = &And{Left: left, Right: right}
		} else {
			left = &Or{Left: left, Right: right}
		}
	}

	return left, nil
}

func (p *Parser) parsePipeline() (Command, error) {
	first, err := p.parseSimple()
	if err != nil {
		return nil, err
	}
	cmds := []Command{first}

	for p.check(Pipe) {
		p.advance()
		p.skipNewlines()

		next, err := p.parseSimple()
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, next)
	}

	if len(cmds) == 1 {
		return cmds[0], nil
	}
	return &Pipeline{Commands: cmds}, nil
}

func (p *Parser) parseSimple() (Command, error) {
	name, err := p.expectWord()
	if err != nil {
		return nil, err
	}

	simple := &Simple{Name: name}
	for {
		switch tok := p.peek(); {
		case tok.Kind == RedirectOut || tok.Kind == RedirectIn || tok.Kind == Append:
			redirect, err := p.parseRedirect()
			if err != nil {
				return nil, err
			}
			simple.Redirects = append(simple.Redirects, redirect)

		case tok.Kind.IsWord():
			p.advance()
			simple.Args = append(simple.Args, tok.Value)

		case tok.Kind == Amp:
			p.advance()
			return &Background{Inner: simple}, nil

		default:
			return simple, nil
		}
	}
}

func (p *Parser) parseRedirect() (Redirect, error) {
	var kind RedirectKind
	switch op := p.advance(); op.Kind {
	case RedirectIn:
		kind = RedirectKindIn
	case RedirectOut:
		kind = RedirectKindOut
	case Append:
		kind = RedirectKindAppend
	default:
		return Redirect{}, p.errorf(op, "متوقع عامل إعادة توجيه / Expected redirect operator")
	}

	target, err := p.expectWord()
	if err != nil {
		return Redirect{}, err
	}

	return Redirect{Kind: kind, Target: target}, nil
}

func (p *Parser) expectWord() (string, error) {
	tok := p.peek()
	if !tok.Kind.IsWord() {
		err := p.errorf(tok, "متوقع كلمة / Expected word, got: %s", tok)
		if tok.Kind == EOF {
			err.incomplete = p.followsChainOperator()
		}
		return "", err
	}

	p.advance()
	return tok.Value, nil
}

// followsChainOperator reports whether the last token before the current one,
// ignoring newlines, joins two commands.
func (p *Parser) followsChainOperator() bool {
	for i := p.pos - 1; i >= 0; i-- {
		switch p.tokens[i].Kind {
		case Newline:
			continue
		case Pipe, AndIf, OrIf:
			return true
		}
		return false
	}
	return false
}

func (p *Parser) errorf(at Token, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Message: fmt.Sprintf(format, args...),
		Line:    at.Span.Line,
		Column:  at.Span.Column,
	}
}

func (p *Parser) skipNewlines() {
	for p.check(Newline) {
		p.advance()
	}
}

func (p *Parser) check(kind TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) atEnd() bool {
	return p.peek().Kind == EOF
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() Token {
	tok := p.peek()
	if !p.atEnd() {
		p.pos++
	}
	return tok
}
