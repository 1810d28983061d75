package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func kinds(tokens []Token) []TokenKind {
	var out []TokenKind
	for _, tok := range tokens {
		out = append(out, tok.Kind)
	}
	return out
}

func TestTokenize_kinds(t *testing.T) {
	cases := map[string]struct {
		input string
		want  []TokenKind
	}{
		"empty":            {"", []TokenKind{EOF}},
		"blank":            {" \t\r ", []TokenKind{EOF}},
		"words":            {"ls -la /tmp", []TokenKind{Word, Word, Word, EOF}},
		"pipe":             {"a | b", []TokenKind{Word, Pipe, Word, EOF}},
		"or":               {"a || b", []TokenKind{Word, OrIf, Word, EOF}},
		"and":              {"a && b", []TokenKind{Word, AndIf, Word, EOF}},
		"background":       {"a &", []TokenKind{Word, Amp, EOF}},
		"redirects":        {"a < in > out >> log", []TokenKind{Word, RedirectIn, Word, RedirectOut, Word, Append, Word, EOF}},
		"semicolon":        {"a; b", []TokenKind{Word, Semicolon, Word, EOF}},
		"arabic semicolon": {"a ؛ b", []TokenKind{Word, Semicolon, Word, EOF}},
		"newline":          {"a\nb", []TokenKind{Word, Newline, Word, EOF}},
		"no spaces":        {"a>b&&c|d", []TokenKind{Word, RedirectOut, Word, AndIf, Word, Pipe, Word, EOF}},
		"comment":          {"echo hi # the rest\nls", []TokenKind{Word, Word, Newline, Word, EOF}},
		"comment in word":  {"a#b", []TokenKind{Word, EOF}},
		"quotes end words": {`a"b"'c'`, []TokenKind{Word, String, String, EOF}},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			assert.Equal(t, tc.want, kinds(Tokenize(tc.input)))
		})
	}
}

func TestTokenize_values(t *testing.T) {
	cases := map[string]struct {
		input string
		want  []string
	}{
		"internal whitespace kept": {`echo "a b  c"`, []string{"echo", "a b  c"}},
		"single quotes":            {`echo 'x y'`, []string{"echo", "x y"}},
		"guillemets":               {"اطبع «مرحبا بالعالم»", []string{"اطبع", "مرحبا بالعالم"}},
		"escapes":                  {`"a\tb\\c\"d\'e\0f"`, []string{"a\tb\\c\"d'e\x00f"}},
		"unknown escape":           {`"\q\»"`, []string{"q»"}},
		"escaped guillemet":        {`«a\»b»`, []string{"a»b"}},
		"arabic words":             {"انتقل مجلد", []string{"انتقل", "مجلد"}},
		"empty string":             {`""`, []string{""}},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			tokens := Tokenize(tc.input)

			var got []string
			for _, tok := range tokens {
				if tok.Kind.IsWord() {
					got = append(got, tok.Value)
				}
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTokenize_normalizesToNFC(t *testing.T) {
	// "e" followed by a combining acute accent.
	tokens := Tokenize("cafe\u0301")

	assert.Equal(t, []TokenKind{Word, EOF}, kinds(tokens))
	assert.Equal(t, "caf\u00e9", tokens[0].Value)
}

func TestTokenize_errors(t *testing.T) {
	cases := map[string]struct {
		input   string
		wantMsg string
	}{
		"unterminated double": {`echo "abc`, msgUnterminatedString},
		"unterminated single": {`echo 'abc`, msgUnterminatedString},
		"unterminated arabic": {`echo «abc`, msgUnterminatedString},
		"newline in quote":    {"echo 'abc\nls", msgUnterminatedString},
		"dangling escape":     {`echo "abc\`, msgUnterminatedEscape},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			tokens := Tokenize(tc.input)

			// Lexing stops at the error.
			assert.Equal(t, []TokenKind{Word, Error, EOF}, kinds(tokens))
			assert.Equal(t, tc.wantMsg, tokens[1].Value)

			err := CheckTokens(tokens)
			if assert.Error(t, err) {
				lexErr, ok := err.(*LexError)
				assert.True(t, ok)
				assert.Equal(t, 1, lexErr.Span.Line)
				assert.Equal(t, 6, lexErr.Span.Column)
			}
		})
	}
}

func TestTokenize_spans(t *testing.T) {
	tokens := Tokenize("ls\n  cat «x»")

	assert.Equal(t, []TokenKind{Word, Newline, Word, String, EOF}, kinds(tokens))

	assert.Equal(t, Span{Start: 0, End: 2, Line: 1, Column: 1}, tokens[0].Span)
	assert.Equal(t, Span{Start: 2, End: 3, Line: 1, Column: 3}, tokens[1].Span)
	assert.Equal(t, Span{Start: 5, End: 8, Line: 2, Column: 3}, tokens[2].Span)
	assert.Equal(t, Span{Start: 9, End: 12, Line: 2, Column: 7}, tokens[3].Span)
	assert.Equal(t, "«x»", tokens[3].Lexeme)
	assert.Equal(t, "x", tokens[3].Value)
}

func TestToken_String(t *testing.T) {
	cases := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: Word, Value: "ls"}, "Word(ls)"},
		{Token{Kind: String, Value: "a b"}, `String("a b")`},
		{Token{Kind: Pipe}, "|"},
		{Token{Kind: Append}, ">>"},
		{Token{Kind: Newline}, `\n`},
		{Token{Kind: EOF}, "EOF"},
		{Token{Kind: Error, Value: "boom"}, "Error: boom"},
	}

	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.tok.String())
		})
	}
}
