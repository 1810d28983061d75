package shell

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, line string) Command {
	t.Helper()

	cmd, err := Parse(line)
	require.NoError(t, err)
	return cmd
}

func TestParse_roundTrip(t *testing.T) {
	cases := []string{
		"name arg1 arg2",
		"ls",
		"a | b | c",
		"a && b || c",
		"a ; b ; c",
		"cat < in.txt > out.txt",
		"echo hi >> log",
		"sleep 5 &",
		"اعرض -l | ابحث ملف",
	}

	for _, line := range cases {
		t.Run(line, func(t *testing.T) {
			assert.Equal(t, line, mustParse(t, line).String())
		})
	}
}

func TestParse_simple(t *testing.T) {
	cmd := mustParse(t, `echo "a b  c" 'd' «هـ»`)

	simple, ok := cmd.(*Simple)
	require.True(t, ok)
	assert.Equal(t, "echo", simple.Name)
	assert.Equal(t, []string{"a b  c", "d", "هـ"}, simple.Args)
	assert.Empty(t, simple.Redirects)
}

func TestParse_quotedCommandName(t *testing.T) {
	simple, ok := mustParse(t, `"my prog" x`).(*Simple)
	require.True(t, ok)
	assert.Equal(t, "my prog", simple.Name)
	assert.Equal(t, []string{"x"}, simple.Args)
}

func TestParse_andOrLeftAssociative(t *testing.T) {
	cmd := mustParse(t, "a && b || c")

	or, ok := cmd.(*Or)
	require.True(t, ok, "top level should be Or, got %T", cmd)
	assert.Equal(t, "c", or.Right.String())

	and, ok := or.Left.(*And)
	require.True(t, ok, "left of Or should be And, got %T", or.Left)
	assert.Equal(t, "a", and.Left.String())
	assert.Equal(t, "b", and.Right.String())
}

func TestParse_orThenAnd(t *testing.T) {
	cmd := mustParse(t, "a || b && c")

	and, ok := cmd.(*And)
	require.True(t, ok, "top level should be And, got %T", cmd)
	_, ok = and.Left.(*Or)
	assert.True(t, ok)
}

func TestParse_precedence(t *testing.T) {
	cmd := mustParse(t, "a | b && c ; d")

	seq, ok := cmd.(*Sequence)
	require.True(t, ok)
	require.Len(t, seq.Commands, 2)

	and, ok := seq.Commands[0].(*And)
	require.True(t, ok)

	pipe, ok := and.Left.(*Pipeline)
	require.True(t, ok)
	assert.Len(t, pipe.Commands, 2)
}

func TestParse_collapsesSingletons(t *testing.T) {
	_, ok := mustParse(t, "a").(*Simple)
	assert.True(t, ok)

	_, ok = mustParse(t, "a ;").(*Simple)
	assert.True(t, ok, "a trailing separator shouldn't create a Sequence")
}

func TestParse_redirects(t *testing.T) {
	simple, ok := mustParse(t, "sort < in > out >> more").(*Simple)
	require.True(t, ok)

	assert.Equal(t, []Redirect{
		{Kind: RedirectKindIn, Target: "in"},
		{Kind: RedirectKindOut, Target: "out"},
		{Kind: RedirectKindAppend, Target: "more"},
	}, simple.Redirects)

	target, ok := simple.Input()
	assert.True(t, ok)
	assert.Equal(t, "in", target)

	out, ok := simple.Output()
	assert.True(t, ok)
	assert.Equal(t, Redirect{Kind: RedirectKindAppend, Target: "more"}, out)
}

func TestParse_lastRedirectWins(t *testing.T) {
	simple, ok := mustParse(t, "cat < a < b > c > d").(*Simple)
	require.True(t, ok)

	in, _ := simple.Input()
	assert.Equal(t, "b", in)

	out, _ := simple.Output()
	assert.Equal(t, "d", out.Target)
}

func TestParse_redirectsBetweenArgs(t *testing.T) {
	simple, ok := mustParse(t, "echo a > f b").(*Simple)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, simple.Args)
	assert.Len(t, simple.Redirects, 1)
}

func TestParse_background(t *testing.T) {
	bg, ok := mustParse(t, "sleep 10 &").(*Background)
	require.True(t, ok)
	assert.Equal(t, "sleep 10", bg.Inner.String())

	_, err := Parse("a & b")
	assert.Error(t, err, "background is a suffix, not a separator")
}

func TestParse_newlines(t *testing.T) {
	cases := map[string]string{
		"after pipe":      "a |\nb",
		"after and":       "a &&\n\nb",
		"after or":        "a ||\nb",
		"after semicolon": "a ;\nb",
		"leading":         "\n\na",
		"trailing":        "a\n\n",
	}

	for tn, line := range cases {
		t.Run(tn, func(t *testing.T) {
			_, err := Parse(line)
			assert.NoError(t, err)
		})
	}
}

func TestParse_empty(t *testing.T) {
	for _, line := range []string{"", "   ", "# just a comment", "\n\n"} {
		_, ok := mustParse(t, line).(*Empty)
		assert.True(t, ok, "%q", line)
	}
}

func TestParse_errors(t *testing.T) {
	cases := map[string]struct {
		line           string
		wantErr        string
		wantIncomplete bool
	}{
		"leading pipe": {
			line:    "| a",
			wantErr: "خطأ نحوي / Parse error [1:1]: متوقع كلمة / Expected word, got: |",
		},
		"missing redirect target": {
			line:    "echo >",
			wantErr: "خطأ نحوي / Parse error [1:7]: متوقع كلمة / Expected word, got: EOF",
		},
		"double separator": {
			line:    "a ; ; b",
			wantErr: "خطأ نحوي / Parse error [1:5]: متوقع كلمة / Expected word, got: ;",
		},
		"newline is not a separator": {
			line:    "a\nb",
			wantErr: "خطأ نحوي / Parse error [2:1]: رمز غير متوقع / Unexpected token: Word(b)",
		},
		"dangling pipe": {
			line:           "a |",
			wantErr:        "خطأ نحوي / Parse error [1:4]: متوقع كلمة / Expected word, got: EOF",
			wantIncomplete: true,
		},
		"dangling and after newline": {
			line:           "a &&\n",
			wantErr:        "خطأ نحوي / Parse error [2:1]: متوقع كلمة / Expected word, got: EOF",
			wantIncomplete: true,
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			_, err := Parse(tc.line)
			require.Error(t, err)
			assert.Equal(t, tc.wantErr, err.Error())

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tc.wantIncomplete, parseErr.Incomplete())
		})
	}
}

func TestParse_lexErrorBeforeParsing(t *testing.T) {
	_, err := Parse(`echo "abc`)

	var lexErr *LexError
	require.True(t, errors.As(err, &lexErr))
	assert.Equal(t, "خطأ لغوي / Lex error [1:6]: نص غير مكتمل / Unterminated string", err.Error())

	// The next line is unaffected.
	_, err = Parse("echo abc")
	assert.NoError(t, err)
}

func TestNewParser_errorTokens(t *testing.T) {
	_, err := NewParser(Tokenize(`"abc`)).Parse()

	assert.EqualError(t, err, "خطأ نحوي / Parse error [1:1]: متوقع كلمة / Expected word, got: Error: نص غير مكتمل / Unterminated string")
}

func TestDebugPrint(t *testing.T) {
	cases := map[string]string{
		"and-or":              "a && b || c",
		"pipeline-redirects":  "cat < in.txt | grep -i x > out.txt",
		"sequence-background": `sleep 1 & ; echo "done it" >> log`,
		"empty":               "# nothing",
	}

	g := goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
		goldie.WithTestNameForDir(true),
	)

	for tn, line := range cases {
		t.Run(tn, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, DebugPrint(&buf, mustParse(t, line)))

			g.Assert(t, tn, buf.Bytes())
		})
	}
}
