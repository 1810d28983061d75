package core

import (
	"sort"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/anmitsu/go-shlex"
	"github.com/osama1998H/ocean/core/vos"
	"github.com/spf13/afero"
)

// Completer completes command names for the first word of a line and paths
// for the rest.
type Completer struct {
	// Commands holds every name that can start a line.
	Commands []string
	Session  *vos.Session
}

var _ readline.AutoCompleter = (*Completer)(nil)

// Do implements readline.AutoCompleter. It returns the suffixes that complete
// the word under the cursor and the length of that word.
func (c *Completer) Do(line []rune, pos int) ([][]rune, int) {
	before := string(line[:pos])
	words := splitWords(before)

	current := ""
	if len(words) > 0 && !strings.HasSuffix(before, " ") {
		current = words[len(words)-1]
		words = words[:len(words)-1]
	}

	var candidates []string
	prefix := current
	if len(words) == 0 {
		candidates = c.completeCommand(current)
	} else {
		candidates, prefix = c.completePath(current)
	}

	prefixLen := len([]rune(prefix))
	var out [][]rune
	for _, candidate := range candidates {
		out = append(out, []rune(candidate)[prefixLen:])
	}
	return out, prefixLen
}

// splitWords splits a partial line into words the way the shell will, falling
// back to whitespace splitting when quotes are unbalanced.
func splitWords(line string) []string {
	words, err := shlex.Split(line, true)
	if err != nil {
		return strings.Fields(line)
	}
	return words
}

func (c *Completer) completeCommand(prefix string) []string {
	var out []string
	for _, name := range c.Commands {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name+" ")
		}
	}
	sort.Strings(out)
	return out
}

// completePath returns the names in the directory of partial that start with
// its last element, along with that element. Directories get a trailing "/".
func (c *Completer) completePath(partial string) ([]string, string) {
	dir, base := ".", partial
	if i := strings.LastIndex(partial, "/"); i >= 0 {
		dir, base = partial[:i+1], partial[i+1:]
	}

	fs := c.Session.Fs()
	entries, err := afero.ReadDir(fs, vos.ResolvePath(c.Session.Getwd(), c.Session.Env().ExpandTilde(dir)))
	if err != nil {
		return nil, base
	}

	var out []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, base) {
			continue
		}
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(base, ".") {
			continue
		}

		if entry.IsDir() {
			out = append(out, name+"/")
		} else {
			out = append(out, name+" ")
		}
	}
	return out, base
}
