package shell

import (
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kaifcoder/codecrafters-shell/internal/commands"
	"github.com/kaifcoder/codecrafters-shell/internal/pathsearch"
)

// completer implements readline.AutoCompleter over the command-name
// position only: builtin names plus the basenames of PATH executables.
// It offers nothing once the buffer has moved past the first word.
type completer struct{}

// NewCompleter returns the shell's tab completer.
func NewCompleter() readline.AutoCompleter { return &completer{} }

func (c *completer) Do(line []rune, pos int) (newLine [][]rune, length int) {
	prefix := string(line[:pos])
	if strings.ContainsAny(prefix, " \t") {
		return nil, 0
	}
	return Complete(prefix)
}

// Complete returns every builtin name and PATH executable basename that
// starts with prefix, sorted, each suffixed with a trailing space and
// trimmed to just the completed remainder readline expects.
func Complete(prefix string) ([][]rune, int) {
	set := make(map[string]bool)
	for _, name := range commands.Names() {
		if strings.HasPrefix(name, prefix) {
			set[name] = true
		}
	}
	for _, name := range pathsearch.AllNames() {
		if strings.HasPrefix(name, prefix) {
			set[name] = true
		}
	}

	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	sort.Strings(names)

	out := make([][]rune, len(names))
	for i, n := range names {
		out[i] = []rune(n[len(prefix):] + " ")
	}
	return out, len(prefix)
}
