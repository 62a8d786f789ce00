// Package commands is the fixed builtin registry: exit, echo, type, pwd,
// cd, and history. Names are matched before any PATH lookup is attempted.
package commands

import (
	"io"
	"sort"

	"github.com/kaifcoder/codecrafters-shell/internal/session"
)

// Run is the contract every builtin implements: a pure function of its
// arguments and the three standard streams, plus the environment handle,
// returning an exit code. A builtin never closes the streams it's given;
// the executor owns their lifetime.
type Run func(args []string, stdin io.Reader, stdout, stderr io.Writer, env *session.Environment) int

// Command pairs a builtin name with its implementation.
type Command struct {
	Name string
	Run  Run
}

var registry = make(map[string]*Command)

func register(c *Command) { registry[c.Name] = c }

// Get looks up a builtin by name.
func Get(name string) (*Command, bool) {
	c, ok := registry[name]
	return c, ok
}

// Names returns the sorted set of registered builtin names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
