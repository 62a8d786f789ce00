package commands

import (
	"fmt"
	"io"

	"github.com/kaifcoder/codecrafters-shell/internal/pathsearch"
	"github.com/kaifcoder/codecrafters-shell/internal/session"
)

func init() {
	register(&Command{Name: "type", Run: typeCmd})
}

// typeCmd reports whether its argument names a builtin, a PATH
// executable, or neither. Builtins always win over PATH entries of the
// same name.
func typeCmd(args []string, stdin io.Reader, stdout, stderr io.Writer, env *session.Environment) int {
	if len(args) == 0 {
		return 0
	}
	name := args[0]
	if _, ok := Get(name); ok {
		fmt.Fprintf(stdout, "%s is a shell builtin\n", name)
		return 0
	}
	if path, ok := pathsearch.Find(name); ok {
		fmt.Fprintf(stdout, "%s is %s\n", name, path)
		return 0
	}
	fmt.Fprintf(stdout, "%s: not found\n", name)
	return 1
}
