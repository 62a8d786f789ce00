package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/kaifcoder/codecrafters-shell/internal/session"
)

func init() {
	register(&Command{Name: "echo", Run: echo})
}

func echo(args []string, stdin io.Reader, stdout, stderr io.Writer, env *session.Environment) int {
	fmt.Fprintln(stdout, strings.Join(args, " "))
	return 0
}
